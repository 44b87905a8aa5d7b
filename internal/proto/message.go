package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeSetName         = "setName"
	InboundTypeMessage         = "message"
	InboundTypeAdminLogin      = "adminLogin"
	InboundTypeAdminBroadcast  = "adminBroadcast"
	InboundTypeAdminWarn       = "adminWarn"
	InboundTypeAdminMute       = "adminMute"
	InboundTypeAdminBan        = "adminBan"
	InboundTypeAdminUnban      = "adminUnban"
	InboundTypeAdminAddWord    = "adminAddWord"
	InboundTypeAdminRemoveWord = "adminRemoveWord"

	OutboundTypeJoinSuccess    = "joinSuccess"
	OutboundTypeJoinError      = "joinError"
	OutboundTypeBanned         = "banned"
	OutboundTypeSystem         = "system"
	OutboundTypeMessage        = "message"
	OutboundTypeAdminSuccess   = "adminSuccess"
	OutboundTypeBannedWordList = "bannedWordList"
	OutboundTypeBannedUserList = "bannedUserList"
	OutboundTypeUserList       = "userList"
)

// SetNameData carries the display name a client wants to claim.
type SetNameData struct {
	Name string `json:"name"`
}

// MessageData is a chat message from the client.
type MessageData struct {
	Text string `json:"text"`
}

// AdminLoginData carries the shared admin secret.
type AdminLoginData struct {
	Password string `json:"password"`
}

// BroadcastData is an admin announcement for every participant.
type BroadcastData struct {
	Text string `json:"text"`
}

// TargetData names the user an admin action applies to
// (warn, mute, ban, unban).
type TargetData struct {
	Name string `json:"name"`
}

// WordData carries a banned-word filter entry.
type WordData struct {
	Word string `json:"word"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// NoticeData is the payload for joinSuccess, joinError, and system messages.
type NoticeData struct {
	Text string `json:"text"`
}

// BannedData tells a banned client where to appeal.
type BannedData struct {
	Link string `json:"link"`
}

// ChatMessageData is a relayed chat message with its sender's current name.
type ChatMessageData struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// WordListData is the current banned-word filter, sorted.
type WordListData struct {
	Words []string `json:"words"`
}

// UserListData is either the banned-name list (to admins) or the roster of
// logged-in display names (to everyone), sorted.
type UserListData struct {
	Users []string `json:"users"`
}
