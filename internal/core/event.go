package core

// EventKind is a notification the core emits to sessions.
type EventKind int

const (
	// EventJoinSuccess confirms a successful first login.
	EventJoinSuccess EventKind = iota
	// EventJoinError rejects a setName attempt.
	EventJoinError
	// EventBanned tells a session it is banned; its channel closes after.
	EventBanned
	// EventSystem is a free-form server notice.
	EventSystem
	// EventChatMessage is a relayed chat message from another user.
	EventChatMessage
	// EventAdminSuccess confirms admin authentication.
	EventAdminSuccess
	// EventBannedWordList delivers the current word filter to an admin.
	EventBannedWordList
	// EventBannedUserList delivers the current ban list to an admin.
	EventBannedUserList
	// EventUserList delivers the roster of logged-in display names.
	EventUserList
)

// Event is sent to sessions to describe what happened in the system.
type Event struct {
	Kind EventKind
	Text string   // notice or message body
	Name string   // sender's display name for chat messages
	Link string   // appeal link for banned notices
	List []string // word filter, ban list, or roster payload
}
