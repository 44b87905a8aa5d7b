package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetName claims or changes a display name.
	CommandSetName CommandKind = iota
	// CommandSendMessage relays a chat message to everyone else.
	CommandSendMessage
	// CommandAdminLogin authenticates against the shared admin secret.
	CommandAdminLogin
	// CommandAdminBroadcast announces a system notice to all participants.
	CommandAdminBroadcast
	// CommandAdminWarn increments a user's warning counter.
	CommandAdminWarn
	// CommandAdminMute blocks a user from sending for a fixed duration.
	CommandAdminMute
	// CommandAdminBan adds a name to the ban list and kicks any live match.
	CommandAdminBan
	// CommandAdminUnban removes a name from the ban list.
	CommandAdminUnban
	// CommandAdminAddWord adds an entry to the banned-word filter.
	CommandAdminAddWord
	// CommandAdminRemoveWord removes an entry from the banned-word filter.
	CommandAdminRemoveWord
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Name     string // claimed name (setName) or target name (admin actions)
	Text     string // message or broadcast body
	Word     string // banned-word filter entry
	Password string // admin login credential
}
