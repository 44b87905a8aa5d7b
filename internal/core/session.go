package core

// DefaultName is the display name of a connection before it logs in.
const DefaultName = "Anonymous"

// Session is one live client connection as seen by the core layer.
// The transport owns the socket; the hub owns everything else, including
// the Events channel, which only the hub goroutine writes to.
type Session struct {
	ID       string
	Name     string
	LoggedIn bool
	Admin    bool
	Events   chan *Event

	// closed marks a session whose Events channel the hub shut.
	// Read and written only on the hub goroutine.
	closed bool
}

// NewSession constructs an anonymous session with a buffered event channel.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Name:   DefaultName,
		Events: make(chan *Event, 16),
	}
}
