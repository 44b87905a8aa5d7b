package core

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

const testAdminPassword = "hunter2"

func newTestHub(t *testing.T) (*Hub, *clock.Mock) {
	t.Helper()

	clk := clock.NewMock()
	hub := NewHub(Settings{
		AdminPassword: testAdminPassword,
		MuteDuration:  5 * time.Minute,
		AppealLink:    "https://example.com/appeal",
	}, clk, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub, clk
}

func connect(hub *Hub, id string) *Session {
	s := NewSession(id)
	hub.Register(s)
	return s
}

// join claims a name and consumes the joinSuccess and roster events.
func join(t *testing.T, hub *Hub, s *Session, name string) {
	t.Helper()

	hub.Dispatch(s, Command{Kind: CommandSetName, Name: name})
	mustEvent(t, s.Events, EventJoinSuccess)
	mustEvent(t, s.Events, EventUserList)
}

// adminLogin authenticates and consumes the adminSuccess and list pushes.
func adminLogin(t *testing.T, hub *Hub, s *Session) {
	t.Helper()

	hub.Dispatch(s, Command{Kind: CommandAdminLogin, Password: testAdminPassword})
	mustEvent(t, s.Events, EventAdminSuccess)
	mustEvent(t, s.Events, EventBannedWordList)
	mustEvent(t, s.Events, EventBannedUserList)
}

// mustEvent waits for the next event of the given kind, skipping others.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed while waiting for event kind %v", kind)
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
		}
	}
}

// nextEvent returns the very next event, failing if none arrives or the
// channel closes first.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("channel closed while waiting for next event")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return nil
	}
}

// mustNoEvent drains whatever is already queued and fails if any event of
// the given kind is among it. Callers must synchronize with the hub first.
func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev.Kind == kind {
				t.Fatalf("unexpected event kind %v: %+v", kind, ev)
			}
		default:
			return
		}
	}
}

// mustClosed drains the channel until it closes.
func mustClosed(t *testing.T, ch <-chan *Event) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("expected channel to be closed")
		}
	}
}

// drain discards everything currently queued.
func drain(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
