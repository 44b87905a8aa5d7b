package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

const (
	minNameLen = 3
	maxNameLen = 20
)

// Settings are the moderation knobs the hub needs at runtime.
type Settings struct {
	// AdminPassword is the shared admin secret. Empty disables admin login.
	AdminPassword string
	// MuteDuration is how long an adminMute silences its target.
	MuteDuration time.Duration
	// AppealLink is included in banned notices.
	AppealLink string
}

type inputKind int

const (
	inputRegister inputKind = iota
	inputUnregister
	inputCommand
	inputMuteExpiry
)

// input funnels every hub stimulus through one channel so processing order
// matches arrival order for any single connection.
type input struct {
	kind      inputKind
	session   *Session
	cmd       Command
	sessionID string
}

// Hub is the single owner of the registry and moderation store. Run drives
// all mutation from one goroutine; transports interact only through
// Register, Unregister, and Dispatch.
type Hub struct {
	settings   Settings
	log        *zerolog.Logger
	registry   *Registry
	moderation *Moderation

	inputs chan input
	done   chan struct{}
}

// NewHub constructs a hub. A nil clock uses wall time; a nil logger is
// replaced with a no-op logger.
func NewHub(settings Settings, clk clock.Clock, logger *zerolog.Logger) *Hub {
	if settings.MuteDuration <= 0 {
		settings.MuteDuration = 5 * time.Minute
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		settings:   settings,
		log:        logger,
		registry:   NewRegistry(),
		moderation: NewModeration(clk),
		inputs:     make(chan input, 64),
		done:       make(chan struct{}),
	}
}

// Run processes hub inputs until the context is cancelled. Each input is
// handled to completion before the next one, so handlers never interleave.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case in := <-h.inputs:
			switch in.kind {
			case inputRegister:
				h.registry.Add(in.session)
				h.log.Debug().Str("session_id", in.session.ID).Msg("session registered")
			case inputUnregister:
				h.handleDisconnect(in.session)
			case inputCommand:
				h.handleCommand(in.session, in.cmd)
			case inputMuteExpiry:
				h.handleMuteExpiry(in.sessionID)
			}
		}
	}
}

// Register adds a new anonymous session to the hub.
func (h *Hub) Register(s *Session) {
	h.submit(input{kind: inputRegister, session: s})
}

// Unregister removes a session after its connection is gone and cascades
// moderation cleanup.
func (h *Hub) Unregister(s *Session) {
	h.submit(input{kind: inputUnregister, session: s})
}

// Dispatch hands an inbound command to the hub loop.
func (h *Hub) Dispatch(s *Session, cmd Command) {
	h.submit(input{kind: inputCommand, session: s, cmd: cmd})
}

func (h *Hub) submit(in input) {
	select {
	case h.inputs <- in:
	case <-h.done:
	}
}

func (h *Hub) handleDisconnect(s *Session) {
	if h.registry.Remove(s.ID) == nil {
		// Already dropped by a ban or a banned-name join.
		return
	}
	h.moderation.Forget(s.ID)
	h.closeSession(s)
	h.log.Debug().Str("session_id", s.ID).Str("name", s.Name).Msg("session removed")
	if s.LoggedIn {
		h.broadcastAll(&Event{Kind: EventSystem, Text: s.Name + " left the chat."})
		h.broadcastRoster()
	}
}

func (h *Hub) handleCommand(s *Session, cmd Command) {
	if s.closed || h.registry.Get(s.ID) == nil {
		return
	}
	// Anonymous connections may only claim a name or authenticate as admin;
	// everything else is discarded without feedback.
	if !s.LoggedIn && cmd.Kind != CommandSetName && cmd.Kind != CommandAdminLogin {
		return
	}
	switch cmd.Kind {
	case CommandSetName:
		h.handleSetName(s, cmd.Name)
	case CommandSendMessage:
		h.handleMessage(s, cmd.Text)
	case CommandAdminLogin:
		h.handleAdminLogin(s, cmd.Password)
	default:
		h.handleAdminCommand(s, cmd)
	}
}

func (h *Hub) handleSetName(s *Session, claimed string) {
	name := strings.TrimSpace(claimed)
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		h.send(s, &Event{Kind: EventJoinError, Text: NoticeNameLength})
		return
	}
	if strings.EqualFold(name, reservedName) {
		h.send(s, &Event{Kind: EventJoinError, Text: NoticeNameReserved})
		return
	}
	if h.moderation.NameBanned(name) {
		h.log.Info().Str("session_id", s.ID).Str("name", name).Msg("banned name join attempt")
		wasLoggedIn, previous := s.LoggedIn, s.Name
		h.kick(s, &Event{Kind: EventBanned, Link: h.settings.AppealLink})
		if wasLoggedIn {
			h.broadcastAll(&Event{Kind: EventSystem, Text: previous + " left the chat."})
			h.broadcastRoster()
		}
		return
	}
	if holder := h.registry.FindByName(name); holder != nil && holder != s {
		h.send(s, &Event{Kind: EventJoinError, Text: NoticeNameTaken})
		return
	}

	if !s.LoggedIn {
		s.Name = name
		s.LoggedIn = true
		h.log.Info().Str("session_id", s.ID).Str("name", name).Msg("user joined")
		h.send(s, &Event{Kind: EventJoinSuccess, Text: "Welcome to the chat, " + name + "!"})
		h.broadcastOthers(&Event{Kind: EventSystem, Text: name + " joined the chat."}, s)
	} else {
		previous := s.Name
		s.Name = name
		h.log.Info().Str("session_id", s.ID).Str("from", previous).Str("to", name).Msg("user renamed")
		h.broadcastAll(&Event{Kind: EventSystem, Text: previous + " is now known as " + name + "."})
	}
	h.broadcastRoster()
}

func (h *Hub) handleMessage(s *Session, text string) {
	if h.moderation.Muted(s.ID) {
		h.send(s, &Event{Kind: EventSystem, Text: NoticeMuted})
		return
	}
	if h.moderation.ContainsBannedWord(text) {
		h.log.Debug().Str("name", s.Name).Msg("message blocked by word filter")
		h.send(s, &Event{Kind: EventSystem, Text: NoticeBlocked})
		return
	}
	h.broadcastOthers(&Event{Kind: EventChatMessage, Name: s.Name, Text: text}, s)
}

func (h *Hub) handleAdminLogin(s *Session, password string) {
	if h.settings.AdminPassword == "" || password != h.settings.AdminPassword {
		h.log.Warn().Str("session_id", s.ID).Msg("failed admin login")
		h.send(s, &Event{Kind: EventSystem, Text: NoticeAdminFailed})
		return
	}
	s.Admin = true
	h.log.Info().Str("session_id", s.ID).Str("name", s.Name).Msg("admin authenticated")
	h.send(s, &Event{Kind: EventAdminSuccess})
	h.send(s, &Event{Kind: EventBannedWordList, List: h.moderation.BannedWords()})
	h.send(s, &Event{Kind: EventBannedUserList, List: h.moderation.BannedNames()})
}

// handleAdminCommand covers every privileged command. Non-admin senders are
// ignored without any reply.
func (h *Hub) handleAdminCommand(s *Session, cmd Command) {
	if !s.Admin {
		return
	}
	switch cmd.Kind {
	case CommandAdminBroadcast:
		h.broadcastAll(&Event{Kind: EventSystem, Text: "[Admin] " + cmd.Text})
	case CommandAdminWarn:
		h.handleWarn(s, cmd.Name)
	case CommandAdminMute:
		h.handleMute(s, cmd.Name)
	case CommandAdminBan:
		h.handleBan(s, cmd.Name)
	case CommandAdminUnban:
		h.handleUnban(s, cmd.Name)
	case CommandAdminAddWord:
		if word := normalizeWord(cmd.Word); word != "" {
			h.moderation.AddWord(word)
			h.broadcastAdmins(&Event{Kind: EventBannedWordList, List: h.moderation.BannedWords()})
		}
	case CommandAdminRemoveWord:
		if word := normalizeWord(cmd.Word); word != "" {
			h.moderation.RemoveWord(word)
			h.broadcastAdmins(&Event{Kind: EventBannedWordList, List: h.moderation.BannedWords()})
		}
	}
}

func (h *Hub) handleWarn(admin *Session, name string) {
	target := h.registry.FindByName(name)
	if target == nil {
		h.send(admin, &Event{Kind: EventSystem, Text: "No user named '" + name + "' is online."})
		return
	}
	total := h.moderation.Warn(target.ID)
	h.log.Info().Str("name", target.Name).Int("warnings", total).Msg("user warned")
	h.send(target, &Event{Kind: EventSystem, Text: fmt.Sprintf("You have received a warning from an admin. Total warnings: %d", total)})
	h.send(admin, &Event{Kind: EventSystem, Text: fmt.Sprintf("Warned %s. Total warnings: %d", target.Name, total)})
}

func (h *Hub) handleMute(admin *Session, name string) {
	target := h.registry.FindByName(name)
	if target == nil {
		h.send(admin, &Event{Kind: EventSystem, Text: "No user named '" + name + "' is online."})
		return
	}
	if h.moderation.Muted(target.ID) {
		h.send(admin, &Event{Kind: EventSystem, Text: target.Name + " is already muted."})
		return
	}
	id := target.ID
	h.moderation.Mute(id, h.settings.MuteDuration, func() {
		// Fires on the clock goroutine; hand it back to the hub loop.
		h.submit(input{kind: inputMuteExpiry, sessionID: id})
	})
	dur := h.settings.MuteDuration.String()
	h.log.Info().Str("name", target.Name).Str("duration", dur).Msg("user muted")
	h.send(target, &Event{Kind: EventSystem, Text: "You have been muted for " + dur + "."})
	h.send(admin, &Event{Kind: EventSystem, Text: "Muted " + target.Name + " for " + dur + "."})
}

func (h *Hub) handleMuteExpiry(sessionID string) {
	h.moderation.ExpireMute(sessionID)
	if s := h.registry.Get(sessionID); s != nil {
		h.send(s, &Event{Kind: EventSystem, Text: "You are no longer muted."})
	}
}

func (h *Hub) handleBan(admin *Session, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if !h.moderation.BanName(name) {
		h.send(admin, &Event{Kind: EventSystem, Text: "'" + name + "' is already banned."})
		return
	}
	h.log.Info().Str("name", name).Msg("name banned")
	h.broadcastAdmins(&Event{Kind: EventBannedUserList, List: h.moderation.BannedNames()})

	target := h.registry.FindByName(name)
	if target == nil {
		h.send(admin, &Event{Kind: EventSystem, Text: "'" + name + "' is not online; the ban applies on their next join."})
		return
	}
	display := target.Name
	h.kick(target, &Event{Kind: EventBanned, Link: h.settings.AppealLink})
	h.broadcastAll(&Event{Kind: EventSystem, Text: display + " has been banned from the chat."})
	h.broadcastRoster()
}

func (h *Hub) handleUnban(admin *Session, name string) {
	name = strings.TrimSpace(name)
	if !h.moderation.UnbanName(name) {
		h.send(admin, &Event{Kind: EventSystem, Text: "'" + name + "' is not on the ban list."})
		return
	}
	h.log.Info().Str("name", name).Msg("name unbanned")
	h.broadcastAdmins(&Event{Kind: EventBannedUserList, List: h.moderation.BannedNames()})
}

// kick removes a session immediately, delivers one final event, and closes
// its channel. A later Unregister from the transport becomes a no-op.
func (h *Hub) kick(s *Session, final *Event) {
	h.registry.Remove(s.ID)
	h.moderation.Forget(s.ID)
	h.send(s, final)
	h.closeSession(s)
}

func (h *Hub) send(s *Session, ev *Event) {
	if s.closed {
		return
	}
	select {
	case s.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

func (h *Hub) closeSession(s *Session) {
	if s.closed {
		return
	}
	s.closed = true
	close(s.Events)
}

func (h *Hub) broadcastAll(ev *Event) {
	for _, s := range h.registry.All() {
		if s.LoggedIn {
			h.send(s, ev)
		}
	}
}

func (h *Hub) broadcastOthers(ev *Event, sender *Session) {
	for _, s := range h.registry.All() {
		if s.LoggedIn && s != sender {
			h.send(s, ev)
		}
	}
}

func (h *Hub) broadcastAdmins(ev *Event) {
	for _, s := range h.registry.All() {
		if s.Admin {
			h.send(s, ev)
		}
	}
}

func (h *Hub) broadcastRoster() {
	names := make([]string, 0, h.registry.Len())
	for _, s := range h.registry.All() {
		if s.LoggedIn {
			names = append(names, s.Name)
		}
	}
	sort.Strings(names)
	h.broadcastAll(&Event{Kind: EventUserList, List: names})
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
