package core

import (
	"sort"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// Moderation holds process-lifetime moderation state: banned names, the
// banned-word filter, active mutes, and per-session warning counters.
// Nothing here survives a restart.
//
// All methods must be called from the hub goroutine. Mute expiry callbacks
// fire on the clock's goroutine and must only hand the expiry back to the
// hub loop, never touch this state directly.
type Moderation struct {
	clk         clock.Clock
	bannedNames map[string]struct{}
	bannedWords map[string]struct{}
	mutes       map[string]*clock.Timer
	warnings    map[string]int
}

// NewModeration constructs an empty store using the given clock for mute
// timers. A nil clock means wall time.
func NewModeration(clk clock.Clock) *Moderation {
	if clk == nil {
		clk = clock.New()
	}
	return &Moderation{
		clk:         clk,
		bannedNames: make(map[string]struct{}),
		bannedWords: make(map[string]struct{}),
		mutes:       make(map[string]*clock.Timer),
		warnings:    make(map[string]int),
	}
}

// BanName adds a lowercase-normalized name to the ban list.
// Returns false if it was already banned.
func (m *Moderation) BanName(name string) bool {
	lower := strings.ToLower(name)
	if _, banned := m.bannedNames[lower]; banned {
		return false
	}
	m.bannedNames[lower] = struct{}{}
	return true
}

// UnbanName removes a name from the ban list. Returns false if absent.
func (m *Moderation) UnbanName(name string) bool {
	lower := strings.ToLower(name)
	if _, banned := m.bannedNames[lower]; !banned {
		return false
	}
	delete(m.bannedNames, lower)
	return true
}

// NameBanned reports whether a name is on the ban list, case-insensitively.
func (m *Moderation) NameBanned(name string) bool {
	_, banned := m.bannedNames[strings.ToLower(name)]
	return banned
}

// BannedNames returns the ban list sorted.
func (m *Moderation) BannedNames() []string {
	return sortedKeys(m.bannedNames)
}

// AddWord adds a lowercase-normalized entry to the word filter.
func (m *Moderation) AddWord(word string) {
	m.bannedWords[strings.ToLower(word)] = struct{}{}
}

// RemoveWord removes an entry from the word filter.
func (m *Moderation) RemoveWord(word string) {
	delete(m.bannedWords, strings.ToLower(word))
}

// ContainsBannedWord reports whether any filter entry occurs as a substring
// of the text, compared against the full lowercased body.
func (m *Moderation) ContainsBannedWord(text string) bool {
	lower := strings.ToLower(text)
	for word := range m.bannedWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// BannedWords returns the word filter sorted.
func (m *Moderation) BannedWords() []string {
	return sortedKeys(m.bannedWords)
}

// Mute blocks a session from sending until the duration elapses, then calls
// onExpire. Returns false without rescheduling if the session is already
// muted. onExpire runs on the clock's goroutine.
func (m *Moderation) Mute(sessionID string, d time.Duration, onExpire func()) bool {
	if _, muted := m.mutes[sessionID]; muted {
		return false
	}
	m.mutes[sessionID] = m.clk.AfterFunc(d, onExpire)
	return true
}

// Muted reports whether the session is currently muted.
func (m *Moderation) Muted(sessionID string) bool {
	_, muted := m.mutes[sessionID]
	return muted
}

// ExpireMute drops the mute entry after its timer has fired.
func (m *Moderation) ExpireMute(sessionID string) {
	delete(m.mutes, sessionID)
}

// Warn increments the session's warning counter and returns the new total.
func (m *Moderation) Warn(sessionID string) int {
	m.warnings[sessionID]++
	return m.warnings[sessionID]
}

// Warnings returns the session's current warning total.
func (m *Moderation) Warnings(sessionID string) int {
	return m.warnings[sessionID]
}

// Forget purges all per-session state: any pending mute timer is stopped
// and its entry dropped, and the warning counter is cleared. Called when a
// session is destroyed so maps never grow with dead ids.
func (m *Moderation) Forget(sessionID string) {
	if timer, muted := m.mutes[sessionID]; muted {
		timer.Stop()
		delete(m.mutes, sessionID)
	}
	delete(m.warnings, sessionID)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
