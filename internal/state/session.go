package state

import (
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
)

// SessionStore owns the keymap tree and the accumulated input for one
// launcher session. The tree never changes after construction.
type SessionStore interface {
	Root() keymap.Entry
	Input() string
	SetInput(string)
	Seed(string)
	Reset()
	Resolved() keymap.Entry
	Rows() []keymap.Row
}

type sessionStore struct {
	root  keymap.Entry
	input string
}

// NewSessionStore creates a session over root with an empty input.
func NewSessionStore(root keymap.Entry) SessionStore {
	return &sessionStore{root: root}
}

func (s *sessionStore) Root() keymap.Entry {
	return s.root
}

func (s *sessionStore) Input() string {
	return s.input
}

func (s *sessionStore) SetInput(input string) {
	if input == s.input {
		return
	}
	events.Input.Retain(input)
	s.input = input
}

// Seed replaces the input wholesale, typically from the command line, without
// running any action it may resolve to.
func (s *sessionStore) Seed(prefix string) {
	events.Input.Seed(prefix)
	s.input = prefix
}

func (s *sessionStore) Reset() {
	if s.input == "" {
		return
	}
	events.Input.Reset(s.input)
	s.input = ""
}

func (s *sessionStore) Resolved() keymap.Entry {
	return keymap.Resolve(s.root, s.input)
}

func (s *sessionStore) Rows() []keymap.Row {
	return keymap.ViewChildren(s.root, s.input)
}
