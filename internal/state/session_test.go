package state

import (
	"testing"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
)

func testRoot() *keymap.Node {
	apps := keymap.MustNode("apps",
		keymap.Bind("c", keymap.NewLeaf(keymap.Launch{Name: "chrome", Program: "google-chrome-stable"})),
	)
	return keymap.MustNode("", keymap.Bind("a", apps))
}

func TestSessionStoreStartsAtRoot(t *testing.T) {
	root := testRoot()
	s := NewSessionStore(root)
	if s.Input() != "" {
		t.Fatalf("expected empty input, got %q", s.Input())
	}
	if s.Resolved() != keymap.Entry(root) {
		t.Fatalf("expected root to be resolved")
	}
	if rows := s.Rows(); len(rows) != 1 || rows[0].Label != "apps" {
		t.Fatalf("unexpected rows %#v", rows)
	}
}

func TestSessionStoreSeedAndReset(t *testing.T) {
	s := NewSessionStore(testRoot())
	s.Seed("a")
	node, ok := s.Resolved().(*keymap.Node)
	if !ok || node.Name != "apps" {
		t.Fatalf("expected apps node after seed, got %#v", s.Resolved())
	}
	s.Reset()
	if s.Input() != "" {
		t.Fatalf("expected reset input, got %q", s.Input())
	}
}

func TestSessionStoreInvalidInputHasNoRows(t *testing.T) {
	s := NewSessionStore(testRoot())
	s.SetInput("zz")
	if s.Resolved() != nil {
		t.Fatalf("expected nil resolution")
	}
	if rows := s.Rows(); len(rows) != 0 {
		t.Fatalf("expected no rows, got %#v", rows)
	}
}
