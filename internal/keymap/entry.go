package keymap

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

var (
	// ErrDuplicateKey is returned when two children of one node share a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidKey is returned when a child key is not exactly one character.
	ErrInvalidKey = errors.New("key must be a single character")
	// ErrNilEntry is returned when a binding carries no entry.
	ErrNilEntry = errors.New("nil entry")
)

// Entry is a keymap tree element: either a *Leaf or a *Node.
type Entry interface {
	// Label is the display name of the entry.
	Label() string
	entry()
}

// Leaf is a terminal entry holding exactly one action.
type Leaf struct {
	Action Action
}

// Node is a named branch. Its children are fixed at construction.
type Node struct {
	Name     string
	children map[string]Entry
	keys     []string
}

// Binding pairs a single-character key with the entry it selects.
type Binding struct {
	Key   string
	Entry Entry
}

// Bind is shorthand for constructing a Binding.
func Bind(key string, e Entry) Binding {
	return Binding{Key: key, Entry: e}
}

// NewLeaf wraps an action in a leaf entry.
func NewLeaf(a Action) *Leaf {
	return &Leaf{Action: a}
}

// NewNode builds a branch from bindings. Keys must be unique single
// characters.
func NewNode(name string, bindings ...Binding) (*Node, error) {
	n := &Node{
		Name:     name,
		children: make(map[string]Entry, len(bindings)),
		keys:     make([]string, 0, len(bindings)),
	}
	for _, b := range bindings {
		if utf8.RuneCountInString(b.Key) != 1 {
			return nil, fmt.Errorf("node %q: %w (got %q)", name, ErrInvalidKey, b.Key)
		}
		if b.Entry == nil {
			return nil, fmt.Errorf("node %q key %q: %w", name, b.Key, ErrNilEntry)
		}
		if existing, ok := n.children[b.Key]; ok {
			return nil, fmt.Errorf("node %q key %q: %w (%q and %q)", name, b.Key, ErrDuplicateKey, existing.Label(), b.Entry.Label())
		}
		n.children[b.Key] = b.Entry
		n.keys = append(n.keys, b.Key)
	}
	sort.Strings(n.keys)
	return n, nil
}

// MustNode is NewNode for static catalogs; it panics on construction errors so
// a broken catalog stops the program at startup.
func MustNode(name string, bindings ...Binding) *Node {
	n, err := NewNode(name, bindings...)
	if err != nil {
		panic(err)
	}
	return n
}

func (l *Leaf) Label() string {
	if l == nil || l.Action == nil {
		return ""
	}
	return l.Action.Label()
}

func (n *Node) Label() string {
	if n == nil {
		return ""
	}
	return n.Name
}

func (*Leaf) entry() {}
func (*Node) entry() {}

// Child returns the entry bound to key.
func (n *Node) Child(key string) (Entry, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.children[key]
	return e, ok
}

// Keys returns the child keys in ascending order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Len reports the number of children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.keys)
}

// IsBranch reports whether e is a *Node.
func IsBranch(e Entry) bool {
	switch e.(type) {
	case *Node:
		return true
	case *Leaf:
		return false
	case nil:
		return false
	default:
		panic(fmt.Sprintf("keymap: unhandled entry %T", e))
	}
}
