package keymap

import "fmt"

// SpacePlaceholder is displayed in place of a literal space key.
const SpacePlaceholder = "<space>"

// Row is one displayable child of the node an input resolves to.
type Row struct {
	Key    string
	Label  string
	Branch bool
}

// Resolve walks root one character at a time following input and returns the
// entry it lands on. A nil result means the input matches nothing: either a
// key is missing or the input continues past a leaf. Resolve(root, "") is
// root.
func Resolve(root Entry, input string) Entry {
	current := root
	for _, r := range input {
		switch e := current.(type) {
		case nil:
			return nil
		case *Leaf:
			return nil
		case *Node:
			child, ok := e.Child(string(r))
			if !ok {
				return nil
			}
			current = child
		default:
			panic(fmt.Sprintf("keymap: unhandled entry %T", current))
		}
	}
	return current
}

// ViewChildren lists the children of the node input resolves to, sorted by
// key. Leaves and unmatched input produce no rows.
func ViewChildren(root Entry, input string) []Row {
	node, ok := Resolve(root, input).(*Node)
	if !ok {
		return nil
	}
	rows := make([]Row, 0, node.Len())
	for _, key := range node.keys {
		child := node.children[key]
		rows = append(rows, Row{
			Key:    DisplayKey(key),
			Label:  child.Label(),
			Branch: IsBranch(child),
		})
	}
	return rows
}

// DisplayKey renders a key for humans, substituting the space placeholder.
func DisplayKey(key string) string {
	if key == " " {
		return SpacePlaceholder
	}
	return key
}

// Path is the route from the root to an entry.
type Path struct {
	Keys  string
	Names []string
}

// WalkFunc is called for every entry below the root in depth-first key order.
// Returning false skips the entry's children.
type WalkFunc func(path Path, e Entry) bool

// Walk visits every descendant of root.
func Walk(root Entry, fn WalkFunc) {
	node, ok := root.(*Node)
	if !ok {
		return
	}
	walk(node, Path{}, fn)
}

func walk(n *Node, parent Path, fn WalkFunc) {
	for _, key := range n.keys {
		child := n.children[key]
		names := make([]string, len(parent.Names), len(parent.Names)+1)
		copy(names, parent.Names)
		path := Path{Keys: parent.Keys + key, Names: append(names, child.Label())}
		if !fn(path, child) {
			continue
		}
		if sub, ok := child.(*Node); ok {
			walk(sub, path, fn)
		}
	}
}
