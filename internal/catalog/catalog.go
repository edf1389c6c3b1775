// Package catalog supplies keymap trees: the built-in catalog for the running
// platform and catalogs loaded from YAML files.
package catalog

import (
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
)

// QuitKey is bound to Quit in every mode built by the catalog helpers.
const QuitKey = "q"

// Builtin returns the catalog compiled in for the current platform.
func Builtin() *keymap.Node {
	return builtin()
}

// mode builds a named node and binds QuitKey to Quit unless the caller
// already bound it.
func mode(name string, bindings ...keymap.Binding) *keymap.Node {
	return keymap.MustNode(name, withQuit(bindings)...)
}

func withQuit(bindings []keymap.Binding) []keymap.Binding {
	for _, b := range bindings {
		if b.Key == QuitKey {
			return bindings
		}
	}
	return append(bindings, keymap.Bind(QuitKey, keymap.NewLeaf(keymap.Quit{})))
}

func launch(name, program string, args ...string) *keymap.Leaf {
	return keymap.NewLeaf(keymap.Launch{Name: name, Program: program, Args: args})
}

func launchNoQuit(name, program string, args ...string) *keymap.Leaf {
	return keymap.NewLeaf(keymap.LaunchNoQuit{Name: name, Program: program, Args: args})
}

func goToOrLaunch(workspace, probe, name, program string, args ...string) *keymap.Leaf {
	return keymap.NewLeaf(keymap.GoToOrLaunch{
		Workspace: workspace,
		Probe:     probe,
		Launch:    keymap.Launch{Name: name, Program: program, Args: args},
	})
}

// Count returns the number of entries below root.
func Count(root keymap.Entry) int {
	n := 0
	keymap.Walk(root, func(keymap.Path, keymap.Entry) bool {
		n++
		return true
	})
	return n
}
