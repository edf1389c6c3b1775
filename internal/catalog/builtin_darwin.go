//go:build darwin

package catalog

import "github.com/atomicstack/single-mode-shortcuts/internal/keymap"

func builtin() *keymap.Node {
	apps := mode("apps",
		keymap.Bind("c", launch("chrome", "open", "-a", "Google Chrome")),
		keymap.Bind("f", launch("finder", "open", "-a", "Finder")),
		keymap.Bind("t", launch("terminal", "open", "-a", "Terminal")),
	)
	return mode("",
		keymap.Bind("a", apps),
	)
}
