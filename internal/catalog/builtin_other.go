//go:build !linux && !darwin && !windows

package catalog

import "github.com/atomicstack/single-mode-shortcuts/internal/keymap"

func builtin() *keymap.Node {
	return mode("")
}
