//go:build linux

package catalog

import (
	"testing"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxCatalogScenarios(t *testing.T) {
	root := Builtin()

	apps, ok := keymap.Resolve(root, "a").(*keymap.Node)
	require.True(t, ok)
	assert.Equal(t, "apps", apps.Name)

	leaf, ok := keymap.Resolve(root, "ac").(*keymap.Leaf)
	require.True(t, ok)
	assert.Equal(t, keymap.Launch{Name: "chrome", Program: chrome}, leaf.Action)

	leaf, ok = keymap.Resolve(root, "fbk").(*keymap.Leaf)
	require.True(t, ok)
	assert.IsType(t, keymap.LaunchNoQuit{}, leaf.Action)

	leaf, ok = keymap.Resolve(root, "gg").(*keymap.Leaf)
	require.True(t, ok)
	goTo, ok := leaf.Action.(keymap.GoToOrLaunch)
	require.True(t, ok)
	assert.Equal(t, "mail", goTo.Workspace)

	leaf, ok = keymap.Resolve(root, " ").(*keymap.Leaf)
	require.True(t, ok)
	assert.Equal(t, "rofi", leaf.Label())
}
