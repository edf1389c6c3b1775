package wm

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// Sway drives sway through swaymsg. The workspace tree is the raw JSON of
// the matching workspace node from get_tree.
type Sway struct{}

func (Sway) SwitchWorkspace(ctx context.Context, tag string) error {
	cmd := runExecCommand(context.WithoutCancel(ctx), nil, "swaymsg", "workspace "+tag)
	if err := cmd.Start(); err != nil {
		return commandError("swaymsg", err)
	}
	return nil
}

func (Sway) WorkspaceTree(ctx context.Context, tag string) (string, error) {
	out, err := runExecCommand(ctx, nil, "swaymsg", "-t", "get_tree", "-r").Output()
	if err != nil {
		return "", commandError("swaymsg", err)
	}
	if !gjson.ValidBytes(out) {
		return "", fmt.Errorf("swaymsg returned invalid JSON")
	}
	return findSwayWorkspace(gjson.ParseBytes(out), tag), nil
}

// findSwayWorkspace searches the tree for a workspace node named tag and
// returns its JSON. A missing workspace yields an empty tree.
func findSwayWorkspace(node gjson.Result, tag string) string {
	if node.Get("type").String() == "workspace" && node.Get("name").String() == tag {
		return node.Raw
	}
	found := ""
	node.Get("nodes").ForEach(func(_, child gjson.Result) bool {
		found = findSwayWorkspace(child, tag)
		return found == ""
	})
	return found
}
