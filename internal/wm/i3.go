package wm

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// I3 drives i3 through i3-msg and i3-save-tree.
type I3 struct{}

func (I3) SwitchWorkspace(ctx context.Context, tag string) error {
	cmd := runExecCommand(context.WithoutCancel(ctx), nil, "i3-msg", "workspace "+tag)
	if err := cmd.Start(); err != nil {
		return commandError("i3-msg", err)
	}
	return nil
}

func (I3) WorkspaceTree(ctx context.Context, tag string) (string, error) {
	out, err := runExecCommand(ctx, nil, "i3-save-tree", "--workspace", tag).Output()
	if err != nil {
		return "", commandError("i3-save-tree", err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("i3-save-tree returned non-UTF-8 output")
	}
	return string(out), nil
}
