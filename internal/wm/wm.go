// Package wm talks to the window manager on behalf of GoToOrLaunch actions.
// Each backend offers two operations: a fire-and-forget workspace switch and a
// synchronous textual dump of one workspace's window tree.
package wm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// WindowManager is the collaborator used by the dispatcher.
type WindowManager interface {
	// SwitchWorkspace asks the window manager to focus the workspace tagged
	// tag. Implementations do not wait for the switch to take effect.
	SwitchWorkspace(ctx context.Context, tag string) error
	// WorkspaceTree returns a textual description of the windows in tag.
	WorkspaceTree(ctx context.Context, tag string) (string, error)
}

// Kind names a window-manager backend.
type Kind string

const (
	KindI3   Kind = "i3"
	KindSway Kind = "sway"
	KindTmux Kind = "tmux"
	KindNone Kind = "none"
)

// Kinds lists the supported backends.
func Kinds() []Kind {
	return []Kind{KindI3, KindSway, KindTmux, KindNone}
}

// DefaultKind picks a backend for the running platform.
func DefaultKind() Kind {
	if runtime.GOOS == "linux" {
		return KindI3
	}
	return KindNone
}

// ParseKind validates a backend name. Empty selects DefaultKind.
func ParseKind(value string) (Kind, error) {
	v := Kind(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return DefaultKind(), nil
	}
	for _, k := range Kinds() {
		if v == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown window manager %q", value)
}

// Options configures backend construction.
type Options struct {
	// SocketPath selects the tmux server; empty uses environment detection.
	SocketPath string
}

// New constructs the backend for kind.
func New(kind Kind, opts Options) (WindowManager, error) {
	switch kind {
	case KindI3:
		return I3{}, nil
	case KindSway:
		return Sway{}, nil
	case KindTmux:
		socket, err := ResolveSocketPath(opts.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
		return &Tmux{SocketPath: socket}, nil
	case KindNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown window manager %q", kind)
	}
}

// None is used where no window manager integration exists. Switching does
// nothing and every workspace appears empty, so GoToOrLaunch always launches.
type None struct{}

func (None) SwitchWorkspace(context.Context, string) error { return nil }

func (None) WorkspaceTree(context.Context, string) (string, error) { return "", nil }

type commander interface {
	Start() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Start() error {
	if err := r.cmd.Start(); err != nil {
		return err
	}
	go reap(r.cmd)
	return nil
}

// reap collects a started command's exit status in the background.
var reap = func(cmd *exec.Cmd) {
	_ = cmd.Wait()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var runExecCommand = func(ctx context.Context, env []string, name string, args ...string) commander {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	return realCommander{cmd: cmd}
}

func commandError(name string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%s failed: %w (stderr: %s)", name, err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return fmt.Errorf("%s failed: %w", name, err)
}
