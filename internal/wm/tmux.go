package wm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// paneTreeFormat describes each pane of a tmux window on one line.
const paneTreeFormat = "#{pane_id}\t#{pane_current_command}\t#{pane_title}"

// Tmux treats tmux windows as workspaces. Tags are matched against the
// window ID, "session:index" or the window name.
type Tmux struct {
	SocketPath string
}

type tmuxClient interface {
	ListAllWindows() ([]*gotmux.Window, error)
	Close() error
}

type windowHandle interface {
	Select() error
}

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	newWindowHandle = func(w *gotmux.Window) windowHandle {
		if w == nil {
			return nil
		}
		return w
	}
)

func (t *Tmux) SwitchWorkspace(ctx context.Context, tag string) error {
	client, err := newTmux(t.SocketPath)
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	window, err := findWindow(client, tag)
	if err != nil {
		return err
	}
	// A window that does not exist yet has nothing to focus.
	if window == nil {
		return nil
	}
	return window.Select()
}

// WorkspaceTree lists the panes of tag. A missing window yields an empty
// tree.
func (t *Tmux) WorkspaceTree(ctx context.Context, tag string) (string, error) {
	args := append(baseArgs(t.SocketPath), "list-panes", "-t", tag, "-F", paneTreeFormat)
	out, err := runExecCommand(ctx, tmuxEnv(t.SocketPath), "tmux", args...).Output()
	if err != nil {
		if missingTarget(err) {
			return "", nil
		}
		return "", commandError("tmux list-panes", err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("tmux list-panes returned non-UTF-8 output")
	}
	return string(out), nil
}

// missingTarget reports whether tmux rejected a command because its -t
// target does not exist.
func missingTarget(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	return strings.Contains(string(exitErr.Stderr), "can't find")
}

// ResolveSocketPath picks the tmux socket from the flag value, the
// environment, or tmux's default location.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("SINGLE_MODE_SHORTCUTS_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func tmuxEnv(socketPath string) []string {
	trimmed := strings.TrimSpace(socketPath)
	if trimmed == "" {
		return nil
	}
	return []string{"TMUX_TMPDIR=" + filepath.Dir(trimmed)}
}

func findWindow(client tmuxClient, target string) (windowHandle, error) {
	windows, err := client.ListAllWindows()
	if err != nil {
		return nil, err
	}
	var byName *gotmux.Window
	for _, w := range windows {
		session := firstSession(w)
		candidates := []string{w.Id}
		if session != "" {
			candidates = append(candidates, fmt.Sprintf("%s:%d", session, w.Index))
		}
		for _, c := range candidates {
			if c == target {
				return newWindowHandle(w), nil
			}
		}
		if byName == nil && w.Name == target {
			byName = w
		}
	}
	if byName != nil {
		return newWindowHandle(byName), nil
	}
	return nil, nil
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return ""
}
