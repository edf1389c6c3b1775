package wm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/testutil"
)

func TestTmuxBackendAgainstServer(t *testing.T) {
	socket, cleanup := testutil.StartTmuxServer(t)
	defer cleanup()

	target := testutil.TestSession + ":mail"
	if err := testutil.TmuxCommand(socket, "new-window", "-d", "-t", testutil.TestSession, "-n", "mail", "sleep", "600").Run(); err != nil {
		t.Skipf("skipping: new-window failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	backend := &Tmux{SocketPath: socket}

	tree, err := backend.WorkspaceTree(ctx, target)
	if err != nil {
		t.Fatalf("WorkspaceTree: %v", err)
	}
	if !strings.Contains(tree, "sleep") {
		t.Fatalf("expected sleep pane in tree, got %q", tree)
	}

	if err := backend.SwitchWorkspace(ctx, "mail"); err != nil {
		t.Fatalf("SwitchWorkspace: %v", err)
	}
	out, err := testutil.TmuxCommand(socket, "display-message", "-p", "-t", testutil.TestSession, "#{window_name}").Output()
	if err != nil {
		t.Fatalf("display-message: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "mail" {
		t.Fatalf("expected active window mail, got %q", got)
	}

	tree, err = backend.WorkspaceTree(ctx, testutil.TestSession+":missing")
	if err != nil {
		t.Fatalf("expected missing window to yield an empty tree, got %v", err)
	}
	if tree != "" {
		t.Fatalf("expected empty tree for missing window, got %q", tree)
	}
}

func TestTmuxGoToOrLaunchSpawnsWhenWindowMissing(t *testing.T) {
	socket, cleanup := testutil.StartTmuxServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	spawner := &spawnRecorder{}
	executor := &dispatch.Executor{Spawner: spawner, WindowManager: &Tmux{SocketPath: socket}}
	outcome, err := executor.Execute(ctx, keymap.GoToOrLaunch{
		Workspace: "mail",
		Probe:     "chrome",
		Launch:    keymap.Launch{Name: "gmail", Program: "true"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != dispatch.Terminate {
		t.Fatalf("expected terminate, got %s", outcome)
	}
	if len(spawner.programs) != 1 || spawner.programs[0] != "true" {
		t.Fatalf("expected launch to be spawned, got %v", spawner.programs)
	}
}
