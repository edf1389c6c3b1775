package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging"
	"github.com/atomicstack/single-mode-shortcuts/internal/ui"
	"github.com/atomicstack/single-mode-shortcuts/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

const testCatalog = `
quit_key: true
children:
  a:
    name: apps
    children:
      c: {launch: {name: chrome, program: google-chrome-stable}}
  g:
    name: go to
    children:
      g:
        goto:
          workspace: mail
          probe: mail.google.com
          launch: {name: gmail, program: google-chrome-stable, args: ["--app=https://mail.google.com"]}
  k: {launch_no_quit: {name: louder, program: pactl}}
`

type fakeSpawner struct {
	started []string
	err     error
}

func (f *fakeSpawner) Start(program string, _ []string) error {
	f.started = append(f.started, program)
	return f.err
}

type fakeWM struct {
	switched []string
	tree     string
}

func (f *fakeWM) SwitchWorkspace(_ context.Context, tag string) error {
	f.switched = append(f.switched, tag)
	return nil
}

func (f *fakeWM) WorkspaceTree(context.Context, string) (string, error) {
	return f.tree, nil
}

func stubCollaborators(t *testing.T) (*fakeSpawner, *fakeWM, string) {
	t.Helper()
	dir := t.TempDir()
	logging.Configure(filepath.Join(dir, "app.log"))

	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	sp := &fakeSpawner{}
	manager := &fakeWM{}
	origSpawner, origWM, origRun := newSpawner, newWindowManager, runProgram
	newSpawner = func() dispatch.Spawner { return sp }
	newWindowManager = func(kind wm.Kind, _ wm.Options) (wm.WindowManager, error) {
		return manager, nil
	}
	t.Cleanup(func() {
		newSpawner, newWindowManager, runProgram = origSpawner, origWM, origRun
		logging.Configure("")
	})
	return sp, manager, path
}

func TestExecLaunchTerminates(t *testing.T) {
	sp, _, path := stubCollaborators(t)
	res, err := Exec(context.Background(), Config{Catalog: path, WindowManager: "none"}, "ac")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != dispatch.Terminate || res.Input != "ac" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sp.started) != 1 || sp.started[0] != "google-chrome-stable" {
		t.Fatalf("unexpected spawns %v", sp.started)
	}
}

func TestExecGoToOrLaunchSkipsSpawnWhenPresent(t *testing.T) {
	sp, manager, path := stubCollaborators(t)
	manager.tree = `{"instance": "mail.google.com"}`
	res, err := Exec(context.Background(), Config{Catalog: path, WindowManager: "i3"}, "gg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != dispatch.Terminate {
		t.Fatalf("expected terminate, got %s", res.Outcome)
	}
	if len(manager.switched) != 1 || manager.switched[0] != "mail" || len(sp.started) != 0 {
		t.Fatalf("unexpected calls switched=%v started=%v", manager.switched, sp.started)
	}
}

func TestExecFromSeedAndFailure(t *testing.T) {
	sp, _, path := stubCollaborators(t)
	sp.err = errors.New("missing binary")
	res, err := Exec(context.Background(), Config{Catalog: path, WindowManager: "none", Seed: "a"}, "c")
	if !errors.Is(err, dispatch.ErrSpawn) {
		t.Fatalf("expected spawn error, got %v", err)
	}
	if res.Outcome != dispatch.Continue || res.Input != "ac" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestNewDispatcherRejectsUnknownBackend(t *testing.T) {
	_, _, path := stubCollaborators(t)
	if _, err := NewDispatcher(Config{Catalog: path, WindowManager: "xmonad"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadCatalogBuiltinAndMissing(t *testing.T) {
	stubCollaborators(t)
	root, err := LoadCatalog("")
	if err != nil || root == nil {
		t.Fatalf("expected builtin catalog, got %v", err)
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestRunSeedsSessionAndRunsProgram(t *testing.T) {
	_, _, path := stubCollaborators(t)
	var got *ui.Model
	runProgram = func(model tea.Model) (tea.Model, error) {
		got = model.(*ui.Model)
		return model, tea.ErrProgramKilled
	}
	if err := Run(context.Background(), Config{Catalog: path, WindowManager: "none", Seed: "a"}); err != nil {
		t.Fatalf("expected killed program to be treated as success, got %v", err)
	}
	if got == nil || got.Input() != "a" {
		t.Fatalf("expected seeded model")
	}
}
