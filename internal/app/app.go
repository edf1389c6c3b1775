package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/catalog"
	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
	"github.com/atomicstack/single-mode-shortcuts/internal/notify"
	"github.com/atomicstack/single-mode-shortcuts/internal/spawn"
	"github.com/atomicstack/single-mode-shortcuts/internal/state"
	"github.com/atomicstack/single-mode-shortcuts/internal/ui"
	"github.com/atomicstack/single-mode-shortcuts/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
)

// BuiltinSource names the compiled-in catalog in traces and listings.
const BuiltinSource = "builtin"

// Config describes user-provided application options.
type Config struct {
	Seed          string
	Catalog       string
	WindowManager string
	SocketPath    string
	WMTimeout     time.Duration
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Notify        bool
}

var (
	newSpawner       = func() dispatch.Spawner { return spawn.New() }
	newWindowManager = wm.New
	runProgram       = func(model tea.Model) (tea.Model, error) {
		return tea.NewProgram(model, tea.WithAltScreen()).Run()
	}
)

// LoadCatalog returns the catalog at path, or the built-in catalog when path
// is empty.
func LoadCatalog(path string) (*keymap.Node, error) {
	source := path
	var (
		root *keymap.Node
		err  error
	)
	if path == "" {
		source = BuiltinSource
		root = catalog.Builtin()
	} else {
		root, err = catalog.Load(path)
	}
	if err != nil {
		events.Catalog.Error(source, err)
		return nil, err
	}
	events.Catalog.Loaded(source, catalog.Count(root))
	return root, nil
}

// NewDispatcher wires the catalog at cfg.Catalog to a real spawner and the
// configured window manager.
func NewDispatcher(cfg Config) (*dispatch.Dispatcher, error) {
	root, err := LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	kind, err := wm.ParseKind(cfg.WindowManager)
	if err != nil {
		return nil, err
	}
	manager, err := newWindowManager(kind, wm.Options{SocketPath: cfg.SocketPath})
	if err != nil {
		return nil, fmt.Errorf("window manager %s: %w", kind, err)
	}
	executor := &dispatch.Executor{
		Spawner:       newSpawner(),
		WindowManager: manager,
		TreeTimeout:   cfg.WMTimeout,
	}
	return dispatch.New(root, executor), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	d, err := NewDispatcher(cfg)
	if err != nil {
		return err
	}
	session := state.NewSessionStore(d.Root())
	if cfg.Seed != "" {
		session.Seed(cfg.Seed)
	}
	model := ui.NewModel(ctx, session, d, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Notifier:   notify.New(cfg.Notify),
	})
	_, err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Exec types keys into a fresh session without a terminal, starting from
// cfg.Seed. It stops at the first terminating action or failure.
func Exec(ctx context.Context, cfg Config, keys string) (dispatch.Result, error) {
	d, err := NewDispatcher(cfg)
	if err != nil {
		return dispatch.Result{}, err
	}
	res, err := d.Type(ctx, cfg.Seed, keys)
	if err != nil {
		notify.New(cfg.Notify).Failure(actionLabel(res.Action), err)
	}
	return res, err
}

func actionLabel(a keymap.Action) string {
	if a == nil {
		return ""
	}
	return a.Label()
}
