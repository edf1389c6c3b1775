package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
)

// Outcome tells the event loop what to do after an action ran.
type Outcome int

const (
	// Continue keeps the session alive.
	Continue Outcome = iota
	// Terminate asks the event loop to end the session.
	Terminate
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Terminate:
		return "terminate"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

var (
	// ErrSpawn marks failures to start an external program.
	ErrSpawn = errors.New("spawn failed")
	// ErrWindowManager marks failures to switch or inspect a workspace.
	ErrWindowManager = errors.New("window manager query failed")
)

// DefaultTreeTimeout bounds the workspace-tree query.
const DefaultTreeTimeout = 2 * time.Second

// Spawner starts a program without waiting for it.
type Spawner interface {
	Start(program string, args []string) error
}

// WindowManager switches workspaces and describes their contents.
type WindowManager interface {
	SwitchWorkspace(ctx context.Context, tag string) error
	WorkspaceTree(ctx context.Context, tag string) (string, error)
}

// Executor performs actions against its collaborators.
type Executor struct {
	Spawner       Spawner
	WindowManager WindowManager
	// TreeTimeout bounds WorkspaceTree; zero uses DefaultTreeTimeout.
	TreeTimeout time.Duration
}

// Execute runs a synchronously. Successful Launch, GoToOrLaunch and Quit
// return Terminate; LaunchNoQuit returns Continue. Any error returns Continue
// so the user can keep typing.
func (e *Executor) Execute(ctx context.Context, a keymap.Action) (Outcome, error) {
	outcome, err := e.execute(ctx, a)
	if err != nil {
		events.Action.Error(err)
		return Continue, err
	}
	events.Action.Success(keymap.Kind(a), a.Label())
	return outcome, nil
}

func (e *Executor) execute(ctx context.Context, a keymap.Action) (Outcome, error) {
	switch act := a.(type) {
	case keymap.Launch:
		if err := e.spawn(act.Program, act.Args); err != nil {
			return Continue, err
		}
		return Terminate, nil
	case keymap.LaunchNoQuit:
		if err := e.spawn(act.Program, act.Args); err != nil {
			return Continue, err
		}
		return Continue, nil
	case keymap.GoToOrLaunch:
		if err := e.goToOrLaunch(ctx, act); err != nil {
			return Continue, err
		}
		return Terminate, nil
	case keymap.Quit:
		events.Action.Quit()
		return Terminate, nil
	case nil:
		return Continue, errors.New("nil action")
	default:
		panic(fmt.Sprintf("dispatch: unhandled action %T", a))
	}
}

func (e *Executor) spawn(program string, args []string) error {
	if e.Spawner == nil {
		return fmt.Errorf("%w: no spawner configured", ErrSpawn)
	}
	if err := e.Spawner.Start(program, args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawn, program, err)
	}
	return nil
}

func (e *Executor) goToOrLaunch(ctx context.Context, act keymap.GoToOrLaunch) error {
	if e.WindowManager == nil {
		return fmt.Errorf("%w: no window manager configured", ErrWindowManager)
	}
	events.Action.Switch(act.Workspace)
	if err := e.WindowManager.SwitchWorkspace(ctx, act.Workspace); err != nil {
		return fmt.Errorf("%w: switch to %q: %w", ErrWindowManager, act.Workspace, err)
	}

	timeout := e.TreeTimeout
	if timeout <= 0 {
		timeout = DefaultTreeTimeout
	}
	treeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	tree, err := e.WindowManager.WorkspaceTree(treeCtx, act.Workspace)
	if err != nil {
		return fmt.Errorf("%w: inspect %q: %w", ErrWindowManager, act.Workspace, err)
	}

	found := strings.Contains(tree, act.Probe)
	events.Action.Probe(act.Workspace, act.Probe, found)
	if found {
		return nil
	}
	return e.spawn(act.Launch.Program, act.Launch.Args)
}
