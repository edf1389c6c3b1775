package dispatch

import (
	"context"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
)

// Result describes one handled keystroke.
type Result struct {
	// Input is the accumulated input the session should keep.
	Input string
	// Entry is what the candidate input resolved to; nil means no match.
	Entry keymap.Entry
	// Action is the action that fired, if any.
	Action keymap.Action
	// Outcome is Terminate when the session should end.
	Outcome Outcome
}

// Fired reports whether the keystroke executed an action.
func (r Result) Fired() bool {
	return r.Action != nil
}

// Actor executes actions. *Executor is the production implementation.
type Actor interface {
	Execute(ctx context.Context, a keymap.Action) (Outcome, error)
}

// Dispatcher turns keystrokes into resolutions and action executions.
type Dispatcher struct {
	root  keymap.Entry
	actor Actor
}

// New returns a dispatcher over root.
func New(root keymap.Entry, actor Actor) *Dispatcher {
	return &Dispatcher{root: root, actor: actor}
}

// Root returns the tree the dispatcher walks.
func (d *Dispatcher) Root() keymap.Entry {
	return d.root
}

// OnChange appends key to previous, resolves the result from the root, and
// runs the action when it lands on a leaf. The action executes before the
// retained input is decided. A LaunchNoQuit leaf resets the input to ""; every
// other case retains the candidate, including inputs that match nothing.
// A non-nil error is an action failure; the Result is still valid.
func (d *Dispatcher) OnChange(ctx context.Context, previous string, key rune) (Result, error) {
	candidate := previous + string(key)
	entry := keymap.Resolve(d.root, candidate)
	res := Result{Input: candidate, Entry: entry, Outcome: Continue}

	leaf, isLeaf := entry.(*keymap.Leaf)
	switch {
	case isLeaf:
		events.Input.Key(previous, string(key), events.ResolvedLeaf)
	case entry == nil:
		events.Input.Key(previous, string(key), events.ResolvedNone)
	default:
		events.Input.Key(previous, string(key), events.ResolvedNode)
	}
	if !isLeaf {
		return res, nil
	}

	return d.fire(ctx, res, leaf)
}

// Retry re-runs the action input already resolves to, as after a failed
// launch left the input on a leaf. Inputs that do not end on a leaf are
// returned unchanged without executing anything.
func (d *Dispatcher) Retry(ctx context.Context, input string) (Result, error) {
	entry := keymap.Resolve(d.root, input)
	res := Result{Input: input, Entry: entry, Outcome: Continue}
	leaf, ok := entry.(*keymap.Leaf)
	if !ok {
		return res, nil
	}
	return d.fire(ctx, res, leaf)
}

func (d *Dispatcher) fire(ctx context.Context, res Result, leaf *keymap.Leaf) (Result, error) {
	res.Action = leaf.Action
	outcome, err := d.actor.Execute(ctx, leaf.Action)
	res.Outcome = outcome
	if _, noQuit := leaf.Action.(keymap.LaunchNoQuit); noQuit {
		events.Input.Reset(res.Input)
		res.Input = ""
	}
	return res, err
}

// Type feeds keys one at a time starting from start, stopping early when an
// action terminates the session or fails.
func (d *Dispatcher) Type(ctx context.Context, start, keys string) (Result, error) {
	res := Result{Input: start, Entry: keymap.Resolve(d.root, start), Outcome: Continue}
	for _, r := range keys {
		next, err := d.OnChange(ctx, res.Input, r)
		res = next
		if err != nil || res.Outcome == Terminate {
			return res, err
		}
	}
	return res, nil
}
