package keymap

import "fmt"

// Action describes one executable effect attached to a leaf. The set of
// implementations is closed: Launch, LaunchNoQuit, GoToOrLaunch and Quit.
type Action interface {
	// Label is the short display name shown next to the key.
	Label() string
	action()
}

// Launch spawns Program with Args and then ends the session.
type Launch struct {
	Name    string
	Program string
	Args    []string
}

// LaunchNoQuit spawns Program with Args and keeps the session running with an
// empty input.
type LaunchNoQuit struct {
	Name    string
	Program string
	Args    []string
}

// GoToOrLaunch switches to Workspace and spawns Launch only when Probe does
// not occur in the workspace's window tree.
type GoToOrLaunch struct {
	Workspace string
	Probe     string
	Launch    Launch
}

// Quit ends the session without spawning anything.
type Quit struct{}

func (a Launch) Label() string       { return a.Name }
func (a LaunchNoQuit) Label() string { return a.Name }
func (a GoToOrLaunch) Label() string { return a.Launch.Name }
func (Quit) Label() string           { return "quit" }

func (Launch) action()       {}
func (LaunchNoQuit) action() {}
func (GoToOrLaunch) action() {}
func (Quit) action()         {}

// Kind returns a stable identifier for the action variant, used in traces and
// catalog listings.
func Kind(a Action) string {
	switch a.(type) {
	case Launch:
		return "launch"
	case LaunchNoQuit:
		return "launch_no_quit"
	case GoToOrLaunch:
		return "goto"
	case Quit:
		return "quit"
	default:
		panic(fmt.Sprintf("keymap: unhandled action %T", a))
	}
}

// Command returns the program and arguments an action would spawn. Quit
// reports ok=false.
func Command(a Action) (program string, args []string, ok bool) {
	switch act := a.(type) {
	case Launch:
		return act.Program, act.Args, true
	case LaunchNoQuit:
		return act.Program, act.Args, true
	case GoToOrLaunch:
		return act.Launch.Program, act.Launch.Args, true
	case Quit:
		return "", nil, false
	default:
		panic(fmt.Sprintf("keymap: unhandled action %T", a))
	}
}
