package spawn

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/single-mode-shortcuts/internal/logging/events"
)

// Spawner starts external programs without waiting for them.
type Spawner interface {
	Start(program string, args []string) error
}

// Process starts detached child processes.
type Process struct {
	// Dir is the working directory for children; empty inherits ours.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
}

var (
	lookPath = exec.LookPath

	startCommand = func(cmd *exec.Cmd) error {
		if err := cmd.Start(); err != nil {
			return err
		}
		go reap(cmd)
		return nil
	}

	// reap waits for a started child so it does not linger as a zombie.
	reap = func(cmd *exec.Cmd) {
		_ = cmd.Wait()
	}
)

// New returns a Spawner that inherits the launcher's environment.
func New() *Process {
	return &Process{}
}

// Start launches program with args and returns once the process exists. The
// child is placed in its own session so it survives the launcher exiting.
func (p *Process) Start(program string, args []string) error {
	program = strings.TrimSpace(program)
	if program == "" {
		return fmt.Errorf("empty program")
	}
	path, err := lookPath(program)
	if err != nil {
		return fmt.Errorf("%s: %w", program, err)
	}
	cmd := exec.Command(path, args...) //nolint:gosec
	cmd.Dir = p.Dir
	if len(p.Env) > 0 {
		cmd.Env = append(cmd.Environ(), p.Env...)
	}
	detach(cmd)
	events.Action.Spawn(program, args)
	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("start %s: %w", program, err)
	}
	return nil
}
