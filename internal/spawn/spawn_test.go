package spawn

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func stubSpawn(t *testing.T, look func(string) (string, error), start func(*exec.Cmd) error) {
	t.Helper()
	prevLook := lookPath
	prevStart := startCommand
	lookPath = look
	startCommand = start
	t.Cleanup(func() {
		lookPath = prevLook
		startCommand = prevStart
	})
}

func TestStartPassesResolvedPathAndArgs(t *testing.T) {
	var got *exec.Cmd
	stubSpawn(t,
		func(name string) (string, error) { return filepath.Join("/usr/bin", name), nil },
		func(cmd *exec.Cmd) error {
			got = cmd
			return nil
		},
	)
	p := &Process{Dir: "/tmp", Env: []string{"FOO=bar"}}
	if err := p.Start("xbacklight", []string{"-inc", "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected command to be started")
	}
	if got.Path != "/usr/bin/xbacklight" {
		t.Fatalf("expected resolved path, got %q", got.Path)
	}
	want := []string{"/usr/bin/xbacklight", "-inc", "1"}
	if len(got.Args) != len(want) {
		t.Fatalf("expected args %v, got %v", want, got.Args)
	}
	for i := range want {
		if got.Args[i] != want[i] {
			t.Fatalf("expected args %v, got %v", want, got.Args)
		}
	}
	if got.Dir != "/tmp" {
		t.Fatalf("expected dir /tmp, got %q", got.Dir)
	}
	if got.SysProcAttr == nil {
		t.Fatalf("expected child to be detached")
	}
	found := false
	for _, kv := range got.Env {
		if kv == "FOO=bar" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected FOO=bar in env")
	}
}

func TestStartMissingBinary(t *testing.T) {
	started := false
	stubSpawn(t,
		func(string) (string, error) { return "", exec.ErrNotFound },
		func(*exec.Cmd) error {
			started = true
			return nil
		},
	)
	err := New().Start("does-not-exist", nil)
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if started {
		t.Fatalf("expected no start when lookup fails")
	}
}

func TestStartPropagatesStartError(t *testing.T) {
	boom := errors.New("permission denied")
	stubSpawn(t,
		func(name string) (string, error) { return name, nil },
		func(*exec.Cmd) error { return boom },
	)
	if err := New().Start("thunar", nil); !errors.Is(err, boom) {
		t.Fatalf("expected start error, got %v", err)
	}
}

func TestStartRejectsEmptyProgram(t *testing.T) {
	if err := New().Start("  ", nil); err == nil {
		t.Fatalf("expected error for empty program")
	}
}

func TestStartReapsChild(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	done := make(chan *os.ProcessState, 1)
	prev := reap
	reap = func(cmd *exec.Cmd) {
		prev(cmd)
		done <- cmd.ProcessState
	}
	t.Cleanup(func() { reap = prev })

	if err := New().Start("true", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case state := <-done:
		if state == nil || !state.Exited() {
			t.Fatalf("expected child to be reaped, got %v", state)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for child to be reaped")
	}
}
