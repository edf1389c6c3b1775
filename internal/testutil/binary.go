package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the launcher into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "single-mode-shortcuts")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = RepoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// WaitForText polls a pane until its contents include want.
func WaitForText(t *testing.T, ctx context.Context, socket, target, want string) string {
	t.Helper()
	last := ""
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for %q in pane %s: %v\nlast capture:\n%s", want, target, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			out, err := CapturePane(t, socket, target)
			if err != nil {
				if errors.Is(err, ErrPaneUnavailable) {
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			last = out
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// RepoRoot walks up from the working directory to the module root.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
