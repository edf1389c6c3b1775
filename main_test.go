package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/app"
	"github.com/atomicstack/single-mode-shortcuts/internal/config"
	"github.com/atomicstack/single-mode-shortcuts/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Catalog:       "catalog.yaml",
			WindowManager: "sway",
			WMTimeout:     time.Second,
			Width:         80,
			Height:        24,
			ShowFooter:    true,
			Verbose:       true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"catalog": "catalog.yaml",
			"wm":      "sway",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--wm", "sway"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["wm"] != "sway" {
		t.Fatalf("expected wm flag %q, got %v", "sway", flagsValue["wm"])
	}
	if flagsValue["catalog"] != "catalog.yaml" {
		t.Fatalf("expected catalog flag, got %v", flagsValue["catalog"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

const cliCatalog = `
quit_key: true
children:
  a:
    name: apps
    children:
      c: {launch: {name: chrome, program: google-chrome-stable}}
  " ": {launch: {name: rofi, program: rofi}}
`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(catalogPath, []byte(cliCatalog), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	full := append([]string{"--catalog", catalogPath, "--wm", "none", "--log-file", filepath.Join(dir, "cli.log")}, args...)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), full, nil, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestListPrintsKeySequences(t *testing.T) {
	code, out, errOut := runCLI(t, "list")
	if code != exitOK {
		t.Fatalf("expected success, got %d: %s", code, errOut)
	}
	for _, want := range []string{"<space>", "rofi", "ac", "apps/chrome", "launch", "aq", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output:\n%s", want, out)
		}
	}
}

func TestFindPrintsMatches(t *testing.T) {
	code, out, _ := runCLI(t, "find", "chrm")
	if code != exitOK || !strings.Contains(out, "apps/chrome") || strings.Contains(out, "rofi") {
		t.Fatalf("unexpected find result %d:\n%s", code, out)
	}
	code, out, _ = runCLI(t, "find", "zzzz")
	if code != exitOK || !strings.Contains(out, "no matches") {
		t.Fatalf("unexpected empty find result %d:\n%s", code, out)
	}
}

func TestCheckReportsEntries(t *testing.T) {
	code, out, _ := runCLI(t, "check")
	if code != exitOK || !strings.Contains(out, "ok (5 entries)") {
		t.Fatalf("unexpected check result %d:\n%s", code, out)
	}
}

func TestCheckFailsOnDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("children:\n  a: {quit: true}\n  a: {quit: true}\n"), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	code, _, errOut := runCLI(t, "check", "--catalog", bad)
	if code != exitConfig {
		t.Fatalf("expected exit %d, got %d (%s)", exitConfig, code, errOut)
	}
}

func TestExecQuitRunsNothing(t *testing.T) {
	code, out, errOut := runCLI(t, "exec", "aq")
	if code != exitOK {
		t.Fatalf("expected success, got %d: %s", code, errOut)
	}
	if !strings.Contains(out, `input="aq"`) || !strings.Contains(out, "outcome=terminate") {
		t.Fatalf("unexpected exec output %q", out)
	}
}

func TestExecNavigationOnly(t *testing.T) {
	code, out, _ := runCLI(t, "exec", "a")
	if code != exitOK || !strings.Contains(out, "action=-") || !strings.Contains(out, "outcome=continue") {
		t.Fatalf("unexpected exec output %d %q", code, out)
	}
}

func TestInvalidConfigurationExitsWithConfigCode(t *testing.T) {
	code, _, errOut := runCLI(t, "version", "--width", "-3")
	if code != exitConfig || !strings.Contains(errOut, "Configuration error") {
		t.Fatalf("expected configuration error, got %d %q", code, errOut)
	}
	code, _, _ = runCLI(t, "--no-such-flag")
	if code != exitConfig {
		t.Fatalf("expected flag error exit %d, got %d", exitConfig, code)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	if code != exitOK || !strings.Contains(out, "version "+version) {
		t.Fatalf("unexpected version output %d %q", code, out)
	}
}
