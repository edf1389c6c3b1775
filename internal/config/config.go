package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/single-mode-shortcuts/internal/app"
	"github.com/atomicstack/single-mode-shortcuts/internal/dispatch"
	"github.com/atomicstack/single-mode-shortcuts/internal/wm"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "SINGLE_MODE_SHORTCUTS_"

const (
	envInput     = envPrefix + "INPUT"
	envCatalog   = envPrefix + "CATALOG"
	envWM        = envPrefix + "WM"
	envSocket    = envPrefix + "SOCKET"
	envWMTimeout = envPrefix + "WM_TIMEOUT"
	envWidth     = envPrefix + "WIDTH"
	envHeight    = envPrefix + "HEIGHT"
	envFooter    = envPrefix + "FOOTER"
	envNotify    = envPrefix + "NOTIFY"
	envVerbose   = envPrefix + "VERBOSE"
	envTrace     = envPrefix + "TRACE"
	envLogFile   = envPrefix + "LOG_FILE"
)

// Flags holds the values bound to a flag set by Register.
type Flags struct {
	input     *string
	catalog   *string
	wm        *string
	socket    *string
	wmTimeout *time.Duration
	width     *int
	height    *int
	footer    *bool
	notify    *bool
	trace     *bool
	verbose   *bool
	logFile   *string
}

// Register defines every option on fs. Defaults come from environ so an
// explicit flag always wins over the environment.
func Register(fs *pflag.FlagSet, environ []string) *Flags {
	env := parseEnv(environ)
	return &Flags{
		input:     fs.StringP("input", "i", envOrDefault(env, envInput, ""), "initial input, rendered without running any action"),
		catalog:   fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML catalog (default: built-in catalog)"),
		wm:        fs.String("wm", envOrDefault(env, envWM, string(wm.DefaultKind())), "window manager backend: i3, sway, tmux or none"),
		socket:    fs.String("socket", envOrDefault(env, envSocket, ""), "path to the tmux socket for the tmux backend"),
		wmTimeout: fs.Duration("wm-timeout", envOrDuration(env, envWMTimeout, dispatch.DefaultTreeTimeout), "deadline for querying a workspace's windows"),
		width:     fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:    fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:    fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)"),
		notify:    fs.Bool("notify", envOrBool(env, envNotify, false), "raise a desktop notification when an action fails"),
		trace:     fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		verbose:   fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions"),
		logFile:   fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config assembles the parsed flag values. args is recorded for tracing.
func (f *Flags) Config(args []string) Config {
	return Config{
		App: app.Config{
			Seed:          *f.input,
			Catalog:       *f.catalog,
			WindowManager: *f.wm,
			SocketPath:    *f.socket,
			WMTimeout:     *f.wmTimeout,
			Width:         *f.width,
			Height:        *f.height,
			ShowFooter:    *f.footer,
			Verbose:       *f.verbose,
			Notify:        *f.notify,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"input":     *f.input,
			"catalog":   *f.catalog,
			"wm":        *f.wm,
			"socket":    *f.socket,
			"wmTimeout": f.wmTimeout.String(),
			"width":     strconv.Itoa(*f.width),
			"height":    strconv.Itoa(*f.height),
			"footer":    strconv.FormatBool(*f.footer),
			"notify":    strconv.FormatBool(*f.notify),
			"trace":     strconv.FormatBool(*f.trace),
			"verbose":   strconv.FormatBool(*f.verbose),
			"logFile":   *f.logFile,
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("single-mode-shortcuts", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := flags.Config(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects option combinations the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.WMTimeout <= 0 {
		return fmt.Errorf("wm-timeout must be > 0 (got %s)", cfg.App.WMTimeout)
	}
	if _, err := wm.ParseKind(cfg.App.WindowManager); err != nil {
		return err
	}
	return nil
}
