package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned when a catalog entry does not declare exactly
// one of children, launch, launch_no_quit, goto or quit.
var ErrInvalidEntry = errors.New("catalog entry must declare exactly one kind")

// ErrMissingProgram is returned when a launching entry names no program.
var ErrMissingProgram = errors.New("catalog entry has no program")

type document struct {
	Name     string               `yaml:"name"`
	QuitKey  bool                 `yaml:"quit_key"`
	Children map[string]fileEntry `yaml:"children"`
}

type fileEntry struct {
	Name         string               `yaml:"name"`
	Children     map[string]fileEntry `yaml:"children"`
	Launch       *fileCommand         `yaml:"launch"`
	LaunchNoQuit *fileCommand         `yaml:"launch_no_quit"`
	GoTo         *fileGoTo            `yaml:"goto"`
	Quit         bool                 `yaml:"quit"`
}

type fileCommand struct {
	Name    string   `yaml:"name"`
	Program string   `yaml:"program"`
	Args    []string `yaml:"args"`
}

type fileGoTo struct {
	Workspace string      `yaml:"workspace"`
	Probe     string      `yaml:"probe"`
	Launch    fileCommand `yaml:"launch"`
}

// Load reads a YAML catalog from path. A leading ~ is expanded.
func Load(path string) (*keymap.Node, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand catalog path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return root, nil
}

// Parse builds a keymap tree from a YAML catalog document.
func Parse(data []byte) (*keymap.Node, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return buildNode(doc.Name, nil, doc.QuitKey, "")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return buildNode(doc.Name, doc.Children, doc.QuitKey, "")
}

func buildNode(name string, children map[string]fileEntry, quitKey bool, at string) (*keymap.Node, error) {
	keys := make([]string, 0, len(children))
	for key := range children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bindings := make([]keymap.Binding, 0, len(keys)+1)
	for _, key := range keys {
		entry, err := buildEntry(children[key], quitKey, at+key)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, keymap.Bind(key, entry))
	}
	if quitKey {
		bindings = withQuit(bindings)
	}
	node, err := keymap.NewNode(name, bindings...)
	if err != nil {
		return nil, fmt.Errorf("at %q: %w", at, err)
	}
	return node, nil
}

func buildEntry(e fileEntry, quitKey bool, at string) (keymap.Entry, error) {
	kinds := 0
	if e.Children != nil {
		kinds++
	}
	if e.Launch != nil {
		kinds++
	}
	if e.LaunchNoQuit != nil {
		kinds++
	}
	if e.GoTo != nil {
		kinds++
	}
	if e.Quit {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("at %q: %w (found %d)", at, ErrInvalidEntry, kinds)
	}

	switch {
	case e.Children != nil:
		return buildNode(e.Name, e.Children, quitKey, at)
	case e.Launch != nil:
		cmd, err := e.Launch.command(at)
		if err != nil {
			return nil, err
		}
		return keymap.NewLeaf(cmd), nil
	case e.LaunchNoQuit != nil:
		cmd, err := e.LaunchNoQuit.command(at)
		if err != nil {
			return nil, err
		}
		return keymap.NewLeaf(keymap.LaunchNoQuit(cmd)), nil
	case e.GoTo != nil:
		cmd, err := e.GoTo.Launch.command(at)
		if err != nil {
			return nil, err
		}
		return keymap.NewLeaf(keymap.GoToOrLaunch{
			Workspace: e.GoTo.Workspace,
			Probe:     e.GoTo.Probe,
			Launch:    cmd,
		}), nil
	default:
		return keymap.NewLeaf(keymap.Quit{}), nil
	}
}

func (c fileCommand) command(at string) (keymap.Launch, error) {
	if c.Program == "" {
		return keymap.Launch{}, fmt.Errorf("at %q: %w", at, ErrMissingProgram)
	}
	return keymap.Launch{Name: c.Name, Program: c.Program, Args: c.Args}, nil
}
