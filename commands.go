package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/single-mode-shortcuts/internal/app"
	"github.com/atomicstack/single-mode-shortcuts/internal/catalog"
	"github.com/atomicstack/single-mode-shortcuts/internal/config"
	"github.com/atomicstack/single-mode-shortcuts/internal/format/table"
	"github.com/atomicstack/single-mode-shortcuts/internal/keymap"
	"github.com/spf13/cobra"
)

func newRootCmd(args, environ []string) *cobra.Command {
	var cfg config.Config
	root := &cobra.Command{
		Use:           "single-mode-shortcuts",
		Short:         "Launch programs with short single-key sequences",
		Long:          "Type keys one at a time to walk a tree of modes; a key that lands on an action runs it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), cfg.App)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &codedError{code: exitConfig, err: err}
	})
	flags := config.Register(root.PersistentFlags(), environ)
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfg = flags.Config(args)
		return configure(cfg)
	}

	root.AddCommand(
		newListCmd(&cfg),
		newFindCmd(&cfg),
		newCheckCmd(&cfg),
		newExecCmd(&cfg),
		newVersionCmd(),
	)
	return root
}

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every key sequence in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := app.LoadCatalog(cfg.App.Catalog)
			if err != nil {
				return err
			}
			writeMatches(cmd.OutOrStdout(), catalog.Leaves(root))
			return nil
		},
	}
}

func newFindCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search the catalog for an action",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := app.LoadCatalog(cfg.App.Catalog)
			if err != nil {
				return err
			}
			matches := catalog.Find(root, strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			writeMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the catalog and report construction errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := app.LoadCatalog(cfg.App.Catalog)
			if err != nil {
				return &codedError{code: exitConfig, err: err}
			}
			source := cfg.App.Catalog
			if source == "" {
				source = app.BuiltinSource
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d entries)\n", source, catalog.Count(root))
			return nil
		},
	}
}

func newExecCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <keys>",
		Short: "Type keys without a terminal and run what they select",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Exec(cmd.Context(), cfg.App, args[0])
			if err != nil {
				return err
			}
			action := "-"
			if res.Fired() {
				action = keymap.Kind(res.Action) + " " + res.Action.Label()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "input=%q action=%s outcome=%s\n", res.Input, action, res.Outcome)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "single-mode-shortcuts version %s\n", version)
		},
	}
}

func writeMatches(w io.Writer, matches []catalog.Match) {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{m.DisplayKeys(), m.PathString(), m.Kind})
	}
	for _, line := range table.Format(rows, nil) {
		fmt.Fprintln(w, line)
	}
}
