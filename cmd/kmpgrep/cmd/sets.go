package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corey/kmpgrep/internal/adapters/bbolt"
	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/domain/kmp"
	"github.com/corey/kmpgrep/internal/domain/search"
	"github.com/corey/kmpgrep/internal/ports"
	"github.com/spf13/cobra"
)

func newSetsCmd(opts *config.Options) *cobra.Command {
	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage saved pattern sets",
		Long:  "Saves named batches of patterns for reuse with 'kmpgrep search --set NAME'.",
	}

	setsCmd.AddCommand(&cobra.Command{
		Use:   "save <name> <pattern> [pattern ...]",
		Short: "Save (or replace) a pattern set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, patterns := args[0], args[1:]
			for _, p := range patterns {
				if p == "" {
					return fmt.Errorf("set %q: %w", name, kmp.ErrEmptyPattern)
				}
			}
			list := search.Many(patterns...).List()
			return withStore(opts, func(s ports.PatternStore) error {
				if err := s.SaveSet(name, list); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d patterns)\n", name, len(list))
				return nil
			})
		},
	})

	setsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved pattern sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s ports.PatternStore) error {
				names, err := s.ListSets()
				if err != nil {
					return err
				}
				if len(names) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no saved sets")
					return nil
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	})

	setsCmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print the patterns of a saved set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s ports.PatternStore) error {
				patterns, err := s.LoadSet(args[0])
				if errors.Is(err, ports.ErrSetNotFound) {
					return fmt.Errorf("no set named %q", args[0])
				}
				if err != nil {
					return err
				}
				quoted := make([]string, len(patterns))
				for i, p := range patterns {
					quoted[i] = "'" + p + "'"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], strings.Join(quoted, ", "))
				return nil
			})
		},
	})

	setsCmd.AddCommand(&cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a saved pattern set",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(s ports.PatternStore) error {
				if err := s.DeleteSet(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})

	return setsCmd
}

// withStore opens the pattern-set database for the duration of fn.
func withStore(opts *config.Options, fn func(ports.PatternStore) error) error {
	store, err := bbolt.NewStore(opts.DBPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.DBPath, err)
	}
	defer store.Close()
	return fn(store)
}
