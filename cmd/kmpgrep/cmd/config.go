package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corey/kmpgrep/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *config.Options) *cobra.Command {
	var asJSON bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long:  "Shows defaults after " + config.EnvPrefix + "* overrides and root flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), *opts, asJSON)
		},
	}
	configCmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return configCmd
}

func runConfig(out io.Writer, opts config.Options, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}

	useColor := isTerminal(out)
	fmt.Fprintln(out, paint(useColor, colorBold, "kmpgrep config"))
	fmt.Fprintf(out, "  Method:     %s\n", opts.Method)
	fmt.Fprintf(out, "  Count:      %d\n", opts.Count)
	fmt.Fprintf(out, "  Color:      %s\n", opts.Color)
	fmt.Fprintf(out, "  Max lines:  %d\n", opts.MaxLines)
	fmt.Fprintf(out, "  Highlight:  %t\n", opts.Highlight)
	fmt.Fprintf(out, "  Workers:    %d\n", opts.Workers)
	fmt.Fprintf(out, "  DB:         %s\n", opts.DBPath)
	fmt.Fprintf(out, "  Log level:  %s\n", opts.LogLevel)
	return nil
}
