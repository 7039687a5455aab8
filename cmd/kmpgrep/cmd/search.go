package cmd

import (
	"fmt"

	"github.com/corey/kmpgrep/internal/adapters/ahocorasick"
	"github.com/corey/kmpgrep/internal/adapters/bbolt"
	"github.com/corey/kmpgrep/internal/app"
	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/logger"
	"github.com/spf13/cobra"
)

// searchFlags holds flag values that need post-processing before they land
// in config.Options.
type searchFlags struct {
	patterns []string
	noColor  bool
}

func newSearchCmd(opts *config.Options) *cobra.Command {
	sf := &searchFlags{}
	searchCmd := &cobra.Command{
		Use:   "search [flags] <pattern> [pattern ...]",
		Short: "Find pattern occurrences in a text, file, or stdin",
		Long: "Searches --text, --file, or piped stdin for every pattern given as an argument or with -e.\n" +
			"With --method last, positions are the RIGHTMOST index of each match window.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.apply(opts, args)
			return runSearch(cmd, *opts)
		},
	}
	addSearchFlags(searchCmd, opts, sf)
	return searchCmd
}

// addSearchFlags registers the flags shared by search and watch.
func addSearchFlags(c *cobra.Command, opts *config.Options, sf *searchFlags) {
	f := c.Flags()
	f.StringVarP(&opts.Text, "text", "s", "", "Text to search")
	f.StringVarP(&opts.File, "file", "f", "", "File to search (read whole into memory)")
	f.StringArrayVarP(&sf.patterns, "pattern", "e", nil, "Pattern to search for (repeatable)")
	f.StringVar(&opts.Set, "set", "", "Also search the patterns of a saved set")
	f.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Case insensitive")
	f.StringVarP(&opts.Method, "method", "m", opts.Method, "Search direction: first or last")
	f.IntVarP(&opts.Count, "count", "n", opts.Count, "Matches per pattern (0 or negative = all)")
	f.BoolVar(&opts.Bytes, "bytes", false, "Match raw bytes; positions are byte offsets")
	f.StringVar(&opts.Color, "color", opts.Color, "Color output: auto, always, never")
	f.BoolVar(&sf.noColor, "no-color", false, "Suppress color output")
	f.IntVar(&opts.MaxLines, "max-lines", opts.MaxLines, "Lines of text in the highlighted preview (0 = all)")
	f.BoolVar(&opts.Highlight, "highlight", opts.Highlight, "Print the highlighted preview")
	f.BoolVar(&opts.JSON, "json", false, "Output as JSON")
	f.IntVar(&opts.Workers, "workers", opts.Workers, "Patterns searched concurrently (0 = sequential)")
}

// apply merges positional patterns (first) with -e patterns and resolves --no-color.
func (sf *searchFlags) apply(opts *config.Options, args []string) {
	opts.Patterns = append(append([]string(nil), args...), sf.patterns...)
	if sf.noColor {
		opts.Color = "never"
	}
}

// openApp builds an App for cmd. The pattern-set store is opened only when a
// set is requested; the returned func closes it.
func openApp(cmd *cobra.Command, opts config.Options) (*app.App, func(), error) {
	cfg := app.Config{
		Options:   opts,
		Prefilter: ahocorasick.NewPrefilter(),
		Stdin:     stdinFor(cmd.InOrStdin()),
		Logger:    logger.Named(cmd.Name()),
	}

	closeFn := func() {}
	if opts.Set != "" {
		store, err := bbolt.NewStore(opts.DBPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.Store = store
		closeFn = func() { store.Close() }
	}

	a, err := app.New(cfg)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return a, closeFn, nil
}

func runSearch(cmd *cobra.Command, opts config.Options) error {
	stderr := cmd.ErrOrStderr()

	a, closeFn, err := openApp(cmd, opts)
	if err != nil {
		fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
		return searchExit{2}
	}
	defer closeFn()

	rep, err := a.Search(cmd.Context())
	if err != nil {
		fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
		return searchExit{2}
	}

	if err := printReport(cmd.OutOrStdout(), stderr, rep, opts); err != nil {
		return err
	}

	switch {
	case rep.Result.Err() != nil:
		return searchExit{2}
	case !rep.Result.Found():
		return searchExit{1}
	}
	return nil
}
