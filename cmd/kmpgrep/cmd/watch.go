package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	fsw "github.com/corey/kmpgrep/internal/adapters/fsnotify"
	"github.com/corey/kmpgrep/internal/app"
	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/logger"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *config.Options) *cobra.Command {
	sf := &searchFlags{}
	watchCmd := &cobra.Command{
		Use:           "watch -f <file> [flags] <pattern> [pattern ...]",
		Short:         "Re-run a search every time the input file changes",
		Long:          "Runs the search once, then again after each write to --file. Stop with Ctrl-C.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.apply(opts, args)
			return runWatch(cmd, *opts)
		},
	}
	addSearchFlags(watchCmd, opts, sf)
	return watchCmd
}

func runWatch(cmd *cobra.Command, opts config.Options) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if opts.File == "" {
		fmt.Fprintln(stderr, "kmpgrep: watch requires --file")
		return searchExit{2}
	}

	a, closeFn, err := openApp(cmd, opts)
	if err != nil {
		fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
		return searchExit{2}
	}
	defer closeFn()

	log := logger.Named("watch")
	w, err := fsw.NewWatcher(fsw.WithErrorHandler(func(err error) {
		log.Warn().Err(err).Msg("watcher error")
	}))
	if err != nil {
		fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
		return searchExit{2}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	useColor := resolveColor(opts.Color, stdout)
	err = a.Watch(ctx, w, func(rep *app.Report, err error) {
		header := fmt.Sprintf("── %s %s ──", opts.File, time.Now().Format(time.TimeOnly))
		fmt.Fprintln(stdout, paint(useColor, colorGray, header))
		if err != nil {
			fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
			return
		}
		if err := printReport(stdout, stderr, rep, opts); err != nil {
			log.Error().Err(err).Msg("write report")
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "kmpgrep: %v\n", err)
		return searchExit{2}
	}
	return nil
}
