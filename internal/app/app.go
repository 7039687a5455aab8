// Package app wires configuration, adapters, and the search engine together.
// It plays the input collaborator (file, inline text, or stdin) and drives
// single searches as well as the watch loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/corey/kmpgrep/internal/config"
	"github.com/corey/kmpgrep/internal/domain/search"
	"github.com/corey/kmpgrep/internal/logger"
	"github.com/corey/kmpgrep/internal/ports"
)

// ErrWatchNeedsFile is returned by Watch when no input file is configured.
var ErrWatchNeedsFile = errors.New("watch requires an input file")

// Config holds everything New needs. Store, Prefilter, and Stdin are optional.
type Config struct {
	Options   config.Options
	Store     ports.PatternStore
	Prefilter ports.Prefilter
	Stdin     io.Reader
	Logger    *logger.Logger
}

// App runs searches for one invocation's options.
type App struct {
	opts   config.Options
	store  ports.PatternStore
	stdin  io.Reader
	log    *logger.Logger
	engine *search.Engine
}

// Report is the outcome of one timed search. Elapsed covers loading the
// text and searching it.
type Report struct {
	Source  string
	Text    string
	Result  *search.Result
	Elapsed time.Duration
}

// New validates cfg.Options and builds an App.
func New(cfg Config) (*App, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Named("app")
	}

	engineOpts := []search.Option{search.WithWorkers(cfg.Options.Workers)}
	if cfg.Prefilter != nil {
		engineOpts = append(engineOpts, search.WithPrefilter(cfg.Prefilter))
	}

	return &App{
		opts:   cfg.Options,
		store:  cfg.Store,
		stdin:  cfg.Stdin,
		log:    log,
		engine: search.NewEngine(engineOpts...),
	}, nil
}

// Patterns merges the command-line patterns with the saved set, if any.
// Command-line patterns come first.
func (a *App) Patterns() (search.Patterns, error) {
	list := append([]string(nil), a.opts.Patterns...)
	if a.opts.Set != "" {
		if a.store == nil {
			return search.Patterns{}, fmt.Errorf("pattern set %q: no store configured", a.opts.Set)
		}
		saved, err := a.store.LoadSet(a.opts.Set)
		if err != nil {
			return search.Patterns{}, err
		}
		list = append(list, saved...)
	}
	if len(list) == 0 {
		return search.Patterns{}, search.ErrNoPatterns
	}
	return search.FromList(list), nil
}

// loadText returns the text to search and a label for its source.
func (a *App) loadText() (string, string, error) {
	switch {
	case a.opts.File != "":
		text, err := ReadFile(a.opts.File)
		return text, a.opts.File, err
	case a.opts.Text != "" || a.stdin == nil:
		return a.opts.Text, "<text>", nil
	default:
		text, err := ReadAll(a.stdin, "<stdin>")
		return text, "<stdin>", err
	}
}

// Search loads the text and runs one timed search.
func (a *App) Search(ctx context.Context) (*Report, error) {
	patterns, err := a.Patterns()
	if err != nil {
		return nil, err
	}
	dir, err := a.opts.Direction()
	if err != nil {
		return nil, err
	}

	report, elapsed, err := search.Measure(func() (*Report, error) {
		text, source, err := a.loadText()
		if err != nil {
			return nil, err
		}
		res, err := a.engine.Search(ctx, search.Request{
			Text:       text,
			Patterns:   patterns,
			IgnoreCase: a.opts.IgnoreCase,
			Direction:  dir,
			Count:      a.opts.Count,
			Bytes:      a.opts.Bytes,
		})
		if err != nil {
			return nil, err
		}
		return &Report{Source: source, Text: text, Result: res}, nil
	})
	if err != nil {
		return nil, err
	}
	report.Elapsed = elapsed

	for _, e := range report.Result.Entries {
		if e.Err != nil {
			a.log.Warn().Err(e.Err).Str("pattern", e.Pattern).Msg("pattern skipped")
		}
	}
	a.log.Debug().
		Str("source", report.Source).
		Int("patterns", patterns.Len()).
		Str("method", dir.String()).
		Int("count", a.opts.Count).
		Dur("elapsed", elapsed).
		Msg("search complete")
	return report, nil
}

// Watch runs a search immediately and again after every change to the input
// file, passing each outcome to onReport. It blocks until ctx is done and
// returns nil on cancellation.
func (a *App) Watch(ctx context.Context, w ports.Watcher, onReport func(*Report, error)) error {
	if a.opts.File == "" {
		return ErrWatchNeedsFile
	}

	changes := make(chan struct{}, 1)
	if err := w.Watch(a.opts.File, func(path string) {
		a.log.Debug().Str("file", path).Msg("input changed")
		select {
		case changes <- struct{}{}:
		default: // a rerun is already pending
		}
	}); err != nil {
		return fmt.Errorf("watch %s: %w", a.opts.File, err)
	}
	defer w.Stop()

	onReport(a.Search(ctx))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			onReport(a.Search(ctx))
		}
	}
}
