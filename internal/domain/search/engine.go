package search

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/corey/kmpgrep/internal/domain/kmp"
	"github.com/corey/kmpgrep/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Engine runs search requests. Its zero value (via NewEngine with no options)
// searches patterns sequentially without a prefilter.
type Engine struct {
	workers   int
	prefilter ports.Prefilter
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers scans up to n patterns concurrently. n <= 1 is sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithPrefilter skips the KMP scan for patterns the prefilter reports absent.
// Only consulted for Many requests.
func WithPrefilter(p ports.Prefilter) Option {
	return func(e *Engine) { e.prefilter = p }
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// scanFunc searches the prepared text for one (unfolded) pattern.
type scanFunc func(pattern string) (kmp.MatchSet, error)

// Search runs req. A pattern that cannot be searched (empty) is reported on
// its entry and does not affect the other patterns. The returned error is
// non-nil only for a request without patterns or a cancelled context.
func (e *Engine) Search(ctx context.Context, req Request) (*Result, error) {
	patterns := req.Patterns.List()
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	scan, haystack := prepare(req)

	var present []bool
	if e.prefilter != nil && req.Patterns.IsMany() && (req.Bytes || utf8.ValidString(req.Text)) {
		needles := make([]string, len(patterns))
		for i, p := range patterns {
			needles[i] = foldPattern(p, req)
		}
		present = e.prefilter.Present(haystack, needles)
	}

	res := &Result{
		Multi:     req.Patterns.IsMany(),
		Direction: req.Direction,
		Bytes:     req.Bytes,
		Entries:   make([]Entry, len(patterns)),
	}
	run := func(i int) {
		entry := Entry{Pattern: patterns[i]}
		if present == nil || present[i] {
			m, err := scan(patterns[i])
			if err != nil {
				entry.Err = fmt.Errorf("pattern %q: %w", patterns[i], err)
			}
			entry.Matches = m
		}
		res.Entries[i] = entry
	}

	if e.workers <= 1 || len(patterns) == 1 {
		for i := range patterns {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			run(i)
		}
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// prepare folds the text once and returns the per-pattern scan plus the
// folded text as a string for the prefilter.
func prepare(req Request) (scanFunc, string) {
	if req.Bytes {
		text := []byte(req.Text)
		if req.IgnoreCase {
			text = FoldBytes(text)
		}
		return func(p string) (kmp.MatchSet, error) {
			return kmp.Find(text, []byte(foldPattern(p, req)), req.Direction, req.Count)
		}, string(text)
	}

	text := []rune(req.Text)
	if req.IgnoreCase {
		text = FoldRunes(text)
	}
	return func(p string) (kmp.MatchSet, error) {
		return kmp.Find(text, []rune(foldPattern(p, req)), req.Direction, req.Count)
	}, string(text)
}

func foldPattern(p string, req Request) string {
	if !req.IgnoreCase {
		return p
	}
	if req.Bytes {
		return string(FoldBytes([]byte(p)))
	}
	return string(FoldRunes([]rune(p)))
}
