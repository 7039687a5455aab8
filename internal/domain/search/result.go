package search

import (
	"github.com/corey/kmpgrep/internal/domain/kmp"
	"github.com/hashicorp/go-multierror"
)

// Entry is the outcome for one pattern. Pattern is the caller's original
// (unfolded) string. Err is set when the pattern itself was rejected.
type Entry struct {
	Pattern string
	Matches kmp.MatchSet
	Err     error
}

// Result holds one entry per distinct pattern, in request order. Bytes is
// set when positions are byte offsets rather than code points.
type Result struct {
	Multi     bool
	Direction kmp.Direction
	Bytes     bool
	Entries   []Entry
}

// Single returns the first entry. For Single requests it is the only one.
func (r *Result) Single() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[0]
}

// Lookup returns the matches recorded for pattern.
func (r *Result) Lookup(pattern string) (kmp.MatchSet, bool) {
	for _, e := range r.Entries {
		if e.Pattern == pattern {
			return e.Matches, true
		}
	}
	return nil, false
}

// Found reports whether any pattern matched.
func (r *Result) Found() bool {
	for _, e := range r.Entries {
		if e.Matches.Found() {
			return true
		}
	}
	return false
}

// Err aggregates the per-pattern errors, or returns nil when every pattern
// was searched.
func (r *Result) Err() error {
	var merr *multierror.Error
	for _, e := range r.Entries {
		if e.Err != nil {
			merr = multierror.Append(merr, e.Err)
		}
	}
	return merr.ErrorOrNil()
}
