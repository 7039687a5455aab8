// Package search runs KMP scans for one or many patterns over a shared text.
//
// A Request carries the text, a Patterns variant (Single or Many), and the
// scan parameters. Engine.Search folds case once, compiles one automaton per
// pattern, and returns a Result whose entries preserve pattern input order.
package search

import (
	"errors"

	"github.com/corey/kmpgrep/internal/domain/kmp"
)

// ErrNoPatterns is returned when a request carries no patterns at all.
var ErrNoPatterns = errors.New("no patterns")

// Patterns is either a single pattern or an ordered set of patterns.
// The zero value holds nothing and is rejected by Engine.Search.
type Patterns struct {
	list []string
	many bool
}

// Single wraps one pattern. The result of a Single request has exactly one entry.
func Single(p string) Patterns {
	return Patterns{list: []string{p}}
}

// Many wraps a set of patterns. Duplicate strings collapse to their first
// occurrence; input order is otherwise kept.
func Many(ps ...string) Patterns {
	seen := make(map[string]bool, len(ps))
	list := make([]string, 0, len(ps))
	for _, p := range ps {
		if seen[p] {
			continue
		}
		seen[p] = true
		list = append(list, p)
	}
	return Patterns{list: list, many: true}
}

// FromList returns Single for one pattern and Many otherwise.
func FromList(ps []string) Patterns {
	if len(ps) == 1 {
		return Single(ps[0])
	}
	return Many(ps...)
}

// IsMany reports whether the variant is a pattern set.
func (p Patterns) IsMany() bool { return p.many }

// Len returns the number of distinct patterns.
func (p Patterns) Len() int { return len(p.list) }

// List returns a copy of the patterns in input order.
func (p Patterns) List() []string {
	return append([]string(nil), p.list...)
}

// Request is one search invocation. It is consumed by a single Search call.
// Count caps the matches per pattern; zero or negative means unbounded.
// Bytes searches UTF-8 bytes instead of code points, and positions are then
// byte offsets.
type Request struct {
	Text       string
	Patterns   Patterns
	IgnoreCase bool
	Direction  kmp.Direction
	Count      int
	Bytes      bool
}
