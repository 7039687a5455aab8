package kmp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction selects which end of the text the scan starts from.
type Direction int

const (
	// Forward scans from the start of the text and reports the leftmost index
	// of each match window, in ascending order.
	Forward Direction = iota
	// Backward scans from the end of the text and reports the RIGHTMOST index
	// of each match window, in descending order. Use MatchStart to convert.
	Backward
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("unknown direction")

// ParseDirection accepts "first"/"forward" and "last"/"backward".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "forward", "":
		return Forward, nil
	case "last", "backward":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("%w %q (want first or last)", ErrUnknownDirection, s)
	}
}

func (d Direction) String() string {
	if d == Backward {
		return "last"
	}
	return "first"
}

// MatchStart converts a position reported by a scan in direction d into the
// leftmost index of the match window for a pattern of length patternLen.
func (d Direction) MatchStart(pos, patternLen int) int {
	if d == Backward {
		return pos - patternLen + 1
	}
	return pos
}

// MatchSet is an ordered list of match positions. A nil MatchSet means
// "no matches"; scans never return an empty non-nil set.
type MatchSet []int

// Found reports whether the set holds at least one position.
func (m MatchSet) Found() bool { return len(m) > 0 }

// String renders the set as "(0, 3, 6)".
func (m MatchSet) String() string {
	if !m.Found() {
		return "no matches"
	}
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = strconv.Itoa(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Matcher is a compiled search automaton for one pattern and one direction.
// It holds no per-scan state and is safe for concurrent use.
type Matcher[T comparable] struct {
	pattern []T // reversed when dir == Backward
	table   PrefixTable
	dir     Direction
}

// NewMatcher compiles pattern for scanning in dir. Backward matchers reverse
// the pattern once and build the table over the reversed copy.
func NewMatcher[T comparable](pattern []T, dir Direction) (*Matcher[T], error) {
	var p []T
	if dir == Backward {
		p = Reverse(pattern)
	} else {
		p = append([]T(nil), pattern...)
	}
	table, err := BuildPrefixTable(p)
	if err != nil {
		return nil, err
	}
	return &Matcher[T]{pattern: p, table: table, dir: dir}, nil
}

// Len returns the pattern length.
func (m *Matcher[T]) Len() int { return len(m.pattern) }

// Direction returns the scan direction the matcher was compiled for.
func (m *Matcher[T]) Direction() Direction { return m.dir }

// Table returns the prefix table driving the automaton.
func (m *Matcher[T]) Table() PrefixTable { return m.table }

// Find walks text once and returns match positions in scan order. Overlapping
// occurrences are reported. When count > 0 the walk stops after count matches;
// count <= 0 means unbounded.
func (m *Matcher[T]) Find(text []T, count int) MatchSet {
	n, plen := len(text), len(m.pattern)
	if n < plen {
		return nil
	}

	var matches MatchSet
	j := 0
	for k := 0; k < n; k++ {
		i := k
		if m.dir == Backward {
			i = n - 1 - k
		}
		for j > 0 && text[i] != m.pattern[j] {
			j = m.table[j-1]
		}
		if text[i] == m.pattern[j] {
			j++
		}
		if j < plen {
			continue
		}

		pos := i - plen + 1
		if m.dir == Backward {
			// i is the left edge of the window here; report the right edge.
			pos = i + plen - 1
		}
		matches = append(matches, pos)
		if count > 0 && len(matches) >= count {
			return matches
		}
		j = m.table[j-1]
	}
	return matches
}

// Find compiles pattern and scans text in one call.
func Find[T comparable](text, pattern []T, dir Direction, count int) (MatchSet, error) {
	m, err := NewMatcher(pattern, dir)
	if err != nil {
		return nil, err
	}
	return m.Find(text, count), nil
}
