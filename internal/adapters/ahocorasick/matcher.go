// Package ahocorasick provides multi-pattern presence checks using an
// Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick library
// for O(n + m + z) matching and implements ports.Prefilter.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// build compiles a DFA automaton over non-empty needles.
func build(needles []string) aho.AhoCorasick {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return builder.Build(needles)
}

// Prefilter implements ports.Prefilter. It builds a fresh automaton per call;
// the value itself is stateless.
type Prefilter struct{}

// NewPrefilter returns a Prefilter.
func NewPrefilter() *Prefilter { return &Prefilter{} }

// Present reports, per pattern, whether it occurs in text. Empty patterns are
// always reported present.
func (Prefilter) Present(text string, patterns []string) []bool {
	present := make([]bool, len(patterns))

	// Automaton slot -> caller index, empties excluded.
	var needles []string
	var owner []int
	for i, p := range patterns {
		if p == "" {
			present[i] = true
			continue
		}
		needles = append(needles, p)
		owner = append(owner, i)
	}
	if len(needles) == 0 {
		return present
	}

	remaining := len(needles)
	seen := make([]bool, len(needles))
	iter := build(needles).IterOverlappingByte([]byte(text))
	for next := iter.Next(); next != nil && remaining > 0; next = iter.Next() {
		slot := next.Pattern()
		if seen[slot] {
			continue
		}
		seen[slot] = true
		present[owner[slot]] = true
		remaining--
	}
	return present
}
