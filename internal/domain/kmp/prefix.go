// Package kmp implements Knuth-Morris-Pratt substring search.
//
// The automaton is generic over comparable element types so the same code
// scans code points ([]rune) and raw bytes ([]byte). A search is linear in
// len(text)+len(pattern) and reports overlapping occurrences.
package kmp

import "errors"

// ErrEmptyPattern is returned when a zero-length pattern is supplied.
// The failure function is undefined for an empty pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// PrefixTable is the failure function of a pattern. Entry i is the length of
// the longest proper prefix of pattern[0..i] that is also a suffix of it.
// table[0] is always 0 and table[i] <= i.
type PrefixTable []int

// BuildPrefixTable computes the failure function of pattern in O(len(pattern)).
func BuildPrefixTable[T comparable](pattern []T) (PrefixTable, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	table := make(PrefixTable, len(pattern))
	j := 0
	for i := 1; i < len(pattern); i++ {
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table, nil
}

// Reverse returns a reversed copy of s. The input is never modified.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
