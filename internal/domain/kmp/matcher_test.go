package kmp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Matcher: forward and backward automaton walks
// Expectation: all overlapping occurrences found in linear time; backward
// scans report the right edge of each window, closest to the end first.
// =============================================================================

// naiveStarts returns every start index of pattern in text.
func naiveStarts(text, pattern string) []int {
	var out []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if text[i:i+len(pattern)] == pattern {
			out = append(out, i)
		}
	}
	return out
}

func find(t *testing.T, text, pattern string, dir Direction, count int) MatchSet {
	t.Helper()
	got, err := Find([]rune(text), []rune(pattern), dir, count)
	require.NoError(t, err)
	return got
}

func TestFind_Forward(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		count   int
		want    MatchSet
	}{
		{"overlap", "aaaa", "aa", 0, MatchSet{0, 1, 2}},
		{"aaa", "aaa", "aa", 0, MatchSet{0, 1}},
		{"truncated", "abcabcabc", "abc", 2, MatchSet{0, 3}},
		{"unbounded", "abcabcabc", "abc", 0, MatchSet{0, 3, 6}},
		{"negative is unbounded", "abcabcabc", "abc", -1, MatchSet{0, 3, 6}},
		{"first only", "abcabcabc", "abc", 1, MatchSet{0}},
		{"single char", "banana", "a", 0, MatchSet{1, 3, 5}},
		{"whole text", "abc", "abc", 0, MatchSet{0}},
		{"fallback", "aabaaabaaab", "aaab", 0, MatchSet{3, 7}},
		{"unicode", "привет мир привет", "привет", 0, MatchSet{0, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, find(t, tt.text, tt.pattern, Forward, tt.count))
		})
	}
}

func TestFind_Backward(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		count   int
		want    MatchSet
	}{
		{"last window right edge", "abcabc", "abc", 1, MatchSet{5}},
		{"all descending", "abcabc", "abc", 0, MatchSet{5, 2}},
		{"overlap", "aaaa", "aa", 0, MatchSet{3, 2, 1}},
		{"asymmetric pattern", "xabxab", "ab", 0, MatchSet{5, 2}},
		{"truncated", "abcabcabc", "abc", 2, MatchSet{8, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, find(t, tt.text, tt.pattern, Backward, tt.count))
		})
	}
}

func TestFind_NoMatchIsNil(t *testing.T) {
	assert.Nil(t, find(t, "xyz", "qq", Forward, 0))
	assert.Nil(t, find(t, "xyz", "qq", Backward, 0))
	assert.Nil(t, find(t, "ab", "abc", Forward, 0), "text shorter than pattern")
	assert.Nil(t, find(t, "", "a", Forward, 1), "empty text")
	assert.False(t, MatchSet(nil).Found())
}

func TestFind_EmptyPattern(t *testing.T) {
	_, err := Find([]rune("abc"), []rune(""), Forward, 0)
	assert.ErrorIs(t, err, ErrEmptyPattern)
	_, err = NewMatcher([]byte{}, Backward)
	assert.ErrorIs(t, err, ErrEmptyPattern)
}

func TestFind_AgreesWithNaiveAndAcrossDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randStr := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('a' + rng.Intn(2))
		}
		return string(b)
	}

	for iter := 0; iter < 300; iter++ {
		text := randStr(rng.Intn(60))
		pattern := randStr(1 + rng.Intn(5))

		fwd, err := Find([]byte(text), []byte(pattern), Forward, 0)
		require.NoError(t, err)
		bwd, err := Find([]byte(text), []byte(pattern), Backward, 0)
		require.NoError(t, err)

		want := naiveStarts(text, pattern)
		if want == nil {
			assert.Nil(t, fwd)
			assert.Nil(t, bwd)
			continue
		}
		assert.Equal(t, MatchSet(want), fwd, "text %q pattern %q", text, pattern)

		starts := make([]int, len(bwd))
		for i, p := range bwd {
			starts[i] = Backward.MatchStart(p, len(pattern))
		}
		assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(starts))))
		sort.Ints(starts)
		assert.Equal(t, want, starts, "text %q pattern %q", text, pattern)
	}
}

func TestFind_CountIsPrefixOfUnbounded(t *testing.T) {
	text := []rune("abababababab")
	for _, dir := range []Direction{Forward, Backward} {
		m, err := NewMatcher([]rune("aba"), dir)
		require.NoError(t, err)
		all := m.Find(text, 0)
		for c := 1; c <= len(all)+1; c++ {
			got := m.Find(text, c)
			want := all
			if c < len(all) {
				want = all[:c]
			}
			assert.Equal(t, want, got, "dir %s count %d", dir, c)
		}
	}
}

func TestMatcher_DoesNotAliasPattern(t *testing.T) {
	p := []byte("ab")
	m, err := NewMatcher(p, Forward)
	require.NoError(t, err)
	p[0] = 'z'
	assert.Equal(t, MatchSet{0}, m.Find([]byte("abz"), 0))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, Forward, m.Direction())
	assert.Equal(t, PrefixTable{0, 0}, m.Table())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"first": Forward, "forward": Forward, "": Forward,
		"last": Backward, "LAST": Backward, "backward": Backward,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("middle")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestMatchSet_String(t *testing.T) {
	assert.Equal(t, "(0, 3, 6)", MatchSet{0, 3, 6}.String())
	assert.Equal(t, "(5)", MatchSet{5}.String())
	assert.Equal(t, "no matches", MatchSet(nil).String())
}

func TestDirection_MatchStart(t *testing.T) {
	assert.Equal(t, 3, Forward.MatchStart(3, 3))
	assert.Equal(t, 3, Backward.MatchStart(5, 3))
	assert.Equal(t, "first", Forward.String())
	assert.Equal(t, "last", Backward.String())
}
