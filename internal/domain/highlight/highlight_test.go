package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/corey/kmpgrep/internal/domain/kmp"
	"github.com/corey/kmpgrep/internal/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Highlight: position index, color cycling, last-match-wins rendering
// Expectation: the newest open span colors a cell; a span closes on its last
// cell; colors cycle through the palette in pattern order.
// =============================================================================

func TestColorAssigner_Cycles(t *testing.T) {
	ca := NewColorAssigner(nil)
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	var got []lipgloss.Color
	for _, n := range names {
		got = append(got, ca.Assign(n))
	}
	assert.Equal(t, []lipgloss.Color{"1", "5", "4", "3", "2", "1", "5"}, got)
	assert.Equal(t, lipgloss.Color("5"), ca.Assign("b"), "assignment is stable")
}

func TestColorAssigner_CustomPalette(t *testing.T) {
	ca := NewColorAssigner([]lipgloss.Color{"9"})
	assert.Equal(t, lipgloss.Color("9"), ca.Assign("x"))
	assert.Equal(t, lipgloss.Color("9"), ca.Assign("y"))
}

func TestBuildIndex(t *testing.T) {
	res := &search.Result{
		Multi: true,
		Entries: []search.Entry{
			{Pattern: "ab", Matches: kmp.MatchSet{0, 4}},
			{Pattern: "zz"},
			{Pattern: "b", Matches: kmp.MatchSet{1}},
		},
	}
	idx, colors := BuildIndex(res, NewColorAssigner(nil))
	assert.Equal(t, Index{
		0: {{Pattern: "ab", Len: 2}},
		4: {{Pattern: "ab", Len: 2}},
		1: {{Pattern: "b", Len: 1}},
	}, idx)
	assert.Equal(t, map[string]lipgloss.Color{"ab": "1", "zz": "5", "b": "4"}, colors)
}

func TestBuildIndex_BackwardShiftsToWindowStart(t *testing.T) {
	res := &search.Result{
		Direction: kmp.Backward,
		Entries:   []search.Entry{{Pattern: "abc", Matches: kmp.MatchSet{5, 2}}},
	}
	idx, _ := BuildIndex(res, NewColorAssigner(nil))
	assert.Equal(t, Index{3: {{Pattern: "abc", Len: 3}}, 0: {{Pattern: "abc", Len: 3}}}, idx)
}

func TestBuildIndex_RuneLength(t *testing.T) {
	res := &search.Result{Entries: []search.Entry{{Pattern: "мир", Matches: kmp.MatchSet{0}}}}
	idx, _ := BuildIndex(res, NewColorAssigner(nil))
	assert.Equal(t, 3, idx[0][0].Len)

	res.Bytes = true
	idx, _ = BuildIndex(res, NewColorAssigner(nil))
	assert.Equal(t, 6, idx[0][0].Len)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		idx  Index
		want []Segment
	}{
		{
			name: "plain",
			text: "abc",
			want: []Segment{{Text: "abc"}},
		},
		{
			name: "overlap newest wins",
			text: "abcd",
			idx:  Index{0: {{"abc", 3}}, 1: {{"bc", 2}}},
			want: []Segment{{"a", "abc"}, {"bc", "bc"}, {"d", ""}},
		},
		{
			name: "same start last pushed wins",
			text: "abcd",
			idx:  Index{0: {{"ab", 2}, {"abc", 3}}},
			want: []Segment{{"abc", "abc"}, {"d", ""}},
		},
		{
			name: "nested resumes outer",
			text: "abcde",
			idx:  Index{0: {{"abcde", 5}}, 1: {{"b", 1}}},
			want: []Segment{{"a", "abcde"}, {"b", "b"}, {"cde", "abcde"}},
		},
		{
			name: "adjacent same pattern merges",
			text: "aaaa",
			idx:  Index{0: {{"aa", 2}}, 2: {{"aa", 2}}},
			want: []Segment{{"aaaa", "aa"}},
		},
		{
			name: "unicode cells",
			text: "и мир",
			idx:  Index{2: {{"мир", 3}}},
			want: []Segment{{"и ", ""}, {"мир", "мир"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(tt.text, false, tt.idx, 0))
		})
	}
}

func TestSegments_MaxLines(t *testing.T) {
	segs := Segments("l1\nl2\nl3\nl4", false, nil, 2)
	require.Len(t, segs, 1)
	assert.Equal(t, "l1\nl2", segs[0].Text)

	segs = Segments("l1\nl2", false, nil, 5)
	assert.Equal(t, "l1\nl2", segs[0].Text)
}

func TestSegments_Bytes(t *testing.T) {
	segs := Segments("héllo", true, Index{3: {{"llo", 3}}}, 0)
	assert.Equal(t, []Segment{{"hé", ""}, {"llo", "llo"}}, segs)
}

func TestRender_NoColorIsPlainText(t *testing.T) {
	res := &search.Result{Entries: []search.Entry{{Pattern: "b", Matches: kmp.MatchSet{1}}}}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "abc\nxyz", res, Options{}))
	assert.Equal(t, "abc\nxyz\n", buf.String())
}

func TestRender_Color(t *testing.T) {
	res := &search.Result{
		Multi: true,
		Entries: []search.Entry{
			{Pattern: "ab", Matches: kmp.MatchSet{0}},
			{Pattern: "c\nx", Matches: kmp.MatchSet{2}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "abc\nxyz", res, Options{Color: true}))
	out := buf.String()

	assert.Contains(t, out, "\x1b[31mab")
	assert.Contains(t, out, "\x1b[35mc")
	assert.Contains(t, out, "yz\n")
	assert.Equal(t, 1+1, strings.Count(out, "\n"), "line structure preserved")
}
