package highlight

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/corey/kmpgrep/internal/domain/search"
)

// Span is a highlighted window opened at some position.
type Span struct {
	Pattern string
	Len     int
}

// Index maps a cell position to the spans that begin there, in result order.
type Index map[int][]Span

// BuildIndex converts a result into a position index and a pattern -> color
// map. Every entry gets a color, matched or not, so palette order follows
// pattern order. Backward positions (right edge of the window) are shifted
// to the window start.
func BuildIndex(res *search.Result, ca *ColorAssigner) (Index, map[string]lipgloss.Color) {
	idx := make(Index)
	colors := make(map[string]lipgloss.Color, len(res.Entries))
	for _, e := range res.Entries {
		colors[e.Pattern] = ca.Assign(e.Pattern)

		n := utf8.RuneCountInString(e.Pattern)
		if res.Bytes {
			n = len(e.Pattern)
		}
		if n == 0 {
			continue
		}
		for _, pos := range e.Matches {
			start := res.Direction.MatchStart(pos, n)
			idx[start] = append(idx[start], Span{Pattern: e.Pattern, Len: n})
		}
	}
	return idx, colors
}
