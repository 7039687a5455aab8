package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/corey/kmpgrep/internal/domain/search"
	"github.com/muesli/termenv"
)

// Segment is a run of consecutive cells drawn the same way. Pattern is empty
// for plain text.
type Segment struct {
	Text    string
	Pattern string
}

type openSpan struct {
	start int
	span  Span
}

// Segments walks text cell by cell (code points, or bytes when bytes is set)
// and groups cells by the pattern on top of the span stack. Rendering stops
// before the maxLines-th newline; maxLines <= 0 renders everything.
func Segments(text string, bytes bool, idx Index, maxLines int) []Segment {
	var cells []string
	if bytes {
		cells = make([]string, len(text))
		for i := 0; i < len(text); i++ {
			cells[i] = text[i : i+1]
		}
	} else {
		for _, r := range text {
			cells = append(cells, string(r))
		}
	}

	var (
		segs  []Segment
		stack []openSpan
		lines int
	)
	for i, cell := range cells {
		if cell == "\n" {
			lines++
			if maxLines > 0 && lines >= maxLines {
				break
			}
		}

		for _, sp := range idx[i] {
			stack = append(stack, openSpan{start: i, span: sp})
		}

		pattern := ""
		if len(stack) > 0 {
			pattern = stack[len(stack)-1].span.Pattern
		}
		if n := len(segs); n > 0 && segs[n-1].Pattern == pattern {
			segs[n-1].Text += cell
		} else {
			segs = append(segs, Segment{Text: cell, Pattern: pattern})
		}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if i-top.start < top.span.Len-1 {
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
	return segs
}

// Options controls Render.
type Options struct {
	Color    bool
	MaxLines int
	Palette  []lipgloss.Color
}

// Render writes text with the matches in res highlighted, followed by a
// newline. With Color unset the output is the plain (line-limited) text.
func Render(w io.Writer, text string, res *search.Result, opts Options) error {
	idx, colors := BuildIndex(res, NewColorAssigner(opts.Palette))

	lr := lipgloss.NewRenderer(w)
	if opts.Color {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	styles := make(map[string]lipgloss.Style, len(colors))
	for p, c := range colors {
		styles[p] = lr.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
	}

	var sb strings.Builder
	for _, seg := range Segments(text, res.Bytes, idx, opts.MaxLines) {
		style, ok := styles[seg.Pattern]
		if seg.Pattern == "" || !ok || !opts.Color {
			sb.WriteString(seg.Text)
			continue
		}
		// Styled blocks are padded to a common width, so style line by line.
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
