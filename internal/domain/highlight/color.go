// Package highlight renders a text with every match span colored by pattern.
//
// Overlapping spans follow a last-match-wins policy: spans opened at a
// position are pushed on a stack, the top of the stack colors the current
// cell, and a span is popped once the cursor reaches its last cell.
package highlight

import "github.com/charmbracelet/lipgloss"

// DefaultPalette cycles red, magenta, blue, yellow, green (ANSI 1, 5, 4, 3, 2).
var DefaultPalette = []lipgloss.Color{"1", "5", "4", "3", "2"}

// ColorAssigner hands out palette colors to patterns in first-seen order,
// wrapping around once the palette is exhausted. Build one per render call.
type ColorAssigner struct {
	palette  []lipgloss.Color
	cursor   int
	assigned map[string]lipgloss.Color
}

// NewColorAssigner creates an assigner over palette, or DefaultPalette when
// palette is empty.
func NewColorAssigner(palette []lipgloss.Color) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorAssigner{
		palette:  append([]lipgloss.Color(nil), palette...),
		assigned: make(map[string]lipgloss.Color),
	}
}

// Assign returns the color for pattern, picking the next palette entry the
// first time a pattern is seen.
func (c *ColorAssigner) Assign(pattern string) lipgloss.Color {
	if col, ok := c.assigned[pattern]; ok {
		return col
	}
	col := c.palette[c.cursor]
	c.cursor = (c.cursor + 1) % len(c.palette)
	c.assigned[pattern] = col
	return col
}
