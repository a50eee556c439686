package main

import (
	"charm.land/lipgloss/v2"
)

// palette cycles through foreground colors, one per column.
var palette = []string{"81", "214", "120", "177", "203", "228"}

func columnStyles(n int) []lipgloss.Style {
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i%len(palette)]))
	}
	return styles
}

// colorize styles a fragment's text by column. Padding is styled too, which
// is invisible for foreground colors.
func colorize(styles []lipgloss.Style) func(col int, text string) string {
	return func(col int, text string) string {
		return styles[col].Render(text)
	}
}
