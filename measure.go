package tabula

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measure selects how the width of text is counted.
type Measure int

const (
	// MeasureRunes counts Unicode scalar values. Double-width characters
	// such as CJK ideographs count as one and visually overflow their
	// column.
	MeasureRunes Measure = iota
	// MeasureDisplay counts terminal cells using East Asian width rules.
	MeasureDisplay
)

func (m Measure) width(s string) int {
	if m == MeasureDisplay {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

func (m Measure) runeWidth(r rune) int {
	if m == MeasureDisplay {
		return runewidth.RuneWidth(r)
	}
	return 1
}

// split cuts s after the longest prefix no wider than limit. The head
// always holds at least one rune so callers make progress.
func (m Measure) split(s string, limit int) (head, tail string) {
	used := 0
	for i, r := range s {
		w := m.runeWidth(r)
		if i > 0 && used+w > limit {
			return s[:i], s[i:]
		}
		used += w
	}
	return s, ""
}

// normalizedWidth is the width of s with surrounding whitespace trimmed and
// inner whitespace runs collapsed to one space.
func (m Measure) normalizedWidth(s string) int {
	n := 0
	for i, word := range strings.Fields(s) {
		if i > 0 {
			n++
		}
		n += m.width(word)
	}
	return n
}

// longestWord is the width of the widest whitespace-delimited word in s.
func (m Measure) longestWord(s string) int {
	n := 0
	for _, word := range strings.Fields(s) {
		if w := m.width(word); w > n {
			n = w
		}
	}
	return n
}
