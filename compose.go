package tabula

import (
	"strings"
)

// Tabulate lays out rows and returns one string per physical line. Lines
// between rows added by [Table.SetRowSpacing] are empty strings rather than
// runs of spaces.
//
// The layout is resolved against rows unless it is already cached; see
// [Table.Compose].
func (t *Table) Tabulate(rows [][]string) ([]string, error) {
	composed, err := t.Compose(rows)
	if err != nil {
		return nil, err
	}
	return Flatten(composed), nil
}

// Compose lays out rows and returns, for each row, the physical lines it
// occupies. Each line holds one [Fragment] per column so callers can
// decorate the text before joining it; see [Decorate] and [Flatten].
//
// The first call with at least one row resolves column widths against
// rows. Later calls reuse those widths, even when new rows would fit them
// poorly, until a configuration change or [Table.Reset] invalidates them.
func (t *Table) Compose(rows [][]string) ([][]Line, error) {
	rows, err := t.normalize(rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !t.adjusted() {
		if err := t.resolve(rows); err != nil {
			return nil, err
		}
	}
	blankLines := max(1, t.maximumVerticalPadding())
	out := make([][]Line, 0, len(rows))
	for i, row := range rows {
		out = append(out, t.composeRow(row, i == len(rows)-1, blankLines))
	}
	return out, nil
}

// piece is one column's text on one line before margins are attached.
type piece struct {
	text  string
	blank bool
}

// cellState tracks what remains to be emitted for one cell of a row.
type cellState struct {
	top    int
	words  []string
	bottom int
}

func (s *cellState) done() bool {
	return s.top == 0 && s.bottom == 0 && len(s.words) == 0
}

func (t *Table) composeRow(row []string, last bool, blankLines int) []Line {
	states := make([]cellState, len(t.columns))
	empty := true
	for i := range t.columns {
		words := strings.Fields(row[i])
		if len(words) > 0 {
			empty = false
		}
		states[i] = cellState{top: t.columns[i].padTop, words: words, bottom: t.columns[i].padBottom}
	}

	var lines []Line
	if empty {
		for range blankLines {
			lines = append(lines, t.blankLine())
		}
	} else {
		var grid [][]piece
		for !allDone(states) {
			pieces := make([]piece, len(t.columns))
			for i := range t.columns {
				pieces[i] = t.nextPiece(&t.columns[i], &states[i])
			}
			grid = append(grid, pieces)
		}
		for i := range t.columns {
			alignVertically(grid, i, &t.columns[i])
		}
		for _, pieces := range grid {
			line := make(Line, len(pieces))
			for i, p := range pieces {
				line[i] = Fragment{Margin: t.columns[i].marginText(), Text: p.text}
			}
			lines = append(lines, line)
		}
	}

	if !last {
		for range t.rowSpacing {
			lines = append(lines, t.separator())
		}
	}
	return lines
}

func allDone(states []cellState) bool {
	for i := range states {
		if !states[i].done() {
			return false
		}
	}
	return true
}

func (t *Table) blankLine() Line {
	line := make(Line, len(t.columns))
	for i := range t.columns {
		line[i] = Fragment{Margin: t.columns[i].marginText(), Text: t.columns[i].blank()}
	}
	return line
}

// separator spans the whole table in its margin and carries no text.
func (t *Table) separator() Line {
	return Line{{Margin: strings.Repeat(" ", t.requiredWidth())}}
}

func (t *Table) nextPiece(c *column, s *cellState) piece {
	switch {
	case s.top > 0:
		s.top--
		return piece{text: c.blank(), blank: true}
	case len(s.words) == 0:
		if s.bottom > 0 {
			s.bottom--
		}
		return piece{text: c.blank(), blank: true}
	}
	return piece{text: t.fill(c, s)}
}

// fill packs as many queued words as fit on one line of column c and
// pads the result to the column width.
func (t *Table) fill(c *column, s *cellState) string {
	inner := c.effectiveWidth() - c.horizontalPadding()
	var words []string
	used := 0
	for len(s.words) > 0 {
		w := s.words[0]
		n := t.measure.width(w)
		if len(words) == 0 && n >= inner {
			if n == inner {
				words = append(words, w)
				s.words = s.words[1:]
				break
			}
			head, tail := t.splitWord(c, w, inner)
			words = append(words, head)
			if tail == "" {
				s.words = s.words[1:]
			} else {
				s.words[0] = tail
			}
			break
		}
		next := n
		if len(words) > 0 {
			next += used + 1
		}
		if next > inner {
			break
		}
		words = append(words, w)
		used = next
		s.words = s.words[1:]
	}
	return t.align(c, words, inner, len(s.words) == 0)
}

// splitWord breaks a word too wide for the column. The remainder goes back
// on the queue for the next line.
func (t *Table) splitWord(c *column, w string, inner int) (head, tail string) {
	if c.hyphenate && inner > 1 {
		head, tail = t.measure.split(w, inner-1)
		return head + "-", tail
	}
	return t.measure.split(w, inner)
}

func (t *Table) align(c *column, words []string, inner int, final bool) string {
	var text string
	if c.align == AlignJustify && !final && len(words) > 1 {
		text = t.justify(words, inner)
	} else {
		text = strings.Join(words, " ")
	}
	phrase := strings.Repeat(" ", c.padLeft) + text

	pad := c.effectiveWidth() - t.measure.width(phrase)
	if pad <= 0 {
		return phrase
	}
	switch c.align {
	case AlignRight:
		lead := max(pad-c.padRight, 0)
		return strings.Repeat(" ", lead) + phrase + strings.Repeat(" ", pad-lead)
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + phrase + strings.Repeat(" ", pad-left)
	default:
		return phrase + strings.Repeat(" ", pad)
	}
}

// justify widens the gaps between words so they fill inner, giving the
// leftmost gaps any remainder.
func (t *Table) justify(words []string, inner int) string {
	used := 0
	for _, w := range words {
		used += t.measure.width(w)
	}
	gaps := len(words) - 1
	spare := max(inner-used, gaps)
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			n := spare / gaps
			if i <= spare%gaps {
				n++
			}
			sb.WriteString(strings.Repeat(" ", n))
		}
		sb.WriteString(w)
	}
	return sb.String()
}

// alignVertically moves blank lines from below a column's text to above it
// for middle and bottom alignment. Padding lines stay where they are.
func alignVertically(grid [][]piece, col int, c *column) {
	if c.valign == AlignTop {
		return
	}
	start, end := c.padTop, len(grid)-c.padBottom
	if end <= start {
		return
	}
	movable := 0
	for i := end - 1; i >= start && grid[i][col].blank; i-- {
		movable++
	}
	if movable == end-start {
		return
	}
	shift := movable
	if c.valign == AlignMiddle {
		shift = movable / 2
	}
	if shift == 0 {
		return
	}
	segment := make([]piece, end-start)
	for i := range segment {
		segment[(i+shift)%len(segment)] = grid[start+i][col]
	}
	for i, p := range segment {
		grid[start+i][col] = p
	}
}
