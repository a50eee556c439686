package tabula

import "strings"

// Fragment is one column's share of a physical line: the margin that
// precedes the column and the padded cell text.
type Fragment struct {
	Margin string
	Text   string
}

// Line is one physical line of output, one fragment per column. Lines
// inserted between rows hold a single fragment whose margin spans the
// table and whose text is empty.
type Line []Fragment

// String joins the fragments of l. Row separators come out as an empty
// string.
func (l Line) String() string {
	if l.separator() {
		return ""
	}
	var sb strings.Builder
	for _, f := range l {
		sb.WriteString(f.Margin)
		sb.WriteString(f.Text)
	}
	return sb.String()
}

func (l Line) separator() bool {
	return len(l) == 1 && l[0].Text == ""
}

// Flatten joins the lines of every row into strings, in order.
func Flatten(rows [][]Line) []string {
	var out []string
	for _, row := range rows {
		for _, line := range row {
			out = append(out, line.String())
		}
	}
	return out
}

// Decorate returns a copy of rows with style applied to the text of every
// fragment. style receives the column index and the padded text; margins
// and row separators are left alone. Use it to add terminal colors
// without disturbing the layout, which was computed on the undecorated
// text.
func Decorate(rows [][]Line, style func(col int, text string) string) [][]Line {
	out := make([][]Line, len(rows))
	for i, row := range rows {
		out[i] = make([]Line, len(row))
		for j, line := range row {
			styled := make(Line, len(line))
			copy(styled, line)
			if !line.separator() {
				for col := range styled {
					styled[col].Text = style(col, styled[col].Text)
				}
			}
			out[i][j] = styled
		}
	}
	return out
}
