package tabula

// SetRowSpacing sets the number of blank lines inserted between rows. No
// blank lines follow the last row.
func (t *Table) SetRowSpacing(n int) error {
	if err := nonNegative("row spacing", n); err != nil {
		return err
	}
	t.rowSpacing = n
	return nil
}

// SetPriority assigns a priority to column i. Lower numbers are more
// important; 0 is the highest priority. When space runs short, columns
// with the largest priority number wrap first.
func (t *Table) SetPriority(i, priority int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.priority = priority
	t.invalidate()
	return nil
}

// SetPriorityAll assigns the same priority to every column.
func (t *Table) SetPriorityAll(priority int) {
	for i := range t.columns {
		t.columns[i].priority = priority
	}
	t.invalidate()
}

// SetMaxWidth caps the content width of column i. The cap must be at least
// 1. It fails with [ErrMinGreaterThanMax] if column i has a larger minimum
// width.
func (t *Table) SetMaxWidth(i, width int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	if err := positive("max width", width); err != nil {
		return err
	}
	if c.minWidth != noLimit && c.minWidth > width {
		return &ColumnError{Column: i, Err: ErrMinGreaterThanMax}
	}
	c.maxWidth = width
	t.invalidate()
	return nil
}

// SetMaxWidthAll caps the content width of every column. No column is
// changed if any of them has a larger minimum width.
func (t *Table) SetMaxWidthAll(width int) error {
	if err := positive("max width", width); err != nil {
		return err
	}
	for i := range t.columns {
		if c := &t.columns[i]; c.minWidth != noLimit && c.minWidth > width {
			return &ColumnError{Column: i, Err: ErrMinGreaterThanMax}
		}
	}
	for i := range t.columns {
		t.columns[i].maxWidth = width
	}
	t.invalidate()
	return nil
}

// SetMinWidth sets the minimum content width of column i. It fails with
// [ErrMinGreaterThanMax] if column i has a smaller maximum width, leaving
// the column unchanged. If the new minimum no longer fits the viewport
// the value is kept and [ErrInsufficientSpace] is returned.
func (t *Table) SetMinWidth(i, width int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	if err := nonNegative("min width", width); err != nil {
		return err
	}
	if c.maxWidth != noLimit && c.maxWidth < width {
		return &ColumnError{Column: i, Err: ErrMinGreaterThanMax}
	}
	c.minWidth = width
	c.width = width
	t.invalidate()
	return t.checkSpace()
}

// SetMinWidthAll sets the same minimum content width on every column.
func (t *Table) SetMinWidthAll(width int) error {
	if err := nonNegative("min width", width); err != nil {
		return err
	}
	for i := range t.columns {
		if c := &t.columns[i]; c.maxWidth != noLimit && c.maxWidth < width {
			return &ColumnError{Column: i, Err: ErrMinGreaterThanMax}
		}
	}
	for i := range t.columns {
		t.columns[i].minWidth = width
		t.columns[i].width = width
	}
	t.invalidate()
	return t.checkSpace()
}

// SetFixedWidth gives column i the same minimum and maximum width, which
// must be at least 1.
func (t *Table) SetFixedWidth(i, width int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	if err := positive("fixed width", width); err != nil {
		return err
	}
	c.minWidth, c.maxWidth, c.width = width, width, width
	t.invalidate()
	return t.checkSpace()
}

// SetFixedWidthAll gives every column the same minimum and maximum width.
func (t *Table) SetFixedWidthAll(width int) error {
	if err := positive("fixed width", width); err != nil {
		return err
	}
	for i := range t.columns {
		c := &t.columns[i]
		c.minWidth, c.maxWidth, c.width = width, width, width
	}
	t.invalidate()
	return t.checkSpace()
}

// ClearLimits removes the minimum and maximum width of column i.
func (t *Table) ClearLimits(i int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.minWidth, c.maxWidth = noLimit, noLimit
	t.invalidate()
	return nil
}

// ClearLimitsAll removes every column's minimum and maximum width.
func (t *Table) ClearLimitsAll() {
	for i := range t.columns {
		t.columns[i].minWidth, t.columns[i].maxWidth = noLimit, noLimit
	}
	t.invalidate()
}

// SetAlignment sets the horizontal alignment of column i.
func (t *Table) SetAlignment(i int, a Alignment) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.align = a
	return nil
}

// SetAlignmentAll sets the horizontal alignment of every column.
func (t *Table) SetAlignmentAll(a Alignment) {
	for i := range t.columns {
		t.columns[i].align = a
	}
}

// SetVerticalAlignment sets the vertical alignment of column i.
func (t *Table) SetVerticalAlignment(i int, v VerticalAlignment) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.valign = v
	return nil
}

// SetVerticalAlignmentAll sets the vertical alignment of every column.
func (t *Table) SetVerticalAlignmentAll(v VerticalAlignment) {
	for i := range t.columns {
		t.columns[i].valign = v
	}
}

// SetHyphenate controls whether words split across lines in column i are
// marked with a hyphen.
func (t *Table) SetHyphenate(i int, hyphenate bool) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	c.hyphenate = hyphenate
	return nil
}

// SetHyphenateAll controls hyphenation for every column.
func (t *Table) SetHyphenateAll(hyphenate bool) {
	for i := range t.columns {
		t.columns[i].hyphenate = hyphenate
	}
}

// SetLeftMargin sets the number of blank spaces before column i. The
// value is kept even when it returns [ErrInsufficientSpace].
func (t *Table) SetLeftMargin(i, margin int) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	if err := nonNegative("left margin", margin); err != nil {
		return err
	}
	c.margin = margin
	t.invalidate()
	return t.checkSpace()
}

// SetLeftMarginAll sets the left margin of every column, the first
// included.
func (t *Table) SetLeftMarginAll(margin int) error {
	if err := nonNegative("left margin", margin); err != nil {
		return err
	}
	for i := range t.columns {
		t.columns[i].margin = margin
	}
	t.invalidate()
	return t.checkSpace()
}

type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideTop
	sideBottom

	sidesHorizontal = sideLeft | sideRight
	sidesVertical   = sideTop | sideBottom
	sidesAll        = sidesHorizontal | sidesVertical
)

func (c *column) setPadding(n int, s side) {
	if s&sideLeft != 0 {
		c.padLeft = n
	}
	if s&sideRight != 0 {
		c.padRight = n
	}
	if s&sideTop != 0 {
		c.padTop = n
	}
	if s&sideBottom != 0 {
		c.padBottom = n
	}
}

func (t *Table) setPadding(i, n int, s side) error {
	c, err := t.column(i)
	if err != nil {
		return err
	}
	if err := nonNegative("padding", n); err != nil {
		return err
	}
	c.setPadding(n, s)
	if s&sidesHorizontal != 0 {
		t.invalidate()
	}
	return t.checkSpace()
}

func (t *Table) setPaddingAll(n int, s side) error {
	if err := nonNegative("padding", n); err != nil {
		return err
	}
	for i := range t.columns {
		t.columns[i].setPadding(n, s)
	}
	if s&sidesHorizontal != 0 {
		t.invalidate()
	}
	return t.checkSpace()
}

// SetPadding pads column i by n on every side: characters left and right,
// lines above and below.
func (t *Table) SetPadding(i, n int) error { return t.setPadding(i, n, sidesAll) }

// SetPaddingAll pads every column by n on every side.
func (t *Table) SetPaddingAll(n int) error { return t.setPaddingAll(n, sidesAll) }

// SetPaddingHorizontal pads column i by n characters left and right.
func (t *Table) SetPaddingHorizontal(i, n int) error { return t.setPadding(i, n, sidesHorizontal) }

// SetPaddingHorizontalAll pads every column by n characters left and right.
func (t *Table) SetPaddingHorizontalAll(n int) error { return t.setPaddingAll(n, sidesHorizontal) }

// SetPaddingVertical pads column i by n lines above and below.
func (t *Table) SetPaddingVertical(i, n int) error { return t.setPadding(i, n, sidesVertical) }

// SetPaddingVerticalAll pads every column by n lines above and below.
func (t *Table) SetPaddingVerticalAll(n int) error { return t.setPaddingAll(n, sidesVertical) }

// SetPaddingLeft pads column i by n characters before the text.
func (t *Table) SetPaddingLeft(i, n int) error { return t.setPadding(i, n, sideLeft) }

// SetPaddingLeftAll pads every column by n characters before the text.
func (t *Table) SetPaddingLeftAll(n int) error { return t.setPaddingAll(n, sideLeft) }

// SetPaddingRight pads column i by n characters after the text.
func (t *Table) SetPaddingRight(i, n int) error { return t.setPadding(i, n, sideRight) }

// SetPaddingRightAll pads every column by n characters after the text.
func (t *Table) SetPaddingRightAll(n int) error { return t.setPaddingAll(n, sideRight) }

// SetPaddingTop pads column i by n lines above the text.
func (t *Table) SetPaddingTop(i, n int) error { return t.setPadding(i, n, sideTop) }

// SetPaddingTopAll pads every column by n lines above the text.
func (t *Table) SetPaddingTopAll(n int) error { return t.setPaddingAll(n, sideTop) }

// SetPaddingBottom pads column i by n lines below the text.
func (t *Table) SetPaddingBottom(i, n int) error { return t.setPadding(i, n, sideBottom) }

// SetPaddingBottomAll pads every column by n lines below the text.
func (t *Table) SetPaddingBottomAll(n int) error { return t.setPaddingAll(n, sideBottom) }
