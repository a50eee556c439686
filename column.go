package tabula

import (
	"fmt"
	"math"
	"strings"
)

// Alignment controls horizontal text alignment within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify // fill non-final lines of a cell, left align the last
)

var alignmentNames = map[Alignment]string{
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
	AlignJustify: "justify",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	s, ok := alignmentNames[a]
	if !ok {
		return nil, fmt.Errorf("%w: alignment %d", ErrInvalidValue, int(a))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlignment converts a name such as "right" into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
}

// VerticalAlignment controls where a cell's text sits when other cells in
// the same row wrap onto more lines.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var verticalAlignmentNames = map[VerticalAlignment]string{
	AlignTop:    "top",
	AlignMiddle: "middle",
	AlignBottom: "bottom",
}

// String returns the vertical alignment name.
func (v VerticalAlignment) String() string {
	if s, ok := verticalAlignmentNames[v]; ok {
		return s
	}
	return fmt.Sprintf("VerticalAlignment(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v VerticalAlignment) MarshalText() ([]byte, error) {
	s, ok := verticalAlignmentNames[v]
	if !ok {
		return nil, fmt.Errorf("%w: vertical alignment %d", ErrInvalidValue, int(v))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VerticalAlignment) UnmarshalText(b []byte) error {
	p, err := ParseVerticalAlignment(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVerticalAlignment converts a name such as "middle" into a
// VerticalAlignment.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	for v, name := range verticalAlignmentNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return AlignTop, fmt.Errorf("%w: vertical alignment %q", ErrInvalidValue, s)
}

// LowestPriority is the default column priority. Columns with a larger
// priority number give up space before columns with a smaller one.
const LowestPriority = math.MaxInt

// noLimit marks an unset min or max width.
const noLimit = -1

type column struct {
	align    Alignment
	valign   VerticalAlignment
	margin   int
	width    int
	priority int
	minWidth int
	maxWidth int

	padLeft, padRight, padTop, padBottom int

	hyphenate bool
	adjusted  bool
}

func newColumn() column {
	return column{
		margin:    1,
		priority:  LowestPriority,
		minWidth:  noLimit,
		maxWidth:  noLimit,
		hyphenate: true,
	}
}

func (c *column) horizontalPadding() int { return c.padLeft + c.padRight }

func (c *column) verticalPadding() int { return c.padTop + c.padBottom }

// minimumWidth is the larger of the configured min width and the
// horizontal padding.
func (c *column) minimumWidth() int {
	m := c.horizontalPadding()
	if c.minWidth > m {
		return c.minWidth
	}
	return m
}

func (c *column) effectiveWidth() int {
	w := c.width
	if c.maxWidth != noLimit && c.maxWidth < w {
		w = c.maxWidth
	}
	if m := c.minimumWidth(); m > w {
		return m
	}
	return w
}

func (c *column) outerWidth() int { return c.margin + c.effectiveWidth() }

// minimalOuterWidth assumes every column holds at least one character of
// content.
func (c *column) minimalOuterWidth() int {
	w := c.horizontalPadding() + 1
	if c.minWidth > w {
		w = c.minWidth
	}
	return c.margin + w
}

func (c *column) shrinkable() bool { return c.minimumWidth() < c.width }

func (c *column) expandable() bool { return c.maxWidth == noLimit || c.maxWidth > c.width }

// shrink moves the width to target but never below the minimum.
func (c *column) shrink(target int) {
	if m := c.minimumWidth(); m > target {
		target = m
	}
	c.width = target
}

// shrinkBy reports whether the width changed. A column keeps room for at
// least one character of content.
func (c *column) shrinkBy(amount int) bool {
	target := max(c.width-amount, c.horizontalPadding()+1, c.minimumWidth())
	if target >= c.width {
		return false
	}
	c.width = target
	return true
}

// expand grows the width toward target, capped by the max width and
// raised to the minimum. It reports whether the width changed.
func (c *column) expand(target int) bool {
	if target <= c.width {
		return false
	}
	switch {
	case c.maxWidth != noLimit && c.maxWidth < target:
		target = c.maxWidth
	case c.minimumWidth() > target:
		target = c.minimumWidth()
	}
	if target == c.width {
		return false
	}
	c.width = target
	return true
}

func (c *column) expandBy(amount int) bool { return c.expand(c.width + amount) }

func (c *column) blank() string { return strings.Repeat(" ", c.effectiveWidth()) }

func (c *column) marginText() string { return strings.Repeat(" ", c.margin) }
