package tabula

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Table lays out rows of text in a fixed-width viewport. It holds the
// per-column configuration and caches the column widths chosen by the
// last successful resolution until a configuration change or [Table.Reset]
// invalidates them.
//
// A Table is not safe for concurrent use.
type Table struct {
	columns    []column
	width      int
	rowSpacing int

	measure Measure
	ragged  bool
	log     logr.Logger
}

// Option configures a Table at construction.
type Option func(*Table)

// WithLogger sets the logger used to report layout decisions. Resolution
// passes are logged at V(1) and per-column moves at V(2).
func WithLogger(log logr.Logger) Option {
	return func(t *Table) { t.log = log }
}

// WithMeasure selects how text width is counted. The default is
// [MeasureRunes].
func WithMeasure(m Measure) Option {
	return func(t *Table) { t.measure = m }
}

// WithRaggedRows pads rows with fewer cells than the table has columns
// with empty cells instead of rejecting them. Rows with too many cells are
// still rejected.
func WithRaggedRows() Option {
	return func(t *Table) { t.ragged = true }
}

// New creates a table of the given number of columns for a viewport of
// the given width. Columns start left aligned with no width limits, the
// lowest priority, and a left margin of one space, except the first
// column whose margin is zero.
func New(columns, width int, opts ...Option) (*Table, error) {
	if columns <= 0 {
		return nil, ErrInsufficientColumns
	}
	t := &Table{
		columns: make([]column, columns),
		width:   width,
		log:     logr.Discard(),
	}
	for i := range t.columns {
		t.columns[i] = newColumn()
	}
	t.columns[0].margin = 0
	for _, opt := range opts {
		opt(t)
	}
	if err := t.checkSpace(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of columns.
func (t *Table) Len() int { return len(t.columns) }

// Viewport returns the configured viewport width.
func (t *Table) Viewport() int { return t.width }

// RowSpacing returns the number of blank lines inserted between rows.
func (t *Table) RowSpacing() int { return t.rowSpacing }

// CurrentWidth returns the width the table occupies once its layout has
// been resolved. The second result is false before resolution.
func (t *Table) CurrentWidth() (int, bool) {
	if !t.adjusted() {
		return 0, false
	}
	return t.requiredWidth(), true
}

// Widths returns the resolved content width of each column, excluding
// margins, or nil if the layout has not been resolved.
func (t *Table) Widths() []int {
	if !t.adjusted() {
		return nil
	}
	widths := make([]int, len(t.columns))
	for i := range t.columns {
		widths[i] = t.columns[i].effectiveWidth()
	}
	return widths
}

// Reset drops the cached layout. The next composition resolves column
// widths from scratch against its own data.
func (t *Table) Reset() {
	for i := range t.columns {
		c := &t.columns[i]
		c.width = c.minimumWidth()
		c.adjusted = false
	}
}

func (t *Table) adjusted() bool {
	for i := range t.columns {
		if !t.columns[i].adjusted {
			return false
		}
	}
	return true
}

func (t *Table) invalidate() {
	for i := range t.columns {
		t.columns[i].adjusted = false
	}
}

func (t *Table) minimalWidth() int {
	n := 0
	for i := range t.columns {
		n += t.columns[i].minimalOuterWidth()
	}
	return n
}

func (t *Table) requiredWidth() int {
	return requiredWidth(t.columns)
}

func requiredWidth(columns []column) int {
	n := 0
	for i := range columns {
		n += columns[i].outerWidth()
	}
	return n
}

func (t *Table) maximumVerticalPadding() int {
	p := 0
	for i := range t.columns {
		if v := t.columns[i].verticalPadding(); v > p {
			p = v
		}
	}
	return p
}

func (t *Table) checkSpace() error {
	if need := t.minimalWidth(); need > t.width {
		return fmt.Errorf("%w: columns need at least %d characters, viewport has %d", ErrInsufficientSpace, need, t.width)
	}
	return nil
}

func (t *Table) column(i int) (*column, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, &ColumnError{Column: i, Err: ErrOutOfBounds}
	}
	return &t.columns[i], nil
}

func nonNegative(what string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, what, v)
	}
	return nil
}

// positive guards widths that cap a column, which must leave room for one
// character.
func positive(what string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidValue, what, v)
	}
	return nil
}
