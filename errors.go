package tabula

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInsufficientColumns = errors.New("insufficient columns")
	ErrInsufficientSpace   = errors.New("insufficient space")
	ErrInconsistentColumns = errors.New("inconsistent columns")
	ErrMinGreaterThanMax   = errors.New("minimum width greater than maximum width")
	ErrOutOfBounds         = errors.New("column index out of bounds")
	ErrInvalidValue        = errors.New("invalid value")
)

// RowError reports a data row whose cell count does not match the table.
// It matches [ErrInconsistentColumns] with errors.Is.
type RowError struct {
	Row  int // index of the offending row
	Len  int // number of cells in the row
	Want int // number of columns in the table
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d has %d cells, want %d", ErrInconsistentColumns, e.Row, e.Len, e.Want)
}

func (e *RowError) Unwrap() error { return ErrInconsistentColumns }

// ColumnError ties a configuration failure to the column that caused it.
type ColumnError struct {
	Column int
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }
