// Package tabula lays out rows of text as a table of aligned columns that
// fits a fixed viewport width.
//
// A [Table] holds a fixed number of columns and a viewport width. Each
// column carries a priority, optional min and max widths, a left margin,
// padding, horizontal and vertical alignment, and a hyphenation flag:
//
//	t, err := tabula.New(3, 80)
//	if err != nil { ... }
//	t.SetPriority(0, 0)
//	t.SetAlignment(2, tabula.AlignRight)
//	lines, err := t.Tabulate(rows)
//
// # Layout
//
// [Table.Resolve] computes column widths from the content. Every column
// starts at its natural width. When the row does not fit, columns give up
// space least important first (a larger priority number is less
// important), wrapping at word boundaries and hyphenating words that are
// wider than their column. Space freed by a column that ends up narrower
// than its share is given back to the most important columns.
//
// The resolved widths are cached until a setter that affects layout is
// called or [Table.Reset] clears them. [Table.Tabulate] and
// [Table.Compose] resolve on first use and reuse the cached layout after
// that, which keeps the columns of a streamed table in place.
//
// # Lines and Fragments
//
// [Table.Tabulate] returns one string per output line. [Table.Compose]
// returns the same lines split into per-column [Fragment] values so a
// caller can style cell text without touching the margins; see
// [Decorate] and [Flatten].
//
// # Streaming
//
// [Table.WriteIter] and [Table.WriteChan] lay out rows in batches. The
// first batch fixes the widths and later batches are wrapped to them.
//
// # Configuration
//
// A [Config] describes a table in YAML:
//
//	width: 80
//	columns:
//	  - priority: 0
//	    min_width: 10
//	  - align: right
//
// Use [LoadConfig] and [NewFromConfig] to build a table from it and
// [Table.Config] to take a snapshot of the current settings.
//
// # Errors
//
// Failures wrap one of the package sentinels so callers can use
// [errors.Is]. A row with the wrong number of cells returns a [RowError];
// a setter given a bad value returns a [ColumnError].
package tabula
