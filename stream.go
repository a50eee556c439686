package tabula

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Write lays out rows and writes one line per physical line to w.
func (t *Table) Write(w io.Writer, rows [][]string) error {
	lines, err := t.Tabulate(rows)
	if err != nil {
		return err
	}
	return writeLines(w, lines)
}

// WriteIter lays out rows from an iterator and writes them to w as they
// arrive, batch rows at a time. The first batch resolves the layout
// unless it is already cached; later batches reuse it so columns line up
// across the whole stream. A batch of zero or less collects every row
// before writing.
//
// Row spacing is written between batches as well as between rows, so a
// stream that fits the first batch's layout prints exactly what
// [Table.Write] would.
func (t *Table) WriteIter(w io.Writer, seq iter.Seq[[]string], batch int) error {
	var (
		pending   [][]string
		wrote     bool
		streamErr error
	)
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if wrote && t.rowSpacing > 0 {
			if _, err := io.WriteString(w, strings.Repeat("\n", t.rowSpacing)); err != nil {
				return err
			}
		}
		if err := t.Write(w, pending); err != nil {
			return err
		}
		wrote = true
		pending = pending[:0]
		return nil
	}
	seq(func(row []string) bool {
		pending = append(pending, row)
		if batch > 0 && len(pending) >= batch {
			if err := flush(); err != nil {
				streamErr = err
				return false
			}
		}
		return true
	})
	if streamErr != nil {
		return streamErr
	}
	return flush()
}

// WriteChan lays out rows from a channel and writes them to w.
// It is a thin wrapper around [Table.WriteIter].
func (t *Table) WriteChan(w io.Writer, ch <-chan []string, batch int) error {
	return t.WriteIter(w, chanToIter(ch), batch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
