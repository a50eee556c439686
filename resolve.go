package tabula

import (
	"fmt"
	"slices"

	"github.com/go-logr/logr"
)

// Resolve computes column widths that fit rows into the viewport and caches
// them for later calls to [Table.Compose] and [Table.Tabulate]. Unlike
// those methods it always recomputes, starting from the current widths;
// call [Table.Reset] first to start from scratch.
//
// On failure the previously cached widths are left untouched. Resolving
// no rows does nothing.
func (t *Table) Resolve(rows [][]string) error {
	rows, err := t.normalize(rows)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return t.resolve(rows)
}

// normalize validates row lengths, padding short rows when the table
// accepts ragged input. The caller's rows are never modified.
func (t *Table) normalize(rows [][]string) ([][]string, error) {
	want := len(t.columns)
	out := rows
	copied := false
	for i, row := range rows {
		if len(row) == want {
			continue
		}
		if len(row) > want || !t.ragged {
			return nil, &RowError{Row: i, Len: len(row), Want: want}
		}
		if !copied {
			out = slices.Clone(rows)
			copied = true
		}
		padded := make([]string, want)
		copy(padded, row)
		out[i] = padded
	}
	return out, nil
}

func (t *Table) resolve(rows [][]string) error {
	r := &resolver{
		columns:  slices.Clone(t.columns),
		rows:     rows,
		viewport: t.width,
		measure:  t.measure,
		log:      t.log,
	}
	if err := r.run(); err != nil {
		return err
	}
	for i := range r.columns {
		r.columns[i].adjusted = true
	}
	t.columns = r.columns
	t.log.V(1).Info("resolved layout", "widths", t.Widths(), "required", t.requiredWidth(), "viewport", t.width)
	return nil
}

// resolver works on its own copy of the column arena so a failed pass
// leaves the table untouched.
type resolver struct {
	columns  []column
	rows     [][]string
	viewport int
	measure  Measure
	log      logr.Logger
}

func (r *resolver) required() int { return requiredWidth(r.columns) }

func (r *resolver) run() error {
	r.naturalFit()
	if r.required() <= r.viewport {
		r.log.V(1).Info("natural widths fit", "required", r.required(), "viewport", r.viewport)
		return nil
	}

	modified := r.shrinkToWords()
	switch required := r.required(); {
	case required > r.viewport:
		r.truncate()
		if required := r.required(); required > r.viewport {
			return fmt.Errorf("%w: table needs %d characters after truncation, viewport has %d", ErrInsufficientSpace, required, r.viewport)
		}
	case required < r.viewport:
		r.giveBack(modified)
	}
	return nil
}

// naturalFit widens every column to its widest cell as it would appear on
// a single line.
func (r *resolver) naturalFit() {
	for i := range r.columns {
		c := &r.columns[i]
		for _, row := range r.rows {
			c.expand(r.measure.normalizedWidth(row[i]) + c.horizontalPadding())
		}
	}
}

// priorities returns the distinct priorities of the given columns, least
// important first.
func (r *resolver) priorities(indices []int) []int {
	var ps []int
	for _, i := range indices {
		ps = append(ps, r.columns[i].priority)
	}
	slices.Sort(ps)
	ps = slices.Compact(ps)
	slices.Reverse(ps)
	return ps
}

func (r *resolver) indices(keep func(c *column) bool) []int {
	var out []int
	for i := range r.columns {
		if keep(&r.columns[i]) {
			out = append(out, i)
		}
	}
	return out
}

// shrinkToWords narrows columns, least important first, to the widest word
// they hold, stopping once the table fits. It returns the columns it
// touched.
func (r *resolver) shrinkToWords() []int {
	all := r.indices(func(*column) bool { return true })
	var modified []int
	for _, p := range r.priorities(all) {
		for i := range r.columns {
			c := &r.columns[i]
			if c.priority != p || !c.shrinkable() {
				continue
			}
			modified = append(modified, i)
			c.shrink(0)
			for _, row := range r.rows {
				c.expand(r.measure.longestWord(row[i]) + c.horizontalPadding())
			}
			r.log.V(2).Info("shrunk column to longest word", "column", i, "width", c.width)
		}
		if r.required() <= r.viewport {
			break
		}
	}
	r.log.V(1).Info("shrink pass", "required", r.required(), "viewport", r.viewport, "modified", modified)
	return modified
}

// truncate forces shrinkable columns narrower than their widest word,
// sharing the excess evenly within each priority tier. Words that no
// longer fit are split when the row is composed.
func (r *resolver) truncate() {
	candidates := r.indices((*column).shrinkable)
	for _, p := range r.priorities(candidates) {
		var group []int
		for _, i := range candidates {
			if r.columns[i].priority == p {
				group = append(group, i)
			}
		}
		for len(group) > 0 {
			excess := r.required() - r.viewport
			if excess <= 0 {
				r.log.V(1).Info("truncate pass", "required", r.required(), "viewport", r.viewport)
				return
			}
			share := 1
			if excess > len(group) {
				share = excess / len(group)
			}
			kept := group[:0]
			for _, i := range group {
				if r.columns[i].shrinkBy(share) {
					kept = append(kept, i)
				}
			}
			group = kept
		}
	}
	r.log.V(1).Info("truncate pass", "required", r.required(), "viewport", r.viewport)
}

// giveBack hands unused viewport space to the columns shrunk earlier, most
// important first.
func (r *resolver) giveBack(modified []int) {
	modified = slices.DeleteFunc(modified, func(i int) bool { return !r.columns[i].expandable() })
	for len(modified) > 0 && r.required() < r.viewport {
		top := r.columns[modified[0]].priority
		for _, i := range modified {
			top = min(top, r.columns[i].priority)
		}
		var winners []int
		for _, i := range modified {
			if r.columns[i].priority == top {
				winners = append(winners, i)
			}
		}

		if surplus := r.viewport - r.required(); surplus <= len(winners) {
			for _, i := range winners[:surplus] {
				r.columns[i].expandBy(1)
			}
			break
		}
		for {
			surplus := r.viewport - r.required()
			if surplus <= 0 {
				break
			}
			winners = slices.DeleteFunc(winners, func(i int) bool { return !r.columns[i].expandable() })
			if len(winners) == 0 {
				break
			}
			if surplus <= len(winners) {
				for _, i := range winners[:surplus] {
					r.columns[i].expandBy(1)
				}
				break
			}
			share := surplus / len(winners)
			changed := false
			for _, i := range winners {
				if r.columns[i].expandBy(share) {
					changed = true
				}
			}
			if !changed {
				break
			}
		}
		modified = slices.DeleteFunc(modified, func(i int) bool { return r.columns[i].priority == top })
	}
	r.log.V(1).Info("give-back pass", "required", r.required(), "viewport", r.viewport)
}
