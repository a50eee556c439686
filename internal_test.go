package tabula

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnWidths(t *testing.T) {
	t.Parallel()
	c := newColumn()
	assert.Equal(t, 0, c.minimumWidth())
	assert.Equal(t, 2, c.minimalOuterWidth())

	c.padLeft, c.padRight = 1, 2
	assert.Equal(t, 3, c.minimumWidth())
	assert.Equal(t, 3, c.effectiveWidth(), "raised to padding")
	assert.Equal(t, 5, c.minimalOuterWidth())

	c.minWidth = 6
	assert.Equal(t, 6, c.minimumWidth())
	assert.Equal(t, 7, c.minimalOuterWidth())

	c.width, c.maxWidth = 10, 8
	assert.Equal(t, 8, c.effectiveWidth(), "capped by max")
	assert.Equal(t, 9, c.outerWidth())
}

func TestColumnExpand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		width, min, max int
		target          int
		want            int
		changed         bool
	}{
		"grows":            {width: 2, min: noLimit, max: noLimit, target: 5, want: 5, changed: true},
		"never shrinks":    {width: 5, min: noLimit, max: noLimit, target: 3, want: 5},
		"capped":           {width: 2, min: noLimit, max: 4, target: 9, want: 4, changed: true},
		"at cap":           {width: 4, min: noLimit, max: 4, target: 9, want: 4},
		"raised to min":    {width: 0, min: 6, max: noLimit, target: 2, want: 6, changed: true},
		"min and max hold": {width: 0, min: 3, max: 3, target: 7, want: 3, changed: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := newColumn()
			c.width, c.minWidth, c.maxWidth = tt.width, tt.min, tt.max
			assert.Equal(t, tt.changed, c.expand(tt.target))
			assert.Equal(t, tt.want, c.width)
		})
	}
}

func TestColumnShrinkBy(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		width, min, pad int
		amount          int
		want            int
		changed         bool
	}{
		"by amount":          {width: 10, min: noLimit, amount: 3, want: 7, changed: true},
		"keeps one":          {width: 3, min: noLimit, amount: 9, want: 1, changed: true},
		"at one":             {width: 1, min: noLimit, amount: 1, want: 1},
		"stops at min":       {width: 8, min: 6, amount: 5, want: 6, changed: true},
		"keeps room in pad":  {width: 5, min: noLimit, pad: 2, amount: 5, want: 3, changed: true},
		"empty padded stays": {width: 2, min: noLimit, pad: 2, amount: 1, want: 2},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := newColumn()
			c.width, c.minWidth = tt.width, tt.min
			c.padLeft = tt.pad
			assert.Equal(t, tt.changed, c.shrinkBy(tt.amount))
			assert.Equal(t, tt.want, c.width)
		})
	}
}

func TestMeasureSplit(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		measure    Measure
		s          string
		limit      int
		head, tail string
	}{
		"runes":             {measure: MeasureRunes, s: "abcdef", limit: 4, head: "abcd", tail: "ef"},
		"multibyte runes":   {measure: MeasureRunes, s: "ßßß", limit: 1, head: "ß", tail: "ßß"},
		"whole":             {measure: MeasureRunes, s: "abc", limit: 5, head: "abc"},
		"zero takes one":    {measure: MeasureRunes, s: "abc", limit: 0, head: "a", tail: "bc"},
		"display":           {measure: MeasureDisplay, s: "你好世界", limit: 5, head: "你好", tail: "世界"},
		"display takes one": {measure: MeasureDisplay, s: "你好", limit: 1, head: "你", tail: "好"},
		"display mixed":     {measure: MeasureDisplay, s: "a你b", limit: 3, head: "a你", tail: "b"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			head, tail := tt.measure.split(tt.s, tt.limit)
			assert.Equal(t, tt.head, head)
			assert.Equal(t, tt.tail, tail)
		})
	}
}

func TestMeasureWords(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, MeasureRunes.normalizedWidth("  ab \t\n cd  e "))
	assert.Equal(t, 0, MeasureRunes.normalizedWidth(" \t "))
	assert.Equal(t, 4, MeasureRunes.longestWord("a abcd ab"))
	assert.Equal(t, 0, MeasureRunes.longestWord(""))
	assert.Equal(t, 4, MeasureDisplay.longestWord("ab 你好"))
	assert.Equal(t, 2, MeasureRunes.longestWord("ab 你好"))
}

func TestNormalizeCopiesShortRows(t *testing.T) {
	t.Parallel()
	tbl := &Table{columns: []column{newColumn(), newColumn()}, ragged: true}
	rows := [][]string{{"a", "b"}, {"c"}}
	got, err := tbl.normalize(rows)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, got)
	assert.Equal(t, []string{"c"}, rows[1])
}

func newResolver(widths []int, priorities []int, viewport int) *resolver {
	r := &resolver{viewport: viewport, log: logr.Discard()}
	for i, w := range widths {
		c := newColumn()
		if i == 0 {
			c.margin = 0
		}
		c.width = w
		c.priority = priorities[i]
		r.columns = append(r.columns, c)
	}
	return r
}

func widthsOf(columns []column) []int {
	out := make([]int, len(columns))
	for i := range columns {
		out[i] = columns[i].width
	}
	return out
}

func TestResolverTruncate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		widths     []int
		priorities []int
		viewport   int
		want       []int
	}{
		"least important first": {
			widths:     []int{10, 10},
			priorities: []int{0, 1},
			viewport:   15,
			want:       []int{10, 4},
		},
		"even share within tier": {
			widths:     []int{10, 10, 10},
			priorities: []int{1, 1, 1},
			viewport:   23,
			want:       []int{7, 7, 7},
		},
		"small excess takes one from each": {
			widths:     []int{10, 10, 10},
			priorities: []int{1, 1, 1},
			viewport:   30,
			want:       []int{9, 9, 9},
		},
		"moves to next tier": {
			widths:     []int{10, 4},
			priorities: []int{0, 1},
			viewport:   8,
			want:       []int{6, 1},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := newResolver(tt.widths, tt.priorities, tt.viewport)
			r.truncate()
			assert.Equal(t, tt.want, widthsOf(r.columns))
		})
	}
}

func TestResolverGiveBack(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		widths     []int
		priorities []int
		max        []int
		modified   []int
		viewport   int
		want       []int
	}{
		"most important first": {
			widths:     []int{3, 3},
			priorities: []int{1, 0},
			max:        []int{noLimit, noLimit},
			modified:   []int{0, 1},
			viewport:   12,
			want:       []int{3, 8},
		},
		"one each when short": {
			widths:     []int{3, 3, 3},
			priorities: []int{0, 0, 0},
			max:        []int{noLimit, noLimit, noLimit},
			modified:   []int{0, 1, 2},
			viewport:   13,
			want:       []int{4, 4, 3},
		},
		"capped column passes space on": {
			widths:     []int{3, 3},
			priorities: []int{0, 1},
			max:        []int{5, noLimit},
			modified:   []int{0, 1},
			viewport:   12,
			want:       []int{5, 6},
		},
		"unmodified columns keep width": {
			widths:     []int{3, 3},
			priorities: []int{0, 0},
			max:        []int{noLimit, noLimit},
			modified:   []int{1},
			viewport:   10,
			want:       []int{3, 6},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := newResolver(tt.widths, tt.priorities, tt.viewport)
			for i, m := range tt.max {
				r.columns[i].maxWidth = m
			}
			r.giveBack(tt.modified)
			assert.Equal(t, tt.want, widthsOf(r.columns))
		})
	}
}

func TestJustify(t *testing.T) {
	t.Parallel()
	tbl := &Table{}
	assert.Equal(t, "aa  bb  cc", tbl.justify([]string{"aa", "bb", "cc"}, 10))
	assert.Equal(t, "aaa  bb cc", tbl.justify([]string{"aaa", "bb", "cc"}, 10))
	assert.Equal(t, "a b", tbl.justify([]string{"a", "b"}, 2), "never less than one space")
}

func TestAlignVertically(t *testing.T) {
	t.Parallel()
	text := func(s string) piece { return piece{text: s} }
	blank := piece{text: " ", blank: true}
	grid := func() [][]piece {
		return [][]piece{{text("a")}, {blank}, {blank}, {blank}, {blank}}
	}
	tests := map[string]struct {
		valign    VerticalAlignment
		padTop    int
		padBottom int
		want      []piece
	}{
		"top":               {valign: AlignTop, want: []piece{text("a"), blank, blank, blank, blank}},
		"middle":            {valign: AlignMiddle, want: []piece{blank, blank, text("a"), blank, blank}},
		"bottom":            {valign: AlignBottom, want: []piece{blank, blank, blank, blank, text("a")}},
		"bottom in padding": {valign: AlignBottom, padBottom: 2, want: []piece{blank, blank, text("a"), blank, blank}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := newColumn()
			c.valign, c.padTop, c.padBottom = tt.valign, tt.padTop, tt.padBottom
			g := grid()
			alignVertically(g, 0, &c)
			got := make([]piece, len(g))
			for i := range g {
				got[i] = g[i][0]
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignVerticallyAllBlank(t *testing.T) {
	t.Parallel()
	blank := piece{text: " ", blank: true}
	g := [][]piece{{blank}, {blank}}
	c := newColumn()
	c.valign = AlignBottom
	alignVertically(g, 0, &c)
	assert.Equal(t, [][]piece{{blank}, {blank}}, g)
}

func TestLineString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Line{{Margin: "     "}}.String())
	assert.Equal(t, "a b", Line{{Text: "a"}, {Margin: " ", Text: "b"}}.String())
	assert.Equal(t, " ", Line{{Margin: " ", Text: ""}, {Text: ""}}.String())
}

func TestChanToIterStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, <-ch)
}
