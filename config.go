package tabula

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is a serializable description of a table.
//
//	width: 80
//	row_spacing: 1
//	count: 3
//	default:
//	  align: right
//	columns:
//	  - priority: 0
//	    min_width: 10
//	  - padding: {left: 1, right: 1}
type Config struct {
	Width      int            `yaml:"width" json:"width"`
	RowSpacing int            `yaml:"row_spacing,omitempty" json:"row_spacing,omitempty"`
	Count      int            `yaml:"count,omitempty" json:"count,omitempty"`
	Default    ColumnConfig   `yaml:"default,omitempty" json:"default,omitzero"`
	Columns    []ColumnConfig `yaml:"columns,omitempty" json:"columns,omitempty"`
}

// ColumnConfig holds the settings of one column. Nil fields keep their
// current value.
type ColumnConfig struct {
	Priority      *int               `yaml:"priority,omitempty" json:"priority,omitempty"`
	MinWidth      *int               `yaml:"min_width,omitempty" json:"min_width,omitempty"`
	MaxWidth      *int               `yaml:"max_width,omitempty" json:"max_width,omitempty"`
	Align         *Alignment         `yaml:"align,omitempty" json:"align,omitempty"`
	VerticalAlign *VerticalAlignment `yaml:"vertical_align,omitempty" json:"vertical_align,omitempty"`
	Margin        *int               `yaml:"margin,omitempty" json:"margin,omitempty"`
	Hyphenate     *bool              `yaml:"hyphenate,omitempty" json:"hyphenate,omitempty"`
	Padding       *Padding           `yaml:"padding,omitempty" json:"padding,omitempty"`
}

// Padding is the space kept clear around a cell's text, in characters
// left and right and in lines above and below.
type Padding struct {
	Left   int `yaml:"left,omitempty" json:"left,omitempty"`
	Right  int `yaml:"right,omitempty" json:"right,omitempty"`
	Top    int `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom int `yaml:"bottom,omitempty" json:"bottom,omitempty"`
}

// LoadConfig decodes a YAML (or JSON) table description. Unknown keys are
// rejected. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a table from cfg. The table has
// max(cfg.Count, len(cfg.Columns)) columns. cfg.Default is applied to every
// column, except that its margin skips the first column, and then each
// entry of cfg.Columns overrides the column at the same index.
func NewFromConfig(cfg Config, opts ...Option) (*Table, error) {
	t, err := New(max(cfg.Count, len(cfg.Columns)), cfg.Width, opts...)
	if err != nil {
		return nil, err
	}
	if err := t.SetRowSpacing(cfg.RowSpacing); err != nil {
		return nil, err
	}
	for i := range t.columns {
		def := cfg.Default
		if i == 0 {
			def.Margin = nil
		}
		if err := t.apply(i, def); err != nil {
			return nil, err
		}
	}
	for i, cc := range cfg.Columns {
		if err := t.apply(i, cc); err != nil {
			return nil, err
		}
	}
	if err := t.checkSpace(); err != nil {
		return nil, err
	}
	return t, nil
}

// apply defers space checks to the caller since a later setting may
// release the space an earlier one claimed.
func (t *Table) apply(i int, cc ColumnConfig) error {
	steps := []func() error{}
	if cc.Margin != nil {
		steps = append(steps, func() error { return t.SetLeftMargin(i, *cc.Margin) })
	}
	if cc.Priority != nil {
		steps = append(steps, func() error { return t.SetPriority(i, *cc.Priority) })
	}
	if cc.MinWidth != nil && cc.MaxWidth != nil {
		steps = append(steps, func() error { return t.ClearLimits(i) })
	}
	if cc.MaxWidth != nil {
		steps = append(steps, func() error { return t.SetMaxWidth(i, *cc.MaxWidth) })
	}
	if cc.MinWidth != nil {
		steps = append(steps, func() error { return t.SetMinWidth(i, *cc.MinWidth) })
	}
	if cc.Align != nil {
		steps = append(steps, func() error { return t.SetAlignment(i, *cc.Align) })
	}
	if cc.VerticalAlign != nil {
		steps = append(steps, func() error { return t.SetVerticalAlignment(i, *cc.VerticalAlign) })
	}
	if cc.Hyphenate != nil {
		steps = append(steps, func() error { return t.SetHyphenate(i, *cc.Hyphenate) })
	}
	if p := cc.Padding; p != nil {
		steps = append(steps,
			func() error { return t.SetPaddingLeft(i, p.Left) },
			func() error { return t.SetPaddingRight(i, p.Right) },
			func() error { return t.SetPaddingTop(i, p.Top) },
			func() error { return t.SetPaddingBottom(i, p.Bottom) },
		)
	}
	for _, step := range steps {
		if err := step(); err != nil && !errors.Is(err, ErrInsufficientSpace) {
			return err
		}
	}
	return nil
}

// Config returns a snapshot of the table's settings that NewFromConfig
// turns back into an equivalent table. Cached widths are not included.
func (t *Table) Config() Config {
	cfg := Config{
		Width:      t.width,
		RowSpacing: t.rowSpacing,
		Count:      len(t.columns),
		Columns:    make([]ColumnConfig, len(t.columns)),
	}
	for i := range t.columns {
		cfg.Columns[i] = t.columns[i].config()
	}
	return cfg
}

func (c *column) config() ColumnConfig {
	cc := ColumnConfig{
		Align:         ptr(c.align),
		VerticalAlign: ptr(c.valign),
		Margin:        ptr(c.margin),
		Hyphenate:     ptr(c.hyphenate),
	}
	if c.priority != LowestPriority {
		cc.Priority = ptr(c.priority)
	}
	if c.minWidth != noLimit {
		cc.MinWidth = ptr(c.minWidth)
	}
	if c.maxWidth != noLimit {
		cc.MaxWidth = ptr(c.maxWidth)
	}
	if p := (Padding{Left: c.padLeft, Right: c.padRight, Top: c.padTop, Bottom: c.padBottom}); p != (Padding{}) {
		cc.Padding = &p
	}
	return cc
}

func ptr[T any](v T) *T { return &v }

// WriteYAML encodes cfg as YAML.
func (cfg Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// WriteJSON encodes cfg as indented JSON.
func (cfg Config) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
