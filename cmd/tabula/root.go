package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabula"
	"github.com/bjaus/tabula/internal/logger"
)

type options struct {
	input        string
	config       string
	width        int
	align        string
	valign       string
	spacing      int
	batch        int
	ragged       bool
	displayWidth bool
	color        bool
	printConfig  bool
	debug        bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "tabula [file]",
		Short: "Lay out rows of text as a table that fits the terminal",
		Long: `tabula reads rows from a file or stdin and prints them as a table of
aligned columns. Columns that do not fit are wrapped, least important
first, and long words are hyphenated.

Column priorities, width limits, alignment and padding come from a YAML
config file; see --config and --print-config.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().SortFlags = false

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input format: csv|tsv|yaml|json (default from file extension, else csv)")
	f.StringVarP(&opts.config, "config", "c", "", "path to a YAML table config")
	f.IntVarP(&opts.width, "width", "w", 0, "viewport width (default: terminal width, $COLUMNS, or 80)")
	f.StringVar(&opts.align, "align", "", "alignment for every column: left|center|right|justify")
	f.StringVar(&opts.valign, "valign", "", "vertical alignment for every column: top|middle|bottom")
	f.IntVar(&opts.spacing, "spacing", 0, "blank lines between rows")
	f.IntVar(&opts.batch, "batch", 0, "size columns from the first N rows and keep that layout for the rest (0 = all rows)")
	f.BoolVar(&opts.ragged, "ragged", false, "pad short rows with empty cells instead of failing")
	f.BoolVar(&opts.displayWidth, "display-width", false, "measure text in terminal cells so wide characters line up")
	f.BoolVar(&opts.color, "color", false, "color each column")
	f.BoolVar(&opts.printConfig, "print-config", false, "print the effective table config as YAML and exit")
	f.BoolVar(&opts.debug, "debug", false, "log layout decisions to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	verbosity := 0
	if opts.debug {
		verbosity = 2
	}
	log, zl := logger.New(cmd.ErrOrStderr(), verbosity)
	defer logger.Sync(zl)

	path := ""
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	format, err := inputFormat(opts.input, path)
	if err != nil {
		return err
	}
	rows, err := readRows(in, format)
	if err != nil {
		return err
	}
	log.V(1).Info("read rows", "format", format, "rows", len(rows), "columns", widest(rows))

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if err := override(cmd.Flags(), &cfg, opts, widest(rows)); err != nil {
		return err
	}

	if max(cfg.Count, len(cfg.Columns)) == 0 {
		return nil
	}

	tableOpts := []tabula.Option{tabula.WithLogger(log)}
	if opts.ragged {
		tableOpts = append(tableOpts, tabula.WithRaggedRows())
	}
	if opts.displayWidth {
		tableOpts = append(tableOpts, tabula.WithMeasure(tabula.MeasureDisplay))
	}
	t, err := tabula.NewFromConfig(cfg, tableOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.printConfig {
		return t.Config().WriteYAML(out)
	}
	return render(out, t, rows, opts)
}

func loadConfig(path string) (tabula.Config, error) {
	if path == "" {
		return tabula.Config{}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return tabula.Config{}, err
	}
	defer file.Close()
	return tabula.LoadConfig(file)
}

// override applies command-line flags on top of the config file. The
// viewport falls back to the terminal width when neither sets it.
func override(flags *pflag.FlagSet, cfg *tabula.Config, opts options, columns int) error {
	switch {
	case flags.Changed("width"):
		cfg.Width = opts.width
	case cfg.Width == 0:
		cfg.Width = detectWidth()
	}
	if flags.Changed("spacing") {
		cfg.RowSpacing = opts.spacing
	}
	cfg.Count = max(cfg.Count, columns)
	if opts.align != "" {
		a, err := tabula.ParseAlignment(opts.align)
		if err != nil {
			return err
		}
		cfg.Default.Align = &a
		for i := range cfg.Columns {
			cfg.Columns[i].Align = nil
		}
	}
	if opts.valign != "" {
		v, err := tabula.ParseVerticalAlignment(opts.valign)
		if err != nil {
			return err
		}
		cfg.Default.VerticalAlign = &v
		for i := range cfg.Columns {
			cfg.Columns[i].VerticalAlign = nil
		}
	}
	return nil
}

func render(w io.Writer, t *tabula.Table, rows [][]string, opts options) error {
	if !opts.color {
		return t.WriteIter(w, slices.Values(rows), opts.batch)
	}
	composed, err := t.Compose(rows)
	if err != nil {
		return err
	}
	for _, line := range tabula.Flatten(tabula.Decorate(composed, colorize(columnStyles(t.Len())))) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
