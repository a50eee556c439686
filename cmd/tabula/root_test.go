package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabula"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"csv": {
			stdin: "a,b,c\n1,2,3\n",
			args:  []string{"--width", "20"},
			want:  "a b c\n1 2 3\n",
		},
		"right aligned": {
			stdin: "a,bb\nccc,d\n",
			args:  []string{"--width", "20", "--align", "right"},
			want:  "  a bb\nccc  d\n",
		},
		"wraps to fit": {
			stdin: "hello world,x\n",
			args:  []string{"--width", "7"},
			want:  "hello x\nworld  \n",
		},
		"tsv": {
			stdin: "a b\tc\n",
			args:  []string{"--width", "20", "--input", "tsv"},
			want:  "a b c\n",
		},
		"yaml with null": {
			stdin: "- [a, 1]\n- [b, null]\n",
			args:  []string{"--width", "10", "--input", "yaml"},
			want:  "a 1\nb  \n",
		},
		"json keeps number text": {
			stdin: `[["x", 1.50], ["y", 2]]`,
			args:  []string{"--width", "10", "--input", "json"},
			want:  "x 1.50\ny 2   \n",
		},
		"ragged": {
			stdin: "a,b\nc\n",
			args:  []string{"--width", "10", "--ragged"},
			want:  "a b\nc  \n",
		},
		"spacing": {
			stdin: "a,b\nc,d\n",
			args:  []string{"--width", "10", "--spacing", "1"},
			want:  "a b\n\nc d\n",
		},
		"batch keeps first layout": {
			stdin: "a,b\nlong,x\n",
			args:  []string{"--width", "20", "--batch", "1"},
			want:  "a b\nl x\no  \nn  \ng  \n",
		},
		"empty input": {
			stdin: "",
			args:  []string{"--width", "10"},
			want:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRootErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		stdin   string
		args    []string
		wantErr error
	}{
		"inconsistent rows": {
			stdin:   "a,b\nc\n",
			args:    []string{"--width", "10"},
			wantErr: tabula.ErrInconsistentColumns,
		},
		"viewport too narrow": {
			stdin:   "a,b,c\n",
			args:    []string{"--width", "2"},
			wantErr: tabula.ErrInsufficientSpace,
		},
		"unknown input": {
			stdin:   "a\n",
			args:    []string{"--input", "xml"},
			wantErr: errUnsupportedInput,
		},
		"unknown alignment": {
			stdin:   "a\n",
			args:    []string{"--width", "10", "--align", "diagonal"},
			wantErr: tabula.ErrInvalidValue,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRootConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width: 12\ncolumns:\n  - min_width: 5\n  - align: right\n"), 0o600))
	dataPath := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte("a,b\nc,dd\n"), 0o600))

	out, _, err := execute(t, "", "--config", cfgPath, dataPath)
	require.NoError(t, err)
	assert.Equal(t, "a      b\nc     dd\n", out)
}

func TestRootPrintConfig(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "a,b\n", "--width", "30", "--align", "center", "--print-config")
	require.NoError(t, err)

	cfg, err := tabula.LoadConfig(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 2, cfg.Count)
	require.Len(t, cfg.Columns, 2)
	require.NotNil(t, cfg.Columns[1].Align)
	assert.Equal(t, tabula.AlignCenter, *cfg.Columns[1].Align)
}

func TestRootColor(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "a,b\n", "--width", "10", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestRootDebugLogs(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "a,b\n", "--width", "10", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "resolved layout")
	assert.Contains(t, stderr, "read rows")
}

func TestInputFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flag string
		path string
		want string
	}{
		"flag wins":      {flag: "JSON", path: "rows.csv", want: "json"},
		"tsv extension":  {path: "rows.tsv", want: "tsv"},
		"yml extension":  {path: "rows.yml", want: "yaml"},
		"json extension": {path: "rows.json", want: "json"},
		"stdin":          {want: "csv"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := inputFormat(tt.flag, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWidthFromEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 132, widthFromEnv("132"))
	assert.Equal(t, defaultWidth, widthFromEnv(""))
	assert.Equal(t, defaultWidth, widthFromEnv("wide"))
	assert.Equal(t, defaultWidth, widthFromEnv("-4"))
}
