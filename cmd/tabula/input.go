package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabula"
)

var errUnsupportedInput = errors.New("unsupported input format")

var inputFormats = []string{"csv", "tsv", "yaml", "json"}

// inputFormat picks the format from the flag, else from the file
// extension, else CSV.
func inputFormat(flag, path string) (string, error) {
	if flag != "" {
		f := strings.ToLower(flag)
		for _, known := range inputFormats {
			if f == known {
				return f, nil
			}
		}
		return "", fmt.Errorf("%w: %q", errUnsupportedInput, flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return "tsv", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	}
	return "csv", nil
}

func readRows(r io.Reader, format string) ([][]string, error) {
	switch format {
	case "csv":
		return readDelimited(r, ',')
	case "tsv":
		return readDelimited(r, '\t')
	case "yaml":
		var doc [][]any
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml rows: %w", err)
		}
		return cells(doc), nil
	case "json":
		var doc [][]any
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json rows: %w", err)
		}
		return cells(doc), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedInput, format)
	}
}

func readDelimited(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited rows: %w", err)
	}
	return rows, nil
}

// cells renders document values, leaving nulls empty.
func cells(doc [][]any) [][]string {
	for _, row := range doc {
		for i, v := range row {
			if v == nil {
				row[i] = ""
			}
		}
	}
	return tabula.Stringify(doc)
}

func widest(rows [][]string) int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}
