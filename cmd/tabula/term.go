package main

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const defaultWidth = 80

// detectWidth returns the width of the first terminal attached to stdout,
// stderr or stdin, then $COLUMNS, then a fixed fallback.
func detectWidth() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return widthFromEnv(os.Getenv("COLUMNS"))
}

func widthFromEnv(col string) int {
	if w, err := strconv.Atoi(col); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
