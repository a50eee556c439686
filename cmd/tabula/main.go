// Command tabula lays out CSV, TSV, YAML or JSON rows as a plain text
// table sized to the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
