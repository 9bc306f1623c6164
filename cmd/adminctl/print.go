package main

import (
	"fmt"
	"io"
	"strings"
)

// fprintRow writes one tab-separated row for a tabwriter.
func fprintRow(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}
