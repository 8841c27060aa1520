// Package output renders extraction results for the console.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/farcloser/etgrep"
)

const bannerWidth = 80

// Report writes the full report for the trace file at filePath to writer.
func Report(writer io.Writer, filePath string, result *etgrep.Result) error {
	banner := strings.Repeat("=", bannerWidth)

	var out strings.Builder

	fmt.Fprintln(&out, banner)
	fmt.Fprintf(&out, "Operations found in %s\n", filepath.Base(filePath))
	fmt.Fprintln(&out, banner)
	fmt.Fprintf(&out, "\nTotal unique operations: %d\n\n", len(result.Operations))

	fmt.Fprint(&out, "Operations grouped by prefix:\n\n")

	for _, key := range result.Groups.Keys() {
		fmt.Fprintf(&out, "%s:\n", key)

		for _, name := range result.Groups.Members(key) {
			fmt.Fprintf(&out, "  - %s (appears %d time(s))\n", name, result.Count(name))
		}

		fmt.Fprintln(&out)
	}

	fmt.Fprintf(&out, "\n%s\n", banner)
	fmt.Fprintln(&out, "All unique operations (sorted):")
	fmt.Fprintln(&out, banner)

	for _, name := range result.Operations {
		fmt.Fprintf(&out, "  %s (%d)\n", name, result.Count(name))
	}

	if _, err := io.WriteString(writer, out.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
