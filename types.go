package etgrep

import "github.com/farcloser/etgrep/internal/group"

// Result holds the operator names found in a trace file.
type Result struct {
	// Operations is the sorted, deduplicated set of every name found.
	Operations []string
	// Counts tallies each name across all scans, duplicates included.
	Counts map[string]int
	// Groups buckets Operations by dotted-path prefix.
	Groups group.Groups
}

// Count returns how many times name was produced. Zero means it was never found.
func (r *Result) Count(name string) int {
	return r.Counts[name]
}
