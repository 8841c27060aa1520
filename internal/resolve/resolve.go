// Package resolve turns a user supplied path (file, directory or glob pattern) into trace files.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is the suffix of the trace files this tool understands.
const Extension = ".et"

// ErrNoTraceFiles is returned when a path does not resolve to any trace file.
var ErrNoTraceFiles = errors.New("no " + Extension + " files found")

// Find returns the trace files designated by path.
// A regular file is returned as is, a directory yields its direct entries sorted by path,
// anything else is expanded as a glob pattern (in expansion order, dot-prefixed names excluded
// unless the pattern spells the dot out).
func Find(path string) ([]string, error) {
	var found []string

	info, err := os.Stat(path)

	switch {
	case err == nil && info.Mode().IsRegular() && strings.HasSuffix(path, Extension):
		found = []string{path}
	case err == nil && info.IsDir():
		found = inDirectory(path)
	default:
		found = fromPattern(path)
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("%w in: %s", ErrNoTraceFiles, path)
	}

	return found, nil
}

func inDirectory(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	found := make([]string, 0, len(entries))

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), Extension) {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}

	slices.Sort(found)

	return found
}

func fromPattern(pattern string) []string {
	// A malformed pattern matches nothing.
	matches, _ := filepath.Glob(pattern)

	var found []string

	for _, match := range matches {
		if strings.HasSuffix(match, Extension) && !hidden(pattern, match) {
			found = append(found, match)
		}
	}

	return found
}

// hidden reports whether match reached a dot-prefixed name through a wildcard segment.
// Wildcards only match such names when the pattern segment itself starts with a dot.
func hidden(pattern, match string) bool {
	patternSegments := strings.Split(filepath.Clean(pattern), string(filepath.Separator))
	matchSegments := strings.Split(filepath.Clean(match), string(filepath.Separator))

	if len(patternSegments) != len(matchSegments) {
		return false
	}

	for i, segment := range patternSegments {
		if !strings.ContainsAny(segment, "*?[") || strings.HasPrefix(segment, ".") {
			continue
		}

		if strings.HasPrefix(matchSegments[i], ".") {
			return true
		}
	}

	return false
}
