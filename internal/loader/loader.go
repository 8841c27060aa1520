// Package loader reads trace files from disk.
package loader

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/farcloser/primordium/fault"
)

// Read returns the content of the file at path.
// Trace files are read best effort: on failure the error is returned alongside an empty,
// non-nil slice so that callers may carry on with nothing to scan.
func Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // CLI tool opens user-specified trace files
	if err != nil {
		return []byte{}, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return content, nil
}

// Load is Read with the failure reported through the default logger instead of returned.
func Load(path string) []byte {
	return LoadWith(slog.Default(), path)
}

// LoadWith is Load reporting to logger.
func LoadWith(logger *slog.Logger, path string) []byte {
	content, err := Read(path)
	if err != nil {
		logger.Error("error reading trace file", "path", path, "error", err)
	}

	return content
}
