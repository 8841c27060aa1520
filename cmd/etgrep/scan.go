//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/etgrep"
	"github.com/farcloser/etgrep/internal/output"
	"github.com/farcloser/etgrep/internal/resolve"
)

const (
	usageText = `etgrep <path>

Examples:
   etgrep generated_attn/
   etgrep generated_attn/moe_attn_8exp_4ep.0.et
   etgrep 'generated_attn/*.et'
   etgrep -- -rank.0.et    (paths starting with "-" follow --)`

	description = `Scans an .et trace file for operator names and prints them grouped by prefix,
with the number of times each one appears.

<path> is a trace file, a directory (its .et files are considered in name order)
or a glob pattern. Only the first trace file found is analyzed.`
)

var errMissingPath = errors.New("please provide path to .et file(s)")

func scanAction(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		fmt.Fprintf(os.Stdout, "%s\n\n%s\n\n", cmd.Usage, description)
		fmt.Fprintf(os.Stdout, "Usage: %s\n", usageText)

		return errMissingPath
	}

	inputPath := cmd.Args().First()

	files, err := resolve.Find(inputPath)
	if err != nil {
		return err
	}

	// Only the first trace file is analyzed.
	first := files[0]
	fmt.Fprintf(os.Stdout, "Analyzing: %s\n\n", first)

	return output.Report(os.Stdout, first, etgrep.Analyze(first))
}
