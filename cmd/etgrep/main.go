package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/farcloser/etgrep/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:        version.Name(),
		Usage:       "List the operations recorded in .et execution trace files",
		UsageText:   usageText,
		ArgsUsage:   "<path>",
		Description: description,
		Version:     version.Version() + " " + version.Commit(),
		Action:      scanAction,
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
