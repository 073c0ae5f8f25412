// Package hamcli holds the flag wiring and graph-loading glue shared by
// cmd/hamcount and cmd/hamlist, so the two binaries don't duplicate
// argument parsing. It is grounded on example_counting.c's and
// example_listing.c's getopt-based "-p, -h, trailing file list, no file
// means stdin" argument contract, reproduced with cobra flags and the Args
// helper, which maps an empty file list to stdin.
package hamcli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/graphio"
	"github.com/katalvlaran/hamilton/search"
)

// Options holds the flags common to both commands.
type Options struct {
	// Prune enables firstCycleWithPruning/nextCycleWithPruning instead
	// of the unpruned FirstCycle/NextCycle pair.
	Prune bool
}

// BindFlags registers the shared flags ("-p") on cmd.
func BindFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().BoolVarP(&opts.Prune, "prune", "p", false, "enable multipath pruning")
}

// Logger returns the process-wide structured logger used by the CLI
// layer. The engine and graphio packages never log; only this layer
// does, since it is the one place in this module that performs I/O a
// user benefits from being told about.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Args defaults to stdin ("-") when no positional file arguments were
// given, matching the reference tools' "no file = read stdin" rule.
func Args(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// GraphHandler is called once per graph a Walk decodes.
type GraphHandler func(g *search.Graph, source string) error

// WalkFiles drives graphio.Walk over files, logging and skipping
// malformed graphs (matching loadNextGraph's "skip, don't abort" rule)
// and invoking handle for every graph it successfully decodes. It
// returns the first error handle itself returns, aborting the walk.
func WalkFiles(files []string, log *slog.Logger, handle GraphHandler) error {
	var handleErr error
	err := graphio.Walk(files, func(g *search.Graph, source string, decodeErr error) bool {
		if decodeErr != nil {
			log.Warn("skipping malformed graph", "source", source, "error", decodeErr)
			return true
		}
		if handleErr = handle(g, source); handleErr != nil {
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return handleErr
}
