// Command geotsp solves a Euclidean TSP instance read from a TSPLIB file
// using hull-expansion insertion followed by optional post-processing
// passes, and writes the resulting tour back out in TSPLIB form
// (spec.md §4.12).
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/geotsp/config"
	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	for _, a := range args {
		if a == "help" || a == "--help" || a == "-help" {
			usage()
			return 1
		}
	}

	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, errs.ErrInputMissing) {
			fmt.Fprintln(os.Stderr, "geotsp: missing input path")
			usage()
		} else {
			fmt.Fprintln(os.Stderr, "geotsp:", err)
		}
		return 1
	}

	logger := slog.Default()
	stats, err := pipeline.Run(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "geotsp:", err)
		return 1
	}

	logger.Info("solve complete",
		"points", stats.NumPoints,
		"hull_points", stats.NumHullPoints,
		"inserted", stats.NumInserted,
		"tour_length", stats.TourLength,
		"iteration_cap_hit", stats.IterationCapHit,
		"elapsed", stats.Elapsed,
	)
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: geotsp [flags] <input.tsp>")
	fmt.Fprintln(os.Stderr, "flags:")
	fmt.Fprintln(os.Stderr, "  --no-log        disable structured logging")
	fmt.Fprintln(os.Stderr, "  --no-uncross    disable the 2-opt uncrosser pass")
	fmt.Fprintln(os.Stderr, "  --no-oropt      disable the Or-opt relocation pass")
	fmt.Fprintln(os.Stderr, "  --no-relp       disable the RELP reluctant-point pass")
	fmt.Fprintln(os.Stderr, "  --no-post       disable all post-processing passes")
	fmt.Fprintln(os.Stderr, "  --workers N     worker pool size (default: GOMAXPROCS)")
}
