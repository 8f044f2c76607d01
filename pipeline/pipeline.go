// Package pipeline orchestrates a full solve: parse, hull, hull-expand,
// then the three optional post-processing passes, then write (spec.md §2,
// §4, §6). Each post-processing pass is independently switchable via
// config.RunConfig, in the order uncross -> oropt -> relp spec.md §4
// specifies.
package pipeline

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/geotsp/config"
	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/expand"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/hull"
	"github.com/katalvlaran/geotsp/internal/tsplib"
	"github.com/katalvlaran/geotsp/internal/workerpool"
	"github.com/katalvlaran/geotsp/oropt"
	"github.com/katalvlaran/geotsp/relp"
	"github.com/katalvlaran/geotsp/tour"
	"github.com/katalvlaran/geotsp/uncross"
)

// RunStats is the optional measurement log produced by a solve (spec.md
// §6): enough to report what happened without forcing every caller to
// re-derive it from the written tour.
type RunStats struct {
	NumPoints       int
	NumHullPoints   int
	NumInserted     int
	TourLength      float64
	IterationCapHit bool
	Elapsed         time.Duration
}

// Run executes a full solve against cfg.InputPath and writes the result to
// the resolved output path (spec.md §6). logger may be nil, in which case
// slog.Default() is used unless cfg.NoLog is set, in which case logging is
// fully suppressed.
func Run(cfg config.RunConfig, logger *slog.Logger) (RunStats, error) {
	start := time.Now()

	if cfg.NoLog {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else if logger == nil {
		logger = slog.Default()
	}

	points, err := readInput(cfg.InputPath)
	if err != nil {
		return RunStats{}, err
	}

	// For |points| in {0, 1, 2} the hull equals the input itself (spec.md
	// §8): only a truly empty input (0 points) is degenerate. 1- and
	// 2-point inputs succeed, skip expansion, and pass straight through to
	// the writer.
	hullPts := hull.Build(points)
	if len(hullPts) == 0 {
		return RunStats{}, errs.ErrDegenerateInput
	}

	interiorPts := interiorPoints(points, hullPts)

	tr := tour.New(append([]geom.Point{}, hullPts...))
	logger.Info("hull computed", "points", len(points), "hull_size", len(hullPts), "interior_size", len(interiorPts))

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	var insertionLog tour.InsertionLog
	iterationCapHit := false

	if len(interiorPts) > 0 {
		g, err := grid.New(interiorPts)
		if err != nil {
			return RunStats{}, err
		}
		interior := tour.NewInteriorSet(interiorPts)
		d := expand.NewDriver(tr, interior, g, pool, logger)
		if err := d.Run(); err != nil {
			return RunStats{}, err
		}
		insertionLog = d.Log
		iterationCapHit = interior.Len() > 0
	}

	if !cfg.NoUncross {
		uncross.Run(tr)
		logger.Info("uncross pass complete", "tour_length", tr.Length())
	}
	if !cfg.NoOropt {
		oropt.Run(tr)
		logger.Info("or-opt pass complete", "tour_length", tr.Length())
	}
	if !cfg.NoRelp {
		if err := relp.Run(tr, insertionLog, pool, logger); err != nil {
			return RunStats{}, err
		}
		logger.Info("relp pass complete", "tour_length", tr.Length())
	}

	outPath, err := tsplib.ResolveOutputPath()
	if err != nil {
		return RunStats{}, errs.ErrOutputUnwritable
	}
	if err := writeOutput(outPath, tr); err != nil {
		return RunStats{}, errs.ErrOutputUnwritable
	}

	return RunStats{
		NumPoints:       len(points),
		NumHullPoints:   len(hullPts),
		NumInserted:     len(insertionLog),
		TourLength:      tr.Length(),
		IterationCapHit: iterationCapHit,
		Elapsed:         time.Since(start),
	}, nil
}

func readInput(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrInputUnreadable
	}
	defer f.Close()

	pts, err := tsplib.ParseNodeCoordSection(f)
	if err != nil {
		return nil, errs.ErrInputUnreadable
	}
	return pts, nil
}

func writeOutput(path string, tr *tour.Tour) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tsplib.WriteTour(f, "geotsp", tr.Points())
}

// interiorPoints returns every point in all not present in hullPts,
// preserving all's order.
func interiorPoints(all, hullPts []geom.Point) []geom.Point {
	onHull := make(map[uint64]struct{}, len(hullPts))
	for _, p := range hullPts {
		onHull[p.Hash()] = struct{}{}
	}
	out := make([]geom.Point, 0, len(all)-len(hullPts))
	for _, p := range all {
		if _, ok := onHull[p.Hash()]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
