// Package expand drives the hull-expansion loop (spec.md §4.4, §4.5): it
// repeatedly asks selector.Select for the single best-scoring insertion and
// applies it, until the interior set is empty or a safety iteration cap is
// reached.
package expand

import (
	"log/slog"

	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/internal/workerpool"
	"github.com/katalvlaran/geotsp/selector"
	"github.com/katalvlaran/geotsp/tour"
)

// minCandidateBatch and maxCandidateBatch bound the adaptive candidate
// count n = clamp(|interior|/10, 8, 64) (spec.md §4.5).
const (
	minCandidateBatch = 8
	maxCandidateBatch = 64
)

// Driver owns the mutable state threaded through every expansion step: the
// tour under construction, the remaining interior points, the spatial grid
// mirroring them, and the running insertion log RELP later consumes
// (spec.md §3).
type Driver struct {
	Tour     *tour.Tour
	Interior *tour.InteriorSet
	Grid     *grid.Grid
	Log      tour.InsertionLog

	pool   *workerpool.Pool
	logger *slog.Logger
}

// NewDriver constructs a Driver. logger may be nil, in which case
// slog.Default() is used.
func NewDriver(tr *tour.Tour, interior *tour.InteriorSet, g *grid.Grid, pool *workerpool.Pool, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{Tour: tr, Interior: interior, Grid: g, pool: pool, logger: logger}
}

// Run repeats select-and-insert until Interior is empty or the safety cap
// of 2 * |interior_initial| iterations is reached (spec.md §4.5). Reaching
// the cap is logged as a warning and is not surfaced as an error: the
// driver stops with whatever tour it has built so the pipeline can proceed
// to post-processing on a partial result (spec.md §4.5, §7).
func (d *Driver) Run() error {
	initial := d.Interior.Len()
	cap := 2 * initial
	iterations := 0

	for d.Interior.Len() > 0 {
		if iterations >= cap {
			d.logger.Warn("expansion iteration cap reached, proceeding with partial tour",
				"cap", cap, "remaining_interior", d.Interior.Len())
			return nil
		}

		n := clampInt(d.Interior.Len()/10, minCandidateBatch, maxCandidateBatch)
		rec, err := selector.Select(d.Tour, d.Interior, d.Grid, n, d.pool)
		if err != nil {
			if err == errs.ErrNoCandidate {
				break
			}
			return err
		}

		if err := d.Tour.InsertAfter(rec.Anchor, rec.Inserted); err != nil {
			return err
		}
		d.Interior.Remove(rec.Inserted)
		d.Grid.Remove(rec.Inserted)
		d.Log = append(d.Log, rec)

		iterations++
	}

	return nil
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
