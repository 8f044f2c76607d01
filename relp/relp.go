// Package relp implements the RELP ("reluctant point") post-processing
// pass (spec.md §4.8): it pulls the lowest-scoring insertions back out of
// the tour and re-runs hull expansion on them, on the theory that a point
// inserted under a poor LDA score early on might fit far better once the
// rest of the tour has settled.
package relp

import (
	"container/heap"
	"log/slog"
	"math"

	"github.com/katalvlaran/geotsp/expand"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/internal/workerpool"
	"github.com/katalvlaran/geotsp/tour"
)

// matchEpsilon is the coordinate-distance tolerance used to locate a
// logged insertion's point on the current tour (spec.md §4.8): the tour
// may have been mutated by uncross/oropt since the record was logged, but
// point identity survives those passes bit-for-bit, so this is a belt and
// braces check rather than the primary lookup mechanism.
const matchEpsilon = 1e-5

// recordHeap is a bounded max-heap (by Score) used to find the k
// lowest-scoring records in a single pass over the log: once the heap
// holds k elements, pushing a new (lower) record pops the current worst
// (highest-score) one.
type recordHeap []tour.InsertionRecord

func (h recordHeap) Len() int            { return len(h) }
func (h recordHeap) Less(i, j int) bool  { return h[i].Score > h[j].Score } // max-heap
func (h recordHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x interface{}) { *h = append(*h, x.(tour.InsertionRecord)) }
func (h *recordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// lowestK returns the k records with the smallest Score in log, in no
// particular order. If len(log) <= k, it returns a copy of the whole log.
//
// Complexity: O(n log k).
func lowestK(log tour.InsertionLog, k int) []tour.InsertionRecord {
	if k >= len(log) {
		out := make([]tour.InsertionRecord, len(log))
		copy(out, log)
		return out
	}

	h := make(recordHeap, 0, k)
	heap.Init(&h)
	for _, rec := range log {
		if h.Len() < k {
			heap.Push(&h, rec)
			continue
		}
		if rec.Score < h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, rec)
		}
	}
	return []tour.InsertionRecord(h)
}

// findApprox returns the index of the tour vertex matching p within
// matchEpsilon, or -1.
func findApprox(tr *tour.Tour, p geom.Point) int {
	for i := 0; i < tr.Len(); i++ {
		q := tr.At(i)
		dx := float64(q.X - p.X)
		dy := float64(q.Y - p.Y)
		if math.Sqrt(dx*dx+dy*dy) <= matchEpsilon {
			return i
		}
	}
	return -1
}

// Run extracts the k = floor(tr.Len() / 8) lowest-scoring records from
// log, removes the corresponding points from tr, and re-runs hull
// expansion on them against a freshly built interior set and spatial grid
// (spec.md §4.8). logger may be nil.
//
// A no-op (returns nil immediately) if k is 0 or none of the selected
// records can be located on the tour.
func Run(tr *tour.Tour, log tour.InsertionLog, pool *workerpool.Pool, logger *slog.Logger) error {
	k := tr.Len() / 8
	if k == 0 || len(log) == 0 {
		return nil
	}

	chosen := lowestK(log, k)

	reluctant := make([]geom.Point, 0, len(chosen))
	for _, rec := range chosen {
		idx := findApprox(tr, rec.Inserted)
		if idx < 0 {
			continue
		}
		reluctant = append(reluctant, tr.At(idx))
		tr.RemoveAt(idx)
	}
	if len(reluctant) == 0 {
		return nil
	}

	interior := tour.NewInteriorSet(reluctant)
	g, err := grid.New(reluctant)
	if err != nil {
		return err
	}

	d := expand.NewDriver(tr, interior, g, pool, logger)
	return d.Run()
}
