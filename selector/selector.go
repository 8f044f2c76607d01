// Package selector implements the per-edge parallel map-reduce that picks
// the next (edge, point) insertion during hull expansion (spec.md §4.4).
//
// Each tour edge is a map task: it retrieves its own bounded candidate set
// from the spatial grid and scores every candidate against that edge with
// the LDA batch kernel. The reduce step is a single max over the per-edge
// winners. Only this stage submits to the process-wide worker pool
// (spec.md §5); every other stage runs on the calling goroutine.
package selector

import (
	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/internal/workerpool"
	"github.com/katalvlaran/geotsp/tour"
)

// maxCandidatesPerEdge bounds the candidate set handed to each edge's
// scoring pass, independent of n (spec.md §4.4: "bounded by min(n, 32)").
const maxCandidatesPerEdge = 32

// degenerateSearchRadius is the fallback search radius used when the tour
// has zero length (every vertex coincident), so average-edge-length is
// undefined (spec.md §4.4).
const degenerateSearchRadius = 100

// chunkWidth is the lane-batch size fed to geom.LDABatch per edge; it need
// not equal the hardware lane width: chunks shrink to geom.LaneWidth() when
// the vector is narrower, and the lane buffers grow to geom.LaneWidth()
// (zero-padded past the chunk) when it is wider.
const chunkWidth = 8

// Select runs the per-edge map-reduce over tr's edges against interior,
// using g to bound each edge's candidate set to at most min(n, 32) points,
// and returns the single best-scoring insertion found across every edge.
//
// If the reduced best score is <= 0 (no edge found a candidate with a
// meaningful LDA score — spec.md §4.4 fallback clause), Select falls back
// to a full nearest-pair scan over every (tour vertex, interior point)
// combination and returns that pair with Score fixed at 0.1.
//
// Returns errs.ErrNoCandidate if interior is empty.
func Select(tr *tour.Tour, interior *tour.InteriorSet, g *grid.Grid, n int, pool *workerpool.Pool) (tour.InsertionRecord, error) {
	if interior.Len() == 0 {
		return tour.InsertionRecord{}, errs.ErrNoCandidate
	}

	bound := clampInt(n, 1, maxCandidatesPerEdge)
	// search_radius = 2 * (average tour edge length), with a fallback of
	// 100 when the tour is degenerate (spec.md §4.4).
	searchRadius := float64(degenerateSearchRadius)
	if avg := tr.Length() / float64(tr.Len()); avg > 0 {
		searchRadius = 2 * avg
	}

	numEdges := tr.Len()
	winners := make([]tour.InsertionRecord, numEdges)
	found := make([]bool, numEdges)

	mapEdge := func(i int) {
		a, b := tr.Edge(i)
		cands := g.QueryEdgeCandidates(a, b, searchRadius)
		if len(cands) > bound {
			cands = cands[:bound]
		}
		if len(cands) == 0 {
			return
		}

		best := tour.InsertionRecord{Score: -1}
		bestSet := false
		lanes := geom.LaneWidth()
		step := chunkWidth
		if lanes < step {
			step = lanes
		}
		bufLen := chunkWidth
		if lanes > bufLen {
			bufLen = lanes
		}
		cx := make([]float32, bufLen)
		cy := make([]float32, bufLen)
		out := make([]float32, bufLen)
		for start := 0; start < len(cands); start += step {
			end := start + step
			if end > len(cands) {
				end = len(cands)
			}
			active := end - start
			for k := 0; k < active; k++ {
				cx[k] = cands[start+k].X
				cy[k] = cands[start+k].Y
			}
			for k := active; k < bufLen; k++ {
				// Pad with zero coordinates; lanes past `active` are never read.
				cx[k] = 0
				cy[k] = 0
			}
			geom.LDABatch(a, b, cx, cy, active, out)
			for k := 0; k < active; k++ {
				if !bestSet || out[k] > best.Score {
					best = tour.InsertionRecord{Score: out[k], Anchor: a, Inserted: cands[start+k]}
					bestSet = true
				}
			}
		}
		if bestSet {
			winners[i] = best
			found[i] = true
		}
	}

	if pool != nil && numEdges > 0 {
		pool.ParallelForAtomic(numEdges, mapEdge)
	} else {
		for i := 0; i < numEdges; i++ {
			mapEdge(i)
		}
	}

	var overall tour.InsertionRecord
	haveOverall := false
	for i := 0; i < numEdges; i++ {
		if !found[i] {
			continue
		}
		if !haveOverall || winners[i].Score > overall.Score {
			overall = winners[i]
			haveOverall = true
		}
	}

	if !haveOverall || overall.Score <= 0 {
		return nearestPairFallback(tr, interior)
	}

	return overall, nil
}

// nearestPairFallback scans every (interior, tour vertex) pair by plain
// Euclidean distance and returns the closest pair, anchored on whichever
// tour vertex is actually nearest, with Score fixed at 0.1 (spec.md §4.4:
// "scans every (interior, tour) pair by Euclidean distance and inserts
// the closest interior point after its nearest tour vertex").
//
// Complexity: O(n * m) where n = tr.Len(), m = interior.Len().
func nearestPairFallback(tr *tour.Tour, interior *tour.InteriorSet) (tour.InsertionRecord, error) {
	pts := interior.Points()
	if len(pts) == 0 {
		return tour.InsertionRecord{}, errs.ErrNoCandidate
	}

	var best tour.InsertionRecord
	bestDist := float32(-1)
	for i := 0; i < tr.Len(); i++ {
		v := tr.At(i)
		for _, c := range pts {
			d := geom.CalcDist(v, c)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = tour.InsertionRecord{Score: 0.1, Anchor: v, Inserted: c}
			}
		}
	}
	return best, nil
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
