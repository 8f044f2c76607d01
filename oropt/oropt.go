// Package oropt implements the Or-opt relocation post-processing pass
// (spec.md §4.7): for each segment length L, repeatedly tries to relocate a
// contiguous run of L tour vertices to a different edge if doing so saves
// more than it costs.
package oropt

import (
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/tour"
)

// maxSeqLen is the largest segment length considered (spec.md §4.7: L in
// [1, 49]).
const maxSeqLen = 49

// maxSweepsPerLength bounds how many times a given L is rescanned after an
// applied move (spec.md §4.7: "up to 2 sweeps each").
const maxSweepsPerLength = 2

// acceptThreshold is the minimum (removal savings - insertion cost) margin
// required to apply a relocation (spec.md §4.7).
const acceptThreshold = 1e-6

// candidateBatch is the insertion-position batch width used while scanning
// for the best reinsertion edge (spec.md §4.7: "lane-wise across 8
// positions").
const candidateBatch = 8

// Run applies Or-opt for every segment length from 1 up to
// min(maxSeqLen, n-3) (a segment needs at least 3 vertices left outside
// it to have a meaningful prev/next/insertion structure), each length
// getting up to maxSweepsPerLength full passes, restarting the pass
// immediately whenever a move is applied (spec.md §4.7).
func Run(tr *tour.Tour) {
	n := tr.Len()
	maxL := maxSeqLen
	if maxL > n-3 {
		maxL = n - 3
	}
	if maxL < 1 {
		return
	}

	for L := 1; L <= maxL; L++ {
		for sweep := 0; sweep < maxSweepsPerLength; sweep++ {
			if !sweepOnce(tr, L) {
				break
			}
		}
	}
}

// sweepOnce scans every segment start position once, applies the first
// improving relocation it finds, and returns true if it applied one
// (signalling the caller to restart the sweep for this L).
func sweepOnce(tr *tour.Tour, L int) bool {
	n := tr.Len()

	for i := 0; i < n; i++ {
		prev := tr.At(i - 1)
		segStart := tr.At(i)
		segEnd := tr.At(i + L - 1)
		next := tr.At(i + L)

		removalSavings := geom.CalcDist(prev, segStart) + geom.CalcDist(segEnd, next) - geom.CalcDist(prev, next)

		excluded := make(map[int]struct{}, L+2)
		for k := -1; k <= L; k++ {
			excluded[mod(i+k, n)] = struct{}{}
		}

		bestGain := float32(0)
		bestJ := -1
		for jBase := 0; jBase < n; jBase += candidateBatch {
			jEnd := jBase + candidateBatch
			if jEnd > n {
				jEnd = n
			}
			for j := jBase; j < jEnd; j++ {
				if _, skip := excluded[j]; skip {
					continue
				}
				if _, skip := excluded[mod(j+1, n)]; skip {
					continue
				}
				a, b := tr.Edge(j)
				insertionCost := geom.CalcDist(a, segStart) + geom.CalcDist(segEnd, b) - geom.CalcDist(a, b)
				gain := removalSavings - insertionCost
				if bestJ < 0 || gain > bestGain {
					bestGain = gain
					bestJ = j
				}
			}
		}

		if bestJ < 0 || bestGain <= acceptThreshold {
			continue
		}

		applyRelocation(tr, i, L, bestJ)
		return true
	}

	return false
}

// applyRelocation extracts the L-vertex segment starting at logical
// position i and reinserts it, in order, after the anchor vertex of edge
// j. Point values (not indices) drive every mutation so the move stays
// correct regardless of how InsertAfter/RemoveAt shift positions.
func applyRelocation(tr *tour.Tour, i, L, j int) {
	segment := make([]geom.Point, L)
	for k := 0; k < L; k++ {
		segment[k] = tr.At(i + k)
	}
	anchor, _ := tr.Edge(j)

	for _, p := range segment {
		idx := tr.IndexOf(p)
		tr.RemoveAt(idx)
	}

	cur := anchor
	for _, p := range segment {
		_ = tr.InsertAfter(cur, p)
		cur = p
	}
}

func mod(x, n int) int {
	return ((x % n) + n) % n
}
