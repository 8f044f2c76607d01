// Package uncross implements the 2-opt "uncrosser" post-processing pass
// (spec.md §4.6): repeatedly finds two tour edges whose segments properly
// intersect, and reverses the segment between them if doing so shortens
// the tour, until a full pass finds nothing left to fix.
package uncross

import (
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/tour"
)

// epsilon is the minimum length improvement required to accept a reversal,
// guarding against floating-point churn on near-equal swaps.
const epsilon = 1e-9

// cross2 returns the z-component of (o->a) x (o->b), used by the proper
// intersection test below.
func cross2(o, a, b geom.Point) float32 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// properlyIntersect reports whether open segments ab and cd cross at an
// interior point of both. Collinear configurations (any cross value == 0)
// are treated as non-crossing (spec.md §4.6).
func properlyIntersect(a, b, c, d geom.Point) bool {
	d1 := cross2(c, d, a)
	d2 := cross2(c, d, b)
	d3 := cross2(a, b, c)
	d4 := cross2(a, b, d)

	side1 := (d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)
	side2 := (d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)
	return side1 && side2
}

// Run repeatedly scans every pair of non-adjacent edges for a proper
// intersection whose 2-opt reversal shortens the tour, applies the first
// improving reversal it finds, and restarts the scan from scratch. It
// stops when a complete pass finds no improving reversal (spec.md §4.6).
//
// Edges are scanned in fixed batches of 8 per outer position to keep the
// inner-loop working set small and cache-resident; the comparison itself
// is branchy (intersection test + cost compare) and is not a SIMD
// candidate the way the selector's LDA scoring is, so this stays scalar
// (see DESIGN.md).
//
// Complexity: O(n^2) per pass in the worst case, with early restart on the
// first improving move found.
func Run(tr *tour.Tour) {
	const batch = 8

	for {
		improved := false
		n := tr.Len()

	scan:
		for iBase := 0; iBase < n; iBase += batch {
			iEnd := iBase + batch
			if iEnd > n {
				iEnd = n
			}
			for i := iBase; i < iEnd; i++ {
				a, b := tr.Edge(i)
				for j := i + 2; j < n; j++ {
					if i == 0 && j == n-1 {
						continue // adjacent via the implicit wrap edge
					}
					c, d := tr.Edge(j)
					if !properlyIntersect(a, b, c, d) {
						continue
					}

					oldLen := geom.CalcDist(a, b) + geom.CalcDist(c, d)
					newLen := geom.CalcDist(a, c) + geom.CalcDist(b, d)
					if newLen < oldLen-epsilon {
						tr.ReverseSegment(i+1, j)
						improved = true
						break scan
					}
				}
			}
		}

		if !improved {
			return
		}
	}
}
