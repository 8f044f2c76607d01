// Package hull computes the convex hull of a 2D point set via Andrew's
// monotone chain (spec.md §4.2), used as the seed tour for hull expansion.
//
// Design mirrors the teacher's tour utilities (tsp/tour.go): allocation-
// conscious, side-effect-free, sentinel errors only, deterministic given a
// fixed input order (ties broken by the lexicographic sort).
package hull

import (
	"sort"

	"github.com/katalvlaran/geotsp/geom"
)

// cross returns the z-component of (o->a) x (o->b). Positive means a->b is a
// left turn around o; zero means collinear; negative means a right turn.
func cross(o, a, b geom.Point) float32 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Build returns the counter-clockwise convex hull of points using Andrew's
// monotone chain: sort lexicographically by (x, y), build the lower chain
// scanning left-to-right popping on non-left turns (cross <= 0), build the
// upper chain scanning right-to-left with the same rule, drop the duplicated
// endpoints, and concatenate (spec.md §4.2).
//
// For |points| < 3 the hull is the input itself (spec.md §8 boundary
// behaviour): 0 or 1 points return as-is; 2 distinct points return both
// endpoints (a degenerate 2-gon "hull", consistent with "hull equals input").
//
// Complexity: O(n log n) time (dominated by the sort), O(n) space.
func Build(points []geom.Point) []geom.Point {
	n := len(points)
	if n < 3 {
		out := make([]geom.Point, n)
		copy(out, points)
		return out
	}

	pts := make([]geom.Point, n)
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	lower := make([]geom.Point, 0, n)
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]geom.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each chain (it repeats the first point of the
	// other chain) and concatenate into a single CCW cycle.
	hull := make([]geom.Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)

	return hull
}
