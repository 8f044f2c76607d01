// Package tour provides the Tour and InteriorSet data structures shared by
// every stage of the pipeline (spec.md §3), plus the structural helpers used
// by the post-processing passes (segment reversal, relocation, lookup).
//
// Design mirrors the teacher's tour utilities (tsp/tour.go): compact,
// allocation-conscious helpers operating purely on tour structure, strict
// sentinel errors only, no panics on malformed input, deterministic O(n)
// or better behaviour. Unlike the teacher's index-permutation tours, a
// geotsp Tour stores geom.Point values directly and is a closed cycle with
// an *implicit* wrap edge (last -> first) rather than an explicit closing
// element (spec.md §3: "ordered sequence ... interpreted as a closed
// cycle"; spec.md §9: "stored linearly with an implicit wrap edge").
package tour

import (
	"fmt"

	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/geom"
)

// Tour is an ordered sequence of points interpreted as a closed cycle: the
// edge from the last element back to the first is implicit. Invariant: no
// duplicate point (spec.md §3). A tour seeded from a hull of 3 or more
// vertices keeps len >= 3; a hull of 1 or 2 vertices gives a shorter tour.
type Tour struct {
	pts []geom.Point
}

// New wraps pts as a Tour without copying semantics guarantees beyond those
// documented on the individual mutators; callers that need an independent
// copy should use Copy.
func New(pts []geom.Point) *Tour {
	return &Tour{pts: pts}
}

// Len returns the number of vertices on the tour.
func (t *Tour) Len() int { return len(t.pts) }

// At returns the vertex at position i, indices wrapping modulo Len()
// (spec.md §9: "every traversal operation must mod n at the boundary").
func (t *Tour) At(i int) geom.Point {
	n := len(t.pts)
	return t.pts[((i%n)+n)%n]
}

// Points returns the underlying slice. Callers must not retain it across
// mutating calls (InsertAfter/RemoveAt/ReverseSegment may reallocate or
// shift it).
func (t *Tour) Points() []geom.Point { return t.pts }

// IndexOf returns the position of p on the tour, or -1 if absent. Anchor
// lookup (spec.md §4.5 "find anchor in tour (linear scan)") uses this.
//
// Complexity: O(n).
func (t *Tour) IndexOf(p geom.Point) int {
	for i, q := range t.pts {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}

// Contains reports whether p is on the tour.
func (t *Tour) Contains(p geom.Point) bool { return t.IndexOf(p) >= 0 }

// InsertAfter inserts p immediately after the vertex anchor, preserving the
// no-duplicate invariant. Returns errs.ErrPointNotFound if anchor is absent,
// errs.ErrDuplicatePoint if p is already on the tour.
//
// Complexity: O(n).
func (t *Tour) InsertAfter(anchor, p geom.Point) error {
	if t.Contains(p) {
		return errs.ErrDuplicatePoint
	}
	idx := t.IndexOf(anchor)
	if idx < 0 {
		return errs.ErrPointNotFound
	}
	out := make([]geom.Point, 0, len(t.pts)+1)
	out = append(out, t.pts[:idx+1]...)
	out = append(out, p)
	out = append(out, t.pts[idx+1:]...)
	t.pts = out
	return nil
}

// RemoveAt deletes the vertex at position i (mod Len()).
//
// Complexity: O(n).
func (t *Tour) RemoveAt(i int) {
	n := len(t.pts)
	i = ((i % n) + n) % n
	t.pts = append(t.pts[:i], t.pts[i+1:]...)
}

// Edge returns the i-th tour edge (t[i], t[i+1]), wrapping so the final
// edge is (t[n-1], t[0]) — the implicit closing edge (spec.md §3/§9).
func (t *Tour) Edge(i int) (geom.Point, geom.Point) {
	return t.At(i), t.At(i + 1)
}

// Length returns the total Euclidean length of the closed cycle.
//
// Complexity: O(n).
func (t *Tour) Length() float64 {
	var total float64
	n := len(t.pts)
	for i := 0; i < n; i++ {
		a, b := t.Edge(i)
		total += float64(geom.CalcDist(a, b))
	}
	return total
}

// ReverseSegment reverses the inclusive index range [i, j] in place
// (0 <= i <= j < Len()), the primitive used by the uncrosser's 2-opt move
// (spec.md §4.6).
//
// Complexity: O(j-i).
func (t *Tour) ReverseSegment(i, j int) {
	for i < j {
		t.pts[i], t.pts[j] = t.pts[j], t.pts[i]
		i++
		j--
	}
}

// Copy returns an independent copy of the tour.
func (t *Tour) Copy() *Tour {
	out := make([]geom.Point, len(t.pts))
	copy(out, t.pts)
	return &Tour{pts: out}
}

// Validate enforces the Tour invariant: len >= 3, no duplicate point
// (spec.md §3).
//
// Complexity: O(n).
func (t *Tour) Validate() error {
	if len(t.pts) < 3 {
		return errs.ErrShortTour
	}
	seen := make(map[uint64]struct{}, len(t.pts))
	for _, p := range t.pts {
		h := p.Hash()
		if _, dup := seen[h]; dup {
			return errs.ErrDuplicatePoint
		}
		seen[h] = struct{}{}
	}
	return nil
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[(0,0) (1,0) (1,1) | wrap]".
func (t *Tour) DebugString() string {
	s := "["
	for i, p := range t.pts {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%g,%g)", p.X, p.Y)
	}
	s += " | wrap]"
	return s
}

// InteriorSet is the ordered set of points not currently on the tour
// (spec.md §3). It is maintained as a plain ordered slice for deterministic
// iteration; pipeline code keeps a grid.Grid mirroring it exactly (spec.md
// §3 SpatialGrid invariant 3).
type InteriorSet struct {
	pts []geom.Point
}

// NewInteriorSet builds an InteriorSet from pts (copied).
func NewInteriorSet(pts []geom.Point) *InteriorSet {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return &InteriorSet{pts: out}
}

// Len returns the number of interior points remaining.
func (s *InteriorSet) Len() int { return len(s.pts) }

// Points returns the underlying slice (read-only by convention; callers
// needing to mutate should use Remove).
func (s *InteriorSet) Points() []geom.Point { return s.pts }

// Remove deletes p from the set. Idempotent on absent points.
//
// Complexity: O(n).
func (s *InteriorSet) Remove(p geom.Point) {
	for i, q := range s.pts {
		if q.Equal(p) {
			s.pts = append(s.pts[:i], s.pts[i+1:]...)
			return
		}
	}
}

// Contains reports whether p is still interior.
func (s *InteriorSet) Contains(p geom.Point) bool {
	for _, q := range s.pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
