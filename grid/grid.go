// Package grid implements the uniform spatial index used to find interior
// points near a tour edge without scanning the whole interior set
// (spec.md §3 SpatialGrid, §4.3).
//
// Grounded on the bucketed spatial-hash pattern used by the teacher pack's
// blue-noise sampler (kelindar/noise's poisson.go / sparse.go, which bucket
// jittered samples into integer cells for O(1) neighbourhood checks); here
// the buckets hold real points instead of hashed samples, and cells are
// mutable (point removal) rather than write-once.
package grid

import (
	"math"

	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/geom"
)

// cellCoord is the integer key of a grid cell.
type cellCoord struct{ cx, cy int32 }

// Grid is a uniform bucket grid over 2D points. Invariants (spec.md §3):
//
//  1. every stored point p satisfies cell(p) == floor((p - origin) / cellSize);
//  2. empty cells are absent from the map (never an empty-slice entry);
//  3. the grid mirrors exactly whatever set of points it was told to mirror
//     (callers are responsible for calling Insert/Remove in lockstep with
//     their own interior-set mutations; see expand.Driver).
type Grid struct {
	cellSize float64
	origin   geom.Point
	cells    map[cellCoord][]geom.Point
}

// New builds a Grid sized for the bounding box of points, following
// spec.md §4.3: diagonal = sqrt(width^2 + height^2), cellSize = 0.5 *
// diagonal / sqrt(len(points)). Every point is bucketed into its cell.
//
// Returns errs.ErrInvalidGrid if points is empty (cellSize would be
// undefined). If every point coincides, so the formula gives a cell size
// of 0, the grid uses a cell size of 1 instead and no error is returned.
//
// Complexity: O(n) time, O(n) space.
func New(points []geom.Point) (*Grid, error) {
	if len(points) == 0 {
		return nil, errs.ErrInvalidGrid
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	width := float64(maxX - minX)
	height := float64(maxY - minY)
	diagonal := math.Sqrt(width*width + height*height)

	cellSize := 0.5 * diagonal / math.Sqrt(float64(len(points)))
	if cellSize <= 0 {
		// All points coincide: fall back to a unit cell so the grid stays usable.
		cellSize = 1
	}

	g := &Grid{
		cellSize: cellSize,
		origin:   geom.Point{X: minX, Y: minY},
		cells:    make(map[cellCoord][]geom.Point, len(points)),
	}
	for _, p := range points {
		g.Insert(p)
	}

	return g, nil
}

// CellSize reports the grid's cell side length.
func (g *Grid) CellSize() float64 { return g.cellSize }

// cellOf returns the integer cell coordinate of p.
func (g *Grid) cellOf(p geom.Point) cellCoord {
	cx := math.Floor(float64(p.X-g.origin.X) / g.cellSize)
	cy := math.Floor(float64(p.Y-g.origin.Y) / g.cellSize)
	return cellCoord{cx: int32(cx), cy: int32(cy)}
}

// Insert buckets p into its cell.
//
// Complexity: O(1) amortized.
func (g *Grid) Insert(p geom.Point) {
	c := g.cellOf(p)
	g.cells[c] = append(g.cells[c], p)
}

// Remove deletes p from its cell, dropping the cell entry entirely if it
// becomes empty (spec.md §3 invariant 2). Idempotent on absent points
// (spec.md §4.3).
//
// Complexity: O(k) where k is the cell's occupancy.
func (g *Grid) Remove(p geom.Point) {
	c := g.cellOf(p)
	bucket, ok := g.cells[c]
	if !ok {
		return
	}
	for i, q := range bucket {
		if q.Equal(p) {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(g.cells, c)
	} else {
		g.cells[c] = bucket
	}
}

// Contains reports whether p is present, restricted to p's own cell
// (spec.md §4.3).
//
// Complexity: O(k) where k is the cell's occupancy.
func (g *Grid) Contains(p geom.Point) bool {
	bucket, ok := g.cells[g.cellOf(p)]
	if !ok {
		return false
	}
	for _, q := range bucket {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Len returns the total number of points currently stored.
func (g *Grid) Len() int {
	n := 0
	for _, bucket := range g.cells {
		n += len(bucket)
	}
	return n
}

// QueryRadius returns every stored point within r of center, by enumerating
// cells within ceil(r/cellSize) of center's cell and filtering by exact
// squared distance (spec.md §4.3).
//
// Complexity: expected O(1) per query at the designed density; worst case
// O(n).
func (g *Grid) QueryRadius(center geom.Point, r float64) []geom.Point {
	if r < 0 {
		return nil
	}
	cc := g.cellOf(center)
	reach := int32(math.Ceil(r / g.cellSize))
	r2 := float32(r * r)

	var out []geom.Point
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			bucket, ok := g.cells[cellCoord{cx: cc.cx + dx, cy: cc.cy + dy}]
			if !ok {
				continue
			}
			for _, p := range bucket {
				ddx := p.X - center.X
				ddy := p.Y - center.Y
				if ddx*ddx+ddy*ddy <= r2 {
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// QueryEdgeCandidates returns the duplicate-free union (insertion order
// preserved) of QueryRadius at a, b, and their midpoint (spec.md §4.3).
//
// Complexity: expected O(1) per sample point at the designed density.
func (g *Grid) QueryEdgeCandidates(a, b geom.Point, r float64) []geom.Point {
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

	seen := make(map[uint64]struct{})
	var out []geom.Point
	for _, center := range [3]geom.Point{a, b, mid} {
		for _, p := range g.QueryRadius(center, r) {
			h := p.Hash()
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
