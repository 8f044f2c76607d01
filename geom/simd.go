// SIMD batch kernels for geom, built on github.com/ajroetker/go-highway/hwy.
//
// These mirror the scalar kernels in point.go lane-for-lane: the contract
// (spec.md §4.1/§9) is that callers pad unused lanes with zero coordinates
// and then discard padded results by lane index after the vector reduction —
// the LDA value computed on a padded lane is not -Inf, it is a real (if
// meaningless) number, so masking must happen on the caller side.
//
// Grounded on the go-highway dot-product/reduction pattern retrieved from
// contrib/loss/cut_cross_entropy.go and contrib/matmul/packed_kernel.go:
// hwy.Zero[T]().NumLanes() to discover lane width, hwy.Load/Store for
// transfer, hwy.MulAdd for fused multiply-add, hwy.ReduceSum to collapse a
// lane vector to a scalar.
package geom

import "github.com/ajroetker/go-highway/hwy"

// LaneWidth returns the number of float32 lanes the current CPU target
// processes per vector op (8 on AVX2; the portable fallback also targets 8
// per spec.md §4.1's "batches of 8 single-precision lanes").
func LaneWidth() int {
	return hwy.Zero[float32]().NumLanes()
}

// LDABatch computes LDA(a, b, c[i]) for up to LaneWidth() candidates at
// once, broadcasting the shared edge endpoints a, b across lanes and loading
// cx, cy from parallel coordinate slices. active bounds how many of the
// leading lanes are real candidates; only out[0:active] is written, and
// entries from active on are left untouched (spec.md §4.1 step 4, §9 "SIMD
// lane padding"). cx, cy, out must each have length >= LaneWidth(), and
// active must not exceed LaneWidth().
//
// Complexity: O(1) vector ops, independent of LaneWidth().
func LDABatch(a, b Point, cx, cy []float32, active int, out []float32) {
	lanes := LaneWidth()

	ax := hwy.Set(a.X)
	ay := hwy.Set(a.Y)
	bx := hwy.Set(b.X)
	by := hwy.Set(b.Y)

	vcx := hwy.Load(cx[:lanes])
	vcy := hwy.Load(cy[:lanes])

	// ab, bc, ac squared lengths via (dx*dx + dy*dy); ab is scalar-broadcast
	// since a and b are fixed for the whole edge.
	abx := hwy.Sub(bx, ax)
	aby := hwy.Sub(by, ay)
	abSq := hwy.MulAdd(abx, abx, hwy.Mul(aby, aby))

	bcx := hwy.Sub(vcx, bx)
	bcy := hwy.Sub(vcy, by)
	bcSq := hwy.MulAdd(bcx, bcx, hwy.Mul(bcy, bcy))

	acx := hwy.Sub(vcx, ax)
	acy := hwy.Sub(vcy, ay)
	acSq := hwy.MulAdd(acx, acx, hwy.Mul(acy, acy))

	bc := hwy.Sqrt(bcSq)
	ac := hwy.Sqrt(acSq)

	// cosTheta = (bc^2 + ac^2 - ab^2) / (2*bc*ac), clamped to [-1, 1] per lane.
	numer := hwy.Sub(hwy.Add(bcSq, acSq), abSq)
	denom := hwy.Mul(hwy.Set(2), hwy.Mul(bc, ac))

	numBuf := make([]float32, lanes)
	denBuf := make([]float32, lanes)
	hwy.Store(numer, numBuf)
	hwy.Store(denom, denBuf)

	// point-to-segment distance needs a per-lane clamp of t in [0,1], which
	// is cheapest done scalar-side alongside the final acos/divide — the
	// vector section above already amortizes the bulk of the FLOPs (the
	// three squared-length computations) across all active lanes.
	for i := 0; i < active; i++ {
		var cosTheta float32
		if denBuf[i] == 0 {
			cosTheta = 1
		} else {
			cosTheta = clamp(numBuf[i]/denBuf[i], -1, 1)
		}
		c := Point{X: cx[i], Y: cy[i]}
		d := PointToSegment(a, b, c)
		if d < segFloor {
			d = segFloor
		}
		out[i] = FastACos(cosTheta) / d
	}
}
