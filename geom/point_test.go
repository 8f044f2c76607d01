package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotsp/geom"
)

func TestCalcDist(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, geom.CalcDist(a, b), 1e-6)
	assert.Equal(t, float32(0), geom.CalcDist(a, a))
}

func TestPointToSegment_ZeroLengthFallsBackToDistance(t *testing.T) {
	a := geom.Point{X: 1, Y: 1}
	b := geom.Point{X: 1, Y: 1}
	c := geom.Point{X: 4, Y: 5}
	assert.InDelta(t, float64(geom.CalcDist(a, c)), float64(geom.PointToSegment(a, b, c)), 1e-6)
}

func TestPointToSegment_ClampsProjection(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}

	// c projects before a: distance should equal |a-c|.
	before := geom.Point{X: -5, Y: 0}
	require.InDelta(t, 5.0, geom.PointToSegment(a, b, before), 1e-6)

	// c projects after b: distance should equal |b-c|.
	after := geom.Point{X: 15, Y: 0}
	require.InDelta(t, 5.0, geom.PointToSegment(a, b, after), 1e-6)

	// c directly above the midpoint: perpendicular distance.
	mid := geom.Point{X: 5, Y: 3}
	require.InDelta(t, 3.0, geom.PointToSegment(a, b, mid), 1e-6)
}

func TestFastACos_MatchesMathAcosWithinBound(t *testing.T) {
	const bound = 7e-5
	for x := -1.0; x <= 1.0; x += 0.01 {
		got := geom.FastACos(float32(x))
		want := math.Acos(x)
		assert.InDelta(t, want, float64(got), bound, "x=%v", x)
	}
}

func TestLDA_FiniteForNonDegenerateTriple(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	c := geom.Point{X: 5, Y: 1}

	score := geom.LDA(a, b, c)
	assert.False(t, math.IsNaN(float64(score)))
	assert.False(t, math.IsInf(float64(score), 0))
	assert.Greater(t, score, float32(0))
}

func TestLDA_PrefersWideAngleAndClosePoint(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}

	close := geom.Point{X: 5, Y: 0.1}
	far := geom.Point{X: 5, Y: 5}

	assert.Greater(t, geom.LDA(a, b, close), geom.LDA(a, b, far))
}
