package hull_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/hull"
)

func pt(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }

func TestBuild_UnitSquareWithCenter(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1), pt(0.5, 0.5)}
	h := hull.Build(pts)

	assert.Len(t, h, 4)
	for _, p := range h {
		assert.NotEqual(t, pt(0.5, 0.5), p, "interior point must not be on the hull")
	}
}

func TestBuild_CollinearTrio(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(1, 0), pt(2, 0)}
	h := hull.Build(pts)

	assert.Len(t, h, 2, "collinear interior vertex must be dropped")
	assert.Contains(t, h, pt(0, 0))
	assert.Contains(t, h, pt(2, 0))
}

func TestBuild_FewerThanThreePointsReturnsInput(t *testing.T) {
	assert.Empty(t, hull.Build(nil))
	assert.Equal(t, []geom.Point{pt(1, 1)}, hull.Build([]geom.Point{pt(1, 1)}))
	two := []geom.Point{pt(0, 0), pt(1, 1)}
	assert.ElementsMatch(t, two, hull.Build(two))
}

func TestBuild_IsCounterClockwise(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	h := hull.Build(pts)
	require := assert.New(t)
	require.Len(h, 4)

	var signedArea float32
	for i := range h {
		j := (i + 1) % len(h)
		signedArea += h[i].X*h[j].Y - h[j].X*h[i].Y
	}
	require.Greater(signedArea, float32(0), "CCW polygon must have positive signed area")
}
