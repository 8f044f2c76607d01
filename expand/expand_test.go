package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotsp/expand"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/tour"
)

func pt(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }

func TestRun_InsertsEveryInteriorPoint(t *testing.T) {
	hullPts := []geom.Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	interiorPts := []geom.Point{pt(5, 0.5), pt(9.5, 5), pt(5, 9.5), pt(0.5, 5), pt(5, 5)}

	tr := tour.New(append([]geom.Point{}, hullPts...))
	interior := tour.NewInteriorSet(interiorPts)
	g, err := grid.New(interiorPts)
	require.NoError(t, err)

	d := expand.NewDriver(tr, interior, g, nil, nil)
	require.NoError(t, d.Run())

	assert.Equal(t, 0, interior.Len())
	assert.Equal(t, len(hullPts)+len(interiorPts), tr.Len())
	assert.Len(t, d.Log, len(interiorPts))

	for _, p := range interiorPts {
		assert.True(t, tr.Contains(p))
	}
}

func TestRun_EmptyInteriorIsNoop(t *testing.T) {
	tr := tour.New([]geom.Point{pt(0, 0), pt(1, 0), pt(1, 1)})
	interior := tour.NewInteriorSet(nil)
	g, err := grid.New(tr.Points())
	require.NoError(t, err)

	d := expand.NewDriver(tr, interior, g, nil, nil)
	require.NoError(t, d.Run())
	assert.Equal(t, 3, tr.Len())
	assert.Empty(t, d.Log)
}
