package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/grid"
	"github.com/katalvlaran/geotsp/internal/workerpool"
	"github.com/katalvlaran/geotsp/selector"
	"github.com/katalvlaran/geotsp/tour"
)

func pt(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }

func TestSelect_RejectsEmptyInterior(t *testing.T) {
	tr := tour.New([]geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	interior := tour.NewInteriorSet(nil)
	g, err := grid.New(tr.Points())
	require.NoError(t, err)

	_, err = selector.Select(tr, interior, g, 8, nil)
	assert.ErrorIs(t, err, errs.ErrNoCandidate)
}

func TestSelect_PicksInteriorPointOverNoCandidate(t *testing.T) {
	tr := tour.New([]geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	interiorPts := []geom.Point{pt(2, 0.1)}
	interior := tour.NewInteriorSet(interiorPts)

	all := append(append([]geom.Point{}, tr.Points()...), interiorPts...)
	g, err := grid.New(all)
	require.NoError(t, err)

	rec, err := selector.Select(tr, interior, g, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, pt(2, 0.1), rec.Inserted)
	assert.Contains(t, tr.Points(), rec.Anchor)
}

func TestSelect_RunsSameWithOrWithoutPool(t *testing.T) {
	tr := tour.New([]geom.Point{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)})
	interiorPts := []geom.Point{pt(5, 0.2), pt(5, 9.8), pt(0.2, 5)}
	all := append(append([]geom.Point{}, tr.Points()...), interiorPts...)
	g, err := grid.New(all)
	require.NoError(t, err)

	interiorA := tour.NewInteriorSet(interiorPts)
	recA, errA := selector.Select(tr, interiorA, g, 8, nil)
	require.NoError(t, errA)

	pool := workerpool.New(2)
	defer pool.Close()

	interiorB := tour.NewInteriorSet(interiorPts)
	recB, errB := selector.Select(tr, interiorB, g, 8, pool)
	require.NoError(t, errB)

	assert.Equal(t, recA.Inserted, recB.Inserted)
	assert.Equal(t, recA.Anchor, recB.Anchor)
}
