package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geotsp/errs"
	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/tour"
)

func pt(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }

func square() *tour.Tour {
	return tour.New([]geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)})
}

func TestAt_WrapsModuloLen(t *testing.T) {
	tr := square()
	assert.Equal(t, pt(0, 0), tr.At(0))
	assert.Equal(t, pt(0, 0), tr.At(4))
	assert.Equal(t, pt(0, 1), tr.At(-1))
}

func TestIndexOfAndContains(t *testing.T) {
	tr := square()
	assert.Equal(t, 2, tr.IndexOf(pt(1, 1)))
	assert.Equal(t, -1, tr.IndexOf(pt(9, 9)))
	assert.True(t, tr.Contains(pt(1, 0)))
	assert.False(t, tr.Contains(pt(9, 9)))
}

func TestInsertAfter_InsertsAndRejectsDuplicatesAndMissingAnchor(t *testing.T) {
	tr := square()
	require.NoError(t, tr.InsertAfter(pt(1, 0), pt(0.5, 0.5)))
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, pt(0.5, 0.5), tr.At(2))

	err := tr.InsertAfter(pt(0, 0), pt(1, 1))
	assert.ErrorIs(t, err, errs.ErrDuplicatePoint)

	err = tr.InsertAfter(pt(9, 9), pt(3, 3))
	assert.ErrorIs(t, err, errs.ErrPointNotFound)
}

func TestRemoveAt(t *testing.T) {
	tr := square()
	tr.RemoveAt(1)
	assert.Equal(t, 3, tr.Len())
	assert.False(t, tr.Contains(pt(1, 0)))
}

func TestEdge_WrapsAtEnd(t *testing.T) {
	tr := square()
	a, b := tr.Edge(3)
	assert.Equal(t, pt(0, 1), a)
	assert.Equal(t, pt(0, 0), b)
}

func TestLength_UnitSquareIsFour(t *testing.T) {
	tr := square()
	assert.InDelta(t, 4.0, tr.Length(), 1e-6)
}

func TestReverseSegment(t *testing.T) {
	tr := square()
	tr.ReverseSegment(1, 2)
	assert.Equal(t, []geom.Point{pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1)}, tr.Points())
}

func TestCopy_IsIndependent(t *testing.T) {
	tr := square()
	cp := tr.Copy()
	cp.RemoveAt(0)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 3, cp.Len())
}

func TestValidate_RejectsShortAndDuplicateTours(t *testing.T) {
	short := tour.New([]geom.Point{pt(0, 0), pt(1, 1)})
	assert.ErrorIs(t, short.Validate(), errs.ErrShortTour)

	dup := tour.New([]geom.Point{pt(0, 0), pt(1, 0), pt(0, 0)})
	assert.ErrorIs(t, dup.Validate(), errs.ErrDuplicatePoint)

	ok := square()
	assert.NoError(t, ok.Validate())
}

func TestInteriorSet_RemoveAndContains(t *testing.T) {
	s := tour.NewInteriorSet([]geom.Point{pt(2, 2), pt(3, 3)})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(pt(2, 2)))

	s.Remove(pt(2, 2))
	assert.False(t, s.Contains(pt(2, 2)))
	assert.Equal(t, 1, s.Len())

	// Idempotent on absent points.
	assert.NotPanics(t, func() { s.Remove(pt(2, 2)) })
}
