package uncross_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geotsp/geom"
	"github.com/katalvlaran/geotsp/tour"
	"github.com/katalvlaran/geotsp/uncross"
)

func pt(x, y float32) geom.Point { return geom.Point{X: x, Y: y} }

func TestRun_UncrossesSimpleBowtie(t *testing.T) {
	// Square corners visited out of order produce a self-crossing tour;
	// 2-opt should restore the convex order.
	tr := tour.New([]geom.Point{pt(0, 0), pt(4, 4), pt(4, 0), pt(0, 4)})
	before := tr.Length()

	uncross.Run(tr)

	after := tr.Length()
	assert.Less(t, after, before)
	assert.InDelta(t, 16.0, after, 1e-4, "uncrossed unit-scaled square perimeter should be 4*4=16")
}

func TestRun_LeavesAlreadyOptimalTourUnchanged(t *testing.T) {
	tr := tour.New([]geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)})
	before := append([]geom.Point{}, tr.Points()...)

	uncross.Run(tr)

	assert.Equal(t, before, tr.Points())
}
