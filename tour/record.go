package tour

import "github.com/katalvlaran/geotsp/geom"

// InsertionRecord captures one accepted insertion during hull expansion
// (spec.md §3): the LDA score that won the selection, the tour edge's
// anchor vertex the point was inserted after, and the point itself.
//
// Defined alongside Tour rather than in the expand or selector package so
// both can depend on it without a cyclic import (the selector produces
// records, the expand driver applies and logs them).
type InsertionRecord struct {
	Score    float32
	Anchor   geom.Point
	Inserted geom.Point
}

// InsertionLog is the ordered history of every accepted insertion, used by
// RELP to identify the lowest-scoring points to re-seed (spec.md §4.8).
type InsertionLog []InsertionRecord
