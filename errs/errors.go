// Package errs centralizes the sentinel errors shared by every geotsp
// package. Keeping one block here (rather than one per package) mirrors the
// single sentinel block in the teacher's tsp/types.go, scaled to a module
// split across several small packages.
//
// Policy: do not wrap these with fmt.Errorf where the sentinel already
// identifies the failure; errors.Is against this block is the supported
// way callers distinguish failure modes.
package errs

import "errors"

// Structural / input-shape errors (spec.md §7: InputMissing, InputUnreadable,
// DegenerateInput).
var (
	// ErrInputMissing is returned when the CLI receives no input path.
	ErrInputMissing = errors.New("geotsp: input path missing")

	// ErrInputUnreadable is returned when the input file cannot be opened or read.
	ErrInputUnreadable = errors.New("geotsp: input unreadable")

	// ErrDegenerateInput is returned when the computed hull is empty, which
	// happens only for an input with no points; 1- and 2-point inputs are
	// solved as-is.
	ErrDegenerateInput = errors.New("geotsp: degenerate input (hull is empty)")

	// ErrNoCoordSection names a TSPLIB file that lacks NODE_COORD_SECTION.
	// tsplib.ParseNodeCoordSection does not return it: a missing section
	// yields an empty point set and a nil error.
	ErrNoCoordSection = errors.New("geotsp: missing NODE_COORD_SECTION")
)

// Tour / grid invariants.
var (
	// ErrDuplicatePoint indicates an attempted insertion of a point already on the tour.
	ErrDuplicatePoint = errors.New("geotsp: duplicate point on tour")

	// ErrPointNotFound indicates a lookup (anchor, removal) failed to locate a point.
	ErrPointNotFound = errors.New("geotsp: point not found")

	// ErrShortTour indicates an operation that requires len(tour) >= 3 was given fewer points.
	ErrShortTour = errors.New("geotsp: tour has fewer than 3 vertices")

	// ErrInvalidGrid indicates a SpatialGrid was requested for an empty point set.
	ErrInvalidGrid = errors.New("geotsp: spatial grid requires cell_size > 0")
)

// Selection / expansion governance.
var (
	// ErrNoCandidate is returned by selector.Select when the interior set is
	// empty. When no edge finds an interior point within the search radius,
	// Select uses the nearest-pair fallback (spec.md §4.4) instead of
	// returning this.
	ErrNoCandidate = errors.New("geotsp: no insertion candidate found")

	// ErrIterationCap signals the hull-expansion safety bound
	// (2 * |interior_initial|) was reached with interior points remaining.
	// Non-fatal: the driver logs it and continues to post-processing.
	ErrIterationCap = errors.New("geotsp: expansion iteration cap reached")
)

// Output errors.
var (
	// ErrOutputUnwritable is returned when the output tour file cannot be created or written.
	ErrOutputUnwritable = errors.New("geotsp: output unwritable")
)
