package internal

import "github.com/pkg/errors"

// Error kinds. Every error coming out of a triangulation wraps exactly one of
// these, and a failed triangulation never returns a partial mesh.
var (
	// Fewer than 3 points, non-finite coordinates, coincident points after
	// shearing, zero-length segments or a polygon with no area.
	ErrDegenerateInput = errors.New("degenerate input")

	// The advancing front has no node whose x-span contains the point.
	ErrFrontNodeNotFound = errors.New("front node not found for x-coordinate")

	// A constraint that cannot be inserted, such as one crossing another
	// constraint or running through a vertex. This only happens for polygons
	// that are not simple.
	ErrUnsupported = errors.New("unsupported configuration")

	// The neighbor graph or the front lost consistency.
	ErrTopology = errors.New("inconsistent mesh topology")

	ErrInvalidConfig = errors.New("invalid config")
)
