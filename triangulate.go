// A sweep-line constrained Delaunay triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex, into a set
// of triangles containing only the original points, with every polygon edge
// kept as a triangle edge and the rest chosen to be Delaunay where possible.
// It follows Domiter & Žalik's sweep-line algorithm.
package sweepcdt

import (
	"log/slog"
	"sync"

	"github.com/osuushi/sweepcdt/internal"
)

type Point = internal.Point
type Triangle = internal.Face
type Config = internal.Config

var (
	ErrDegenerateInput   = internal.ErrDegenerateInput
	ErrFrontNodeNotFound = internal.ErrFrontNodeNotFound
	ErrUnsupported       = internal.ErrUnsupported
	ErrTopology          = internal.ErrTopology
	ErrInvalidConfig     = internal.ErrInvalidConfig
)

func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// SetLogger enables debug logging of triangulations. Pass nil to silence it
// again, which is the default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Take a polygon, given as its points in order, and convert it into triangles.
// The closing edge from the last point to the first is implied.
//
// The polygon must be simple. Either winding works. The returned triangles
// are counterclockwise and their vertices are the points that were passed in.
func Triangulate(points []*Point) ([]*Triangle, error) {
	return TriangulateWithConfig(DefaultConfig(), points)
}

func TriangulateWithConfig(config Config, points []*Point) (result []*Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	cdt := internal.New(points, config)
	cdt.Triangulate()

	// The mesh works on sheared copies. Hand back the caller's own points.
	result = cdt.Triangles()
	for _, t := range result {
		t.A, t.B, t.C = points[t.A.Index], points[t.B.Index], points[t.C.Index]
	}
	return result, nil
}

// TriangulateDebug returns every triangle the sweep produced, including the
// ones using the two synthetic base points and the ones outside the polygon.
// Vertices are the sheared copies the sweep worked on; their Index leads back
// to the input.
func TriangulateDebug(config Config, points []*Point) (result []*Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	cdt := internal.New(points, config)
	cdt.Triangulate()
	return cdt.DebugTriangles(), nil
}

// TriangulateAll triangulates independent polygons in parallel, one sweep per
// goroutine. Results are in the order of the polygons. If any polygon fails,
// the first error in polygon order is returned and no results.
func TriangulateAll(config Config, polygons ...[]*Point) ([][]*Triangle, error) {
	results := make([][]*Triangle, len(polygons))
	errs := make([]error, len(polygons))

	var wg sync.WaitGroup
	for i, points := range polygons {
		wg.Add(1)
		go func(i int, points []*Point) {
			defer wg.Done()
			results[i], errs[i] = TriangulateWithConfig(config, points)
		}(i, points)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
