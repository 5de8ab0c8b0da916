package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
// 6. A polygon with n points has n-2 triangles.
//
// The polygon must hold the same points the triangles were built from, which
// for the internal package means CDT.Points().
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangles []*Face) {
	polyPoints := make(map[*Point]bool)
	for _, p := range polygon.Points {
		polyPoints[p] = true
	}
	trianglePoints := make(map[*Point]bool)
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			trianglePoints[p] = true
		}
	}

	require.Equal(t, len(polyPoints), len(trianglePoints), "set of points in the triangles must equal the set of points in the polygon")
	for p := range trianglePoints {
		require.True(t, polyPoints[p], "triangle point %v is not in the polygon", p)
	}

	var triangleArea float64
	triangleSegmentSet := make(map[edgeKey]bool)
	for _, tri := range triangles {
		// Check that the triangle is counterclockwise
		require.Greater(t, tri.SignedArea(), 0.0, "clockwise or empty triangle: %s", tri)
		triangleArea += tri.SignedArea()
		// Add all the segments to the set
		triangleSegmentSet[newEdgeKey(tri.A, tri.B)] = true
		triangleSegmentSet[newEdgeKey(tri.B, tri.C)] = true
		triangleSegmentSet[newEdgeKey(tri.C, tri.A)] = true
	}

	// Check every segment in the polygon is in the set
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, triangleSegmentSet[newEdgeKey(p1, p2)], "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	// Check that the sum of the areas of all triangles is equal to the area of the polygon
	polygonArea := math.Abs(polygon.SignedArea())
	require.InDelta(t, polygonArea, triangleArea, polygonArea*1e-9, "sum of the areas of all triangles must equal the area of the polygon")

	require.Len(t, triangles, len(polygon.Points)-2, "triangles: %s", pretty.Sprint(faceCoords(triangles)))
}

// Plain coordinates, for failure messages. Points link to their segments and
// back, which is too much to print.
func faceCoords(triangles []*Face) [][3][2]float64 {
	coords := make([][3][2]float64, len(triangles))
	for i, tri := range triangles {
		for j, p := range tri.Points() {
			coords[i][j] = [2]float64{p.X, p.Y}
		}
	}
	return coords
}

func faceContainsPoint(f *Face, p *Point) bool {
	return Orient2D(f.A, f.B, p) >= 0 && Orient2D(f.B, f.C, p) >= 0 && Orient2D(f.C, f.A, p) >= 0
}

// Sample a grid over the polygon, and check that every sample is covered by
// some triangle exactly when it is inside the polygon.
func validateTrianglesBySampling(t *testing.T, triangles []*Face, polygon *Polygon) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size. The odd offset keeps samples off the polygon's
	// edges, which tend to sit on round numbers.
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.3183

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := &Point{X: x, Y: y}

			covered := false
			for _, tri := range triangles {
				if faceContainsPoint(tri, p) {
					covered = true
					break
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, covered, "point %v should be covered by a triangle", p)
			} else {
				assert.False(t, covered, "point %v should not be covered by a triangle", p)
			}
		}
	}
}
