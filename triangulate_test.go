package sweepcdt

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in their own package.
func TestTriangulate(t *testing.T) {
	points := []*Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)

	// Vertices are the caller's points, untouched by the shear
	inputSet := map[*Point]bool{}
	for _, p := range points {
		inputSet[p] = true
	}
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			assert.True(t, inputSet[p], "vertex %v is not an input point", p)
		}
		assert.Greater(t, tri.SignedArea(), 0.0)
	}
	assert.Equal(t, 1.0, points[0].X)
	assert.Equal(t, -1.0, points[0].Y)
}

func TestTriangulate_Clockwise(t *testing.T) {
	points := []*Point{
		{X: 0, Y: 0},
		{X: 0, Y: 2},
		{X: 3, Y: 2},
		{X: 3, Y: 0},
		{X: 1.5, Y: 1},
	}
	triangles, err := Triangulate(points)
	require.NoError(t, err)
	assert.Len(t, triangles, 3)

	var area float64
	for _, tri := range triangles {
		area += tri.SignedArea() / 2
	}
	// Square of 6 minus the notch of 1.5
	assert.InDelta(t, 4.5, area, 1e-9)
}

func TestTriangulate_Errors(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		triangles, err := Triangulate([]*Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
		assert.Nil(t, triangles)
		assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error %v", err)
	})

	t.Run("coincident points", func(t *testing.T) {
		_, err := Triangulate([]*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}})
		assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error %v", err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := Triangulate([]*Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 1, Y: 1}})
		assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error %v", err)
	})

	t.Run("bad config", func(t *testing.T) {
		config := DefaultConfig()
		config.BaseExpansion = 0
		_, err := TriangulateWithConfig(config, []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
		assert.True(t, errors.Is(err, ErrInvalidConfig), "unexpected error %v", err)
	})
}

func TestTriangulateDebug(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	triangles, err := TriangulateDebug(DefaultConfig(), points)
	require.NoError(t, err)

	var base, interior int
	for _, tri := range triangles {
		if tri.IsBase() {
			base++
		} else {
			interior++
		}
	}
	assert.Greater(t, base, 0)
	assert.Equal(t, 2, interior)
}

func TestTriangulateAll(t *testing.T) {
	square := []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	var pentagon []*Point
	for i := 0; i < 5; i++ {
		angle := 2 * math.Pi * float64(i) / 5
		pentagon = append(pentagon, &Point{X: math.Cos(angle), Y: math.Sin(angle)})
	}

	results, err := TriangulateAll(DefaultConfig(), square, pentagon)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[0], 2)
	assert.Len(t, results[1], 3)

	_, err = TriangulateAll(DefaultConfig(), square, square[:2])
	assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error %v", err)
}

func TestTriangulateAll_ConcurrentFailures(t *testing.T) {
	var polygons [][]*Point
	for i := 0; i < 16; i++ {
		bowtie := []*Point{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 3, Y: 0}, {X: 0, Y: 3}}
		square := []*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		polygons = append(polygons, bowtie, square)
	}
	_, err := TriangulateAll(DefaultConfig(), polygons...)
	assert.True(t, errors.Is(err, ErrUnsupported), "unexpected error %v", err)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	_, err := Triangulate([]*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sweep finished")
}
