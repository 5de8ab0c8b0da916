package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess(t *testing.T) {
	a := &Point{X: 0, Y: 0, Index: 1}
	b := &Point{X: 1, Y: 0, Index: 0}
	c := &Point{X: -5, Y: 1, Index: 2}
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.True(t, Less(b, c))
	assert.True(t, Less(a, c))

	// Index breaks exact ties
	d := &Point{X: 0, Y: 0, Index: 5}
	assert.True(t, Less(a, d))
	assert.False(t, Less(d, a))
	assert.False(t, Less(a, a))
}

func TestShear(t *testing.T) {
	const eps = DefaultShearEpsilon
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {-3.5, 2}, {1e6, -1e6}, {0.1, 0.2}} {
		x, y := Shear(p[0], p[1], eps)
		assert.Equal(t, p[0], x)
		x, y = Unshear(x, y, eps)
		assert.InDelta(t, p[0], x, 1e-12)
		assert.InDelta(t, p[1], y, 1e-9*math.Max(1, math.Abs(p[1])))
	}

	// Equal y values are separated by x
	_, y1 := Shear(0, 1, eps)
	_, y2 := Shear(1, 1, eps)
	assert.Less(t, y1, y2)
}

func TestPoint(t *testing.T) {
	p := &Point{X: 1.5, Y: -2, Index: 3}
	assert.Equal(t, "#3(1.5, -2)", p.String())
	assert.False(t, p.IsBase())
	assert.True(t, p.IsFinite())
	assert.True(t, (&Point{Index: BaseRightIndex}).IsBase())
	assert.False(t, (&Point{X: math.NaN()}).IsFinite())
	assert.False(t, (&Point{Y: math.Inf(-1)}).IsFinite())

	q := &Point{X: 0.5, Y: 1}
	v := p.Sub(q)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, -3.0, v.Y)
	assert.True(t, p.Equal(&Point{X: 1.5, Y: -2, Index: 3}))
	assert.False(t, p.Equal(q))
}

func TestSegment(t *testing.T) {
	p, q := pt(0, 0), pt(1, 0)
	s := NewSegment(p, q)
	assert.Equal(t, []*Segment{s}, p.Edges)
	assert.Equal(t, []*Segment{s}, q.Edges)
	assert.Same(t, q, s.Other(p))
	assert.Same(t, p, s.Other(q))
	assert.True(t, s.Has(p))
	assert.False(t, s.Has(pt(0, 0)))

	err := catch(func() { NewSegment(pt(1, 1), pt(1, 1)) })
	assert.ErrorIs(t, err, ErrDegenerateInput)
}
