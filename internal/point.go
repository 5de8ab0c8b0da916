package internal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Index values for the two synthetic points under the polygon.
const (
	BaseLeftIndex  = -1
	BaseRightIndex = -2
)

// Note that all points involved with the triangulation are pointers, so they
// can be used as identity keys. The sweep works on sheared copies of the
// caller's points; Index leads back to the caller's slice.
type Point struct {
	X float64
	Y float64

	// Position in the unsorted input, or one of the Base*Index values.
	Index int
	// Constraint segments incident to this point, in insertion order.
	Edges []*Segment
	// Set once the sweep has passed this point.
	Processed bool
}

func (p *Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Vector from q to p.
func (p *Point) Sub(q *Point) r2.Point {
	return p.Vec().Sub(q.Vec())
}

func (p *Point) IsBase() bool {
	return p.Index < 0
}

func (p *Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p *Point) Equal(q *Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Index == q.Index
}

func (p *Point) String() string {
	return fmt.Sprintf("#%d(%g, %g)", p.Index, p.X, p.Y)
}

// Less is the sweep order: by y, then x, then input index. The sweep starts
// next to the synthetic base and moves away from it, so lower points come
// first.
func Less(a, b *Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Index < b.Index
}

// Shear applies y' = y + x*eps. Distinct points sharing a y value end up with
// distinct y values unless they also share x.
func Shear(x, y, eps float64) (float64, float64) {
	return x, y + x*eps
}

// Unshear inverts Shear.
func Unshear(x, y, eps float64) (float64, float64) {
	return x, y - x*eps
}
