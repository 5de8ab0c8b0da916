package internal

import (
	"fmt"

	"github.com/osuushi/sweepcdt/dbg"
)

// Handle of a triangle in the Mesh arena. Handles stay valid for the lifetime
// of the mesh, even after the triangle is removed.
type TriangleID int

const NoTriangle TriangleID = -1

// A mesh cell. Points are counterclockwise. Slot i of Neighbors and Constrained
// describes the edge opposite Points[i]:
/*
	       Points[0]
	         /  \
	  N[2]  /    \  N[1]
	       /      \
	Points[1]----Points[2]
	          N[0]
*/
type Triangle struct {
	Points      [3]*Point
	Neighbors   [3]TriangleID
	Constrained [3]bool

	live bool
}

func newTriangle(a, b, c *Point) Triangle {
	orientation := Orient2D(a, b, c)
	if orientation == 0 {
		throw(ErrDegenerateInput, "collinear triangle %v %v %v", a, b, c)
	}
	if orientation < 0 {
		b, c = c, b
	}
	return Triangle{
		Points:    [3]*Point{a, b, c},
		Neighbors: [3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
		live:      true,
	}
}

func (t *Triangle) Live() bool {
	return t.live
}

// Index of p in Points, or -1.
func (t *Triangle) Index(p *Point) int {
	for i, q := range t.Points {
		if q == p {
			return i
		}
	}
	return -1
}

func (t *Triangle) Contains(p *Point) bool {
	return t.Index(p) >= 0
}

// Slot of the edge between a and b (in either direction), or -1.
func (t *Triangle) EdgeIndex(a, b *Point) int {
	i := t.Index(a)
	j := t.Index(b)
	if i < 0 || j < 0 || i == j {
		return -1
	}
	return 3 - i - j
}

func (t *Triangle) ContainsEdge(a, b *Point) bool {
	return t.EdgeIndex(a, b) >= 0
}

// The two endpoints of the edge in slot i, in counterclockwise order.
func (t *Triangle) Edge(i int) (*Point, *Point) {
	return t.Points[(i+1)%3], t.Points[(i+2)%3]
}

func (t *Triangle) PointCW(p *Point) *Point {
	return t.Points[(t.mustIndex(p)+2)%3]
}

func (t *Triangle) PointCCW(p *Point) *Point {
	return t.Points[(t.mustIndex(p)+1)%3]
}

// Neighbor across the edge from p to its clockwise point.
func (t *Triangle) NeighborCW(p *Point) TriangleID {
	return t.Neighbors[(t.mustIndex(p)+1)%3]
}

// Neighbor across the edge from p to its counterclockwise point.
func (t *Triangle) NeighborCCW(p *Point) TriangleID {
	return t.Neighbors[(t.mustIndex(p)+2)%3]
}

func (t *Triangle) NeighborAcross(p *Point) TriangleID {
	return t.Neighbors[t.mustIndex(p)]
}

func (t *Triangle) ConstrainedCW(p *Point) bool {
	return t.Constrained[(t.mustIndex(p)+1)%3]
}

func (t *Triangle) ConstrainedCCW(p *Point) bool {
	return t.Constrained[(t.mustIndex(p)+2)%3]
}

// The vertex of t that other doesn't have. For two triangles sharing an edge,
// this is the point of t opposite that edge.
func (t *Triangle) OppositePoint(other *Triangle) *Point {
	for _, p := range t.Points {
		if !other.Contains(p) {
			return p
		}
	}
	fatalf("triangle %v has no point outside %v", t, other)
	return nil
}

// Legalize rewrites the vertices in place as (opoint, ccw of opoint, npoint).
// This is one half of an edge flip: the point clockwise of opoint is dropped in
// favor of npoint. Neighbor and constraint slots are left for the caller.
func (t *Triangle) Legalize(opoint, npoint *Point) {
	ccw := t.PointCCW(opoint)
	t.Points = [3]*Point{opoint, ccw, npoint}
}

func (t *Triangle) mustIndex(p *Point) int {
	i := t.Index(p)
	if i < 0 {
		throw(ErrTopology, "point %v is not in triangle %v", p, t)
	}
	return i
}

func (t *Triangle) String() string {
	return fmt.Sprintf("%s[%v %v %v]", dbg.Name(t), t.Points[0], t.Points[1], t.Points[2])
}
