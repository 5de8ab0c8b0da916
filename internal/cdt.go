package internal

import (
	"log/slog"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Sweep-line constrained Delaunay triangulation of a simple polygon, after
// Domiter & Žalik, "Sweep-line algorithm for constrained Delaunay
// triangulation" (2008).
//
// The polygon is sheared slightly so no two points share a y value, two
// synthetic points are placed under it, and then the points are swept upward
// one at a time. Each point is attached to the advancing front (point event),
// and then every polygon edge between it and an already swept point is forced
// into the mesh (edge event).
//
// A CDT is single use and not safe for concurrent use. Triangulate
// independent polygons in separate CDTs instead.
type CDT struct {
	config Config

	// Sheared copies of the input, in input order
	input []*Point
	// The same points in sweep order
	points   []*Point
	segments []*Segment
	// Synthetic points under the polygon
	baseLeft, baseRight *Point

	mesh  *Mesh
	front *AFront
	// Interior triangles, once the sweep is done
	interior []TriangleID
	swept    bool
	flips    int

	log *slog.Logger
}

// New prepares a triangulation of the polygon given by points, which is closed
// implicitly. The caller's points are not modified.
func New(points []*Point, config Config) *CDT {
	if err := config.Validate(); err != nil {
		panic(TriangulateError{err})
	}
	if len(points) < 3 {
		throw(ErrDegenerateInput, "polygon needs at least 3 points, got %d", len(points))
	}

	c := &CDT{
		config: config,
		mesh:   NewMesh(),
		log:    Logger(),
	}

	// Shear and bound
	bounds := r2.EmptyRect()
	c.input = make([]*Point, len(points))
	for i, p := range points {
		if p == nil || !p.IsFinite() {
			throw(ErrDegenerateInput, "point %d is not a finite point: %v", i, p)
		}
		x, y := Shear(p.X, p.Y, config.ShearEpsilon)
		c.input[i] = &Point{X: x, Y: y, Index: i}
		bounds = bounds.AddPoint(c.input[i].Vec())
	}

	if (Polygon{Points: c.input}).SignedArea() == 0 {
		throw(ErrDegenerateInput, "polygon has no area")
	}

	// Base points, far enough out that the seed triangle's edges never
	// interfere with the polygon
	lo, hi, size := bounds.Lo(), bounds.Hi(), bounds.Size()
	dx := config.BaseExpansion * size.X
	dy := config.BaseExpansion * size.Y
	c.baseLeft = &Point{X: lo.X - dx, Y: lo.Y - dy, Index: BaseLeftIndex}
	c.baseRight = &Point{X: hi.X + dx, Y: lo.Y - dy, Index: BaseRightIndex}

	// Constraint segments, including the closing one
	for i, p := range c.input {
		c.segments = append(c.segments, NewSegment(p, c.input[CircularIndex(i+1, len(c.input))]))
	}

	c.points = make([]*Point, len(c.input))
	copy(c.points, c.input)
	SortPoints(c.points, Less, config.InsertionSortThreshold)
	for i := 1; i < len(c.points); i++ {
		a, b := c.points[i-1], c.points[i]
		if a.X == b.X && a.Y == b.Y {
			throw(ErrDegenerateInput, "points %d and %d coincide", a.Index, b.Index)
		}
	}

	first := c.points[0]
	seed := c.mesh.Add(first, c.baseLeft, c.baseRight)
	c.front = NewAFront(c.baseLeft, first, c.baseRight, seed)
	first.Processed = true

	c.log.Debug("sweepcdt: initialized",
		slog.Int("points", len(c.points)),
		slog.Int("segments", len(c.segments)),
		slog.Float64("base_y", c.baseLeft.Y))
	return c
}

// Triangulate runs the sweep. It panics with a TriangulateError on failure.
func (c *CDT) Triangulate() {
	if c.swept {
		fatalf("triangulation already ran")
	}
	for _, p := range c.points[1:] {
		c.pointEvent(p)
		p.Processed = true

		for _, e := range p.Edges {
			if !e.Other(p).Processed {
				// Handled when the other end is swept
				continue
			}
			c.edgeEvent(e, c.front.Node(c.front.NodeOf(p)).Triangle)
		}

		if c.config.CheckInvariants {
			if err := c.Validate(); err != nil {
				panic(TriangulateError{errors.Wrapf(err, "after sweeping %v", p)})
			}
		}
	}
	c.swept = true
	c.interior = c.markInterior()

	c.log.Debug("sweepcdt: sweep finished",
		slog.Int("triangles", c.mesh.Len()),
		slog.Int("interior", len(c.interior)),
		slog.Int("flips", c.flips))
}

func (c *CDT) Mesh() *Mesh {
	return c.mesh
}

func (c *CDT) Front() *AFront {
	return c.front
}

// Sheared input points, in input order.
func (c *CDT) Points() []*Point {
	return c.input
}

func (c *CDT) Segments() []*Segment {
	return c.segments
}

// The synthetic points, left and right.
func (c *CDT) Base() (*Point, *Point) {
	return c.baseLeft, c.baseRight
}

func (c *CDT) Flips() int {
	return c.flips
}

func (c *CDT) Config() Config {
	return c.config
}

// Triangles returns the triangles covering the polygon interior. Vertices are
// the sheared points.
func (c *CDT) Triangles() []*Face {
	if !c.swept {
		fatalf("triangles requested before the sweep ran")
	}
	return c.faces(c.interior)
}

// DebugTriangles returns every triangle in the mesh, including the ones that
// use the synthetic base points and the ones outside the polygon.
func (c *CDT) DebugTriangles() []*Face {
	return c.faces(c.mesh.Live())
}

// Find a triangle with p as a vertex, starting from what the front knows.
func (c *CDT) triangleAt(p *Point) TriangleID {
	if n := c.front.NodeOf(p); n != NoNode {
		if t := c.front.Node(n).Triangle; t != NoTriangle {
			return t
		}
		// Tail node: use the triangle under the edge coming into it
		if prev := c.front.Node(n).Prev; prev != NoNode {
			return c.front.Node(prev).Triangle
		}
	}
	for _, id := range c.mesh.Live() {
		if c.mesh.Get(id).Contains(p) {
			return id
		}
	}
	return NoTriangle
}

// All triangles around p, starting from a triangle that has p. The fan is
// open when p is on the front and closed otherwise.
func (c *CDT) fan(p *Point, start TriangleID) []TriangleID {
	ids := []TriangleID{start}
	for cur := start; ; {
		next := c.mesh.Get(cur).NeighborCW(p)
		if next == NoTriangle {
			break
		}
		if next == start {
			return ids
		}
		ids = append(ids, next)
		cur = next
	}
	for cur := start; ; {
		next := c.mesh.Get(cur).NeighborCCW(p)
		if next == NoTriangle {
			break
		}
		ids = append(ids, next)
		cur = next
	}
	return ids
}

// Point the front nodes at t for every front edge t has. Front edges run left
// to right, so a counterclockwise triangle under one traverses it from the
// right point to the left point.
func (c *CDT) mapTriangleToNodes(id TriangleID) {
	t := c.mesh.Get(id)
	for i := 0; i < 3; i++ {
		if t.Neighbors[i] != NoTriangle {
			continue
		}
		right, left := t.Edge(i)
		n := c.front.NodeOf(left)
		if n == NoNode {
			continue
		}
		node := c.front.Node(n)
		if node.Next != NoNode && c.front.Node(node.Next).Point == right {
			node.Triangle = id
		}
	}
}
