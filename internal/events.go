package internal

import "log/slog"

// pointEvent attaches p to the mesh and the front, and returns the triangle
// bound to p's new front node.
func (c *CDT) pointEvent(p *Point) TriangleID {
	id := c.front.Locate(p.X)
	if id == NoNode {
		throw(ErrFrontNodeNotFound, "point %v, front %v", p, c.front)
	}

	var n NodeID
	if p.X == c.front.Node(id).Point.X && id != c.front.Head {
		n = c.projectedOnPoint(p, id)
	} else {
		n = c.projectedOnEdge(p, id)
	}

	c.scanAFront(n)
	return c.front.Node(n).Triangle
}

// The projection of p onto the front hits the front edge starting at id. One
// new triangle:
/*
	      p
	     / \
	    /   \
	  id-----next
*/
func (c *CDT) projectedOnEdge(p *Point, id NodeID) NodeID {
	node := *c.front.Node(id)
	next := c.front.Node(node.Next).Point
	if Orient2D(node.Point, next, p) <= 0 {
		throw(ErrDegenerateInput, "point %v lies on the front edge %v-%v", p, node.Point, next)
	}

	t := c.mesh.Add(p, node.Point, next)
	c.mesh.MarkNeighbor(t, node.Triangle)

	n := c.front.InsertAfter(id, p, t)
	c.front.Node(id).Triangle = t

	c.legalize(t, p)
	return n
}

// The projection of p onto the front coincides with the point at id. Two new
// triangles, and p takes over id's place on the front:
/*
	         p
	       / | \
	 left /  |  \ right
	     /   |   \
	 prev----id---next
*/
func (c *CDT) projectedOnPoint(p *Point, id NodeID) NodeID {
	node := *c.front.Node(id)
	prev := *c.front.Node(node.Prev)
	next := c.front.Node(node.Next).Point

	right := c.mesh.Add(p, node.Point, next)
	left := c.mesh.Add(p, prev.Point, node.Point)
	c.mesh.MarkNeighbor(right, node.Triangle)
	c.mesh.MarkNeighbor(left, prev.Triangle)
	c.mesh.MarkNeighbor(left, right)

	n := c.front.Replace(id, p, right)
	c.front.Node(node.Prev).Triangle = left

	c.legalize(left, p)
	c.legalize(right, p)
	return n
}

// edgeEvent makes the segment an edge of the mesh and marks it constrained.
// Both ends have been swept. The later one in sweep order is the point just
// swept, which is on the front, and tri is the triangle bound to it.
func (c *CDT) edgeEvent(e *Segment, tri TriangleID) {
	p := e.P
	if Less(e.P, e.Q) {
		p = e.Q
	}
	q := e.Other(p)
	if !c.mesh.Get(tri).Contains(p) {
		throw(ErrTopology, "triangle %v is not bound to %v", c.mesh.Get(tri), p)
	}

	if c.markConstrainedEdge(p, q) {
		c.log.Debug("sweepcdt: edge event", slog.String("edge", e.String()), slog.String("path", "existing"))
		return
	}

	if c.pocketEvent(p, q) {
		c.log.Debug("sweepcdt: edge event", slog.String("edge", e.String()), slog.String("path", "pocket"))
		return
	}

	// The segment may pass above the front for a while. Filling the front
	// between the ends up to its upper hull puts the whole segment inside the
	// mesh.
	c.fillUnder(p, q)
	if c.markConstrainedEdge(p, q) {
		c.log.Debug("sweepcdt: edge event", slog.String("edge", e.String()), slog.String("path", "filled"))
		return
	}

	c.insertConstraint(p, q)
	c.log.Debug("sweepcdt: edge event", slog.String("edge", e.String()), slog.String("path", "crossing"))
}

// If p-q is already an edge, constrain it and return true.
func (c *CDT) markConstrainedEdge(p, q *Point) bool {
	start := c.triangleAt(p)
	if start == NoTriangle {
		throw(ErrTopology, "no triangle has point %v", p)
	}
	for _, id := range c.fan(p, start) {
		if c.mesh.Constrain(id, p, q) {
			return true
		}
	}
	return false
}

// The pocket case: both ends are on the front and every front point between
// them is strictly under the segment. The pocket between the segment and the
// front is a pseudo-polygon:
/*
	p---------------q   <- segment, the new front edge
	 \    c2       /
	  \  /  \     /
	   c1    c3--c4      <- front points between the ends
*/
func (c *CDT) pocketEvent(p, q *Point) bool {
	np, nq := c.front.NodeOf(p), c.front.NodeOf(q)
	if np == NoNode || nq == NoNode {
		return false
	}
	left, right := np, nq
	if q.X < p.X {
		left, right = nq, np
	}
	a, b := c.front.Node(left).Point, c.front.Node(right).Point

	var chain []*Point
	boundary := make(map[edgeKey]boundaryEdge)
	for id := left; id != right; {
		node := c.front.Node(id)
		if node.Next == NoNode {
			return false
		}
		next := c.front.Node(node.Next).Point
		ot := c.mesh.Get(node.Triangle)
		k := ot.EdgeIndex(node.Point, next)
		if k < 0 {
			throw(ErrTopology, "front edge %v-%v is not on its triangle %v", node.Point, next, ot)
		}
		boundary[newEdgeKey(node.Point, next)] = boundaryEdge{
			outer:       node.Triangle,
			constrained: ot.Constrained[k],
		}
		if node.Next != right {
			if Orient2D(a, b, next) >= 0 {
				return false
			}
			chain = append(chain, next)
		}
		id = node.Next
	}
	if len(chain) == 0 {
		return false
	}

	ids := c.addTriangles(TriangulatePseudoPolygon(chain, a, b))
	c.front.RemoveBetween(left, right)
	c.stitch(ids, boundary, a, b)
	return true
}

// fillUnder fills front basins strictly between p and the first node at or
// beyond q's x, until that stretch of the front is concave. The area under a
// concave stretch is convex and holds both p and q, so afterwards the segment
// lies inside the mesh.
func (c *CDT) fillUnder(p, q *Point) {
	if p.X == q.X {
		return
	}
	toRight := q.X > p.X
	step := func(id NodeID) NodeID {
		if toRight {
			return c.front.Node(id).Next
		}
		return c.front.Node(id).Prev
	}
	beyond := func(x float64) bool {
		if toRight {
			return x >= q.X
		}
		return x <= q.X
	}

	start := c.front.NodeOf(p)
	for {
		filled := false
		for id := step(start); id != NoNode; id = step(id) {
			if beyond(c.front.Node(id).Point.X) {
				break
			}
			if c.isBasin(id) {
				c.fill(id)
				filled = true
				break
			}
		}
		if !filled {
			return
		}
	}
}

// insertConstraint forces p-q into the mesh when it crosses existing
// triangles. The crossed triangles are removed, which leaves a pseudo-polygon
// on each side of the segment; both are triangulated and stitched back in.
/*
	        w0------w1
	       / \     / \
	      /   \   /   \
	    p======\=/=====q
	      \     X     /
	       \   / \   /
	        u0------u1
*/
// A constraint can hang into the crossed area from one side, with crossed
// triangles on both of its faces. Removing those would leave a slit the
// pseudo-polygons can't describe, so then the crossed edges are flipped away
// instead.
func (c *CDT) insertConstraint(p, q *Point) {
	start := c.locateFirst(p, q)
	if start == NoTriangle {
		throw(ErrUnsupported, "constraint %v-%v leaves the triangulated region", p, q)
	}

	t := c.mesh.Get(start)
	u, w := t.PointCCW(p), t.PointCW(p)
	right := []*Point{u}
	left := []*Point{w}
	crossed := []TriangleID{start}
	inCrossed := map[TriangleID]bool{start: true}
	var crossedEdges [][2]*Point

	for cur := start; ; {
		ct := c.mesh.Get(cur)
		k := ct.EdgeIndex(u, w)
		if ct.Constrained[k] {
			throw(ErrUnsupported, "constraint %v-%v crosses constraint %v-%v", p, q, u, w)
		}
		next := ct.Neighbors[k]
		if next == NoTriangle {
			throw(ErrUnsupported, "constraint %v-%v leaves the mesh through %v-%v", p, q, u, w)
		}
		crossedEdges = append(crossedEdges, [2]*Point{u, w})
		nt := c.mesh.Get(next)
		v := nt.OppositePoint(ct)
		crossed = append(crossed, next)
		inCrossed[next] = true
		if v == q {
			break
		}

		switch o := Orient2D(p, q, v); {
		case o > 0:
			left = append(left, v)
			w = v
		case o < 0:
			right = append(right, v)
			u = v
		default:
			throw(ErrUnsupported, "constraint %v-%v passes through %v", p, q, v)
		}
		cur = next
	}

	// Everything around the hole, to wire the new triangles back in
	boundary := make(map[edgeKey]boundaryEdge)
	for _, id := range crossed {
		ct := c.mesh.Get(id)
		for i := 0; i < 3; i++ {
			n := ct.Neighbors[i]
			if !inCrossed[n] {
				a, b := ct.Edge(i)
				boundary[newEdgeKey(a, b)] = boundaryEdge{outer: n, constrained: ct.Constrained[i]}
				continue
			}
			if ct.Constrained[i] {
				c.log.Debug("sweepcdt: constraint hangs into crossed area", slog.Int("crossed", len(crossed)))
				c.flipInConstraint(p, q, crossed, crossedEdges)
				return
			}
		}
	}
	for _, id := range crossed {
		c.mesh.Remove(id)
	}

	ids := c.addTriangles(TriangulatePseudoPolygon(left, p, q))
	ids = append(ids, c.addTriangles(TriangulatePseudoPolygon(right, p, q))...)
	c.stitch(ids, boundary, p, q)
}

// flipInConstraint makes p-q an edge by flipping the edges that cross it
// (Sloan, "A fast algorithm for generating constrained Delaunay
// triangulations", 1993). An edge whose quad isn't convex waits at the back
// of the queue; some crossing edge is always flippable. Flips reuse triangle
// ids, so region keeps holding the triangles between the ends. The edges that
// no longer cross are legalized at the end.
func (c *CDT) flipInConstraint(p, q *Point, region []TriangleID, crossing [][2]*Point) {
	constraint := newEdgeKey(p, q)
	var created [][2]*Point
	for stalled := 0; len(crossing) > 0; {
		if stalled >= len(crossing) {
			throw(ErrTopology, "none of %d edges crossing %v-%v can be flipped", len(crossing), p, q)
		}
		a, b := crossing[0][0], crossing[0][1]
		crossing = crossing[1:]

		id1, i := c.regionEdge(region, a, b)
		if id1 == NoTriangle {
			throw(ErrTopology, "edge %v-%v crossing %v-%v left the region", a, b, p, q)
		}
		t1 := c.mesh.Get(id1)
		id2 := t1.Neighbors[i]
		x, y := t1.Points[i], c.mesh.Get(id2).OppositePoint(t1)
		if Orient2D(x, y, a)*Orient2D(x, y, b) >= 0 {
			crossing = append(crossing, [2]*Point{a, b})
			stalled++
			continue
		}
		stalled = 0

		c.flip(id1, id2, x, y)
		switch {
		case newEdgeKey(x, y) == constraint:
		case segmentsCross(p, q, x, y):
			crossing = append(crossing, [2]*Point{x, y})
		default:
			created = append(created, [2]*Point{x, y})
		}
	}

	id, _ := c.regionEdge(region, p, q)
	if id == NoTriangle || !c.mesh.Constrain(id, p, q) {
		throw(ErrTopology, "flipping did not produce %v-%v", p, q)
	}
	for _, e := range created {
		if id, _ := c.regionEdge(region, e[0], e[1]); id != NoTriangle {
			c.legalizeEdge(id, e[0], e[1])
		}
	}
}

// A live triangle of region with the edge a-b, and the edge's slot in it.
func (c *CDT) regionEdge(region []TriangleID, a, b *Point) (TriangleID, int) {
	for _, id := range region {
		if !c.mesh.IsLive(id) {
			continue
		}
		if i := c.mesh.Get(id).EdgeIndex(a, b); i >= 0 {
			return id, i
		}
	}
	return NoTriangle, -1
}

// Whether a-b and c-d cross at a point inside both. Touching at an end
// doesn't count.
func segmentsCross(a, b, c, d *Point) bool {
	return Orient2D(a, b, c)*Orient2D(a, b, d) < 0 && Orient2D(c, d, a)*Orient2D(c, d, b) < 0
}

// locateFirst finds the triangle around p that the segment p-q enters, or
// NoTriangle if the segment starts outside the mesh.
func (c *CDT) locateFirst(p, q *Point) TriangleID {
	start := c.triangleAt(p)
	if start == NoTriangle {
		return NoTriangle
	}
	for _, id := range c.fan(p, start) {
		t := c.mesh.Get(id)
		u, w := t.PointCCW(p), t.PointCW(p)
		ou := Orient2D(p, u, q)
		ow := Orient2D(p, w, q)
		if ou > 0 && ow < 0 {
			return id
		}
		if ou == 0 && q.Sub(p).Dot(u.Sub(p)) > 0 {
			throw(ErrUnsupported, "constraint %v-%v passes through %v", p, q, u)
		}
		if ow == 0 && q.Sub(p).Dot(w.Sub(p)) > 0 {
			throw(ErrUnsupported, "constraint %v-%v passes through %v", p, q, w)
		}
	}
	return NoTriangle
}
