package internal

// legalize checks the edge of t opposite p against the Illegal predicate and
// flips it if needed. Flips propagate to the two edges that end up opposite p,
// so a run of legalizations restores the local Delaunay property around p.
// Constrained edges and edges without a neighbor are never flipped.
func (c *CDT) legalize(id TriangleID, p *Point) {
	t := c.mesh.Get(id)
	i := t.Index(p)
	if i < 0 {
		throw(ErrTopology, "legalizing %v around missing point %v", t, p)
	}
	oid := t.Neighbors[i]
	if oid == NoTriangle || t.Constrained[i] {
		return
	}
	ot := c.mesh.Get(oid)
	o := ot.OppositePoint(t)
	if !Illegal(t.PointCCW(p), p, t.PointCW(p), o) {
		return
	}

	c.flip(id, oid, p, o)
	c.legalize(id, p)
	c.legalize(oid, p)
}

// Legalize the edge a-b, seen from triangle id, if id still has it.
func (c *CDT) legalizeEdge(id TriangleID, a, b *Point) {
	if !c.mesh.IsLive(id) {
		return
	}
	t := c.mesh.Get(id)
	i := t.EdgeIndex(a, b)
	if i < 0 {
		return
	}
	c.legalize(id, t.Points[i])
}

// flip replaces the diagonal a-b shared by t1 (p, a, b) and t2 (o, b, a) with
// p-o:
/*
	      p                 p
	    / | \             /   \
	   / n2 n1\          / t1  \
	  a---t1---b   ->   a-------b     (before: diagonal a-b,
	   \  t2  /          \ t2  /       after: diagonal p-o)
	    \ | /             \   /
	      o                 o
*/
// Afterwards t1 is (p, a, o) and t2 is (o, b, p). The outer neighbors move
// with their edges: t1 keeps the one across p-a and takes over the one across
// a-o, t2 keeps o-b and takes over b-p.
func (c *CDT) flip(id1, id2 TriangleID, p, o *Point) {
	t1 := c.mesh.Get(id1)
	t2 := c.mesh.Get(id2)

	n1, c1 := t1.NeighborCW(p), t1.ConstrainedCW(p)   // across b-p
	n2, c2 := t1.NeighborCCW(p), t1.ConstrainedCCW(p) // across p-a
	n3, c3 := t2.NeighborCW(o), t2.ConstrainedCW(o)   // across a-o
	n4, c4 := t2.NeighborCCW(o), t2.ConstrainedCCW(o) // across o-b

	t1.Legalize(p, o)
	t2.Legalize(o, p)

	t1.Neighbors = [3]TriangleID{n3, id2, n2}
	t1.Constrained = [3]bool{c3, false, c2}
	t2.Neighbors = [3]TriangleID{n1, id1, n4}
	t2.Constrained = [3]bool{c1, false, c4}

	if n3 != NoTriangle {
		c.mesh.MarkNeighbor(id1, n3)
	}
	if n1 != NoTriangle {
		c.mesh.MarkNeighbor(id2, n1)
	}

	c.mapTriangleToNodes(id1)
	c.mapTriangleToNodes(id2)
	c.flips++
}
