package internal

// TriangulatePseudoPolygon triangulates the pseudo-polygon made of the segment
// a-b and the chain of points running from a to b on one side of it (Anglada,
// "An improved incremental algorithm for constructing restricted Delaunay
// triangulations", 1997).
//
// The split point c is the one whose circle through a and b holds no other
// chain point. Since the chain is on one side of a-b, the circles through a
// and b are nested there, so a single pass that moves to any point inside the
// current circle finds it. Then the chain is split at c and both halves are
// handled the same way against a-c and c-b.
//
// A chain point equal to a or b can never be the split point.
//
// The result carries no neighbor information; stitch wires it up.
func TriangulatePseudoPolygon(chain []*Point, a, b *Point) [][3]*Point {
	if len(chain) == 0 {
		return nil
	}
	ci := -1
	for j, p := range chain {
		if p == a || p == b {
			continue
		}
		if ci < 0 || InCircumcircle(a, chain[ci], b, p) {
			ci = j
		}
	}
	if ci < 0 {
		throw(ErrTopology, "pseudo-polygon on %v-%v has no vertex to split at", a, b)
	}
	c := chain[ci]

	triangles := TriangulatePseudoPolygon(chain[:ci], a, c)
	triangles = append(triangles, TriangulatePseudoPolygon(chain[ci+1:], c, b)...)
	return append(triangles, [3]*Point{a, b, c})
}

func (c *CDT) addTriangles(triangles [][3]*Point) []TriangleID {
	ids := make([]TriangleID, 0, len(triangles))
	for _, t := range triangles {
		ids = append(ids, c.mesh.Add(t[0], t[1], t[2]))
	}
	return ids
}

// Undirected edge, usable as a map key. Points are ordered by sweep order,
// which is total over distinct points.
type edgeKey struct {
	a, b *Point
}

func newEdgeKey(a, b *Point) edgeKey {
	if Less(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// An edge on the rim of an area being retriangulated, and what lies beyond it.
type boundaryEdge struct {
	outer       TriangleID
	constrained bool
}

// stitch completes the neighbor wiring of freshly added triangles. Edges
// shared by two new triangles are linked to each other. Edges on the rim are
// linked to the triangle beyond, which also gets its back reference, and keep
// their constraint flag. The edge p-q is the constraint being inserted. It may
// have new triangles on both sides or on one side only, when it becomes a front
// edge. Any other unmatched edge, or a rim edge left uncovered, is a topology
// error.
func (c *CDT) stitch(ids []TriangleID, boundary map[edgeKey]boundaryEdge, p, q *Point) {
	type halfEdge struct {
		id   TriangleID
		slot int
	}
	open := make(map[edgeKey]halfEdge)
	for _, id := range ids {
		t := c.mesh.Get(id)
		for i := 0; i < 3; i++ {
			key := newEdgeKey(t.Edge(i))
			if other, ok := open[key]; ok {
				t.Neighbors[i] = other.id
				c.mesh.Get(other.id).Neighbors[other.slot] = id
				delete(open, key)
				continue
			}
			open[key] = halfEdge{id, i}
		}
	}

	constraint := newEdgeKey(p, q)
	matched := 0
	for key, half := range open {
		if key == constraint {
			continue
		}
		rim, ok := boundary[key]
		if !ok {
			throw(ErrTopology, "edge %v-%v of a new triangle is not on the rim", key.a, key.b)
		}
		matched++
		t := c.mesh.Get(half.id)
		t.Neighbors[half.slot] = rim.outer
		t.Constrained[half.slot] = rim.constrained
		if rim.outer != NoTriangle {
			outer := c.mesh.Get(rim.outer)
			j := outer.EdgeIndex(key.a, key.b)
			if j < 0 {
				throw(ErrTopology, "triangle %v beyond the rim lacks edge %v-%v", outer, key.a, key.b)
			}
			outer.Neighbors[j] = half.id
		}
	}
	if matched != len(boundary) {
		throw(ErrTopology, "%d of %d rim edges are not covered by new triangles", len(boundary)-matched, len(boundary))
	}

	for _, id := range ids {
		t := c.mesh.Get(id)
		if i := t.EdgeIndex(p, q); i >= 0 {
			t.Constrained[i] = true
		}
	}
	for _, id := range ids {
		c.mapTriangleToNodes(id)
	}
}
