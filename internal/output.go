package internal

import "fmt"

// A finished triangle handed to callers. Neighbors index into the slice the
// face was returned in, -1 where there is no neighbor in that slice. Slot i is
// across from the i'th vertex (A, B, C).
type Face struct {
	A, B, C   *Point
	Neighbors [3]int
}

func (f *Face) Points() [3]*Point {
	return [3]*Point{f.A, f.B, f.C}
}

// Twice the signed area.
func (f *Face) SignedArea() float64 {
	return Orient2D(f.A, f.B, f.C)
}

// Whether any vertex is a synthetic base point.
func (f *Face) IsBase() bool {
	return f.A.IsBase() || f.B.IsBase() || f.C.IsBase()
}

func (f *Face) String() string {
	return fmt.Sprintf("[%v %v %v]", f.A, f.B, f.C)
}

func (c *CDT) faces(ids []TriangleID) []*Face {
	index := make(map[TriangleID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	faces := make([]*Face, len(ids))
	for i, id := range ids {
		t := c.mesh.Get(id)
		f := &Face{A: t.Points[0], B: t.Points[1], C: t.Points[2], Neighbors: [3]int{-1, -1, -1}}
		for slot, n := range t.Neighbors {
			if j, ok := index[n]; ok {
				f.Neighbors[slot] = j
			}
		}
		faces[i] = f
	}
	return faces
}

// markInterior flood fills from the inner side of the first polygon edge,
// never crossing a constrained edge.
func (c *CDT) markInterior() []TriangleID {
	seedEdge := c.segments[0]
	from, to := seedEdge.P, seedEdge.Q
	if !(Polygon{Points: c.input}).IsCCW() {
		from, to = to, from
	}

	// The triangle left of from->to is the one whose counterclockwise walk
	// goes from `from` to `to`.
	seed := NoTriangle
	start := c.triangleAt(from)
	if start == NoTriangle {
		throw(ErrTopology, "no triangle has point %v", from)
	}
	for _, id := range c.fan(from, start) {
		t := c.mesh.Get(id)
		if t.PointCCW(from) == to {
			seed = id
			break
		}
	}
	if seed == NoTriangle {
		throw(ErrTopology, "polygon edge %v is not in the mesh", seedEdge)
	}

	var interior []TriangleID
	seen := map[TriangleID]bool{seed: true}
	queue := []TriangleID{seed}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		t := c.mesh.Get(id)
		for _, p := range t.Points {
			if p.IsBase() {
				throw(ErrTopology, "polygon interior leaks to the base through %v", t)
			}
		}
		interior = append(interior, id)
		for i, n := range t.Neighbors {
			if n == NoTriangle || t.Constrained[i] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return interior
}
