package internal

import (
	"github.com/pkg/errors"
)

// Arena of triangles. Triangles refer to each other by TriangleID, so the
// neighbor graph can be checked mechanically and never dangles. Removing a
// triangle leaves a dead slot behind.
//
// Note that Get returns a pointer into the arena, which Add may invalidate.
// Never hold a *Triangle across an Add.
type Mesh struct {
	triangles []Triangle
	live      int
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Add a triangle with no neighbors. The winding is normalized to
// counterclockwise.
func (m *Mesh) Add(a, b, c *Point) TriangleID {
	m.triangles = append(m.triangles, newTriangle(a, b, c))
	m.live++
	return TriangleID(len(m.triangles) - 1)
}

func (m *Mesh) Get(id TriangleID) *Triangle {
	if id < 0 || int(id) >= len(m.triangles) {
		throw(ErrTopology, "no triangle with id %d", id)
	}
	t := &m.triangles[id]
	if !t.live {
		throw(ErrTopology, "triangle %d was removed", id)
	}
	return t
}

func (m *Mesh) IsLive(id TriangleID) bool {
	return id >= 0 && int(id) < len(m.triangles) && m.triangles[id].live
}

// Remove a triangle. Neighbors keep pointing at it until they are rewired, so
// this is only used while the caller is about to stitch the hole closed.
func (m *Mesh) Remove(id TriangleID) {
	m.Get(id).live = false
	m.live--
}

func (m *Mesh) Len() int {
	return m.live
}

// Handles of all live triangles, in creation order.
func (m *Mesh) Live() []TriangleID {
	ids := make([]TriangleID, 0, m.live)
	for i := range m.triangles {
		if m.triangles[i].live {
			ids = append(ids, TriangleID(i))
		}
	}
	return ids
}

// MarkNeighbor wires two triangles to each other across their shared edge.
// The edge is constrained on both sides if it was on either.
func (m *Mesh) MarkNeighbor(id1, id2 TriangleID) {
	t1 := m.Get(id1)
	t2 := m.Get(id2)
	for i := 0; i < 3; i++ {
		a, b := t1.Edge(i)
		if j := t2.EdgeIndex(a, b); j >= 0 {
			t1.Neighbors[i] = id2
			t2.Neighbors[j] = id1
			constrained := t1.Constrained[i] || t2.Constrained[j]
			t1.Constrained[i] = constrained
			t2.Constrained[j] = constrained
			return
		}
	}
	throw(ErrTopology, "triangles %v and %v share no edge", t1, t2)
}

// Constrain marks the edge a-b as a constraint on every live triangle around
// it, starting from a triangle that has it. Returns false if start doesn't
// have the edge.
func (m *Mesh) Constrain(start TriangleID, a, b *Point) bool {
	t := m.Get(start)
	i := t.EdgeIndex(a, b)
	if i < 0 {
		return false
	}
	t.Constrained[i] = true
	if n := t.Neighbors[i]; n != NoTriangle {
		nt := m.Get(n)
		nt.Constrained[nt.EdgeIndex(a, b)] = true
	}
	return true
}

// CheckNeighbors verifies the central invariant of the mesh: every neighbor
// reference is mutual, across the same edge, with the same constraint flag.
func (m *Mesh) CheckNeighbors() error {
	for i := range m.triangles {
		t := &m.triangles[i]
		if !t.live {
			continue
		}
		id := TriangleID(i)
		if Orient2D(t.Points[0], t.Points[1], t.Points[2]) <= 0 {
			return errors.Wrapf(ErrTopology, "triangle %d %v is not counterclockwise", id, t)
		}
		for slot, n := range t.Neighbors {
			if n == NoTriangle {
				continue
			}
			if !m.IsLive(n) {
				return errors.Wrapf(ErrTopology, "triangle %d refers to dead neighbor %d", id, n)
			}
			a, b := t.Edge(slot)
			other := &m.triangles[n]
			j := other.EdgeIndex(a, b)
			if j < 0 {
				return errors.Wrapf(ErrTopology, "neighbor %d of triangle %d lacks edge %v-%v", n, id, a, b)
			}
			if other.Neighbors[j] != id {
				return errors.Wrapf(ErrTopology, "triangle %d lists %d as neighbor, but %d lists %d", id, n, n, other.Neighbors[j])
			}
			if other.Constrained[j] != t.Constrained[slot] {
				return errors.Wrapf(ErrTopology, "triangles %d and %d disagree on constraint %v-%v", id, n, a, b)
			}
		}
	}
	return nil
}
