package internal

import "github.com/pkg/errors"

// Validate checks the mesh and front invariants:
//  1. Every triangle is counterclockwise, and every neighbor reference is
//     mutual with matching constraint flags.
//  2. Front x coordinates strictly increase from head to tail.
//  3. Every front node but the tail is bound to a live triangle that has the
//     front edge starting at the node, with nothing beyond that edge.
//  4. Every segment with both ends swept is a constrained mesh edge.
func (c *CDT) Validate() error {
	if err := c.mesh.CheckNeighbors(); err != nil {
		return err
	}
	if !c.front.IsMonotone() {
		return errors.Wrapf(ErrTopology, "front is not x-monotone: %v", c.front)
	}
	for id := c.front.Head; id != c.front.Tail; {
		node := c.front.nodes[id]
		next := c.front.nodes[node.Next].Point
		if !c.mesh.IsLive(node.Triangle) {
			return errors.Wrapf(ErrTopology, "front node %v is bound to dead triangle %d", node.Point, node.Triangle)
		}
		t := &c.mesh.triangles[node.Triangle]
		i := t.EdgeIndex(node.Point, next)
		if i < 0 {
			return errors.Wrapf(ErrTopology, "triangle %v of front node %v lacks edge to %v", t, node.Point, next)
		}
		if t.Neighbors[i] != NoTriangle {
			return errors.Wrapf(ErrTopology, "front edge %v-%v has a triangle above it", node.Point, next)
		}
		id = node.Next
	}

	constrained := make(map[edgeKey]bool)
	for _, id := range c.mesh.Live() {
		t := &c.mesh.triangles[id]
		for i := 0; i < 3; i++ {
			if t.Constrained[i] {
				constrained[newEdgeKey(t.Edge(i))] = true
			}
		}
	}
	for _, s := range c.segments {
		if s.P.Processed && s.Q.Processed && !constrained[newEdgeKey(s.P, s.Q)] {
			return errors.Wrapf(ErrTopology, "segment %v-%v is not a constrained edge", s.P, s.Q)
		}
	}
	return nil
}
