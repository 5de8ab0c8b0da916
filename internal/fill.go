package internal

import "math"

// scanAFront closes narrow basins next to a freshly inserted node, moving
// outward in both directions while the angle at the neighbor is at most a
// right angle.
/*
	 prev         next
	    \   fill  /
	     \       /
	      \     /
	        M            M is filled: triangle (prev, M, next), M leaves the front
*/
func (c *CDT) scanAFront(id NodeID) {
	for {
		next := c.front.Node(id).Next
		if next == NoNode || !c.isFillable(next) {
			break
		}
		c.fill(next)
	}
	for {
		prev := c.front.Node(id).Prev
		if prev == NoNode || !c.isFillable(prev) {
			break
		}
		c.fill(prev)
	}
}

// A node can be filled by the scan when it sits in a basin no wider than a
// right angle. A negative angle is a peak, which can never be filled: the
// triangle would overlap the mesh.
func (c *CDT) isFillable(id NodeID) bool {
	node := c.front.Node(id)
	if node.Prev == NoNode || node.Next == NoNode {
		return false
	}
	angle := Angle(c.front.Node(node.Prev).Point, node.Point, c.front.Node(node.Next).Point)
	return angle > 0 && angle <= math.Pi/2
}

// A node is a basin when it's strictly under the line between its neighbors.
func (c *CDT) isBasin(id NodeID) bool {
	node := c.front.Node(id)
	if node.Prev == NoNode || node.Next == NoNode {
		return false
	}
	return Orient2D(c.front.Node(node.Prev).Point, node.Point, c.front.Node(node.Next).Point) > 0
}

// fill adds the triangle over the node and takes the node off the front.
func (c *CDT) fill(id NodeID) TriangleID {
	node := *c.front.Node(id)
	prev := *c.front.Node(node.Prev)
	next := c.front.Node(node.Next).Point

	t := c.mesh.Add(prev.Point, node.Point, next)
	c.mesh.MarkNeighbor(t, prev.Triangle)
	c.mesh.MarkNeighbor(t, node.Triangle)

	c.front.Node(node.Prev).Triangle = t
	c.front.Remove(id)

	c.legalizeEdge(prev.Triangle, prev.Point, node.Point)
	c.legalizeEdge(node.Triangle, node.Point, next)
	return t
}
