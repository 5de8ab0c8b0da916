package internal

import (
	"fmt"
	"strings"

	"github.com/osuushi/sweepcdt/dbg"
)

// The advancing front is the upper boundary of the region triangulated so
// far. It runs left to right from the left base point (Head) to the right base
// point (Tail), and its x coordinates strictly increase along the way.
//
// Each node binds a point to the triangle directly under the front edge that
// starts at it (from the node to its Next). The tail has no such edge.
/*
	  n1-----n2
	 /  T1  /  \        T1 is n1's triangle, T2 is n2's
	/      / T2 \
*/
//
// Nodes live in an arena and link by NodeID. Removed nodes are unlinked and
// never reused.
type NodeID int

const NoNode NodeID = -1

type Node struct {
	Point    *Point
	Triangle TriangleID
	Prev     NodeID
	Next     NodeID

	removed bool
}

type AFront struct {
	Head NodeID
	Tail NodeID

	nodes   []Node
	byPoint map[*Point]NodeID
	// Where the last Locate ended. Consecutive points tend to be close, so
	// this is usually a better start than the head.
	search NodeID
}

// NewAFront creates the front head -> middle -> tail over a seed triangle.
func NewAFront(head, middle, tail *Point, triangle TriangleID) *AFront {
	f := &AFront{byPoint: make(map[*Point]NodeID)}
	f.Head = f.newNode(head, triangle)
	m := f.newNode(middle, triangle)
	f.Tail = f.newNode(tail, NoTriangle)
	f.link(f.Head, m)
	f.link(m, f.Tail)
	f.search = f.Head
	return f
}

func (f *AFront) newNode(p *Point, triangle TriangleID) NodeID {
	f.nodes = append(f.nodes, Node{Point: p, Triangle: triangle, Prev: NoNode, Next: NoNode})
	id := NodeID(len(f.nodes) - 1)
	f.byPoint[p] = id
	return id
}

func (f *AFront) link(a, b NodeID) {
	if a != NoNode {
		f.nodes[a].Next = b
	}
	if b != NoNode {
		f.nodes[b].Prev = a
	}
}

func (f *AFront) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(f.nodes) || f.nodes[id].removed {
		throw(ErrTopology, "no front node with id %d", id)
	}
	return &f.nodes[id]
}

// The node holding p, or NoNode if p isn't on the front.
func (f *AFront) NodeOf(p *Point) NodeID {
	if id, ok := f.byPoint[p]; ok {
		return id
	}
	return NoNode
}

// Locate finds the node whose x-span [node.X, next.X) contains x.
func (f *AFront) Locate(x float64) NodeID {
	id := f.search
	if id == NoNode || f.nodes[id].removed {
		id = f.Head
	}
	for id != NoNode && x < f.nodes[id].Point.X {
		id = f.nodes[id].Prev
	}
	for id != NoNode {
		next := f.nodes[id].Next
		if next == NoNode {
			return NoNode
		}
		if x < f.nodes[next].Point.X {
			f.search = id
			return id
		}
		id = next
	}
	return NoNode
}

func (f *AFront) InsertAfter(id NodeID, p *Point, triangle TriangleID) NodeID {
	next := f.Node(id).Next
	n := f.newNode(p, triangle)
	f.link(id, n)
	f.link(n, next)
	return n
}

// Replace puts a new node for p where id was.
func (f *AFront) Replace(id NodeID, p *Point, triangle TriangleID) NodeID {
	old := f.Node(id)
	prev, next := old.Prev, old.Next
	f.Remove(id)
	n := f.newNode(p, triangle)
	f.link(prev, n)
	f.link(n, next)
	return n
}

// Remove unlinks a node. The head and tail are permanent.
func (f *AFront) Remove(id NodeID) {
	if id == f.Head || id == f.Tail {
		throw(ErrTopology, "cannot remove the end of the front")
	}
	n := f.Node(id)
	f.link(n.Prev, n.Next)
	n.removed = true
	if f.byPoint[n.Point] == id {
		delete(f.byPoint, n.Point)
	}
	if f.search == id {
		f.search = n.Prev
	}
}

// RemoveBetween unlinks every node strictly between a and b.
func (f *AFront) RemoveBetween(a, b NodeID) {
	for id := f.Node(a).Next; id != b; {
		if id == NoNode {
			throw(ErrTopology, "front node %d does not follow %d", b, a)
		}
		next := f.Node(id).Next
		f.Remove(id)
		id = next
	}
}

// Points along the front, head to tail.
func (f *AFront) Points() []*Point {
	var points []*Point
	for id := f.Head; id != NoNode; id = f.nodes[id].Next {
		points = append(points, f.nodes[id].Point)
	}
	return points
}

// IsMonotone reports whether x strictly increases from head to tail.
func (f *AFront) IsMonotone() bool {
	points := f.Points()
	for i := 1; i < len(points); i++ {
		if !(points[i-1].X < points[i].X) {
			return false
		}
	}
	return true
}

func (f *AFront) String() string {
	var parts []string
	for id := f.Head; id != NoNode; id = f.nodes[id].Next {
		n := &f.nodes[id]
		parts = append(parts, fmt.Sprintf("%v/%s", n.Point, dbg.Name(n.Triangle)))
	}
	return strings.Join(parts, " -> ")
}
