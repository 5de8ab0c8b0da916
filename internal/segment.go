package internal

import "fmt"

// A constraint edge of the input polygon.
type Segment struct {
	P *Point
	Q *Point
}

// NewSegment creates the segment and registers it on both endpoints.
func NewSegment(p, q *Point) *Segment {
	if p.X == q.X && p.Y == q.Y {
		throw(ErrDegenerateInput, "zero-length segment between %v and %v", p, q)
	}
	s := &Segment{P: p, Q: q}
	p.Edges = append(p.Edges, s)
	q.Edges = append(q.Edges, s)
	return s
}

// The endpoint that isn't p.
func (s *Segment) Other(p *Point) *Point {
	if s.P == p {
		return s.Q
	}
	return s.P
}

func (s *Segment) Has(p *Point) bool {
	return s.P == p || s.Q == p
}

func (s *Segment) String() string {
	return fmt.Sprintf("%v->%v", s.P, s.Q)
}
