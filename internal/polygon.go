package internal

type Polygon struct {
	Points []*Point
}

// Twice the signed area, positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Vec().Cross(q.Vec())
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Even-odd point-in-polygon. This is provided primarily for testing and
// debugging. Inside the sweep, the mesh itself answers the question via
// CDT.Triangles.
func (poly Polygon) ContainsPointByEvenOdd(p *Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Count the polygon edges crossed by a ray from p toward +x.
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// x where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
