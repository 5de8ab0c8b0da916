package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW *Polygon. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, &Point{X: x, Y: y})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return &result
}

// Some ad hoc code specified fixtures
func UnitSquare() *Polygon {
	return &Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}}
}

func RegularPolygon(n int, radius float64) *Polygon {
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Polygon{Points: points}
}

func SimpleStar() *Polygon {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Polygon{Points: points}
}

// A star-shaped polygon with random radii. Any polygon whose vertices are in
// angular order around a point they all see is simple.
func RandomStar(seed int64, n int) *Polygon {
	r := rand.New(rand.NewSource(seed))
	var points []*Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := 3 + 7*r.Float64()
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Polygon{Points: points}
}

// A simple polygon through n random points, in no particular shape. It starts
// as a random tour and is untangled with 2-opt moves: while two edges cross,
// the stretch between them is reversed, which shortens the tour, so the loop
// ends with no crossings.
func RandomSimplePolygon(seed int64, n int) *Polygon {
	r := rand.New(rand.NewSource(seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: 100 * r.Float64(), Y: 100 * r.Float64()}
	}

	crosses := func(a, b, c, d *Point) bool {
		return Orient2D(a, b, c)*Orient2D(a, b, d) < 0 && Orient2D(c, d, a)*Orient2D(c, d, b) < 0
	}
	for untangled := false; !untangled; {
		untangled = true
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue
				}
				if !crosses(points[i], points[i+1], points[j], points[(j+1)%n]) {
					continue
				}
				for lo, hi := i+1, j; lo < hi; lo, hi = lo+1, hi-1 {
					points[lo], points[hi] = points[hi], points[lo]
				}
				untangled = false
			}
		}
	}

	result := Polygon{Points: points}
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return &result
}

// Rectangle with extra points along the top and bottom, so that runs of
// points share a y value before shearing.
func Strip(n int) *Polygon {
	var points []*Point
	for i := 0; i <= n; i++ {
		points = append(points, &Point{X: float64(i), Y: 0})
	}
	for i := n; i >= 0; i-- {
		points = append(points, &Point{X: float64(i), Y: 1})
	}
	return &Polygon{Points: points}
}

// The edge from the first point to the second has to cut through triangles
// that were built before its upper end was swept.
func Hook() *Polygon {
	return &Polygon{Points: []*Point{
		{X: 0, Y: 0},
		{X: 5, Y: 10},
		{X: 0, Y: 10},
		{X: 1, Y: 5},
	}}
}
