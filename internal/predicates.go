package internal

import "math"

// Geometric predicates. These are plain floating point; everything in the mesh
// code goes through them so that a robust implementation can be swapped in.

// Twice the signed area of abc. Positive when c is left of a->b.
func Orient2D(a, b, c *Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Illegal reports whether the diagonal p1-p3 of the quad p1 p2 p3 p4 should be
// flipped to p2-p4: the angles at p2 and p4 are both obtuse.
func Illegal(p1, p2, p3, p4 *Point) bool {
	return p3.Sub(p2).Dot(p1.Sub(p2)) < 0 && p1.Sub(p4).Dot(p3.Sub(p4)) < 0
}

// InCircumcircle reports whether d lies strictly inside the circle through a, b
// and c, regardless of their winding.
func InCircumcircle(a, b, c, d *Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	det := (adx*adx+ady*ady)*(bdx*cdy-cdx*bdy) -
		(bdx*bdx+bdy*bdy)*(adx*cdy-cdx*ady) +
		(cdx*cdx+cdy*cdy)*(adx*bdy-bdx*ady)

	if Orient2D(a, b, c) > 0 {
		return det > 0
	}
	return det < 0
}

// Signed angle at p between the directions to next and to prev, in (-pi, pi].
// Positive when p sits in a basin below its neighbors.
func Angle(prev, p, next *Point) float64 {
	ax := next.Sub(p)
	bx := prev.Sub(p)
	return math.Atan2(ax.Cross(bx), ax.Dot(bx))
}
