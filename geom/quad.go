package geom

import (
	"math"
)

// QuadArea computes the area of the quadrilateral with corners a, b, c, d
// using the shoelace formula. The corners must be ordered consistently, either
// clockwise or counter-clockwise; ErrUnordered is returned otherwise.
func QuadArea(a, b, c, d Vec2) (float64, error) {
	if !Ordered(a, b, c, d) {
		return 0, ErrUnordered
	}
	return math.Abs(signedArea(a, b, c, d)), nil
}

// Ordered returns true if the diagonal ac splits the quadrilateral abcd into
// two triangles of the same orientation.
func Ordered(a, b, c, d Vec2) bool {
	ab, ac, ad := b.Sub(a), c.Sub(a), d.Sub(a)
	return Sign(Cross(ab, ac)) == Sign(Cross(ac, ad))
}

func signedArea(a, b, c, d Vec2) float64 {
	s := Cross(a, b) + Cross(b, c) + Cross(c, d) + Cross(d, a)
	return s / 2
}
