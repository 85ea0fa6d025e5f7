package geom

import (
	"math"
)

// DistToLine returns the distance from p to the infinite line passing through
// a and b. Points lying exactly on the line return exactly zero, which the
// vortex kernels rely on.
func DistToLine(p, a, b Vec2) (float64, error) {
	u, err := Direction(a, b)
	if err != nil {
		return 0, err
	}
	return distToLine(p, b, u), nil
}

// distToLine is DistToLine for a line through b with known unit direction u.
func distToLine(p, b, u Vec2) float64 {
	pb := b.Sub(p)
	if Cross(pb, u) == 0 {
		return 0
	}
	// Perpendicular of a unit vector.
	n := Vec2{u[1], -u[0]}
	return math.Abs(Dot(pb, n))
}

// Line is an infinite line through P with unit direction U. It caches the
// direction so that repeated distance queries need not renormalize.
type Line struct {
	P, U Vec2
}

// NewLine returns the line through a and b.
func NewLine(a, b Vec2) (*Line, error) {
	l := &Line{}
	return l, l.Init(a, b)
}

// Init initializes a line passing through a and b.
func (l *Line) Init(a, b Vec2) error {
	u, err := Direction(a, b)
	if err != nil {
		return err
	}
	l.P, l.U = b, u
	return nil
}

// Dist returns the distance from p to the line.
func (l *Line) Dist(p Vec2) float64 { return distToLine(p, l.P, l.U) }

// AreParallel returns true if the two lines are exactly parallel.
func AreParallel(l1, l2 *Line) bool { return Aligned(l1.U, l2.U) }
