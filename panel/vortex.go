package panel

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/govlm/geom"
)

// Horseshoe is a horseshoe vortex of unit strength lying in the plane of the
// wing. Circulation runs from x = +inf along the first trailing leg to A, on
// to B, across the bound leg to C, to D and back out to x = +inf:
//
//	         y ^
//	           |
//	    C------|->---D  ...>...
//	    |      |
//	    ^      +----CP-------> x
//	    |
//	    B------<-----A  ...<...
//
// A and D sit at three quarters of the panel chord, B and C at one quarter.
type Horseshoe struct {
	A, B, C, D geom.Vec2
	// CP is the control point, halfway between A and D.
	CP geom.Vec2

	ab, bc, cd geom.Line
}

// NewHorseshoe places a horseshoe vortex in the panel with corners p1..p4.
// p1p2 and p3p4 are the inboard and outboard panel edges and must be aligned
// with the freestream.
func NewHorseshoe(p1, p2, p3, p4 geom.Vec2) (*Horseshoe, error) {
	hs := &Horseshoe{}
	return hs, hs.Init(p1, p2, p3, p4)
}

// Init initializes a horseshoe vortex in the panel with corners p1..p4.
func (hs *Horseshoe) Init(p1, p2, p3, p4 geom.Vec2) error {
	p1p2, p3p4 := p2.Sub(p1), p4.Sub(p3)

	if p1p2.Norm() == 0 || p3p4.Norm() == 0 {
		return fmt.Errorf("%w: panel edge of zero length", geom.ErrZeroLength)
	} else if !geom.Aligned(p1p2, geom.Freestream) {
		return fmt.Errorf("%w: P1P2 = %v", ErrMisaligned, p1p2)
	} else if !geom.Aligned(p3p4, geom.Freestream) {
		return fmt.Errorf("%w: P3P4 = %v", ErrMisaligned, p3p4)
	}

	hs.A = p1.Add(p1p2.Scale(0.25))
	hs.B = hs.A.Add(p1p2.Scale(0.5))
	hs.C = p3.Add(p3p4.Scale(0.25))
	hs.D = hs.C.Add(p3p4.Scale(0.5))
	hs.CP = hs.A.Add(hs.D.Sub(hs.A).Scale(0.5))

	return hs.initLegs()
}

func (hs *Horseshoe) initLegs() error {
	if err := hs.ab.Init(hs.A, hs.B); err != nil {
		return fmt.Errorf("first trailing leg: %w", err)
	}
	if err := hs.bc.Init(hs.B, hs.C); err != nil {
		return fmt.Errorf("%w: bound leg has zero length", ErrDegenerateVortex)
	}
	if err := hs.cd.Init(hs.C, hs.D); err != nil {
		return fmt.Errorf("second trailing leg: %w", err)
	}

	if !geom.Aligned(hs.ab.U, geom.Freestream) {
		return fmt.Errorf("%w: first trailing leg", ErrMisaligned)
	} else if geom.Aligned(hs.bc.U, geom.Freestream) {
		return fmt.Errorf("%w: bound leg B = %v, C = %v",
			ErrDegenerateVortex, hs.B, hs.C)
	} else if !geom.Aligned(hs.cd.U, geom.Freestream) {
		return fmt.Errorf("%w: second trailing leg", ErrMisaligned)
	}
	return nil
}

// InducedVelocity returns the normal (out of plane) velocity induced at p by
// the horseshoe vortex, along with the part of it induced by the two trailing
// legs alone. A leg whose supporting line passes exactly through p
// contributes nothing.
func (hs *Horseshoe) InducedVelocity(p geom.Vec2) (total, trailing float64) {
	v1 := semiInfiniteIn(p, hs.B, &hs.ab)
	v2 := segmentVelocity(p, hs.B, hs.C, &hs.bc, 1)
	v3 := semiInfiniteOut(p, hs.C, &hs.cd)

	return v1 + v2 + v3, v1 + v3
}

// semiInfiniteIn is the velocity induced by a vortex line coming in from
// +inf and ending at end.
func semiInfiniteIn(p, end geom.Vec2, l *geom.Line) float64 {
	h := l.Dist(p)
	if h == 0 {
		return 0
	}
	// h != 0, so p != end.
	pEnd, _ := geom.Direction(p, end)
	sign := geom.Sign(geom.Cross(pEnd, l.U))
	cos2 := -geom.Dot(pEnd, l.U)
	return sign / (4 * math.Pi * h) * (1 - cos2)
}

// semiInfiniteOut is the velocity induced by a vortex line starting at start
// and running out to +inf.
func semiInfiniteOut(p, start geom.Vec2, l *geom.Line) float64 {
	h := l.Dist(p)
	if h == 0 {
		return 0
	}
	pStart, _ := geom.Direction(p, start)
	sign := geom.Sign(geom.Cross(pStart, l.U))
	cos1 := -geom.Dot(pStart, l.U)
	return sign / (4 * math.Pi * h) * (cos1 + 1)
}

func segmentVelocity(p, a, b geom.Vec2, l *geom.Line, gamma float64) float64 {
	h := l.Dist(p)
	if h == 0 {
		return 0
	}
	pa, _ := geom.Direction(p, a)
	pb, _ := geom.Direction(p, b)
	sign := geom.Sign(geom.Cross(pb, l.U))
	cos1 := -geom.Dot(pa, l.U)
	cos2 := -geom.Dot(pb, l.U)
	return sign * gamma / (4 * math.Pi * h) * (cos1 - cos2)
}

// SegmentVelocity returns the normal velocity induced at p by a straight
// vortex line of strength gamma running from a to b.
func SegmentVelocity(p, a, b geom.Vec2, gamma float64) (float64, error) {
	l, err := geom.NewLine(a, b)
	if err != nil {
		return 0, err
	}
	return segmentVelocity(p, a, b, l, gamma), nil
}
