package airfoil

import (
	"fmt"
	"math"
)

// Half thickness coefficients of a 20% thick NACA section, NACA Report 824.
const (
	a0 = 0.2969
	a1 = -0.126
	a2 = -0.3516
	a3 = 0.2843
	a4 = -0.1015
)

// NACA4 is a NACA 4-digit section. The fields are stored as fractions of the
// chord.
type NACA4 struct {
	M float64 // maximum camber
	P float64 // chordwise position of maximum camber
	T float64 // maximum thickness
}

// NewNACA4 creates a section from the digits of its designation: m is the
// maximum camber in percent of the chord ([0, 9.5]), p the position of the
// maximum camber in tenths of the chord ([0, 9]) and t the thickness in
// percent of the chord ([0, 40]). NACA 2412 is NewNACA4(2, 4, 12).
func NewNACA4(m, p, t float64) (*NACA4, error) {
	if m < 0 || m > 9.5 {
		return nil, fmt.Errorf(
			"%w: max camber M should be within [0, 9.5], got %g",
			ErrParameter, m,
		)
	} else if p < 0 || p > 9 {
		return nil, fmt.Errorf(
			"%w: max camber position P should be within [0, 9], got %g",
			ErrParameter, p,
		)
	} else if t < 0 || t > 40 {
		return nil, fmt.Errorf(
			"%w: thickness T should be within [0, 40], got %g",
			ErrParameter, t,
		)
	}

	return &NACA4{M: m / 100, P: p / 10, T: t / 100}, nil
}

// Default returns the NACA 2412 section.
func Default() *NACA4 {
	return &NACA4{M: 0.02, P: 0.4, T: 0.12}
}

func (a *NACA4) String() string {
	return fmt.Sprintf("NACA %1.0f%1.0f%02.0f", a.M*100, a.P*10, a.T*100)
}

// Line returns the camber line ordinate at x.
func (a *NACA4) Line(x float64) (float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, err
	}
	m, p := a.M, a.P
	if m == 0 {
		return 0, nil
	}

	if x < p {
		return (m / (p * p)) * x * (2*p - x), nil
	}
	return (m / ((1 - p) * (1 - p))) * (1 - 2*p + x*(2*p-x)), nil
}

// Slope returns the camber line gradient at x.
func (a *NACA4) Slope(x float64) (float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, err
	}
	m, p := a.M, a.P
	if m == 0 {
		return 0, nil
	}

	if x < p {
		return (2 * m / (p * p)) * (p - x), nil
	}
	return (2 * m / ((1 - p) * (1 - p))) * (p - x), nil
}

// Thickness returns the half thickness at x.
func (a *NACA4) Thickness(x float64) (float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, err
	}
	poly := a0*math.Sqrt(x) + x*(a1+x*(a2+x*(a3+x*a4)))
	return (a.T / 0.2) * poly, nil
}

// Upper returns the upper surface point belonging to chordwise position x.
func (a *NACA4) Upper(x float64) (xu, zu float64, err error) {
	return a.surface(x, +1)
}

// Lower returns the lower surface point belonging to chordwise position x.
func (a *NACA4) Lower(x float64) (xl, zl float64, err error) {
	return a.surface(x, -1)
}

func (a *NACA4) surface(x, side float64) (float64, float64, error) {
	zc, err := a.Line(x)
	if err != nil {
		return 0, 0, err
	}
	dz, _ := a.Slope(x)
	t, _ := a.Thickness(x)

	theta := math.Atan(dz)
	return x - side*t*math.Sin(theta), zc + side*t*math.Cos(theta), nil
}
