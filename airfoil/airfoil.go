/*package airfoil contains the camber models used to set up the flow tangency
boundary condition of a lifting surface: the flat plate, the NACA 4-digit
family and camber lines interpolated from tables.

All chordwise positions are normalized by the local chord and must lie in
[0, 1].
*/
package airfoil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDomain is returned when a chordwise position is outside [0, 1].
	ErrDomain = errors.New("airfoil: chordwise position outside [0, 1]")
	// ErrParameter is returned when an airfoil shape parameter is outside
	// its valid range.
	ErrParameter = errors.New("airfoil: shape parameter out of range")
)

// Camber is the mean line of an airfoil section.
type Camber interface {
	// Line returns the camber line ordinate at chordwise position x.
	Line(x float64) (float64, error)
	// Slope returns dz/dx of the camber line at chordwise position x.
	Slope(x float64) (float64, error)
}

// Profile is a Camber with a thickness distribution, which is enough to draw
// the section.
type Profile interface {
	Camber
	// Thickness returns the local half thickness.
	Thickness(x float64) (float64, error)
	// Upper returns the position of the upper surface.
	Upper(x float64) (xu, zu float64, err error)
	// Lower returns the position of the lower surface.
	Lower(x float64) (xl, zl float64, err error)
}

func checkDomain(x float64) error {
	if x < 0 || x > 1 || math.IsNaN(x) {
		return fmt.Errorf("%w: x = %g", ErrDomain, x)
	}
	return nil
}

// FlatPlate is an uncambered section of zero thickness.
type FlatPlate struct{}

func (FlatPlate) Line(x float64) (float64, error) { return 0, checkDomain(x) }
func (FlatPlate) Slope(x float64) (float64, error) { return 0, checkDomain(x) }
func (FlatPlate) Thickness(x float64) (float64, error) { return 0, checkDomain(x) }

func (FlatPlate) Upper(x float64) (float64, float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, 0, err
	}
	return x, 0, nil
}

func (FlatPlate) Lower(x float64) (float64, float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, 0, err
	}
	return x, 0, nil
}

func (FlatPlate) String() string { return "flat plate" }

// Parse returns the section named by designation. Accepted forms are "flat"
// (or "flatplate", "flat plate") and four digit NACA designations with or
// without the "NACA" prefix, e.g. "2412" or "NACA 0012".
func Parse(designation string) (Profile, error) {
	s := strings.ToLower(strings.TrimSpace(designation))
	switch s {
	case "flat", "flatplate", "flat plate", "flat-plate":
		return FlatPlate{}, nil
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, "naca"))
	s = strings.TrimPrefix(s, "-")
	if len(s) != 4 {
		return nil, fmt.Errorf(
			"%w: unrecognized airfoil '%s'", ErrParameter, designation,
		)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf(
				"%w: unrecognized airfoil '%s'", ErrParameter, designation,
			)
		}
	}

	m, _ := strconv.Atoi(s[0:1])
	p, _ := strconv.Atoi(s[1:2])
	t, _ := strconv.Atoi(s[2:4])
	return NewNACA4(float64(m), float64(p), float64(t))
}
