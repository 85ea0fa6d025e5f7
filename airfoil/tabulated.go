package airfoil

import (
	"fmt"

	"github.com/phil-mansfield/govlm/interpolate"
)

// Tabulated is a camber line splined through a table of ordinates. It has
// zero thickness.
type Tabulated struct {
	Name string
	sp   *interpolate.Spline
}

// NewTabulated splines the camber line z(x). The table must cover [0, 1].
func NewTabulated(name string, xs, zs []float64) (*Tabulated, error) {
	sp, err := interpolate.NewSpline(xs, zs)
	if err != nil {
		return nil, fmt.Errorf("%w: camber table '%s': %s",
			ErrParameter, name, err.Error())
	}

	lo, hi := sp.Range()
	if lo > 0 || hi < 1 {
		return nil, fmt.Errorf("%w: camber table '%s' covers [%g, %g], "+
			"not [0, 1]", ErrParameter, name, lo, hi)
	}
	return &Tabulated{Name: name, sp: sp}, nil
}

func (a *Tabulated) String() string { return a.Name }

func (a *Tabulated) Line(x float64) (float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, err
	}
	return a.sp.Eval(x)
}

func (a *Tabulated) Slope(x float64) (float64, error) {
	if err := checkDomain(x); err != nil {
		return 0, err
	}
	return a.sp.Diff(x, 1)
}

func (a *Tabulated) Thickness(x float64) (float64, error) {
	return 0, checkDomain(x)
}

func (a *Tabulated) Upper(x float64) (float64, float64, error) {
	z, err := a.Line(x)
	return x, z, err
}

func (a *Tabulated) Lower(x float64) (float64, float64, error) {
	z, err := a.Line(x)
	return x, z, err
}
