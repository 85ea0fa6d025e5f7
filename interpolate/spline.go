/*package interpolate contains natural cubic splines for interpolating
tabulated one-dimensional functions and their derivatives.
*/
package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrTable is returned for tables which cannot be splined.
	ErrTable = errors.New("interpolate: invalid table")
	// ErrRange is returned when evaluating a spline outside its table.
	ErrRange = errors.New("interpolate: point outside of table")
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff

	incr bool

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a spline based off a table of x and y values. The values
// must be strictly increasing or decreasing in x. xs and ys are copied.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs) = %d but len(ys) = %d",
			ErrTable, len(xs), len(ys))
	} else if len(xs) <= 2 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d",
			ErrTable, len(xs))
	}

	sp := new(Spline)
	sp.incr = xs[0] < xs[1]
	for i := 0; i < len(xs)-1; i++ {
		if (xs[i+1] > xs[i]) != sp.incr || xs[i+1] == xs[i] {
			return nil, fmt.Errorf("%w: x values not strictly monotonic "+
				"at index %d", ErrTable, i+1)
		}
	}

	sp.xs = append([]float64{}, xs...)
	sp.ys = append([]float64{}, ys...)
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	sp.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	if err := sp.calcY2s(); err != nil {
		return nil, err
	}
	sp.calcCoeffs()
	return sp, nil
}

// Range returns the smallest and largest x values of the table.
func (sp *Spline) Range() (lo, hi float64) {
	lo, hi = sp.xs[0], sp.xs[len(sp.xs)-1]
	if !sp.incr {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Eval computes the value of the spline at the given point.
func (sp *Spline) Eval(x float64) (float64, error) {
	return sp.Diff(x, 0)
}

// Diff computes the derivative of spline at the given point to the
// specified order.
func (sp *Spline) Diff(x float64, order int) (float64, error) {
	lo, hi := sp.Range()
	if !(x >= lo && x <= hi) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrRange, x, lo, hi)
	}

	i := sp.bsearch(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d, nil
	case 1:
		return 3*a*dx*dx + 2*b*dx + c, nil
	case 2:
		return 6*a*dx + 2*b, nil
	case 3:
		return 6 * a, nil
	default:
		return 0, nil
	}
}

// bsearch returns the index of the segment containing x.
func (sp *Spline) bsearch(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		(sp.xs[guess] <= x == sp.incr) &&
		(sp.xs[guess+1] >= x == sp.incr) {

		return guess
	}

	// Binary search.
	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.incr == (x >= sp.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s computes the second derivative at every point in the table. The
// boundaries are set to zero.
func (sp *Spline) calcY2s() error {
	n := len(sp.xs)
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	return TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(y2s[i]/3+y2s[i+1]/6)
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
//	| b0 c0 ..    |   | out0 |   | r0 |
//	| a1 b1 c1 .. |   | out1 |   | r1 |
//	| ..          | * | ..   | = | .. |
//	| ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return fmt.Errorf("%w: zero pivot in tridiagonal system", ErrTable)
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return fmt.Errorf("%w: zero pivot in tridiagonal system", ErrTable)
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}
