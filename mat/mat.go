/*package mat contains a small dense matrix type and an LU decomposition used
to solve the square systems which come out of a vortex lattice.
*/
package mat

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when a matrix has no usable LU decomposition.
var ErrSingular = errors.New("mat: matrix is singular")

// PivotTolerance is the smallest pivot, relative to the largest element of
// its original row, which LUFactorsAt will accept.
const PivotTolerance = 1e-12

// Matrix is a dense, row-major matrix.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors is the LU decomposition of a row-permuted square matrix.
type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix wraps vals in a Matrix. vals is not copied.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Zeros returns a width x height matrix filled with zeros.
func Zeros(width, height int) *Matrix {
	return NewMatrix(make([]float64, width*height), width, height)
}

// At returns the element in row i and column j.
func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width+j] }

// Set sets the element in row i and column j.
func (m *Matrix) Set(i, j int, x float64) { m.Vals[i*m.Width+j] = x }

// Row returns row i. The returned slice aliases m.
func (m *Matrix) Row(i int) []float64 {
	return m.Vals[i*m.Width : (i+1)*m.Width]
}

// MulVec computes out = m * xs.
//
// xs and out may not point to the same memory.
func (m *Matrix) MulVec(xs, out []float64) {
	if len(xs) != m.Width {
		panic("len(xs) != m.Width")
	} else if len(out) != m.Height {
		panic("len(out) != m.Height")
	}

	for i := range out {
		sum := 0.0
		for j, x := range m.Row(i) {
			sum += x * xs[j]
		}
		out[i] = sum
	}
}

// NewLUFactors allocates space for the decomposition of an n x n matrix.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// LU computes the LU decomposition of m.
func (m *Matrix) LU() (*LUFactors, error) {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	if err := m.LUFactorsAt(lu); err != nil {
		return nil, err
	}
	return lu, nil
}

// LUFactorsAt computes the LU decomposition of m in place in luf using
// partial pivoting on implicitly scaled rows. ErrSingular is returned if
// m has a row of zeros or if any scaled pivot falls below PivotTolerance.
func (m *Matrix) LUFactorsAt(luf *LUFactors) error {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimensions than m.")
	}

	n := m.Width
	scale := make([]float64, n)
	lu := luf.lu.Vals
	luf.d = 1
	copy(lu, m.Vals)

	for i := 0; i < n; i++ {
		iOffset := i * n

		max := 0.0
		for j := 0; j < n; j++ {
			tmp := math.Abs(lu[iOffset+j])
			if tmp > max {
				max = tmp
			}
		}
		if max == 0 || math.IsNaN(max) || math.IsInf(max, 0) {
			return fmt.Errorf("%w: row %d has max element %g",
				ErrSingular, i, max)
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		max := 0.0
		maxi := k
		for i := k; i < n; i++ {
			tmp := scale[i] * math.Abs(lu[i*n+k])
			if tmp > max {
				max = tmp
				maxi = i
			}
		}

		if !(max > PivotTolerance) {
			return fmt.Errorf("%w: scaled pivot %g in column %d",
				ErrSingular, max, k)
		}

		if k != maxi {
			kOffset, maxiOffset := n*k, n*maxi
			for j := 0; j < n; j++ {
				idx1, idx2 := kOffset+j, maxiOffset+j
				lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}

	return nil
}

// Size returns the width of the decomposed matrix.
func (luf *LUFactors) Size() int { return luf.lu.Width }

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	ys := xs
	copy(ys, bs)
	lu := luf.lu.Vals

	// Solve L * y = b for y.
	forwardSubst(n, luf.pivot, lu, ys)
	// Solve U * x = y for x.
	backSubst(n, lu, ys)
}

// Solves L * y = b for y, undoing the row permutation as it goes.
// y_i = b_i - sum_j=0^i-1 (alpha_ij y_j)
func forwardSubst(n int, pivot []int, lu, ys []float64) {
	nzIdx := 0
	for i := 0; i < n; i++ {
		piv := pivot[i]
		sum := ys[piv]
		ys[piv] = ys[i]

		if nzIdx != 0 {
			iOffset := i * n
			for j := nzIdx - 1; j < i; j++ {
				sum -= lu[iOffset+j] * ys[j]
			}
		} else if sum != 0 {
			nzIdx = i + 1
		}

		ys[i] = sum
	}
}

// Solves U * x = y for x in place.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		iOffset := n * i
		for j := i + 1; j < n; j++ {
			sum -= lu[iOffset+j] * xs[j]
		}
		xs[i] = sum / lu[iOffset+i]
	}
}

// SolveMatrix solves the equation m * x = b, one column at a time.
//
// x and b may point to the same physical memory.
func (luf *LUFactors) SolveMatrix(b, x *Matrix) {
	n := luf.lu.Width

	if b.Width != b.Height {
		panic("b matrix is non-square.")
	} else if x.Width != x.Height {
		panic("x matrix is non-square.")
	} else if n != b.Width {
		panic("b matrix different size than m matrix.")
	} else if n != x.Width {
		panic("x matrix different size than m matrix.")
	}

	col := make([]float64, n)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = b.Vals[i*n+j]
		}
		luf.SolveVector(col, col)
		for i := 0; i < n; i++ {
			x.Vals[i*n+j] = col[i]
		}
	}
}

// Invert writes the inverse of the decomposed matrix to out.
func (luf *LUFactors) Invert(out *Matrix) {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("out matrix is non-square.")
	} else if n != out.Width {
		panic("out matrix different size than m matrix.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < n; i++ {
		out.Vals[i*n+i] = 1
	}

	luf.SolveMatrix(out, out)
}

// Determinant returns the determinant of the decomposed matrix.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}
