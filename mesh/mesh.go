/*package mesh generates structured vortex lattice meshes over trapezoidal
wing segments.

A segment is described by the leading edge points of its two chords and the
chords' lengths:

	   Root +......> y
	        | \
	        |  \
	        |   + Tip
	 chord1 |   |
	        |   | chord2
	        +---+
	        |
	        x

The mesh has N panels along the chord and M along the span. Points are stored
row by row, starting at the leading edge, so that point (row, col) has index
row*(M+1) + col.
*/
package mesh

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/panel"
)

var (
	// ErrNonParallel is returned when the two chords of a segment are not
	// parallel.
	ErrNonParallel = errors.New("mesh: segment chords not parallel")
	// ErrCoincident is returned when two points which must be distinct
	// coincide.
	ErrCoincident = errors.New("mesh: coincident points")
	// ErrPanelCount is returned for non-positive panel counts.
	ErrPanelCount = errors.New("mesh: panel counts must be positive")
	// ErrChord is returned for non-positive chord lengths.
	ErrChord = errors.New("mesh: chord lengths must be positive")
)

// Segment is a wing segment given by leading edge positions and chord
// lengths. Chords run along +x.
type Segment struct {
	Root, Tip           geom.Vec2
	RootChord, TipChord float64
	// N and M are the number of chordwise and spanwise panels.
	N, M int
}

// Trapezoid is a wing segment given by its corners: A and B are the leading
// and trailing edge of the root chord, C and D those of the tip chord.
type Trapezoid struct {
	A, B, C, D geom.Vec2
}

// Trapezoid returns the corners of the segment.
func (s *Segment) Trapezoid() Trapezoid {
	return Trapezoid{
		A: s.Root, B: s.Root.Add(geom.Vec2{s.RootChord, 0}),
		C: s.Tip, D: s.Tip.Add(geom.Vec2{s.TipChord, 0}),
	}
}

// CheckInit returns an error if the segment cannot be meshed.
func (s *Segment) CheckInit() error {
	if s.N <= 0 || s.M <= 0 {
		return fmt.Errorf("%w: n = %d, m = %d", ErrPanelCount, s.N, s.M)
	} else if !(s.RootChord > 0) || !(s.TipChord > 0) {
		return fmt.Errorf("%w: chords are %g and %g",
			ErrChord, s.RootChord, s.TipChord)
	} else if s.Root == s.Tip {
		return fmt.Errorf("%w: both leading edges at %v", ErrCoincident, s.Root)
	}
	return nil
}

// CheckInit returns an error if the two chords of the trapezoid are not
// parallel, point in different directions or share a leading edge.
func (t *Trapezoid) CheckInit() error {
	ab, cd := t.B.Sub(t.A), t.D.Sub(t.C)
	if ab.Norm() == 0 || cd.Norm() == 0 {
		return fmt.Errorf("%w: zero-length chord", ErrChord)
	} else if t.A == t.C {
		return fmt.Errorf("%w: both leading edges at %v", ErrCoincident, t.A)
	} else if t.B == t.D {
		return fmt.Errorf("%w: both trailing edges at %v", ErrCoincident, t.B)
	}

	root, _ := geom.NewLine(t.A, t.B)
	tip, _ := geom.NewLine(t.C, t.D)
	if !geom.AreParallel(root, tip) || geom.Dot(ab, cd) < 0 {
		return fmt.Errorf("%w: AB = %v, CD = %v", ErrNonParallel, ab, cd)
	}
	return nil
}

// Mesh is a structured mesh over a single wing segment.
type Mesh struct {
	Trapezoid
	N, M int

	Points []geom.Vec2
	Panels []*panel.Panel
}

// New meshes the given segment. Each panel is given the camber slope of the
// section at its chordwise position; a nil camber is a flat plate.
func New(seg Segment, camber airfoil.Camber) (*Mesh, error) {
	if err := seg.CheckInit(); err != nil {
		return nil, err
	}
	return NewTrapezoid(seg.Trapezoid(), seg.N, seg.M, camber)
}

// NewTrapezoid meshes the segment with the given corners using n chordwise
// and m spanwise panels.
func NewTrapezoid(t Trapezoid, n, m int, camber airfoil.Camber) (*Mesh, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: n = %d, m = %d", ErrPanelCount, n, m)
	} else if err := t.CheckInit(); err != nil {
		return nil, err
	}
	if camber == nil {
		camber = airfoil.FlatPlate{}
	}

	mesh := &Mesh{Trapezoid: t, N: n, M: m}
	mesh.initPoints()
	if err := mesh.checkPoints(); err != nil {
		return nil, err
	}
	if err := mesh.initPanels(camber); err != nil {
		return nil, err
	}
	return mesh, nil
}

// Idx returns the index of the point in the given chordwise row and spanwise
// column.
func (mesh *Mesh) Idx(row, col int) int { return row*(mesh.M+1) + col }

// Coords returns the row and column of the point with the given index.
func (mesh *Mesh) Coords(idx int) (row, col int) {
	return idx / (mesh.M + 1), idx % (mesh.M + 1)
}

// PanelIdx returns the index of the panel in the given chordwise row and
// spanwise column.
func (mesh *Mesh) PanelIdx(row, col int) int { return row*mesh.M + col }

func (mesh *Mesh) initPoints() {
	n, m := mesh.N, mesh.M
	ab := mesh.B.Sub(mesh.A)
	cd := mesh.D.Sub(mesh.C)

	mesh.Points = make([]geom.Vec2, 0, (n+1)*(m+1))
	for i := 0; i <= n; i++ {
		// Leading and trailing (root and tip) ends of the row.
		pi := mesh.A.Add(ab.Scale(float64(i) / float64(n)))
		pf := mesh.C.Add(cd.Scale(float64(i) / float64(n)))
		span := pf.Sub(pi)

		for j := 0; j <= m; j++ {
			mesh.Points = append(
				mesh.Points, pi.Add(span.Scale(float64(j)/float64(m))),
			)
		}
	}
}

func (mesh *Mesh) checkPoints() error {
	seen := make(map[geom.Vec2]int, len(mesh.Points))
	for i, p := range mesh.Points {
		if j, ok := seen[p]; ok {
			return fmt.Errorf("%w: mesh points %d and %d both at %v",
				ErrCoincident, j, i, p)
		}
		seen[p] = i
	}
	return nil
}

func (mesh *Mesh) initPanels(camber airfoil.Camber) error {
	n, m := mesh.N, mesh.M
	rootChord := mesh.B.Sub(mesh.A).Norm()

	mesh.Panels = make([]*panel.Panel, n*m)
	for row := 0; row < n; row++ {
		for col := 0; col < m; col++ {
			p, err := panel.New(
				mesh.Points[mesh.Idx(row+1, col)],
				mesh.Points[mesh.Idx(row, col)],
				mesh.Points[mesh.Idx(row, col+1)],
				mesh.Points[mesh.Idx(row+1, col+1)],
			)
			if err != nil {
				return fmt.Errorf("panel (%d, %d): %w", row, col, err)
			}
			mesh.Panels[mesh.PanelIdx(row, col)] = p
		}

		// The chordwise position is shared by the whole row and measured on
		// its root panel.
		ref := mesh.Panels[mesh.PanelIdx(row, 0)]
		center := ref.P2.Add(ref.P1.Sub(ref.P2).Scale(0.5))
		x := center.Sub(mesh.A).Norm() / rootChord

		for col := 0; col < m; col++ {
			err := mesh.Panels[mesh.PanelIdx(row, col)].
				SetChordwisePosition(x, camber)
			if err != nil {
				return fmt.Errorf("panel row %d: %w", row, err)
			}
		}
	}
	return nil
}
