package mesh

import (
	"errors"
	"testing"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-7

func vecEq(t *testing.T, want, got geom.Vec2, msgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], eps, msgs...)
	assert.InDelta(t, want[1], got[1], eps, msgs...)
}

// Swept wing from Bertin and Smith, one chordwise row.
func bertinSmith(t *testing.T, camber airfoil.Camber) *Mesh {
	mesh, err := New(Segment{
		Root: geom.Vec2{0, 0}, Tip: geom.Vec2{0.5, 0.5},
		RootChord: 0.2, TipChord: 0.2, N: 1, M: 4,
	}, camber)
	require.NoError(t, err)
	return mesh
}

func TestCounts(t *testing.T) {
	table := []struct{ n, m int }{
		{1, 1}, {1, 4}, {3, 2}, {4, 3}, {10, 20},
	}

	for i, test := range table {
		mesh, err := New(Segment{
			Root: geom.Vec2{0, 1.03}, Tip: geom.Vec2{0.414, 8.14},
			RootChord: 2.15, TipChord: 1.24, N: test.n, M: test.m,
		}, nil)
		require.NoError(t, err, "%d)", i)
		assert.Len(t, mesh.Points, (test.n+1)*(test.m+1), "%d)", i)
		assert.Len(t, mesh.Panels, test.n*test.m, "%d)", i)
	}
}

func TestPoints(t *testing.T) {
	mesh := bertinSmith(t, nil)

	want := []geom.Vec2{
		{0, 0}, {0.125, 0.125}, {0.25, 0.25}, {0.375, 0.375}, {0.5, 0.5},
		{0.2, 0}, {0.325, 0.125}, {0.45, 0.25}, {0.575, 0.375}, {0.7, 0.5},
	}
	require.Len(t, mesh.Points, len(want))
	for i := range want {
		vecEq(t, want[i], mesh.Points[i], "%d)", i)
	}
}

func TestIdx(t *testing.T) {
	mesh := bertinSmith(t, nil)
	for idx := range mesh.Points {
		row, col := mesh.Coords(idx)
		assert.Equal(t, idx, mesh.Idx(row, col))
	}
	row, col := mesh.Coords(7)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}

func TestPanelIndexMap(t *testing.T) {
	mesh, err := New(Segment{
		Root: geom.Vec2{0, 0}, Tip: geom.Vec2{0.3, 2},
		RootChord: 1, TipChord: 0.5, N: 3, M: 4,
	}, nil)
	require.NoError(t, err)

	m, pts := mesh.M, mesh.Points
	for i, p := range mesh.Panels {
		k := i / m
		assert.Equal(t, pts[i+k+m+1], p.P1, "%d) P1", i)
		assert.Equal(t, pts[i+k], p.P2, "%d) P2", i)
		assert.Equal(t, pts[i+k+1], p.P3, "%d) P3", i)
		assert.Equal(t, pts[i+k+m+2], p.P4, "%d) P4", i)
	}
}

func TestRectangularPanel(t *testing.T) {
	mesh, err := New(Segment{
		Root: geom.Vec2{0, 0}, Tip: geom.Vec2{0, 1},
		RootChord: 1, TipChord: 1, N: 1, M: 2,
	}, nil)
	require.NoError(t, err)

	p := mesh.Panels[0]
	vecEq(t, geom.Vec2{1, 0}, p.P1, "P1")
	vecEq(t, geom.Vec2{0, 0}, p.P2, "P2")
	vecEq(t, geom.Vec2{0, 0.5}, p.P3, "P3")
	vecEq(t, geom.Vec2{1, 0.5}, p.P4, "P4")
	assert.InDelta(t, 0.5, p.Span, eps)
	assert.InDelta(t, 0.5, p.Area, eps)
}

func TestBertinSmithVortices(t *testing.T) {
	mesh := bertinSmith(t, nil)

	vecEq(t, geom.Vec2{0.05, 0}, mesh.Panels[0].B, "0) B")
	vecEq(t, geom.Vec2{0.175, 0.125}, mesh.Panels[0].C, "0) C")
	vecEq(t, geom.Vec2{0.175, 0.125}, mesh.Panels[1].B, "1) B")
	vecEq(t, geom.Vec2{0.3, 0.25}, mesh.Panels[1].C, "1) C")

	cps := []geom.Vec2{
		{0.2125, 0.0625}, {0.3375, 0.1875}, {0.4625, 0.3125}, {0.5875, 0.4375},
	}
	for i, cp := range cps {
		vecEq(t, cp, mesh.Panels[i].CP, "%d) CP", i)
	}
}

func TestChordwisePosition(t *testing.T) {
	naca := airfoil.Default()

	mesh := bertinSmith(t, naca)
	for i, p := range mesh.Panels {
		assert.InDelta(t, 0.5, p.ChordwisePosition, eps, "%d)", i)
		assert.InDelta(t, -0.0111111, p.Slope, eps, "%d)", i)
	}

	mesh, err := New(Segment{
		Root: geom.Vec2{0, 0}, Tip: geom.Vec2{0.5, 3},
		RootChord: 2, TipChord: 1, N: 4, M: 3,
	}, naca)
	require.NoError(t, err)

	for row := 0; row < mesh.N; row++ {
		x := (float64(row) + 0.5) / float64(mesh.N)
		slope, err := naca.Slope(x)
		require.NoError(t, err)
		for col := 0; col < mesh.M; col++ {
			p := mesh.Panels[mesh.PanelIdx(row, col)]
			assert.InDelta(t, x, p.ChordwisePosition, eps, "(%d, %d)", row, col)
			assert.InDelta(t, slope, p.Slope, eps, "(%d, %d)", row, col)
		}
	}
}

func TestFlatPlateDefault(t *testing.T) {
	mesh := bertinSmith(t, nil)
	for i, p := range mesh.Panels {
		assert.Zero(t, p.Slope, "%d)", i)
	}
}

func TestTrapezoid(t *testing.T) {
	seg := Segment{
		Root: geom.Vec2{0, 0}, Tip: geom.Vec2{0.5, 0.5},
		RootChord: 0.2, TipChord: 0.2, N: 1, M: 4,
	}
	trap := seg.Trapezoid()
	vecEq(t, geom.Vec2{0.2, 0}, trap.B, "B")
	vecEq(t, geom.Vec2{0.7, 0.5}, trap.D, "D")

	m1, err := New(seg, nil)
	require.NoError(t, err)
	m2, err := NewTrapezoid(trap, seg.N, seg.M, nil)
	require.NoError(t, err)
	assert.Equal(t, m1.Points, m2.Points)
}

func TestSegmentErrors(t *testing.T) {
	root, tip := geom.Vec2{0, 0}, geom.Vec2{0.5, 1}
	table := []struct {
		seg Segment
		err error
	}{
		{Segment{root, tip, 1, 1, 0, 1}, ErrPanelCount},
		{Segment{root, tip, 1, 1, 1, -2}, ErrPanelCount},
		{Segment{root, tip, 0, 1, 1, 1}, ErrChord},
		{Segment{root, tip, 1, -1, 1, 1}, ErrChord},
		{Segment{root, root, 1, 1, 1, 1}, ErrCoincident},
	}

	for i, test := range table {
		_, err := New(test.seg, nil)
		assert.True(t, errors.Is(err, test.err), "%d) got %v", i, err)
	}
}

func TestTrapezoidErrors(t *testing.T) {
	table := []struct {
		trap Trapezoid
		err  error
	}{
		{Trapezoid{
			geom.Vec2{0, 0}, geom.Vec2{1, 0}, geom.Vec2{0, 1}, geom.Vec2{1, 1.2},
		}, ErrNonParallel},
		{Trapezoid{
			geom.Vec2{0, 0}, geom.Vec2{1, 0}, geom.Vec2{0, 1}, geom.Vec2{-1, 1},
		}, ErrNonParallel},
		{Trapezoid{
			geom.Vec2{0, 0}, geom.Vec2{1, 0}, geom.Vec2{0, 0}, geom.Vec2{2, 0},
		}, ErrCoincident},
		{Trapezoid{
			geom.Vec2{0, 0}, geom.Vec2{1, 0}, geom.Vec2{0, 1}, geom.Vec2{0, 1},
		}, ErrChord},
	}

	for i, test := range table {
		_, err := NewTrapezoid(test.trap, 2, 2, nil)
		assert.True(t, errors.Is(err, test.err), "%d) got %v", i, err)
	}
}

func TestTiltedChords(t *testing.T) {
	// Parallel but not along the freestream.
	trap := Trapezoid{
		geom.Vec2{0, 0}, geom.Vec2{1, 0.1}, geom.Vec2{0, 1}, geom.Vec2{1, 1.1},
	}
	_, err := NewTrapezoid(trap, 2, 2, nil)
	assert.True(t, errors.Is(err, panel.ErrMisaligned), "got %v", err)
}

func BenchmarkNew(b *testing.B) {
	seg := Segment{
		Root: geom.Vec2{0, 1.03}, Tip: geom.Vec2{0.414, 8.14},
		RootChord: 2.15, TipChord: 1.24, N: 10, M: 40,
	}
	naca := airfoil.Default()
	for i := 0; i < b.N; i++ {
		New(seg, naca)
	}
}
