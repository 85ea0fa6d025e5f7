package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEps = 1e-12

func TestCrossDot(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{1, 1}
	assert.Equal(t, 0.0, Cross(a, b))
	assert.Equal(t, 0.0, Dot(a, b))

	a, b = Vec2{2, 3}, Vec2{5, 7}
	assert.Equal(t, 2.0*7-3.0*5, Cross(a, b))
	assert.Equal(t, 2.0*5+3.0*7, Dot(a, b))
	assert.Equal(t, -Cross(a, b), Cross(b, a))
}

func TestDirection(t *testing.T) {
	u, err := Direction(Vec2{0, 0}, Vec2{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, u[0], testEps)
	assert.InDelta(t, math.Sqrt2/2, u[1], testEps)

	_, err = Direction(Vec2{1, 2}, Vec2{1, 2})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestPerpendicular(t *testing.T) {
	vs := []Vec2{{1, 0}, {0, 1}, {-3, 4}, {2, -7}}
	for i, v := range vs {
		n, err := Perpendicular(v)
		require.NoError(t, err)
		if Cross(v, n) >= 0 {
			t.Errorf("%d) Cross(%v, %v) = %g, expected negative",
				i+1, v, n, Cross(v, n))
		}
		assert.InDelta(t, 0, Dot(v, n), testEps)
		assert.InDelta(t, 1, n.Norm(), testEps)
	}

	_, err := Perpendicular(Vec2{})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestDistToLine(t *testing.T) {
	tests := []struct {
		p, a, b Vec2
		d       float64
	}{
		{Vec2{0, 1}, Vec2{0, 0}, Vec2{1, 0}, 1},
		{Vec2{5, -2}, Vec2{0, 0}, Vec2{1, 0}, 2},
		{Vec2{0, 1}, Vec2{0, 0}, Vec2{1, 1}, math.Sqrt2 / 2},
		{Vec2{3, 3}, Vec2{0, 0}, Vec2{1, 1}, 0},
		{Vec2{0.25, 0.5}, Vec2{0.25, 0}, Vec2{0.25, 1}, 0},
	}

	for i, test := range tests {
		d, err := DistToLine(test.p, test.a, test.b)
		require.NoError(t, err)
		if math.Abs(d-test.d) > testEps {
			t.Errorf("%d) DistToLine(%v, %v, %v) = %g, expected %g",
				i+1, test.p, test.a, test.b, d, test.d)
		}
	}

	_, err := DistToLine(Vec2{1, 1}, Vec2{0, 0}, Vec2{0, 0})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestOnLineIsExactlyZero(t *testing.T) {
	// Points on a chordwise line must give an exact zero: the vortex kernels
	// switch on it.
	a, b := Vec2{0.75, 0.5}, Vec2{0.25, 0.5}
	for i := 0; i <= 10; i++ {
		p := Vec2{-1 + 0.37*float64(i), 0.5}
		d, err := DistToLine(p, a, b)
		require.NoError(t, err)
		if d != 0 {
			t.Errorf("%d) distance %g for point %v on the line", i, d, p)
		}
	}

	// Along a swept line round-off is allowed.
	a, b = Vec2{0.05, 0}, Vec2{0.175, 0.125}
	for i := 0; i <= 10; i++ {
		p := a.Add(b.Sub(a).Scale(float64(i) / 8))
		d, err := DistToLine(p, a, b)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-15)
	}
}

func TestLine(t *testing.T) {
	l1, err := NewLine(Vec2{0, 0}, Vec2{1, 0})
	require.NoError(t, err)
	l2, err := NewLine(Vec2{0, 3}, Vec2{-4, 3})
	require.NoError(t, err)
	l3, err := NewLine(Vec2{0, 0}, Vec2{1, 1})
	require.NoError(t, err)

	assert.True(t, AreParallel(l1, l2))
	assert.False(t, AreParallel(l1, l3))
	assert.InDelta(t, 3, l1.Dist(Vec2{7, -3}), testEps)

	_, err = NewLine(Vec2{2, 2}, Vec2{2, 2})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestQuadArea(t *testing.T) {
	area, err := QuadArea(Vec2{0, 0}, Vec2{1, 0}, Vec2{1, 1}, Vec2{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, area, testEps)

	// Reversing the orientation keeps the area.
	area, err = QuadArea(Vec2{0, 1}, Vec2{1, 1}, Vec2{1, 0}, Vec2{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, area, testEps)

	// Panel corner order P1..P4.
	area, err = QuadArea(Vec2{1, 0}, Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, area, testEps)

	// Trapezoid.
	area, err = QuadArea(Vec2{2.15, 1.03}, Vec2{0, 1.03},
		Vec2{0.414, 8.14}, Vec2{1.654, 8.14})
	require.NoError(t, err)
	assert.InDelta(t, (2.15+1.24)/2*(8.14-1.03), area, 1e-10)
}

func TestQuadAreaUnordered(t *testing.T) {
	_, err := QuadArea(Vec2{0, 0}, Vec2{1, 1}, Vec2{1, 0}, Vec2{0, 1})
	assert.ErrorIs(t, err, ErrUnordered)
	_, err = QuadArea(Vec2{1, 0}, Vec2{0, 1}, Vec2{0, 0}, Vec2{1, 1})
	assert.ErrorIs(t, err, ErrUnordered)
}

func TestMirror(t *testing.T) {
	v := Vec2{0.414, 8.14}
	assert.Equal(t, Vec2{0.414, -8.14}, v.Mirror())
	assert.Equal(t, v, v.Mirror().Mirror())
}

func BenchmarkDistToLine(b *testing.B) {
	n := 1000
	ps := make([]Vec2, n)
	for i := range ps {
		ps[i] = Vec2{rand.Float64() - 0.5, rand.Float64() - 0.5}
	}
	l, _ := NewLine(Vec2{0, 0}, Vec2{0.3, 1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Dist(ps[i%n])
	}
}
