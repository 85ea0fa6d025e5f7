package vlm

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/phil-mansfield/govlm/mat"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AIC returns the aerodynamic influence coefficient matrix of s. Element
// (i, j) is the normal velocity induced at the control point of panel i by
// the horseshoe vortex of panel j with unit circulation. The matrix is
// computed on the first call after the mesh changes and cached.
func (s *Surface) AIC() (*mat.Matrix, error) {
	cache, err := s.cache()
	if err != nil {
		return nil, err
	}
	return cache.aic, nil
}

// TrailingVelocities returns the normal velocity induced at each control
// point by the trailing legs of all horseshoe vortices with unit
// circulation.
func (s *Surface) TrailingVelocities() ([]float64, error) {
	cache, err := s.cache()
	if err != nil {
		return nil, err
	}
	return cache.trailing, nil
}

func (s *Surface) cache() (*aicCache, error) {
	if s.aic != nil {
		return s.aic, nil
	}

	n := len(s.panels)
	if n == 0 {
		return nil, ErrEmptyMesh
	}

	t0 := time.Now()
	aic := mat.Zeros(n, n)
	trailing := make([]float64, n)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range s.panels {
		i := i
		g.Go(func() error {
			return s.assembleRow(i, aic.Row(i), &trailing[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	t1 := time.Now()

	lu, err := aic.LU()
	if err != nil {
		return nil, fmt.Errorf("influence matrix of %d panels: %w", n, err)
	}

	s.log.Debug("Assembled influence matrix",
		zap.Int("panels", n),
		zap.Duration("assembly", t1.Sub(t0)),
		zap.Duration("lu", time.Since(t1)),
	)

	s.aic = &aicCache{aic: aic, lu: lu, trailing: trailing}
	return s.aic, nil
}

// assembleRow writes the influence of every panel on the control point of
// panel i to row and their summed trailing leg velocity to w.
func (s *Surface) assembleRow(i int, row []float64, w *float64) error {
	cp := s.panels[i].CP
	sum := 0.0
	for j, p := range s.panels {
		total, trailing := p.InducedVelocity(cp)
		if !isFinite(total) || !isFinite(trailing) {
			return fmt.Errorf("%w: influence of panel %d on panel %d",
				ErrNonFinite, j, i)
		}
		row[j] = total
		sum += trailing
	}
	*w = sum
	return nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
