package vlm

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// The angles of attack, in degrees, covered by DefaultSweep.
const (
	DefaultSweepStart = -15.0
	DefaultSweepEnd   = 15.0
	DefaultSweepStep  = 2.0
)

// ErrSweepStep is returned for a sweep whose step is not positive.
var ErrSweepStep = errors.New("vlm: sweep step must be positive")

// SweepResult holds the lift and drag coefficients of a surface over a
// range of angles of attack, given in degrees.
type SweepResult struct {
	Alpha, CL, CD []float64
}

// Sweep solves s at angles of attack start, start + step, ... up to but not
// including end, all in degrees. The influence matrix is only assembled
// once.
func (s *Surface) Sweep(start, end, step, velocity float64) (*SweepResult, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrSweepStep, step)
	} else if !isFinite(start) || !isFinite(end) {
		return nil, fmt.Errorf("%w: sweep from %g to %g", ErrNonFinite, start, end)
	}

	res := &SweepResult{}
	for i := 0; ; i++ {
		alpha := start + float64(i)*step
		if alpha >= end {
			break
		}

		sol, err := s.Solve(alpha, velocity)
		if err != nil {
			return nil, fmt.Errorf("alpha = %g: %w", alpha, err)
		}
		res.Alpha = append(res.Alpha, alpha)
		res.CL = append(res.CL, sol.CL)
		res.CD = append(res.CD, sol.CD)
	}

	s.log.Info("Finished sweep",
		zap.Float64("start", start),
		zap.Float64("end", end),
		zap.Float64("step", step),
		zap.Int("solves", len(res.Alpha)),
	)

	return res, nil
}

// DefaultSweep sweeps s from -15 to 15 degrees in 2 degree steps.
func (s *Surface) DefaultSweep(velocity float64) (*SweepResult, error) {
	return s.Sweep(DefaultSweepStart, DefaultSweepEnd, DefaultSweepStep, velocity)
}

// CLAlpha returns the lift curve slope per radian estimated by a least
// squares fit to the sweep.
func (r *SweepResult) CLAlpha() float64 {
	n := float64(len(r.Alpha))
	if n < 2 {
		return math.NaN()
	}

	sx, sy, sxx, sxy := 0.0, 0.0, 0.0, 0.0
	for i, a := range r.Alpha {
		x := a * math.Pi / 180
		sx += x
		sy += r.CL[i]
		sxx += x * x
		sxy += x * r.CL[i]
	}
	return (n*sxy - sx*sy) / (n*sxx - sx*sx)
}
