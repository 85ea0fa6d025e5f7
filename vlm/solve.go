package vlm

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/govlm/mat"
	"go.uber.org/zap"
)

// Result is the solution of the vortex lattice at a single angle of attack.
type Result struct {
	// Alpha is the angle of attack in degrees and Velocity the freestream
	// speed.
	Alpha, Velocity float64

	// Gamma is the circulation of each panel's horseshoe vortex and RHS
	// the normal velocity it was solved against.
	Gamma, RHS []float64

	Forces

	aic *mat.Matrix
}

// Solve finds the circulation distribution of s at an angle of attack of
// alphaDeg degrees and freestream speed velocity, and integrates the
// resulting forces.
func (s *Surface) Solve(alphaDeg, velocity float64) (*Result, error) {
	if !(velocity > 0) || math.IsInf(velocity, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrVelocity, velocity)
	} else if !isFinite(alphaDeg) {
		return nil, fmt.Errorf("%w: angle of attack %g", ErrNonFinite, alphaDeg)
	}

	cache, err := s.cache()
	if err != nil {
		return nil, err
	}

	alpha := alphaDeg * math.Pi / 180
	n := len(s.panels)
	rhs, gamma := make([]float64, n), make([]float64, n)
	for i, p := range s.panels {
		rhs[i] = -velocity * (alpha - p.Slope)
	}

	cache.lu.SolveVector(rhs, gamma)
	for i, g := range gamma {
		if !isFinite(g) {
			return nil, fmt.Errorf("%w: circulation of panel %d", ErrNonFinite, i)
		}
	}

	forces, err := Integrate(s.panels, gamma, cache.trailing, velocity, s.Density)
	if err != nil {
		return nil, err
	}
	for i := range forces.Panels {
		forces.Panels[i].NormalVelocity = rhs[i]
	}

	s.log.Debug("Solved",
		zap.Float64("alpha", alphaDeg),
		zap.Float64("velocity", velocity),
		zap.Float64("CL", forces.CL),
		zap.Float64("CD", forces.CD),
	)

	return &Result{
		Alpha: alphaDeg, Velocity: velocity,
		Gamma: gamma, RHS: rhs,
		Forces: *forces,
		aic:    cache.aic,
	}, nil
}

// Residual returns max |AIC Gamma - RHS| / max |RHS|, or the unscaled
// maximum if RHS is zero.
func (r *Result) Residual() float64 {
	out := make([]float64, len(r.Gamma))
	r.aic.MulVec(r.Gamma, out)

	maxRes, maxRHS := 0.0, 0.0
	for i := range out {
		maxRes = math.Max(maxRes, math.Abs(out[i]-r.RHS[i]))
		maxRHS = math.Max(maxRHS, math.Abs(r.RHS[i]))
	}
	if maxRHS == 0 {
		return maxRes
	}
	return maxRes / maxRHS
}
