package vlm

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/govlm/panel"
)

// PanelState is the solution of a single solve on one panel.
type PanelState struct {
	// NormalVelocity is the freestream velocity normal to the panel,
	// -V (alpha - slope).
	NormalVelocity float64
	// TrailingVelocity is the normal velocity induced at the control point
	// by the trailing legs of all vortices with unit circulation.
	TrailingVelocity float64
	// InducedAngle is atan(|TrailingVelocity| / V) in radians.
	InducedAngle float64

	Gamma      float64
	Lift, Drag float64
	Cl, Cd     float64
}

// Forces are the per-panel and total aerodynamic loads on a surface.
type Forces struct {
	Panels []PanelState

	// L and D are the total lift and drag, S the total area.
	L, D, S float64
	CL, CD  float64
}

// Integrate computes the lift and drag of each panel from its circulation
// with the Kutta-Joukowski theorem. trailing holds the trailing-leg normal
// velocities of unit circulation vortices at each control point.
func Integrate(
	panels []*panel.Panel, gamma, trailing []float64, velocity, density float64,
) (*Forces, error) {
	if len(panels) == 0 {
		return nil, ErrEmptyMesh
	} else if len(gamma) != len(panels) || len(trailing) != len(panels) {
		return nil, fmt.Errorf("%w: %d panels, %d circulations, %d velocities",
			ErrLengthMismatch, len(panels), len(gamma), len(trailing))
	} else if !(velocity > 0) || math.IsInf(velocity, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrVelocity, velocity)
	}

	q := 0.5 * density * velocity * velocity
	f := &Forces{Panels: make([]PanelState, len(panels))}

	for i, p := range panels {
		w := trailing[i]
		lift := density * velocity * gamma[i] * p.Span
		drag := density * math.Abs(gamma[i]) * p.Span * math.Abs(w)

		f.Panels[i] = PanelState{
			TrailingVelocity: w,
			InducedAngle:     math.Atan(math.Abs(w) / velocity),
			Gamma:            gamma[i],
			Lift:             lift,
			Drag:             drag,
			Cl:               lift / (q * p.Area),
			Cd:               drag / (q * p.Area),
		}

		f.L += lift
		f.D += drag
		f.S += p.Area
	}

	f.CL = f.L / (q * f.S)
	f.CD = f.D / (q * f.S)
	if !isFinite(f.CL) || !isFinite(f.CD) {
		return nil, fmt.Errorf("%w: CL = %g, CD = %g", ErrNonFinite, f.CL, f.CD)
	}

	return f, nil
}
