/*package panel contains the quadrilateral panels of a vortex lattice and the
horseshoe vortices attached to them.

Panel corners are named clockwise in the panel's local chordwise/spanwise
axes:

	         y ^
	           |
	    P3-----|-----P4
	    |      |      |
	    |      +------|--> x
	    |             |
	    P2-----------P1

P2 and P3 are on the leading edge and P1P2, P3P4 run along the freestream.
*/
package panel

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
)

var (
	// ErrMisaligned is returned when a panel edge or trailing leg is not
	// aligned with the freestream.
	ErrMisaligned = errors.New("panel: edge not aligned with the freestream")
	// ErrDegenerateVortex is returned when the bound leg of a horseshoe
	// vortex is aligned with the freestream.
	ErrDegenerateVortex = errors.New("panel: bound vortex aligned with the freestream")
)

// Panel is a single quadrilateral of a vortex lattice together with the
// quantities derived from its geometry. A Panel is not modified after its
// mesh has been built.
type Panel struct {
	P1, P2, P3, P4 geom.Vec2
	Horseshoe

	Area, Span float64
	// ChordwisePosition is the distance from the local leading edge to the
	// panel's center, normalized by the local chord.
	ChordwisePosition float64
	// Slope is the camber line slope at ChordwisePosition.
	Slope float64
}

// New creates a panel from its four corners.
func New(p1, p2, p3, p4 geom.Vec2) (*Panel, error) {
	p := &Panel{}
	return p, p.Init(p1, p2, p3, p4)
}

// Init initializes a panel with the given corners. The chordwise position
// and camber slope are left at zero, see SetChordwisePosition.
func (p *Panel) Init(p1, p2, p3, p4 geom.Vec2) error {
	p.P1, p.P2, p.P3, p.P4 = p1, p2, p3, p4
	p.ChordwisePosition, p.Slope = 0, 0

	if err := p.Horseshoe.Init(p1, p2, p3, p4); err != nil {
		return err
	}

	area, err := geom.QuadArea(p1, p2, p3, p4)
	if err != nil {
		return fmt.Errorf("panel %v %v %v %v: %w", p1, p2, p3, p4, err)
	}
	p.Area = area
	p.Span = math.Abs(p3[1] - p2[1])

	return nil
}

// SetChordwisePosition records the panel's position along the local chord
// and the camber slope of the section there.
func (p *Panel) SetChordwisePosition(x float64, camber airfoil.Camber) error {
	slope, err := camber.Slope(x)
	if err != nil {
		return err
	}
	p.ChordwisePosition, p.Slope = x, slope
	return nil
}

// Corners returns the panel's corners in order.
func (p *Panel) Corners() [4]geom.Vec2 {
	return [4]geom.Vec2{p.P1, p.P2, p.P3, p.P4}
}
