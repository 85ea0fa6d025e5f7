/*package vlm solves for the circulation and aerodynamic forces of thin
planar lifting surfaces with the vortex lattice method.

Surfaces are built up with AddSurface, which meshes each pair of consecutive
sections. The influence coefficient matrix of all panels is assembled the
first time it is needed and reused by every later Solve until the mesh
changes.
*/
package vlm

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/govlm/airfoil"
	"github.com/phil-mansfield/govlm/geom"
	"github.com/phil-mansfield/govlm/mat"
	"github.com/phil-mansfield/govlm/mesh"
	"github.com/phil-mansfield/govlm/panel"
	"go.uber.org/zap"
)

// DefaultDensity is sea level air density in kg/m^3.
const DefaultDensity = 1.225

var (
	// ErrLengthMismatch is returned when the number of leading edges and
	// chords passed to AddSurface differ.
	ErrLengthMismatch = errors.New("vlm: leading edge and chord counts differ")
	// ErrTooFewSections is returned when a surface has fewer than two
	// sections.
	ErrTooFewSections = errors.New("vlm: surface needs at least two sections")
	// ErrEmptyMesh is returned when solving with no panels.
	ErrEmptyMesh = errors.New("vlm: mesh has no panels")
	// ErrNonFinite is returned when a NaN or infinity shows up in the
	// inputs or the solution.
	ErrNonFinite = errors.New("vlm: non-finite value")
	// ErrVelocity is returned for a non-positive freestream velocity.
	ErrVelocity = errors.New("vlm: freestream velocity must be positive")
)

// SurfaceOptions controls how AddSurface meshes a surface.
type SurfaceOptions struct {
	// Mirror adds the reflection of the surface across y = 0.
	Mirror bool
	// Camber is the section camber line. nil is a flat plate.
	Camber airfoil.Camber
}

// Surface is the set of panels making up one or more lifting surfaces,
// along with the influence matrix cached for them. A Surface is not safe
// for concurrent use.
type Surface struct {
	// Density is the freestream density used for forces.
	Density float64

	log    *zap.Logger
	meshes []*mesh.Mesh
	panels []*panel.Panel
	points []geom.Vec2

	aic *aicCache
}

type aicCache struct {
	aic *mat.Matrix
	lu  *mat.LUFactors
	// trailing[i] is the normal velocity induced at control point i by the
	// trailing legs of every horseshoe vortex with unit circulation.
	trailing []float64
}

// NewSurface returns an empty surface at DefaultDensity. A nil logger
// disables logging.
func NewSurface(log *zap.Logger) *Surface {
	if log == nil {
		log = zap.NewNop()
	}
	return &Surface{Density: DefaultDensity, log: log}
}

// AddSurface meshes the surface with sections at the given leading edges
// and chord lengths, using n chordwise and m spanwise panels between each
// consecutive pair of sections, and appends the panels to s. On error s is
// left unchanged.
func (s *Surface) AddSurface(
	leadingEdges []geom.Vec2, chords []float64, n, m int, opts SurfaceOptions,
) error {
	if len(leadingEdges) != len(chords) {
		return fmt.Errorf("%w: %d leading edges, %d chords",
			ErrLengthMismatch, len(leadingEdges), len(chords))
	} else if len(leadingEdges) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSections, len(leadingEdges))
	}

	seen := make(map[geom.Vec2]int, len(leadingEdges))
	for i, le := range leadingEdges {
		if j, ok := seen[le]; ok {
			return fmt.Errorf("%w: leading edges %d and %d both at %v",
				mesh.ErrCoincident, j, i, le)
		}
		seen[le] = i
	}

	meshes, err := segmentMeshes(leadingEdges, chords, n, m, opts.Camber)
	if err != nil {
		return err
	}

	if opts.Mirror {
		mirrorEdges, mirrorChords := mirror(leadingEdges, chords)
		mirrored, err := segmentMeshes(
			mirrorEdges, mirrorChords, n, m, opts.Camber,
		)
		if err != nil {
			return fmt.Errorf("mirrored surface: %w", err)
		}
		meshes = append(meshes, mirrored...)
	}

	s.aic = nil
	for _, msh := range meshes {
		s.meshes = append(s.meshes, msh)
		s.panels = append(s.panels, msh.Panels...)
		s.points = append(s.points, msh.Points...)
	}

	s.log.Debug("Added surface",
		zap.Int("sections", len(leadingEdges)),
		zap.Int("segments", len(meshes)),
		zap.Bool("mirror", opts.Mirror),
		zap.Int("panels", len(s.panels)),
	)

	return nil
}

func segmentMeshes(
	les []geom.Vec2, chords []float64, n, m int, camber airfoil.Camber,
) ([]*mesh.Mesh, error) {
	meshes := make([]*mesh.Mesh, 0, len(les)-1)
	for k := 0; k+1 < len(les); k++ {
		msh, err := mesh.New(mesh.Segment{
			Root: les[k], Tip: les[k+1],
			RootChord: chords[k], TipChord: chords[k+1],
			N: n, M: m,
		}, camber)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", k, err)
		}
		meshes = append(meshes, msh)
	}
	return meshes, nil
}

// mirror reflects a list of sections across y = 0, reversing their order
// so that the reflected sections still run from left to right.
func mirror(les []geom.Vec2, chords []float64) ([]geom.Vec2, []float64) {
	n := len(les)
	outLes, outChords := make([]geom.Vec2, n), make([]float64, n)
	for i := range les {
		outLes[n-1-i] = les[i].Mirror()
		outChords[n-1-i] = chords[i]
	}
	return outLes, outChords
}

// Reset removes every panel from s and clears its cached matrices.
func (s *Surface) Reset() {
	s.meshes, s.panels, s.points = nil, nil, nil
	s.aic = nil
}

// Panels returns the panels of s in solve order. The slice must not be
// modified.
func (s *Surface) Panels() []*panel.Panel { return s.panels }

// Points returns the mesh points of every segment of s in the order they
// were added. The slice must not be modified.
func (s *Surface) Points() []geom.Vec2 { return s.points }

// Meshes returns the segment meshes of s in the order they were added.
func (s *Surface) Meshes() []*mesh.Mesh { return s.meshes }

// Area returns the total planform area of s.
func (s *Surface) Area() float64 {
	area := 0.0
	for _, p := range s.panels {
		area += p.Area
	}
	return area
}
