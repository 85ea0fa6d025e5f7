/*package geom contains the two dimensional vector routines used to build and
evaluate vortex lattices.

All quantities live in the plane of the wing: index 0 is the chordwise (x)
coordinate, pointing downstream, and index 1 is the spanwise (y) coordinate.
*/
package geom

import (
	"errors"
	"math"
)

var (
	// ErrZeroLength is returned when a direction is requested from a
	// zero-length vector.
	ErrZeroLength = errors.New("geom: zero-length vector has no direction")
	// ErrUnordered is returned when polygon corners are not ordered in a
	// consistent clockwise or counter-clockwise manner.
	ErrUnordered = errors.New("geom: points not ordered clockwise or counter-clockwise")
)

// Vec2 is a point or displacement in the plane of the wing.
type Vec2 [2]float64

// Freestream is the unit vector of the undisturbed flow, +x.
var Freestream = Vec2{1, 0}

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v[0] + u[0], v[1] + u[1]} }

// Sub returns v - u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v[0] - u[0], v[1] - u[1]} }

// Scale returns k * v.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{k * v[0], k * v[1]} }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

// Mirror reflects v across the wing's centerline (y -> -y).
func (v Vec2) Mirror() Vec2 { return Vec2{v[0], -v[1]} }

// X returns the chordwise coordinate.
func (v Vec2) X() float64 { return v[0] }

// Y returns the spanwise coordinate.
func (v Vec2) Y() float64 { return v[1] }

// Cross returns the z component of the cross product a x b.
func Cross(a, b Vec2) float64 { return a[0]*b[1] - a[1]*b[0] }

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

// Sign returns -1, 0 or +1 depending on the sign of x.
func Sign(x float64) float64 {
	if x > 0 {
		return +1
	} else if x < 0 {
		return -1
	}
	return 0
}

// Direction returns the unit vector pointing from a to b.
func Direction(a, b Vec2) (Vec2, error) {
	ab := b.Sub(a)
	norm := ab.Norm()
	if norm == 0 {
		return Vec2{}, ErrZeroLength
	}
	return ab.Scale(1 / norm), nil
}

// Perpendicular returns the unit vector normal to v, rotated so that
// Cross(v, Perpendicular(v)) < 0.
func Perpendicular(v Vec2) (Vec2, error) {
	norm := v.Norm()
	if norm == 0 {
		return Vec2{}, ErrZeroLength
	}
	return Vec2{v[1] / norm, -v[0] / norm}, nil
}

// Aligned returns true if v is exactly parallel (or anti-parallel) to u.
func Aligned(v, u Vec2) bool { return Cross(v, u) == 0 }
