// Package geom provides exact planar geometry primitives: vectors, angles,
// lines, polygons, bounding boxes and affine transformations.
//
// All types are plain values. Equality is exact coordinate equality with no
// epsilon, so Vec2 can be used as a map key; tolerance-based comparisons are
// the caller's business (tests use InDelta).
package geom

import (
	"fmt"
	"math"
)

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2) Sub(other Vec2) Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec2) Mul(scalar float64) Vec2 {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2) Div(scalar float64) Vec2 {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the cross product of the two vectors
// extended into 3-space. Positive means other is counterclockwise of v.
func (v Vec2) Cross(other Vec2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Norm returns the euclidean length of the vector.
func (v Vec2) Norm() Distance {
	return Distance(math.Hypot(v.X, v.Y))
}

// Direction returns the angle of the vector against the positive x axis.
func (v Vec2) Direction() Angle {
	return Rad(math.Atan2(v.Y, v.X))
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Less orders vectors lexicographically, x before y. This is the ordering
// used for convex hull sorting and for picking canonical starting vertices.
func (v Vec2) Less(other Vec2) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	return v.Y < other.Y
}

// Polar builds the vector with the given direction and length.
func Polar(angle Angle, distance Distance) Vec2 {
	return Vec2{
		X: float64(distance) * angle.Cos(),
		Y: float64(distance) * angle.Sin(),
	}
}

// Angle is a direction in radians, canonicalized into [0, 2π). All arithmetic
// re-normalizes, so two angles that differ by a full turn compare equal.
type Angle struct {
	rad float64
}

// Rad builds an Angle from radians.
func Rad(r float64) Angle {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle{rad: r}
}

// Deg builds an Angle from degrees.
func Deg(d float64) Angle {
	return Rad(d * math.Pi / 180)
}

// Radians returns the canonical radian value in [0, 2π).
func (a Angle) Radians() float64 {
	return a.rad
}

func (a Angle) Degrees() float64 {
	return a.rad * 180 / math.Pi
}

func (a Angle) Add(other Angle) Angle {
	return Rad(a.rad + other.rad)
}

func (a Angle) Sub(other Angle) Angle {
	return Rad(a.rad - other.rad)
}

func (a Angle) Mul(scalar float64) Angle {
	return Rad(a.rad * scalar)
}

func (a Angle) Neg() Angle {
	return Rad(-a.rad)
}

func (a Angle) Sin() float64 {
	return math.Sin(a.rad)
}

func (a Angle) Cos() float64 {
	return math.Cos(a.rad)
}

func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.Degrees())
}

// Distance is a scalar length. It is a distinct type so that a raw float
// cannot accidentally be mixed into length arithmetic.
type Distance float64

func (d Distance) Add(other Distance) Distance { return d + other }
func (d Distance) Sub(other Distance) Distance { return d - other }
func (d Distance) Mul(scalar float64) Distance { return d * Distance(scalar) }
func (d Distance) Neg() Distance               { return -d }

// Area is a scalar area, signed where it comes out of the shoelace formula.
type Area float64

func (a Area) Add(other Area) Area    { return a + other }
func (a Area) Sub(other Area) Area    { return a - other }
func (a Area) Mul(scalar float64) Area { return a * Area(scalar) }
func (a Area) Neg() Area              { return -a }
