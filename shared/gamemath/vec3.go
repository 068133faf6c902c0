package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the tolerance used for unit-length and near-zero checks.
const Epsilon = 1e-6

// Vec2 is a 2D vector, used for input axes and mouse deltas.
type Vec2 struct {
	X, Y float64
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return mgl64.Vec2{v.X, v.Y}.Len()
}

func (v Vec2) Add(o Vec2) Vec2 {
	m := mgl64.Vec2{v.X, v.Y}.Add(mgl64.Vec2{o.X, o.Y})
	return Vec2{m[0], m[1]}
}

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// Vec3 is a 3D vector. Y is up, Z is forward. Arithmetic goes through
// mgl64; the named fields are what the collision and level code address.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Mgl converts a to an mgl64 vector.
func (a Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{a.X, a.Y, a.Z}
}

// FromMgl converts an mgl64 vector.
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return FromMgl(a.Mgl().Add(b.Mgl()))
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return FromMgl(a.Mgl().Sub(b.Mgl()))
}

func (a Vec3) Scale(s float64) Vec3 {
	return FromMgl(a.Mgl().Mul(s))
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.Mgl().Dot(b.Mgl())
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return FromMgl(a.Mgl().Cross(b.Mgl()))
}

func (a Vec3) LengthSq() float64 {
	return a.Mgl().LenSqr()
}

func (a Vec3) Length() float64 {
	return a.Mgl().Len()
}

// Normalize returns a unit vector in the direction of a, or the zero vector
// when a is too short to have a direction.
func (a Vec3) Normalize() Vec3 {
	if a.Length() < Epsilon {
		return Vec3{}
	}
	return FromMgl(a.Mgl().Normalize())
}

// Flatten drops the vertical component.
func (a Vec3) Flatten() Vec3 {
	return Vec3{a.X, 0, a.Z}
}

func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Length()
}

// Lerp interpolates from a toward b without clamping t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vec3) IsZero() bool {
	return a.LengthSq() < Epsilon*Epsilon
}

func (a Vec3) IsFinite() bool {
	return IsFinite(a.X) && IsFinite(a.Y) && IsFinite(a.Z)
}

// Component returns the value along axis 0 (X), 1 (Y) or 2 (Z).
func (a Vec3) Component(axis int) float64 {
	return a.Mgl()[min(max(axis, 0), 2)]
}

// WithComponent returns a copy of a with the given axis replaced.
func (a Vec3) WithComponent(axis int, v float64) Vec3 {
	m := a.Mgl()
	m[min(max(axis, 0), 2)] = v
	return FromMgl(m)
}
