package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a unit quaternion rotation over mgl64.Quat. Rotations follow the
// left-handed, Y-up convention: positive yaw turns +Z toward +X, positive
// pitch tilts +Z downward.
type Quat mgl64.Quat

// Identity is the no-rotation quaternion.
var Identity = Quat(mgl64.QuatIdent())

// AxisAngle builds a rotation of deg degrees about axis.
func AxisAngle(axis Vec3, deg float64) Quat {
	axis = axis.Normalize()
	if axis.IsZero() {
		return Identity
	}
	return Quat(mgl64.QuatRotate(deg*Deg2Rad, axis.Mgl()))
}

// Euler builds a rotation that applies roll (Z), then pitch (X), then yaw (Y).
func Euler(pitch, yaw, roll float64) Quat {
	return Quat(mgl64.AnglesToQuat(yaw*Deg2Rad, pitch*Deg2Rad, roll*Deg2Rad, mgl64.YXZ))
}

// FromYaw is Euler(0, yaw, 0).
func FromYaw(yaw float64) Quat {
	return AxisAngle(Up, yaw)
}

// LookRotation returns the yaw/pitch rotation whose forward axis points along dir.
func LookRotation(dir Vec3) Quat {
	dir = dir.Normalize()
	if dir.IsZero() {
		return Identity
	}
	yaw := math.Atan2(dir.X, dir.Z) * Rad2Deg
	pitch := -math.Asin(Clamp(dir.Y, -1, 1)) * Rad2Deg
	return Euler(pitch, yaw, 0)
}

func (q Quat) mgl() mgl64.Quat {
	return mgl64.Quat(q)
}

// Mul composes rotations: q.Mul(r) applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat(q.mgl().Mul(r.mgl()))
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return FromMgl(q.mgl().Rotate(v.Mgl()))
}

func (q Quat) Dot(r Quat) float64 {
	return q.mgl().Dot(r.mgl())
}

func (q Quat) Normalize() Quat {
	return Quat(q.mgl().Normalize())
}

// Forward is the rotated +Z axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Forward)
}

// Yaw returns the heading of the rotated forward axis in [0, 360).
func (q Quat) Yaw() float64 {
	return YawFromDirection(q.Forward())
}

// Slerp interpolates along the shortest great arc. t is clamped to [0, 1].
func Slerp(a, b Quat, t float64) Quat {
	return Quat(mgl64.QuatSlerp(a.mgl(), b.mgl(), Clamp01(t)))
}
