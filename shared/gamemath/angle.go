package gamemath

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// WrapAngle maps degrees into [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// DeltaAngle returns the shortest signed difference target-current in (-180, 180].
func DeltaAngle(current, target float64) float64 {
	d := math.Mod(target-current, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// LerpAngle interpolates along the shortest arc. t is clamped to [0, 1].
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + DeltaAngle(a, b)*Clamp01(t))
}

// MoveTowardsAngle rotates current toward target by at most maxDelta degrees.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	d := DeltaAngle(current, target)
	if math.Abs(d) <= maxDelta {
		return WrapAngle(target)
	}
	return WrapAngle(current + math.Copysign(maxDelta, d))
}

// YawFromDirection returns the heading of a horizontal direction in degrees,
// 0 along +Z and 90 along +X.
func YawFromDirection(dir Vec3) float64 {
	return WrapAngle(math.Atan2(dir.X, dir.Z) * Rad2Deg)
}

// DirectionFromYaw is the inverse of YawFromDirection.
func DirectionFromYaw(yaw float64) Vec3 {
	r := yaw * Deg2Rad
	return Vec3{math.Sin(r), 0, math.Cos(r)}
}
