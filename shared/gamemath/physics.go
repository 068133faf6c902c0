package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidStep reports whether dt can advance a simulation step.
// Zero, negative and non-finite steps are treated as "no step".
func ValidStep(dt float64) bool {
	return dt > 0 && IsFinite(dt)
}

// JumpImpulse returns the launch speed needed to reach height under gravity
// (gravity is negative for a downward pull). Returns 0 when no real solution exists.
func JumpImpulse(height, gravity float64) float64 {
	v := height * -2 * gravity
	if v <= 0 || !IsFinite(v) {
		return 0
	}
	return math.Sqrt(v)
}
