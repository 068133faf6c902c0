package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpImpulse(t *testing.T) {
	tests := []struct {
		height, gravity, want float64
	}{
		{8, -9.81, 12.528},
		{7, -9.81, 11.719},
		{0, -9.81, 0},
		{2, 9.81, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, JumpImpulse(tt.height, tt.gravity), 1e-3, "height %v gravity %v", tt.height, tt.gravity)
	}
}

func TestValidStep(t *testing.T) {
	assert.True(t, ValidStep(0.016))
	assert.False(t, ValidStep(0))
	assert.False(t, ValidStep(-0.016))
	assert.False(t, ValidStep(math.NaN()))
	assert.False(t, ValidStep(math.Inf(1)))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, 350, WrapAngle(-10), 1e-9)
	assert.InDelta(t, 10, WrapAngle(730), 1e-9)
	assert.InDelta(t, 0, WrapAngle(360), 1e-9)

	assert.InDelta(t, 20, DeltaAngle(350, 10), 1e-9)
	assert.InDelta(t, -20, DeltaAngle(10, 350), 1e-9)
	assert.InDelta(t, 180, DeltaAngle(0, 180), 1e-9)

	assert.InDelta(t, 355, MoveTowardsAngle(5, 300, 10), 1e-9)
	assert.InDelta(t, 300, MoveTowardsAngle(295, 300, 10), 1e-9)

	assert.InDelta(t, 0, YawFromDirection(Forward), 1e-9)
	assert.InDelta(t, 90, YawFromDirection(Right), 1e-9)
	assert.InDelta(t, 270, YawFromDirection(V3(-1, 0, 0)), 1e-9)

	d := DirectionFromYaw(90)
	assert.InDelta(t, 1, d.X, 1e-9)
	assert.InDelta(t, 0, d.Z, 1e-9)
}

func TestVecNormalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	assert.InDelta(t, 1, n.Length(), Epsilon)
	assert.True(t, V3(1e-9, 0, 0).Normalize().IsZero())
	assert.Equal(t, V3(1, 0, 3), V3(1, 2, 3).Flatten())
}

func TestQuatConventions(t *testing.T) {
	fwd := FromYaw(90).Forward()
	assert.InDelta(t, 1, fwd.X, 1e-9)
	assert.InDelta(t, 0, fwd.Z, 1e-9)

	// Positive pitch looks down.
	down := Euler(30, 0, 0).Forward()
	assert.Less(t, down.Y, 0.0)

	dir := V3(1, -1, 1).Normalize()
	look := LookRotation(dir).Forward()
	assert.InDelta(t, dir.X, look.X, 1e-9)
	assert.InDelta(t, dir.Y, look.Y, 1e-9)
	assert.InDelta(t, dir.Z, look.Z, 1e-9)

	assert.InDelta(t, 45, FromYaw(45).Yaw(), 1e-9)
}

func TestEulerComposesYawPitchRoll(t *testing.T) {
	for _, angles := range [][3]float64{{30, 45, 0}, {-20, 300, 10}, {80, 170, -35}} {
		pitch, yaw, roll := angles[0], angles[1], angles[2]
		want := AxisAngle(Up, yaw).Mul(AxisAngle(Right, pitch)).Mul(AxisAngle(Forward, roll))
		got := Euler(pitch, yaw, roll)
		assert.InDelta(t, 1, math.Abs(got.Dot(want)), 1e-9, "angles %v", angles)

		v := V3(0.3, -0.2, 1)
		a, b := got.Rotate(v), want.Rotate(v)
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.Y, b.Y, 1e-9)
		assert.InDelta(t, a.Z, b.Z, 1e-9)
	}
}

func TestSlerp(t *testing.T) {
	a := FromYaw(0)
	b := FromYaw(90)
	assert.InDelta(t, 45, Slerp(a, b, 0.5).Yaw(), 1e-6)
	assert.InDelta(t, 0, Slerp(a, b, -1).Yaw(), 1e-6)
	assert.InDelta(t, 90, Slerp(a, b, 2).Yaw(), 1e-6)

	// Shortest arc across the wrap point.
	mid := Slerp(FromYaw(350), FromYaw(10), 0.5).Yaw()
	assert.InDelta(t, 0, DeltaAngle(0, mid), 1e-6)
}

func TestRayIntersect(t *testing.T) {
	box := AABB{Min: V3(-1, 0, 4), Max: V3(1, 2, 6)}

	d, n, ok := box.RayIntersect(V3(0, 1, 0), Forward, 10)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-9)
	assert.Equal(t, V3(0, 0, -1), n)

	_, _, ok = box.RayIntersect(V3(0, 1, 0), Forward, 3)
	assert.False(t, ok, "out of range")

	_, _, ok = box.RayIntersect(V3(0, 1, 0), V3(0, 0, -1), 10)
	assert.False(t, ok, "pointing away")

	_, _, ok = box.RayIntersect(V3(0, 1, 5), Forward, 10)
	assert.False(t, ok, "starting inside")

	d, n, ok = box.RayIntersect(V3(0, 5, 5), Down, 10)
	require.True(t, ok)
	assert.InDelta(t, 3, d, 1e-9)
	assert.Equal(t, Up, n)
}

func TestBoundingPoints(t *testing.T) {
	b := BoundingPoints(V3(1, 2, 3), V3(-1, 5, 0), V3(0, 0, 7))
	assert.Equal(t, V3(-1, 0, 0), b.Min)
	assert.Equal(t, V3(1, 5, 7), b.Max)
	assert.True(t, b.Contains(V3(0, 1, 1)))
	assert.False(t, b.Contains(V3(1, 1, 1)), "boundary is outside")
}
