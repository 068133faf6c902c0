package character

import (
	"math"
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) Report(_ string, err error) {
	r.errs = append(r.errs, err)
}

func neutralGravity() GravityConfig {
	return GravityConfig{Acceleration: -9.81, GroundedVelocity: -2, MaxVerticalSpeed: 50}
}

func TestGravityAirborneDecreasesByAcceleration(t *testing.T) {
	for _, weight := range []float64{0.5, 1, 2.5} {
		g := NewGravity(neutralGravity(), nil)
		dt := 0.016
		prev := g.Velocity().Y
		for i := 0; i < 20; i++ {
			v := g.Integrate(false, weight, dt)
			assert.Less(t, v, prev)
			assert.InDelta(t, -9.81*weight*dt, v-prev, 1e-9)
			prev = v
		}
	}
}

func TestGravityGroundedClampIsIdempotent(t *testing.T) {
	g := NewGravity(neutralGravity(), nil)
	g.SetVelocity(gamemath.V3(0, -15, 0))

	for i := 0; i < 10; i++ {
		assert.Equal(t, -2.0, g.Integrate(true, 1, 0.016))
	}

	require.True(t, g.Jump(7, true))
	assert.InDelta(t, 11.72, g.Velocity().Y, 0.01)
}

func TestGravityGroundedRisingIsIntegrated(t *testing.T) {
	g := NewGravity(neutralGravity(), nil)
	g.SetVelocity(gamemath.V3(0, 3, 0))
	assert.InDelta(t, 3-9.81*0.1, g.Integrate(true, 1, 0.1), 1e-9)
}

func TestGravityAsymmetricMultipliers(t *testing.T) {
	cfg := neutralGravity()
	cfg.Asymmetric = true
	cfg.FallMultiplier = 2.5
	cfg.LowJumpMultiplier = 2

	g := NewGravity(cfg, nil)
	g.SetVelocity(gamemath.V3(0, 5, 0))
	g.SetJumpHeld(true)
	assert.InDelta(t, 5-9.81*0.1, g.Integrate(false, 1, 0.1), 1e-9, "ascending while held is neutral")

	g.SetVelocity(gamemath.V3(0, 5, 0))
	g.SetJumpHeld(false)
	assert.InDelta(t, 5-9.81*2*0.1, g.Integrate(false, 1, 0.1), 1e-9, "short hop")

	g.SetVelocity(gamemath.V3(0, -1, 0))
	assert.InDelta(t, -1-9.81*2.5*0.1, g.Integrate(false, 1, 0.1), 1e-9, "fall")

	g.SetVelocity(gamemath.V3(0, -1, 0))
	assert.Equal(t, -2.0, g.Integrate(true, 1, 0.1), "grounded clamp wins")
}

func TestGravityJump(t *testing.T) {
	g := NewGravity(neutralGravity(), nil)
	assert.InDelta(t, 12.53, g.JumpImpulse(8), 0.01)

	assert.False(t, g.Jump(7, false))
	assert.Equal(t, 0.0, g.Velocity().Y)

	assert.True(t, g.Jump(7, true))
	assert.InDelta(t, math.Sqrt(7*2*9.81), g.Velocity().Y, 1e-9)
}

func TestGravityZeroStepIsNoop(t *testing.T) {
	g := NewGravity(neutralGravity(), nil)
	g.SetVelocity(gamemath.V3(0, 1, 0))
	assert.Equal(t, 1.0, g.Integrate(false, 1, 0))
	assert.Equal(t, 1.0, g.Integrate(false, 1, -1))
	assert.Equal(t, 1.0, g.Integrate(false, 1, math.NaN()))
}

func TestGravityAnomalyIsClampedAndReportedOnce(t *testing.T) {
	r := &recordingReporter{}
	g := NewGravity(neutralGravity(), r)

	g.SetVelocity(gamemath.V3(math.NaN(), math.Inf(-1), 0))
	v := g.Integrate(false, 1, 0.1)
	assert.True(t, gamemath.IsFinite(v))
	assert.InDelta(t, -0.981, v, 1e-9)
	assert.Equal(t, 0.0, g.Velocity().X)

	g.SetVelocity(gamemath.V3(0, -1000, 0))
	v = g.Integrate(false, 1, 0.1)
	assert.InDelta(t, -50-0.981, v, 1e-9)

	require.Len(t, r.errs, 1)
	assert.ErrorIs(t, r.errs[0], ErrPhysicsAnomaly)
}
