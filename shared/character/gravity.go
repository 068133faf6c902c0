package character

import (
	"fmt"
	"math"

	"github.com/automoto/thirdperson/shared/gamemath"
)

// GravityConfig tunes the vertical integrator. Acceleration is negative for
// a downward pull.
type GravityConfig struct {
	Acceleration     float64 `yaml:"acceleration"`
	GroundedVelocity float64 `yaml:"groundedVelocity"`
	MaxVerticalSpeed float64 `yaml:"maxVerticalSpeed"`

	// Asymmetric enables the short-hop and snappy-fall multipliers.
	Asymmetric        bool    `yaml:"asymmetric"`
	FallMultiplier    float64 `yaml:"fallMultiplier"`
	LowJumpMultiplier float64 `yaml:"lowJumpMultiplier"`
}

// Gravity owns the character's vertical velocity. The horizontal part of the
// stored velocity is only carried so a caller can inject a full impulse.
type Gravity struct {
	cfg      GravityConfig
	velocity gamemath.Vec3
	jumpHeld bool

	reporter Reporter
	anomaly  bool
}

func NewGravity(cfg GravityConfig, r Reporter) *Gravity {
	return &Gravity{cfg: cfg, reporter: r}
}

func (g *Gravity) Config() GravityConfig {
	return g.cfg
}

// Integrate advances the vertical velocity by one step and returns it.
// Exactly one rule applies: the grounded clamp, or acceleration scaled by the
// neutral, low-jump or fall multiplier. A non-positive dt changes nothing.
func (g *Gravity) Integrate(grounded bool, weightMultiplier, dt float64) float64 {
	if !gamemath.ValidStep(dt) {
		return g.velocity.Y
	}
	g.sanitize()
	if !gamemath.IsFinite(weightMultiplier) {
		weightMultiplier = 1
	}

	if grounded && g.velocity.Y < 0 {
		g.velocity.Y = g.cfg.GroundedVelocity
		return g.velocity.Y
	}

	g.velocity.Y += g.cfg.Acceleration * weightMultiplier * g.multiplier() * dt
	return g.velocity.Y
}

func (g *Gravity) multiplier() float64 {
	if !g.cfg.Asymmetric {
		return 1
	}
	switch {
	case g.velocity.Y > 0 && !g.jumpHeld:
		return g.cfg.LowJumpMultiplier
	case g.velocity.Y < 0:
		return g.cfg.FallMultiplier
	}
	return 1
}

// sanitize resets non-finite components and caps the vertical speed.
func (g *Gravity) sanitize() {
	v := g.velocity
	if !v.IsFinite() {
		g.reportAnomaly(fmt.Errorf("%w: non-finite velocity %v", ErrPhysicsAnomaly, v))
		if !gamemath.IsFinite(v.X) {
			v.X = 0
		}
		if !gamemath.IsFinite(v.Y) {
			v.Y = 0
		}
		if !gamemath.IsFinite(v.Z) {
			v.Z = 0
		}
	}
	if max := g.cfg.MaxVerticalSpeed; max > 0 && math.Abs(v.Y) > max {
		g.reportAnomaly(fmt.Errorf("%w: vertical speed %.2f over %.2f", ErrPhysicsAnomaly, v.Y, max))
		v.Y = gamemath.ClampSpeed(v.Y, max)
	}
	g.velocity = v
}

func (g *Gravity) reportAnomaly(err error) {
	if g.anomaly {
		return
	}
	g.anomaly = true
	report(g.reporter, "gravity", err)
}

func (g *Gravity) Velocity() gamemath.Vec3 {
	return g.velocity
}

func (g *Gravity) SetVelocity(v gamemath.Vec3) {
	g.velocity = v
}

// ResetVertical zeroes the vertical velocity.
func (g *Gravity) ResetVertical() {
	g.velocity.Y = 0
}

// SetJumpHeld feeds the low-jump multiplier.
func (g *Gravity) SetJumpHeld(held bool) {
	g.jumpHeld = held
}

// JumpImpulse is the launch speed needed to reach jumpForce units of height.
func (g *Gravity) JumpImpulse(jumpForce float64) float64 {
	return gamemath.JumpImpulse(jumpForce, g.cfg.Acceleration)
}

// Jump sets the vertical velocity to the launch impulse. It only works while
// grounded.
func (g *Gravity) Jump(jumpForce float64, grounded bool) bool {
	if !grounded {
		return false
	}
	impulse := g.JumpImpulse(jumpForce)
	if impulse <= 0 {
		return false
	}
	g.velocity.Y = impulse
	return true
}
