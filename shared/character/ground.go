package character

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/gamemath"
)

// RayCaster is the world query used by the ground sensor and the
// interaction detector.
type RayCaster interface {
	Raycast(origin, dir gamemath.Vec3, maxDistance float64) (collision.Hit, bool)
}

type GroundConfig struct {
	// ProbeOffset lifts the ray origin above the feet so a capsule resting
	// on the floor still starts outside it.
	ProbeOffset   float64 `yaml:"probeOffset"`
	ProbeDistance float64 `yaml:"probeDistance"`
	// GraceSteps forces airborne for this many probes after a jump.
	GraceSteps int `yaml:"graceSteps"`
}

// GroundSensor decides whether the character stands on something.
type GroundSensor struct {
	cfg    GroundConfig
	caster RayCaster
	grace  int

	grounded bool
	hit      collision.Hit
}

// NewGroundSensor builds a sensor. Without a caster it reports a
// ConfigurationError and never detects ground.
func NewGroundSensor(caster RayCaster, cfg GroundConfig, r Reporter) *GroundSensor {
	if caster == nil {
		report(r, "ground sensor", &ConfigurationError{Component: "ground sensor", Collaborator: "ray caster"})
	}
	return &GroundSensor{cfg: cfg, caster: caster}
}

// Probe casts down from origin and reports a hit within maxDistance. While
// a grace period runs it returns false and counts the period down.
func (s *GroundSensor) Probe(origin gamemath.Vec3, maxDistance float64) bool {
	s.grounded = false
	if s.grace > 0 {
		s.grace--
		return false
	}
	if s.caster == nil || maxDistance <= 0 || !origin.IsFinite() {
		return false
	}
	hit, ok := s.caster.Raycast(origin, gamemath.Down, maxDistance)
	if !ok {
		return false
	}
	s.hit = hit
	s.grounded = true
	return true
}

// ProbeFeet probes from just above the feet using the configured distances.
func (s *GroundSensor) ProbeFeet(feet gamemath.Vec3) bool {
	origin := feet.Add(gamemath.Up.Scale(s.cfg.ProbeOffset))
	return s.Probe(origin, s.cfg.ProbeOffset+s.cfg.ProbeDistance)
}

// SuppressFor starts a grace period of the given number of probes.
func (s *GroundSensor) SuppressFor(steps int) {
	if steps > s.grace {
		s.grace = steps
	}
}

// StartGrace suppresses grounding for the configured number of steps.
func (s *GroundSensor) StartGrace() {
	s.SuppressFor(s.cfg.GraceSteps)
}

func (s *GroundSensor) Suppressed() bool {
	return s.grace > 0
}

func (s *GroundSensor) Grounded() bool {
	return s.grounded
}

// Hit is the last ground contact. Only meaningful while Grounded.
func (s *GroundSensor) Hit() collision.Hit {
	return s.hit
}
