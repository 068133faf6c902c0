package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/automoto/thirdperson/shared/character"
	"gopkg.in/yaml.v3"
)

// File is the YAML overlay accepted by LoadFile. Sections left out of the
// file keep their current values.
type File struct {
	Window      *Config                  `yaml:"window"`
	Player      *PlayerConfig            `yaml:"player"`
	Gravity     *character.GravityConfig `yaml:"gravity"`
	Camera      *character.CameraConfig  `yaml:"camera"`
	Door        *character.DoorConfig    `yaml:"door"`
	Interaction *InteractionConfig       `yaml:"interaction"`
	Settings    *SettingsConfig          `yaml:"settings"`
	Level       *LevelConfig             `yaml:"level"`
	Simulation  *SimulationConfig        `yaml:"simulation"`
	Debug       *DebugConfig             `yaml:"debug"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
// Nothing is applied when the file fails to parse or validate.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the current configuration.
func Apply(data []byte) error {
	// Pre-fill with the current values so partial sections merge.
	c := *C
	player, gravity, camera, door := Player, Gravity, Camera, Door
	interaction, settings, level, simulation, debug := Interaction, Settings, Level, Simulation, Debug

	f := File{
		Window:      &c,
		Player:      &player,
		Gravity:     &gravity,
		Camera:      &camera,
		Door:        &door,
		Interaction: &interaction,
		Settings:    &settings,
		Level:       &level,
		Simulation:  &simulation,
		Debug:       &debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	C = f.Window
	Player, Gravity, Camera, Door = *f.Player, *f.Gravity, *f.Camera, *f.Door
	Interaction, Settings, Level, Simulation, Debug = *f.Interaction, *f.Settings, *f.Level, *f.Simulation, *f.Debug
	return nil
}

// Validate checks the values the controller cannot run with.
func (f *File) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	if p := f.Player; p != nil {
		l := p.Locomotion
		check(l.WalkSpeed >= 0 && l.RunSpeed >= 0, "player speeds must not be negative")
		check(l.JumpForce >= 0, "player jumpForce must not be negative, got %.2f", l.JumpForce)
		check(l.DeadZone >= 0 && l.DeadZone < 1, "player deadZone must be in [0, 1), got %.2f", l.DeadZone)
		check(l.Facing == character.FacingMovement || l.Facing == character.FacingCamera,
			"player facing must be %q or %q, got %q", character.FacingMovement, character.FacingCamera, l.Facing)
		check(l.Rotation == character.RotateLinear || l.Rotation == character.RotateSlerp,
			"player rotation must be %q or %q, got %q", character.RotateLinear, character.RotateSlerp, l.Rotation)
		check(l.AirControlFactor >= 0 && l.AirControlFactor <= 1, "player airControlFactor must be in [0, 1], got %.2f", l.AirControlFactor)
		check(p.Radius > 0 && p.Height > 2*p.Radius, "player capsule needs radius > 0 and height > 2*radius")
		check(p.Ground.GraceSteps >= 0, "player ground graceSteps must not be negative")
	}
	if g := f.Gravity; g != nil {
		check(g.Acceleration < 0, "gravity acceleration must be negative, got %.2f", g.Acceleration)
		check(g.GroundedVelocity <= 0, "gravity groundedVelocity must not be positive, got %.2f", g.GroundedVelocity)
		check(g.MaxVerticalSpeed >= 0, "gravity maxVerticalSpeed must not be negative")
	}
	if c := f.Camera; c != nil {
		check(c.Mode == character.CameraModeOrbit || c.Mode == character.CameraModeFollow,
			"camera mode must be %q or %q, got %q", character.CameraModeOrbit, character.CameraModeFollow, c.Mode)
		check(c.MinPitch <= c.MaxPitch, "camera minPitch (%.1f) > maxPitch (%.1f)", c.MinPitch, c.MaxPitch)
		check(c.FollowSmoothing > 0 && c.FollowSmoothing <= 1, "camera followSmoothing must be in (0, 1], got %.3f", c.FollowSmoothing)
		check(c.Distance > 0, "camera distance must be positive")
		check(c.MinDistanceToPlayer >= 0 && c.CollisionRadius >= 0 && c.CollisionBuffer >= 0,
			"camera collision values must not be negative")
	}
	if c, p := f.Camera, f.Player; c != nil && p != nil {
		// The sweep starts at the player and skips anything already
		// overlapping its sphere; the capsule keeps walls farther away.
		check(c.CollisionRadius < p.Radius, "camera collisionRadius (%.2f) must be below the player radius (%.2f)", c.CollisionRadius, p.Radius)
	}
	if d := f.Door; d != nil {
		check(d.OpenSpeed > 0, "door openSpeed must be positive, got %.2f", d.OpenSpeed)
		check(math.Abs(d.OpenAngle) < 180, "door openAngle must be within (-180, 180), got %.1f", d.OpenAngle)
	}
	if l := f.Level; l != nil {
		check(l.PixelsPerUnit > 0, "level pixelsPerUnit must be positive")
		check(l.CellSize > 0, "level cellSize must be positive")
		check(l.ZoneBlend >= 0, "level zoneBlend must not be negative")
	}
	if s := f.Simulation; s != nil {
		check(s.FixedStep > 0, "simulation fixedStep must be positive")
	}
	return errors.Join(errs...)
}
