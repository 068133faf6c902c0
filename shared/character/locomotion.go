package character

import (
	"strings"

	"github.com/automoto/thirdperson/shared/gamemath"
)

// FacingMode picks who drives the player's yaw.
type FacingMode string

const (
	// FacingMovement turns the player toward the camera-relative input
	// direction while there is input.
	FacingMovement FacingMode = "movement"
	// FacingCamera keeps turning the player toward the camera's forward,
	// with or without input.
	FacingCamera FacingMode = "camera"
)

// RotationMode picks how FacingMovement turns.
type RotationMode string

const (
	RotateLinear RotationMode = "linear"
	RotateSlerp  RotationMode = "slerp"
)

// MotionState is the locomotion state machine.
type MotionState int

const (
	GroundedIdle MotionState = iota
	GroundedMoving
	AirborneAscending
	AirborneDescending
)

func (s MotionState) Grounded() bool {
	return s == GroundedIdle || s == GroundedMoving
}

func (s MotionState) Airborne() bool {
	return !s.Grounded()
}

func (s MotionState) String() string {
	switch s {
	case GroundedIdle:
		return "grounded-idle"
	case GroundedMoving:
		return "grounded-moving"
	case AirborneAscending:
		return "airborne-ascending"
	case AirborneDescending:
		return "airborne-descending"
	}
	return "unknown"
}

// Event is a set of edge signals raised during one step.
type Event uint8

const (
	EventJumpStarted Event = 1 << iota
	EventLanded
	EventFallStarted
)

var eventNames = []struct {
	e    Event
	name string
}{
	{EventJumpStarted, "jump-started"},
	{EventLanded, "landed"},
	{EventFallStarted, "fall-started"},
}

func (e Event) Has(o Event) bool {
	return e&o != 0
}

// List splits the set into single events.
func (e Event) List() []Event {
	var out []Event
	for _, n := range eventNames {
		if e.Has(n.e) {
			out = append(out, n.e)
		}
	}
	return out
}

func (e Event) String() string {
	var names []string
	for _, n := range eventNames {
		if e.Has(n.e) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

type LocomotionConfig struct {
	WalkSpeed float64 `yaml:"walkSpeed"`
	RunSpeed  float64 `yaml:"runSpeed"`
	JumpForce float64 `yaml:"jumpForce"`
	DeadZone  float64 `yaml:"deadZone"`

	Facing            FacingMode   `yaml:"facing"`
	Rotation          RotationMode `yaml:"rotation"`
	RotationSpeed     float64      `yaml:"rotationSpeed"`     // degrees per second
	RotationSmoothing float64      `yaml:"rotationSmoothing"` // slerp fraction per second
	CameraFacingRate  float64      `yaml:"cameraFacingRate"`  // slerp fraction per second

	AirControl       bool    `yaml:"airControl"`
	AirControlFactor float64 `yaml:"airControlFactor"`
}

// LocomotionResult is the outcome of one locomotion step.
type LocomotionResult struct {
	Velocity gamemath.Vec3 // horizontal only
	Yaw      float64
	State    MotionState
	Events   Event

	Moving  bool
	Running bool
	Jumping bool
}

// Locomotion turns input and camera heading into horizontal velocity and
// facing, and coordinates jumps with the gravity integrator.
type Locomotion struct {
	cfg     LocomotionConfig
	gravity *Gravity
	ground  *GroundSensor

	velocity   gamemath.Vec3
	yaw        float64
	state      MotionState
	jumping    bool
	suggestion gamemath.Vec3
}

// NewLocomotion wires the controller. A nil gravity integrator leaves it
// inert; a nil ground sensor only disables the post-jump grace period.
func NewLocomotion(cfg LocomotionConfig, gravity *Gravity, ground *GroundSensor, r Reporter) *Locomotion {
	if gravity == nil {
		report(r, "locomotion", &ConfigurationError{Component: "locomotion", Collaborator: "gravity integrator"})
	}
	if cfg.DeadZone <= 0 {
		cfg.DeadZone = 0.1
	}
	return &Locomotion{
		cfg:        cfg,
		gravity:    gravity,
		ground:     ground,
		suggestion: gamemath.Forward,
	}
}

func (l *Locomotion) Config() LocomotionConfig { return l.cfg }
func (l *Locomotion) Yaw() float64             { return l.yaw }
func (l *Locomotion) State() MotionState       { return l.state }
func (l *Locomotion) Velocity() gamemath.Vec3  { return l.velocity }

func (l *Locomotion) SetYaw(yaw float64) {
	l.yaw = gamemath.WrapAngle(yaw)
}

// SetFacingMode switches the facing policy at runtime.
func (l *Locomotion) SetFacingMode(m FacingMode) {
	l.cfg.Facing = m
}

// SetFacingSuggestion stores the camera's flattened forward for the next
// step. Degenerate vectors are ignored.
func (l *Locomotion) SetFacingSuggestion(dir gamemath.Vec3) {
	flat := dir.Flatten()
	if !flat.IsFinite() || flat.Length() < 0.1 {
		return
	}
	l.suggestion = flat.Normalize()
}

func (l *Locomotion) result(events Event, moving, running bool) LocomotionResult {
	return LocomotionResult{
		Velocity: l.velocity,
		Yaw:      l.yaw,
		State:    l.state,
		Events:   events,
		Moving:   moving,
		Running:  running,
		Jumping:  l.jumping,
	}
}

// Step runs one locomotion update. grounded is this step's sensor reading.
func (l *Locomotion) Step(in InputFrame, cameraYaw float64, grounded bool, dt float64) LocomotionResult {
	if l.gravity == nil || !gamemath.ValidStep(dt) {
		return l.result(0, false, false)
	}
	if !gamemath.IsFinite(cameraYaw) {
		cameraYaw = 0
	}

	raw := gamemath.Vec3{X: in.Move.X, Z: in.Move.Y}
	moving := raw.IsFinite() && raw.Length() >= l.cfg.DeadZone
	target := l.yaw
	if moving {
		target = gamemath.WrapAngle(gamemath.YawFromDirection(raw.Normalize()) + cameraYaw)
	}

	l.turn(target, moving, dt)

	running := moving && in.Run.Pressed
	if moving {
		speed := l.cfg.WalkSpeed
		if running {
			speed = l.cfg.RunSpeed
		}
		if l.cfg.AirControl && !grounded {
			speed *= l.cfg.AirControlFactor
		}
		l.velocity = gamemath.DirectionFromYaw(target).Scale(speed)
	} else {
		l.velocity = gamemath.Vec3{}
	}

	var events Event
	jumped := false
	landingVy := l.gravity.Velocity().Y
	l.gravity.SetJumpHeld(in.Jump.Pressed)
	if in.Jump.JustPressed && grounded {
		jumped = l.gravity.Jump(l.cfg.JumpForce, grounded)
	}
	vy := l.gravity.Velocity().Y

	wasAirborne := l.state.Airborne()
	switch {
	case jumped:
		events |= EventJumpStarted
		if wasAirborne && landingVy <= 0 {
			events |= EventLanded
		}
		l.jumping = true
		l.state = AirborneAscending
		if l.ground != nil {
			l.ground.StartGrace()
		}
	case grounded && (!wasAirborne || vy <= 0):
		if wasAirborne {
			events |= EventLanded
			l.jumping = false
		}
		l.state = GroundedIdle
		if moving {
			l.state = GroundedMoving
		}
	default:
		if !wasAirborne && !grounded {
			events |= EventFallStarted
		}
		l.state = AirborneDescending
		if vy > 0 {
			l.state = AirborneAscending
		}
	}

	return l.result(events, moving, running)
}

func (l *Locomotion) turn(target float64, moving bool, dt float64) {
	switch l.cfg.Facing {
	case FacingCamera:
		want := gamemath.YawFromDirection(l.suggestion)
		t := gamemath.Clamp01(l.cfg.CameraFacingRate * dt)
		l.yaw = gamemath.WrapAngle(gamemath.Slerp(gamemath.FromYaw(l.yaw), gamemath.FromYaw(want), t).Yaw())
	default:
		if !moving {
			return
		}
		if l.cfg.Rotation == RotateSlerp {
			t := gamemath.Clamp01(l.cfg.RotationSmoothing * dt)
			l.yaw = gamemath.WrapAngle(gamemath.Slerp(gamemath.FromYaw(l.yaw), gamemath.FromYaw(target), t).Yaw())
			return
		}
		l.yaw = gamemath.WrapAngle(gamemath.MoveTowardsAngle(l.yaw, target, l.cfg.RotationSpeed*dt))
	}
}
