package character

import (
	"math"

	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/gamemath"
)

// SphereCaster is the world query used for camera occlusion.
type SphereCaster interface {
	SphereCast(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDistance float64) (collision.Hit, bool)
}

// CameraMode selects the camera rig.
type CameraMode string

const (
	// CameraModeOrbit orbits the player from mouse input and avoids walls.
	CameraModeOrbit CameraMode = "orbit"
	// CameraModeFollow trails the player at a fixed world offset.
	CameraModeFollow CameraMode = "follow"
)

type CameraConfig struct {
	Mode     CameraMode    `yaml:"mode"`
	Distance float64       `yaml:"distance"`
	Height   float64       `yaml:"height"`
	Offset   gamemath.Vec3 `yaml:"offset"`

	// FollowSmoothing is the per-step lerp factor of the idle follow.
	FollowSmoothing float64 `yaml:"followSmoothing"`

	CollisionRadius         float64 `yaml:"collisionRadius"`
	CollisionBuffer         float64 `yaml:"collisionBuffer"`
	CollisionSmoothingSpeed float64 `yaml:"collisionSmoothingSpeed"` // per second
	MinDistanceToPlayer     float64 `yaml:"minDistanceToPlayer"`
	MinCameraHeightOffset   float64 `yaml:"minCameraHeightOffset"`

	MinPitch float64 `yaml:"minPitch"`
	MaxPitch float64 `yaml:"maxPitch"`

	SensitivityX float64 `yaml:"sensitivityX"`
	SensitivityY float64 `yaml:"sensitivityY"`
}

// CameraPlacement is the camera position state of one step. Only Smoothed
// carries over to the next step.
type CameraPlacement struct {
	Smoothed gamemath.Vec3
	Desired  gamemath.Vec3
	Adjusted gamemath.Vec3
	Collided bool
}

type CameraTransform struct {
	Position gamemath.Vec3
	Rotation gamemath.Quat
	Target   gamemath.Vec3
}

// Forward is the viewing direction.
func (t CameraTransform) Forward() gamemath.Vec3 {
	return t.Rotation.Forward()
}

// OrbitCamera owns the camera orientation and placement.
type OrbitCamera struct {
	cfg    CameraConfig
	caster SphereCaster

	yaw   float64
	pitch float64

	placement  CameraPlacement
	transform  CameraTransform
	suggestion gamemath.Vec3
	placed     bool
}

// NewOrbitCamera builds a camera. Without a sphere caster it still follows
// the player but never avoids walls.
func NewOrbitCamera(cfg CameraConfig, caster SphereCaster, r Reporter) *OrbitCamera {
	if caster == nil {
		report(r, "orbit camera", &ConfigurationError{Component: "orbit camera", Collaborator: "sphere caster"})
	}
	if cfg.MinPitch > cfg.MaxPitch {
		cfg.MinPitch, cfg.MaxPitch = cfg.MaxPitch, cfg.MinPitch
	}
	if cfg.Mode == "" {
		cfg.Mode = CameraModeOrbit
	}
	c := &OrbitCamera{
		cfg:        cfg,
		caster:     caster,
		suggestion: gamemath.Forward,
		transform:  CameraTransform{Rotation: gamemath.Identity},
	}
	c.pitch = gamemath.Clamp(0, cfg.MinPitch, cfg.MaxPitch)
	return c
}

func (c *OrbitCamera) Config() CameraConfig { return c.cfg }
func (c *OrbitCamera) Yaw() float64         { return c.yaw }
func (c *OrbitCamera) Pitch() float64       { return c.pitch }

func (c *OrbitCamera) Placement() CameraPlacement { return c.placement }
func (c *OrbitCamera) Transform() CameraTransform { return c.transform }
func (c *OrbitCamera) Mode() CameraMode           { return c.cfg.Mode }

func (c *OrbitCamera) SetMode(m CameraMode) {
	c.cfg.Mode = m
}

// SetOrientation places the orbit directly, e.g. behind a spawn point.
func (c *OrbitCamera) SetOrientation(yaw, pitch float64) {
	c.yaw = gamemath.WrapAngle(yaw)
	c.pitch = gamemath.Clamp(pitch, c.cfg.MinPitch, c.cfg.MaxPitch)
}

// Sensitivity returns the horizontal and vertical mouse sensitivity.
func (c *OrbitCamera) Sensitivity() gamemath.Vec2 {
	return gamemath.Vec2{X: c.cfg.SensitivityX, Y: c.cfg.SensitivityY}
}

func (c *OrbitCamera) SetSensitivity(x, y float64) {
	if gamemath.IsFinite(x) && x >= 0 {
		c.cfg.SensitivityX = x
	}
	if gamemath.IsFinite(y) && y >= 0 {
		c.cfg.SensitivityY = y
	}
}

// Heading is the yaw movement input is measured against.
func (c *OrbitCamera) Heading() float64 {
	if c.cfg.Mode == CameraModeFollow {
		return gamemath.YawFromDirection(c.suggestion)
	}
	return c.yaw
}

// Rotate accumulates a mouse delta. Moving the mouse up lowers the pitch.
func (c *OrbitCamera) Rotate(delta gamemath.Vec2, dt float64) {
	if !gamemath.ValidStep(dt) || !delta.IsFinite() || c.cfg.Mode == CameraModeFollow {
		return
	}
	c.yaw = gamemath.WrapAngle(c.yaw + delta.X*c.cfg.SensitivityX*dt)
	c.pitch = gamemath.Clamp(c.pitch-delta.Y*c.cfg.SensitivityY*dt, c.cfg.MinPitch, c.cfg.MaxPitch)
}

// Desired is the unobstructed camera position for a player position.
func (c *OrbitCamera) Desired(player gamemath.Vec3) gamemath.Vec3 {
	arm := gamemath.V3(0, c.cfg.Height, -c.cfg.Distance)
	if c.cfg.Mode == CameraModeFollow {
		return player.Add(arm).Add(c.cfg.Offset)
	}
	rot := gamemath.Euler(c.pitch, c.yaw, 0)
	return player.Add(rot.Rotate(arm)).Add(c.cfg.Offset)
}

// Follow places the camera for the post-move player position.
func (c *OrbitCamera) Follow(player gamemath.Vec3, feetY, dt float64) CameraPlacement {
	if !gamemath.ValidStep(dt) || !player.IsFinite() || !gamemath.IsFinite(feetY) {
		return c.placement
	}

	desired := c.Desired(player)
	p := CameraPlacement{Desired: desired, Adjusted: desired}
	prev := c.placement.Smoothed

	var hit collision.Hit
	if c.cfg.Mode == CameraModeOrbit {
		hit, p.Collided = c.sweep(player, desired)
	}

	toCamera := desired.Sub(player).Normalize()
	minY := feetY + c.cfg.MinCameraHeightOffset

	switch {
	case p.Collided:
		p.Adjusted = hit.Point.Add(hit.Normal.Scale(c.cfg.CollisionBuffer))
		p.Adjusted = c.enforceFloors(p.Adjusted, player, minY, toCamera)
		if !c.placed {
			p.Smoothed = p.Adjusted
		} else {
			p.Smoothed = prev.Lerp(p.Adjusted, gamemath.Clamp01(c.cfg.CollisionSmoothingSpeed*dt))
		}
		p.Smoothed = c.enforceFloors(p.Smoothed, player, minY, toCamera)
	default:
		if p.Adjusted.Y < minY {
			p.Adjusted.Y = minY
		}
		if !c.placed {
			p.Smoothed = p.Adjusted
		} else {
			p.Smoothed = prev.Lerp(p.Adjusted, gamemath.Clamp01(c.cfg.FollowSmoothing))
		}
		if p.Smoothed.Y < minY {
			p.Smoothed.Y = minY
		}
	}

	if !p.Smoothed.IsFinite() {
		p.Smoothed = p.Adjusted
	}
	c.placement = p
	c.placed = true
	c.orient(player)
	return p
}

func (c *OrbitCamera) sweep(player, desired gamemath.Vec3) (collision.Hit, bool) {
	if c.caster == nil {
		return collision.Hit{}, false
	}
	toCamera := desired.Sub(player)
	dist := toCamera.Length()
	if dist < gamemath.Epsilon {
		return collision.Hit{}, false
	}
	return c.caster.SphereCast(player, c.cfg.CollisionRadius, toCamera.Scale(1/dist), dist)
}

// enforceFloors keeps p above minY and at least MinDistanceToPlayer away
// from the player. When raising p to minY brings it back inside the minimum
// distance, the horizontal offset is stretched instead.
func (c *OrbitCamera) enforceFloors(p, player gamemath.Vec3, minY float64, toCamera gamemath.Vec3) gamemath.Vec3 {
	minDist := c.cfg.MinDistanceToPlayer
	if p.Y < minY {
		p.Y = minY
	}
	if minDist <= 0 {
		return p
	}

	off := p.Sub(player)
	if off.Length() < minDist {
		dir := off.Normalize()
		if dir.IsZero() {
			dir = toCamera
		}
		if dir.IsZero() {
			dir = gamemath.DirectionFromYaw(c.yaw).Scale(-1)
		}
		p = player.Add(dir.Scale(minDist))
	}

	if p.Y < minY {
		p.Y = minY
		off = p.Sub(player)
		if off.Length() < minDist {
			dy := off.Y
			flat := off.Flatten().Normalize()
			if flat.IsZero() {
				flat = toCamera.Flatten().Normalize()
			}
			if flat.IsZero() {
				flat = gamemath.DirectionFromYaw(c.yaw).Scale(-1)
			}
			reach := math.Sqrt(math.Max(0, minDist*minDist-dy*dy))
			p = gamemath.Vec3{X: player.X + flat.X*reach, Y: p.Y, Z: player.Z + flat.Z*reach}
		}
	}
	return p
}

func (c *OrbitCamera) orient(player gamemath.Vec3) {
	target := player.Add(gamemath.Up.Scale(c.cfg.Height))
	pos := c.placement.Smoothed
	look := target.Sub(pos)

	rot := gamemath.Euler(c.pitch, c.yaw, 0)
	if look.Length() > gamemath.Epsilon {
		rot = gamemath.LookRotation(look.Normalize())
	}
	c.transform = CameraTransform{Position: pos, Rotation: rot, Target: target}

	flat := rot.Forward().Flatten()
	if flat.Length() >= 0.1 {
		c.suggestion = flat.Normalize()
	}
}

// FacingSuggestion is the camera's flattened, normalized forward.
func (c *OrbitCamera) FacingSuggestion() gamemath.Vec3 {
	return c.suggestion
}

// Step rotates from the mouse delta, then follows the player.
func (c *OrbitCamera) Step(player gamemath.Vec3, feetY float64, mouseDelta gamemath.Vec2, dt float64) (CameraTransform, gamemath.Vec3) {
	c.Rotate(mouseDelta, dt)
	c.Follow(player, feetY, dt)
	return c.transform, c.suggestion
}
