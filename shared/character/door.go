package character

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	PromptOpenDoor  = "Open Door"
	PromptCloseDoor = "Close Door"
)

// Interactable is implemented by world objects the player can use.
// Interact reports whether the call had an effect; Prompt is the text to
// show while the object is targeted, empty when it cannot be used.
type Interactable interface {
	Interact() bool
	Prompt() string
}

type DoorConfig struct {
	OpenAngle float64 `yaml:"openAngle"` // degrees added to the closed yaw
	OpenSpeed float64 `yaml:"openSpeed"` // progress per second

	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Thickness float64 `yaml:"thickness"`
}

// Door swings a panel around a vertical hinge between its closed yaw and
// closed yaw + OpenAngle, along the shorter arc, so |OpenAngle| must stay
// below 180. Each toggle runs a 0..1 progress ramp advanced by dt*OpenSpeed.
type Door struct {
	cfg       DoorConfig
	hinge     gamemath.Vec3
	closedYaw float64

	open     bool
	moving   bool
	from, to float64
	progress float64
	ramp     *gween.Tween
}

func NewDoor(hinge gamemath.Vec3, closedYaw float64, cfg DoorConfig) *Door {
	return &Door{
		cfg:       cfg,
		hinge:     hinge,
		closedYaw: closedYaw,
		from:      closedYaw,
		to:        closedYaw,
		progress:  1,
	}
}

// Interact starts a toggle. It is ignored while the door is still moving.
func (d *Door) Interact() bool {
	if d.moving {
		return false
	}
	d.from = d.Yaw()
	if d.open {
		d.to = d.closedYaw
	} else {
		d.to = gamemath.WrapAngle(d.closedYaw + d.cfg.OpenAngle)
	}
	d.open = !d.open
	d.moving = true
	d.progress = 0
	d.ramp = gween.New(0, 1, 1, ease.Linear)
	return true
}

// Update advances the swing and reports true on the step it completes.
func (d *Door) Update(dt float64) bool {
	if !d.moving || !gamemath.ValidStep(dt) {
		return false
	}
	speed := d.cfg.OpenSpeed
	if speed <= 0 {
		speed = 1
	}
	current, finished := d.ramp.Update(float32(dt * speed))
	p := gamemath.Clamp01(float64(current))
	if p > d.progress {
		d.progress = p
	}
	if finished || d.progress >= 1 {
		d.progress = 1
		d.moving = false
		d.ramp = nil
		return true
	}
	return false
}

func (d *Door) Prompt() string {
	if d.moving {
		return ""
	}
	if d.open {
		return PromptCloseDoor
	}
	return PromptOpenDoor
}

func (d *Door) Open() bool           { return d.open }
func (d *Door) Moving() bool         { return d.moving }
func (d *Door) Progress() float64    { return d.progress }
func (d *Door) Hinge() gamemath.Vec3 { return d.hinge }

// Yaw is the current panel heading in degrees.
func (d *Door) Yaw() float64 {
	return gamemath.LerpAngle(d.from, d.to, d.progress)
}

// Bounds is the world box enclosing the panel at its current angle.
func (d *Door) Bounds() gamemath.AABB {
	yaw := d.Yaw()
	along := gamemath.DirectionFromYaw(yaw + 90).Scale(d.cfg.Width)
	half := gamemath.DirectionFromYaw(yaw).Scale(d.cfg.Thickness / 2)
	tip := d.hinge.Add(along)

	b := gamemath.BoundingPoints(d.hinge.Add(half), d.hinge.Sub(half), tip.Add(half), tip.Sub(half))
	b.Min.Y = d.hinge.Y
	b.Max.Y = d.hinge.Y + d.cfg.Height
	return b
}
