package collision

import (
	"github.com/automoto/thirdperson/shared/gamemath"
)

// skin keeps a resolved body a hair away from the surface it was pushed out of,
// so the next step does not start in contact.
const skin = 0.001

// Capsule is the character volume, approximated by an upright box of the
// capsule's radius and height. Position is the bottom centre (the feet).
type Capsule struct {
	Position gamemath.Vec3
	Radius   float64
	Height   float64
}

// Bounds returns the box the capsule occupies.
func (c Capsule) Bounds() gamemath.AABB {
	return gamemath.AABB{
		Min: gamemath.Vec3{X: c.Position.X - c.Radius, Y: c.Position.Y, Z: c.Position.Z - c.Radius},
		Max: gamemath.Vec3{X: c.Position.X + c.Radius, Y: c.Position.Y + c.Height, Z: c.Position.Z + c.Radius},
	}
}

// extents returns how far the box reaches below and above Position along axis.
func (c Capsule) extents(axis int) (lo, hi float64) {
	if axis == 1 {
		return 0, c.Height
	}
	return -c.Radius, c.Radius
}

// MoveResult reports where a displacement ended and what it touched.
type MoveResult struct {
	Position     gamemath.Vec3
	Displacement gamemath.Vec3
	Grounded     bool
	HitCeiling   bool
	HitWall      bool
}

// moveOrder resolves horizontal motion before vertical motion.
var moveOrder = [3]int{0, 2, 1}

// MoveCapsule displaces c by delta one axis at a time, stopping it at the
// first solid face met on each axis. Each axis checks the whole span it
// travels, so fast bodies do not tunnel through thin boxes. Boxes the
// capsule already overlapped before moving are ignored so an embedded body
// can walk out.
func (w *World) MoveCapsule(c *Capsule, delta gamemath.Vec3) MoveResult {
	start := c.Position
	res := MoveResult{Position: start}
	if !delta.IsFinite() {
		return res
	}

	for _, axis := range moveOrder {
		d := delta.Component(axis)
		if d == 0 {
			continue
		}

		before := c.Bounds()
		pos := c.Position.Component(axis) + d
		c.Position = c.Position.WithComponent(axis, pos)
		after := c.Bounds()

		lo, hi := c.extents(axis)
		limit := pos
		blocked := false
		for _, b := range w.Query(before.Union(after), TagSolid) {
			if b.Bounds.Overlaps(before) {
				continue
			}
			if d > 0 {
				if stop := b.Bounds.Min.Component(axis) - hi - skin; stop < limit {
					limit = stop
					blocked = true
				}
			} else {
				if stop := b.Bounds.Max.Component(axis) - lo + skin; stop > limit {
					limit = stop
					blocked = true
				}
			}
		}
		if !blocked {
			continue
		}

		c.Position = c.Position.WithComponent(axis, limit)
		switch {
		case axis == 1 && d < 0:
			res.Grounded = true
		case axis == 1:
			res.HitCeiling = true
		default:
			res.HitWall = true
		}
	}

	res.Position = c.Position
	res.Displacement = c.Position.Sub(start)
	return res
}

// CharacterBody binds a capsule to the world it moves through.
type CharacterBody struct {
	World   *World
	Capsule Capsule
}

// Displace moves the capsule by velocity*dt. Without a world, or for an
// empty step, the body stays put.
func (b *CharacterBody) Displace(velocity gamemath.Vec3, dt float64) MoveResult {
	if b == nil {
		return MoveResult{}
	}
	if b.World == nil || !gamemath.ValidStep(dt) {
		return MoveResult{Position: b.Capsule.Position}
	}
	return b.World.MoveCapsule(&b.Capsule, velocity.Scale(dt))
}

// Position returns the capsule feet position.
func (b *CharacterBody) Position() gamemath.Vec3 {
	return b.Capsule.Position
}
