package character

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/gamemath"
)

// Displacer moves the character's collision volume through the world.
type Displacer interface {
	Displace(velocity gamemath.Vec3, dt float64) collision.MoveResult
}

// Mover merges the horizontal and vertical velocities and applies them in a
// single displacement.
type Mover struct {
	body Displacer
}

func NewMover(body Displacer, r Reporter) *Mover {
	if body == nil {
		report(r, "mover", &ConfigurationError{Component: "mover", Collaborator: "displacer"})
	}
	return &Mover{body: body}
}

func (m *Mover) Move(horizontal gamemath.Vec3, verticalY, dt float64) collision.MoveResult {
	if m.body == nil || !gamemath.ValidStep(dt) {
		return collision.MoveResult{}
	}
	v := gamemath.Vec3{X: horizontal.X, Y: verticalY, Z: horizontal.Z}
	if !v.IsFinite() {
		return collision.MoveResult{}
	}
	return m.body.Displace(v, dt)
}
