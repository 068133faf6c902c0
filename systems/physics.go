package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGround probes below every player. Must run BEFORE UpdateGravity and
// UpdateLocomotion so both see this step's contact.
func UpdateGround(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Grounded = player.Ground.ProbeFeet(player.Position())
	})
}

// UpdateGravity integrates vertical velocity. Must run BEFORE
// UpdateLocomotion: a jump impulse set this step moves the player unchanged
// and starts integrating on the next step.
func UpdateGravity(e *ecs.ECS) {
	jumpHeld := false
	if inputEntry, ok := components.Input.First(e.World); ok {
		jumpHeld = components.Input.Get(inputEntry).Frame.Jump.Pressed
	}

	dt := StepDT(e)
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Gravity.SetJumpHeld(jumpHeld)
		player.Gravity.Integrate(player.Grounded, player.WeightMultiplier, dt)
	})
}

// UpdateMovement displaces every player by its merged velocity.
func UpdateMovement(e *ecs.ECS) {
	dt := StepDT(e)
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		vy := player.Gravity.Velocity().Y
		player.LastMove = player.Mover.Move(player.Locomotion.Velocity(), vy, dt)

		// A head bump ends the ascent.
		if player.LastMove.HitCeiling && vy > 0 {
			player.Gravity.ResetVertical()
		}
	})
}
