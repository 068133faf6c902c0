package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion turns the input frame into horizontal velocity, facing,
// jumps and the motion state.
func UpdateLocomotion(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	cameraYaw := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cameraYaw = CameraYaw(components.Camera.Get(cameraEntry))
	}

	dt := StepDT(e)
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Last = player.Locomotion.Step(input.Frame, cameraYaw, player.Grounded, dt)

		if player.Last.Events != 0 {
			log.Debug().
				Stringer("events", player.Last.Events).
				Stringer("state", player.Last.State).
				Msg("motion event")
		}
	})
}
