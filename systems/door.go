package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors advances every swinging door and moves its panel collider.
func UpdateDoors(e *ecs.ECS) {
	dt := StepDT(e)
	world := factory.World(e)
	components.Door.Each(e.World, func(entry *donburi.Entry) {
		door := components.Door.Get(entry)
		if !door.Door.Moving() {
			return
		}
		if door.Door.Update(dt) {
			log.Debug().Str("door", door.Name).Bool("open", door.Door.Open()).Msg("door finished moving")
		}
		if world != nil && door.Body != nil {
			world.SetBounds(door.Body, door.Door.Bounds())
		}
	})
}
