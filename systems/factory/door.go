package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor creates a closed door whose panel blocks movement and answers
// the interaction ray.
func CreateDoor(ecs *ecs.ECS, spawn leveldata.DoorSpawn) *donburi.Entry {
	entry := archetypes.Door.Spawn(ecs)

	door := character.NewDoor(spawn.Hinge, spawn.Yaw, cfg.Door)
	var body *collision.Body
	if world := World(ecs); world != nil {
		body = world.Add(door.Bounds(), entry, collision.TagSolid, collision.TagInteractable)
	}
	components.Door.SetValue(entry, components.DoorData{
		Name: spawn.Name,
		Door: door,
		Body: body,
	})

	return entry
}
