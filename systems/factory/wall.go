package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, box leveldata.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	var body *collision.Body
	if world := World(ecs); world != nil {
		body = world.Add(box.Bounds, wall, collision.TagSolid)
	} else {
		body = &collision.Body{Bounds: box.Bounds, Data: wall}
	}
	components.Body.SetValue(wall, components.BodyData{Body: body})

	return wall
}
