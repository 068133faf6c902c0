package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin pads the broadphase past the level edges, in world units.
const spaceMargin = 4

// CreateSpace creates the collision world covering the level footprint.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := collision.NewWorld(
		gamemath.Vec2{X: -spaceMargin, Y: -spaceMargin},
		level.Width+2*spaceMargin,
		level.Depth+2*spaceMargin,
		cellSize,
	)
	components.Space.SetValue(space, components.SpaceData{World: world})
	return space
}

// World returns the collision world, or nil before CreateSpace ran.
func World(ecs *ecs.ECS) *collision.World {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}
