package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCameraZone(ecs *ecs.ECS, zone leveldata.CameraZone) *donburi.Entry {
	entry := archetypes.CameraZone.Spawn(ecs)
	components.CameraZone.SetValue(entry, components.CameraZoneData{
		Name:     zone.Name,
		Bounds:   zone.Bounds,
		Position: zone.Position,
		Target:   zone.Target,
	})
	return entry
}
