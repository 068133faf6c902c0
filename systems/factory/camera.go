package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the orbit rig looking along yaw.
func CreateCamera(ecs *ecs.ECS, yaw float64, r character.Reporter) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	var caster character.SphereCaster
	if world := World(ecs); world != nil {
		caster = world
	}
	rig := character.NewOrbitCamera(cfg.Camera, caster, r)
	rig.SetOrientation(yaw, 0)

	components.Camera.SetValue(camera, components.CameraData{
		Rig:       rig,
		View:      rig.Transform(),
		BlendTime: cfg.Level.ZoneBlend,
	})

	return camera
}
