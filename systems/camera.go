package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraOrbit applies this step's look input to the rig.
func UpdateCameraOrbit(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	look := components.Input.Get(inputEntry).Frame.Look
	components.Camera.Get(cameraEntry).Rig.Rotate(look, StepDT(e))
}

// UpdateCameraFollow places the rig behind the moved player, resolves camera
// zones and hands the rig's facing suggestion back to the player.
// Must run AFTER UpdateMovement.
func UpdateCameraFollow(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	dt := StepDT(e)

	pos := player.Position()
	camera.Rig.Follow(pos, pos.Y, dt)
	player.Locomotion.SetFacingSuggestion(camera.Rig.FacingSuggestion())

	center := pos.Add(gamemath.Up.Scale(player.Body.Capsule.Height / 2))
	if zone := zoneAt(e, center); zone != camera.Zone {
		switchZone(camera, zone)
	}

	target := camera.Rig.Transform()
	if camera.Zone != nil {
		target = zoneView(components.CameraZone.Get(camera.Zone))
	}
	if camera.Blend == nil {
		camera.View = target
		return
	}
	t, done := camera.Blend.Update(float32(dt))
	camera.View = blendView(camera.BlendFrom, target, float64(t))
	if done {
		camera.Blend = nil
	}
}

// CameraYaw is the heading movement input is relative to: the active view's
// yaw inside a zone, the rig's heading otherwise.
func CameraYaw(camera *components.CameraData) float64 {
	if camera.Zone != nil {
		return camera.View.Rotation.Yaw()
	}
	return camera.Rig.Heading()
}

func switchZone(camera *components.CameraData, zone *donburi.Entry) {
	name := "orbit"
	if zone != nil {
		name = components.CameraZone.Get(zone).Name
	}
	log.Debug().Str("view", name).Msg("camera switched")

	camera.Zone = zone
	camera.Blend = nil
	if camera.BlendTime > 0 {
		camera.BlendFrom = camera.View
		camera.Blend = gween.New(0, 1, float32(camera.BlendTime), ease.InOutQuad)
	}
}

// zoneAt returns the first camera zone containing p.
func zoneAt(e *ecs.ECS, p gamemath.Vec3) *donburi.Entry {
	var found *donburi.Entry
	components.CameraZone.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.CameraZone.Get(entry).Bounds.Contains(p) {
			found = entry
		}
	})
	return found
}

func zoneView(z *components.CameraZoneData) character.CameraTransform {
	return character.CameraTransform{
		Position: z.Position,
		Rotation: gamemath.LookRotation(z.Target.Sub(z.Position)),
		Target:   z.Target,
	}
}

func blendView(from, to character.CameraTransform, t float64) character.CameraTransform {
	return character.CameraTransform{
		Position: from.Position.Lerp(to.Position, t),
		Rotation: gamemath.Slerp(from.Rotation, to.Rotation, t),
		Target:   from.Target.Lerp(to.Target, t),
	}
}
