package systems

import (
	"fmt"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(debugEntry).Enabled {
		return
	}
	view, ok := viewFor(e, screen)
	if !ok {
		return
	}

	// Collider outlines, including the ones drawn filled by DrawLevel.
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		view.strokeBox(screen, components.Body.Get(entry).Bounds, cfg.White)
	})
	components.CameraZone.Each(e.World, func(entry *donburi.Entry) {
		view.strokeBox(screen, components.CameraZone.Get(entry).Bounds, cfg.Blue)
	})

	playerEntry, _ := components.Player.First(e.World)
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	pos := player.Position()
	vel := player.Locomotion.Velocity()
	vel.Y = player.Gravity.Velocity().Y

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("pos %.2f %.2f %.2f", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("vel %.2f %.2f %.2f", vel.X, vel.Y, vel.Z),
		fmt.Sprintf("state %s (%s) grounded %t", player.Last.State, state.CurrentState, player.Grounded),
		fmt.Sprintf("yaw %.1f", player.Locomotion.Yaw()),
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		placement := camera.Rig.Placement()
		zone := "-"
		if camera.Zone != nil {
			zone = components.CameraZone.Get(camera.Zone).Name
		}
		lines = append(lines,
			fmt.Sprintf("camera %s yaw %.1f pitch %.1f", camera.Rig.Mode(), camera.Rig.Yaw(), camera.Rig.Pitch()),
			fmt.Sprintf("collided %t zone %s", placement.Collided, zone),
		)
		if placement.Collided {
			view.line(screen, placement.Desired, placement.Adjusted, cfg.Red)
		}
	}
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		s := components.Settings.Get(settingsEntry)
		lines = append(lines, fmt.Sprintf("sensitivity %.0f/%.0f facing %s", s.Sensitivity.X, s.Sensitivity.Y, s.Facing))
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*14)
	}
}
