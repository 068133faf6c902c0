package systems

import (
	"fmt"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the preference keys and pushes the current
// preferences into the player and camera. Changes are saved right away.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if input, ok := components.Input.First(e.World); ok {
		handleSettingsKeys(e, components.Input.Get(input), settings)
	}
	ApplySettings(e, settings)

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

func handleSettingsKeys(e *ecs.ECS, input *components.InputData, settings *components.SettingsData) {
	step := 0.0
	if input.Action(cfg.ActionSensitivityUp).JustPressed {
		step += cfg.Settings.SensitivityStep
	}
	if input.Action(cfg.ActionSensitivityDown).JustPressed {
		step -= cfg.Settings.SensitivityStep
	}
	if step != 0 {
		settings.Sensitivity = clampSensitivity(gamemath.Vec2{
			X: settings.Sensitivity.X + step,
			Y: settings.Sensitivity.Y + step,
		})
		settings.Dirty = true
		log.Info().Float64("x", settings.Sensitivity.X).Float64("y", settings.Sensitivity.Y).Msg("mouse sensitivity changed")
		ShowMessage(e, fmt.Sprintf("Mouse sensitivity %.0f", settings.Sensitivity.X))
	}

	if input.Action(cfg.ActionToggleFacing).JustPressed {
		settings.Facing = cfg.FacingModes[(indexOf(cfg.FacingModes, settings.Facing)+1)%len(cfg.FacingModes)]
		settings.Dirty = true
		log.Info().Str("facing", string(settings.Facing)).Msg("facing mode changed")
		ShowMessage(e, "Facing: "+string(settings.Facing))
	}
	if input.Action(cfg.ActionToggleCamera).JustPressed {
		settings.CameraMode = cfg.CameraModes[(indexOf(cfg.CameraModes, settings.CameraMode)+1)%len(cfg.CameraModes)]
		settings.Dirty = true
		log.Info().Str("camera", string(settings.CameraMode)).Msg("camera mode changed")
		ShowMessage(e, "Camera: "+string(settings.CameraMode))
	}

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		if debug, ok := components.Debug.First(e.World); ok {
			d := components.Debug.Get(debug)
			d.Enabled = !d.Enabled
		}
	}
}

// ApplySettings copies the preferences onto every player and camera.
func ApplySettings(e *ecs.ECS, settings *components.SettingsData) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Locomotion.Config().Facing != settings.Facing {
			player.Locomotion.SetFacingMode(settings.Facing)
		}
	})
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		rig := components.Camera.Get(entry).Rig
		if rig.Mode() != settings.CameraMode {
			rig.SetMode(settings.CameraMode)
		}
		if rig.Sensitivity() != settings.Sensitivity {
			rig.SetSensitivity(settings.Sensitivity.X, settings.Sensitivity.Y)
		}
	})
}

func clampSensitivity(v gamemath.Vec2) gamemath.Vec2 {
	return gamemath.Vec2{
		X: gamemath.Clamp(v.X, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity),
		Y: gamemath.Clamp(v.Y, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity),
	}
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
