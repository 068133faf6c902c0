package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton holding the clock, input and player
// preferences. actions may be nil when only source drives the game.
func CreateSession(ecs *ecs.ECS, source character.InputSource, actions components.ActionPoller) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Input.SetValue(session, components.InputData{
		Source:         source,
		Actions:        actions,
		CursorCaptured: true,
	})
	components.Settings.SetValue(session, components.SettingsData{
		Sensitivity: gamemath.Vec2{X: cfg.Camera.SensitivityX, Y: cfg.Camera.SensitivityY},
		Facing:      cfg.Player.Locomotion.Facing,
		CameraMode:  cfg.Camera.Mode,
	})
	components.Debug.SetValue(session, components.DebugData{
		Enabled: cfg.Debug.Enabled,
		Scale:   cfg.Debug.Scale,
	})

	return session
}
