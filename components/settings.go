package components

import (
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SettingsData holds the player preferences that survive restarts.
type SettingsData struct {
	Sensitivity gamemath.Vec2
	Facing      character.FacingMode
	CameraMode  character.CameraMode

	// Dirty marks a change not yet written to disk.
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
