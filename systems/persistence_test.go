package systems

import (
	"testing"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func defaultSettings() components.SettingsData {
	return components.SettingsData{
		Sensitivity: gamemath.Vec2{X: 100, Y: 100},
		Facing:      character.FacingMovement,
		CameraMode:  character.CameraModeOrbit,
	}
}

func TestApplySavedSettings(t *testing.T) {
	s := defaultSettings()
	ApplySavedSettings(&s, &SavedSettings{
		SensitivityX: 150,
		SensitivityY: 90,
		Facing:       string(character.FacingCamera),
		CameraMode:   string(character.CameraModeFollow),
	})

	assert.Equal(t, gamemath.Vec2{X: 150, Y: 90}, s.Sensitivity)
	assert.Equal(t, character.FacingCamera, s.Facing)
	assert.Equal(t, character.CameraModeFollow, s.CameraMode)
}

func TestApplySavedSettingsKeepsCurrentOnBadData(t *testing.T) {
	s := defaultSettings()
	ApplySavedSettings(&s, &SavedSettings{
		SensitivityX: 0,
		SensitivityY: 50,
		Facing:       "sideways",
		CameraMode:   "",
	})
	assert.Equal(t, defaultSettings(), s)

	ApplySavedSettings(&s, nil)
	assert.Equal(t, defaultSettings(), s)
}

func TestApplySavedSettingsClampsSensitivity(t *testing.T) {
	s := defaultSettings()
	ApplySavedSettings(&s, &SavedSettings{SensitivityX: 1e6, SensitivityY: 1})

	assert.Equal(t, cfg.Settings.MaxSensitivity, s.Sensitivity.X)
	assert.Equal(t, cfg.Settings.MinSensitivity, s.Sensitivity.Y)
}

func TestSaveWithoutPersistenceIsNoop(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	assert.NoError(t, SaveSettings(&SavedSettings{SensitivityX: 1}))
	loaded, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
