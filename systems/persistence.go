package systems

import (
	"encoding/json"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SensitivityX float64 `json:"sensitivityX"`
	SensitivityY float64 `json:"sensitivityY"`
	Facing       string  `json:"facing"`
	CameraMode   string  `json:"cameraMode"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// SaveCurrentSettings saves the current preferences from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		SensitivityX: s.Sensitivity.X,
		SensitivityY: s.Sensitivity.Y,
		Facing:       string(s.Facing),
		CameraMode:   string(s.CameraMode),
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettings merges loaded settings into the component. Unknown
// modes keep their current value.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.SensitivityX > 0 && saved.SensitivityY > 0 {
		s.Sensitivity = clampSensitivity(gamemath.Vec2{X: saved.SensitivityX, Y: saved.SensitivityY})
	}
	switch f := character.FacingMode(saved.Facing); f {
	case character.FacingMovement, character.FacingCamera:
		s.Facing = f
	}
	switch m := character.CameraMode(saved.CameraMode); m {
	case character.CameraModeOrbit, character.CameraModeFollow:
		s.CameraMode = m
	}
}
