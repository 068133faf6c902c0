package config

import "github.com/automoto/thirdperson/shared/character"

// CameraModes lists the camera rigs the toggle cycles through.
var CameraModes = []character.CameraMode{character.CameraModeOrbit, character.CameraModeFollow}

// FacingModes lists the facing policies the toggle cycles through.
var FacingModes = []character.FacingMode{character.FacingMovement, character.FacingCamera}
