package config

import (
	"image/color"

	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer the scene draws on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Locomotion character.LocomotionConfig `yaml:"locomotion"`
	Ground     character.GroundConfig     `yaml:"ground"`

	// Collision capsule, in world units
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`

	// WeightMultiplier scales gravity for this body only
	WeightMultiplier float64 `yaml:"weightMultiplier"`
}

// InteractionConfig controls the camera-forward interaction ray
type InteractionConfig struct {
	// Range is how far past the player the ray reaches
	Range  float64 `yaml:"range"`
	Prompt bool    `yaml:"prompt"`
}

// SettingsConfig contains the persisted player preferences and their limits
type SettingsConfig struct {
	AppName         string  `yaml:"appName"`
	SensitivityStep float64 `yaml:"sensitivityStep"`
	MinSensitivity  float64 `yaml:"minSensitivity"`
	MaxSensitivity  float64 `yaml:"maxSensitivity"`
}

// LevelConfig describes how Tiled maps are turned into a 3D world
type LevelConfig struct {
	Path          string  `yaml:"path"` // empty loads the embedded level
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
	CellSize      float64 `yaml:"cellSize"` // broadphase cell, world units
	WallHeight    float64 `yaml:"wallHeight"`
	FloorDepth    float64 `yaml:"floorDepth"`
	// ZoneBlend is the time in seconds a camera zone switch takes
	ZoneBlend float64 `yaml:"zoneBlend"`
}

// SimulationConfig contains stepping values
type SimulationConfig struct {
	// FixedStep is the dt used by headless runs and when the window clock stalls
	FixedStep float64 `yaml:"fixedStep"`
	// MaxStep caps a single frame's dt after a hitch
	MaxStep float64 `yaml:"maxStep"`
}

// DebugConfig contains debug view options
type DebugConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"` // screen pixels per world unit in the top-down view
}

// UIConfig contains HUD layout values
type UIConfig struct {
	FontSize     float64    `yaml:"fontSize"`
	PromptOffset float64    `yaml:"promptOffset"` // pixels below screen centre
	PromptColor  color.RGBA `yaml:"-"`
	HUDColor     color.RGBA `yaml:"-"`

	// Toast shown after a settings change
	MessageDuration float64    `yaml:"messageDuration"` // seconds
	MessagePadding  float64    `yaml:"messagePadding"`
	MessageTop      float64    `yaml:"messageTop"`
	MessageBox      color.RGBA `yaml:"-"`
	MessageText     color.RGBA `yaml:"-"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Gravity character.GravityConfig
var Camera character.CameraConfig
var Door character.DoorConfig
var Interaction InteractionConfig
var Settings SettingsConfig
var Level LevelConfig
var Simulation SimulationConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 24, B: 40, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Player Config
	Player = PlayerConfig{
		Locomotion: character.LocomotionConfig{
			WalkSpeed: 5,
			RunSpeed:  10,
			JumpForce: 7, // metres of jump height
			DeadZone:  0.1,

			Facing:            character.FacingMovement,
			Rotation:          character.RotateLinear,
			RotationSpeed:     700,
			RotationSmoothing: 10,
			CameraFacingRate:  10,

			AirControl:       false,
			AirControlFactor: 0.5,
		},
		Ground: character.GroundConfig{
			ProbeOffset:   0.1,
			ProbeDistance: 0.2,
			GraceSteps:    6,
		},
		Radius:           0.4,
		Height:           1.8,
		WeightMultiplier: 1,
	}

	// Gravity Config
	Gravity = character.GravityConfig{
		Acceleration:     -9.81,
		GroundedVelocity: -2,
		MaxVerticalSpeed: 50,

		Asymmetric:        false,
		FallMultiplier:    2.5,
		LowJumpMultiplier: 2,
	}

	// Camera Config
	Camera = character.CameraConfig{
		Mode:     character.CameraModeOrbit,
		Distance: 5,
		Height:   2,

		FollowSmoothing: 0.125,

		CollisionRadius:         0.3,
		CollisionBuffer:         0.2,
		CollisionSmoothingSpeed: 10,
		MinDistanceToPlayer:     1.5,
		MinCameraHeightOffset:   0.5,

		MinPitch: -30,
		MaxPitch: 60,

		SensitivityX: 100,
		SensitivityY: 100,
	}

	// Door Config
	Door = character.DoorConfig{
		OpenAngle: 90,
		OpenSpeed: 2,
		Width:     1.2,
		Height:    2.2,
		Thickness: 0.1,
	}

	Interaction = InteractionConfig{
		Range:  1.5,
		Prompt: true,
	}

	Settings = SettingsConfig{
		AppName:         "thirdperson",
		SensitivityStep: 10,
		MinSensitivity:  10,
		MaxSensitivity:  400,
	}

	Level = LevelConfig{
		PixelsPerUnit: 16,
		CellSize:      2,
		WallHeight:    3,
		FloorDepth:    1,
		ZoneBlend:     0.35,
	}

	Simulation = SimulationConfig{
		FixedStep: 1.0 / 60.0,
		MaxStep:   0.1,
	}

	Debug = DebugConfig{
		Enabled: false,
		Scale:   12,
	}

	UI = UIConfig{
		FontSize:     14,
		PromptOffset: 40,
		PromptColor:  White,
		HUDColor:     LightGreen,

		MessageDuration: 1.5,
		MessagePadding:  6,
		MessageTop:      10,
		MessageBox:      BlackOverlay,
		MessageText:     White,
	}

	Input = defaultInput()
}
