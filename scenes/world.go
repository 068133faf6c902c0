package scenes

import (
	"image/color"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions are the collaborators a world scene is built from.
type WorldOptions struct {
	Level    *leveldata.Level
	Source   character.InputSource
	Actions  components.ActionPoller // optional
	Reporter character.Reporter
	Saved    *systems.SavedSettings // optional
}

// WorldScene runs one level with one player.
type WorldScene struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	camera *donburi.Entry
}

// NewWorldScene builds the level's entities and registers the systems in
// step order.
func NewWorldScene(opts WorldOptions) (*WorldScene, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Gameplay systems, in step order
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateCameraOrbit))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateGround))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateGravity))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateLocomotion))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateMovement))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateDoors))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateCameraFollow))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateInteraction))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateStates))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateAnimator))
	ecs.AddSystem(systems.WithTimeStep(systems.UpdateMessage))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)

	session := factory.CreateSession(ecs, opts.Source, opts.Actions)
	systems.ApplySavedSettings(components.Settings.Get(session), opts.Saved)

	level := opts.Level
	factory.CreateLevel(ecs, level)
	factory.CreateSpace(ecs, level, cfg.Level.CellSize)

	factory.CreateWall(ecs, level.Floor)
	for _, box := range level.Solids {
		factory.CreateWall(ecs, box)
	}
	for _, door := range level.Doors {
		factory.CreateDoor(ecs, door)
	}
	for _, zone := range level.CameraZones {
		factory.CreateCameraZone(ecs, zone)
	}

	player, err := factory.CreatePlayer(ecs, level.Spawn, opts.Reporter)
	if err != nil {
		return nil, err
	}
	camera := factory.CreateCamera(ecs, level.Spawn.Yaw, opts.Reporter)
	systems.ApplySettings(ecs, components.Settings.Get(session))

	log.Info().
		Str("level", level.Name).
		Int("solids", len(level.Solids)).
		Int("doors", len(level.Doors)).
		Int("cameraZones", len(level.CameraZones)).
		Msg("level loaded")

	return &WorldScene{ecs: ecs, player: player, camera: camera}, nil
}

// Update runs one window frame at the game's tick rate.
func (ws *WorldScene) Update() {
	ws.Step(1 / float64(ebiten.TPS()))
}

// Step advances the simulation by dt seconds. Steps longer than the
// configured maximum are shortened; empty or invalid steps only poll input.
func (ws *WorldScene) Step(dt float64) {
	if dt > cfg.Simulation.MaxStep {
		dt = cfg.Simulation.MaxStep
	}
	systems.SetStep(ws.ecs, dt)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

func (ws *WorldScene) Player() *components.PlayerData {
	return components.Player.Get(ws.player)
}

func (ws *WorldScene) Camera() *components.CameraData {
	return components.Camera.Get(ws.camera)
}

// State is the player's current animation state.
func (ws *WorldScene) State() cfg.StateID {
	return components.State.Get(ws.player).CurrentState
}
