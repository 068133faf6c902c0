package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer assembles a character controller at spawn. Pieces missing a
// collaborator report through r and stay inert.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Spawn, r character.Reporter) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	world := World(ecs)
	var caster character.RayCaster
	if world != nil {
		caster = world
	}

	body := &collision.CharacterBody{
		World: world,
		Capsule: collision.Capsule{
			Position: spawn.Position,
			Radius:   cfg.Player.Radius,
			Height:   cfg.Player.Height,
		},
	}
	gravity := character.NewGravity(cfg.Gravity, r)
	ground := character.NewGroundSensor(caster, cfg.Player.Ground, r)
	locomotion := character.NewLocomotion(cfg.Player.Locomotion, gravity, ground, r)
	locomotion.SetYaw(spawn.Yaw)

	components.Player.SetValue(player, components.PlayerData{
		Gravity:          gravity,
		Ground:           ground,
		Locomotion:       locomotion,
		Mover:            character.NewMover(body, r),
		Body:             body,
		WeightMultiplier: cfg.Player.WeightMultiplier,
		Spawn:            spawn.Position,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	animData, err := GenerateAnimations("player")
	if err != nil {
		return nil, err
	}
	components.Animator.Set(player, animData)

	return player, nil
}
