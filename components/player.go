package components

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData owns the controller pieces of one character. Each piece holds
// its own state; the systems only sequence them.
type PlayerData struct {
	Gravity    *character.Gravity
	Ground     *character.GroundSensor
	Locomotion *character.Locomotion
	Mover      *character.Mover
	Body       *collision.CharacterBody

	WeightMultiplier float64

	Grounded bool
	Last     character.LocomotionResult
	LastMove collision.MoveResult
	Spawn    gamemath.Vec3
}

// Position returns the feet position.
func (p *PlayerData) Position() gamemath.Vec3 {
	return p.Body.Position()
}

var Player = donburi.NewComponentType[PlayerData]()
