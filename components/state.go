package components

import (
	"github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type WalkingState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Walking = donburi.NewComponentType[WalkingState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
