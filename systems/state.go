package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateStates(e *ecs.ECS) {
	dt := StepDT(e)
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		state := components.State.Get(entry)

		next := StateFor(player.Last)
		if next == state.CurrentState {
			state.StateTimer += dt
		} else {
			state.CurrentState = next
			state.StateTimer = 0
		}
		updateStateTags(entry, state)
	})
}

// StateFor picks the animation state for a locomotion result.
func StateFor(r character.LocomotionResult) cfg.StateID {
	switch {
	case r.State == character.AirborneAscending:
		return cfg.Jump
	case r.State == character.AirborneDescending:
		return cfg.Fall
	case r.Running:
		return cfg.Running
	case r.Moving:
		return cfg.Walk
	}
	return cfg.Idle
}

func updateStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Walk:
		donburi.Add(e, components.Walking, &components.WalkingState{})
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jump:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Fall:
		donburi.Add(e, components.Falling, &components.FallingState{})
	}

	state.PreviousState = state.CurrentState
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.WalkingState](e, components.Walking)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
}
