package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator forwards the controller's signals to each animator and
// plays the clip of the current state. Must run AFTER UpdateStates.
func UpdateAnimator(e *ecs.ECS) {
	dt := StepDT(e)
	components.Animator.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animator.Get(entry)
		anim.Events = 0
		if entry.HasComponent(components.Player) {
			character.PushAnimation(anim, components.Player.Get(entry).Last)
		}
		if entry.HasComponent(components.State) {
			anim.SetAnimation(components.State.Get(entry).CurrentState)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}
