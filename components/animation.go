package components

import (
	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
)

// AnimatorData receives the controller's animation flags and plays one clip
// per state.
type AnimatorData struct {
	Flags  character.AnimationFlags
	Events character.Event // events raised during the last step

	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimatorData) SetAnimationFlags(f character.AnimationFlags) {
	a.Flags = f
}

func (a *AnimatorData) AnimationEvent(e character.Event) {
	a.Events |= e
}

// SetAnimation switches to the clip for state, restarting it on change.
func (a *AnimatorData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

var Animator = donburi.NewComponentType[AnimatorData]()
