package character

// AnimationFlags are the booleans an animator state graph reads.
type AnimationFlags struct {
	Grounded bool
	Jumping  bool
	Walking  bool
	Running  bool
}

// AnimationBridge receives the controller's animation signals. The core
// does not know how they are played back.
type AnimationBridge interface {
	SetAnimationFlags(AnimationFlags)
	AnimationEvent(Event)
}

// AnimationFlagsFor derives the animator flags from a locomotion result.
func AnimationFlagsFor(r LocomotionResult) AnimationFlags {
	return AnimationFlags{
		Grounded: r.State.Grounded(),
		Jumping:  r.Jumping,
		Walking:  r.Moving && !r.Running,
		Running:  r.Moving && r.Running,
	}
}

// PushAnimation forwards the flags and every event of r to the bridge.
func PushAnimation(b AnimationBridge, r LocomotionResult) {
	if b == nil {
		return
	}
	b.SetAnimationFlags(AnimationFlagsFor(r))
	for _, e := range r.Events.List() {
		b.AnimationEvent(e)
	}
}
