package character

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingBridge struct {
	flags  []AnimationFlags
	events []Event
}

func (b *recordingBridge) SetAnimationFlags(f AnimationFlags) { b.flags = append(b.flags, f) }
func (b *recordingBridge) AnimationEvent(e Event)             { b.events = append(b.events, e) }

func TestAnimationFlags(t *testing.T) {
	tests := []struct {
		name string
		res  LocomotionResult
		want AnimationFlags
	}{
		{"idle", LocomotionResult{State: GroundedIdle}, AnimationFlags{Grounded: true}},
		{"walking", LocomotionResult{State: GroundedMoving, Moving: true}, AnimationFlags{Grounded: true, Walking: true}},
		{"running", LocomotionResult{State: GroundedMoving, Moving: true, Running: true}, AnimationFlags{Grounded: true, Running: true}},
		{"jumping", LocomotionResult{State: AirborneDescending, Jumping: true}, AnimationFlags{Jumping: true}},
		{"falling", LocomotionResult{State: AirborneDescending}, AnimationFlags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnimationFlagsFor(tt.res))
		})
	}
}

func TestPushAnimation(t *testing.T) {
	b := &recordingBridge{}
	PushAnimation(b, LocomotionResult{State: AirborneAscending, Jumping: true, Events: EventJumpStarted | EventFallStarted})

	assert.Len(t, b.flags, 1)
	assert.Equal(t, []Event{EventJumpStarted, EventFallStarted}, b.events)
	assert.Equal(t, "jump-started|fall-started", (EventJumpStarted | EventFallStarted).String())

	PushAnimation(nil, LocomotionResult{})
}

func TestLogReporterDeduplicates(t *testing.T) {
	r := NewLogReporter()
	err := &ConfigurationError{Component: "mover", Collaborator: "displacer"}
	r.Report("mover", err)
	r.Report("mover", err)
	r.Report("gravity", errors.New("other"))
	r.Report("gravity", nil)
	assert.Len(t, r.seen, 2)
}
