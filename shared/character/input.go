package character

import (
	"github.com/automoto/thirdperson/shared/gamemath"
)

// InputSample is one raw poll of an input device: axes in [-1, 1], button
// levels and the mouse movement since the previous poll.
type InputSample struct {
	Move gamemath.Vec2 // X strafes right, Y moves forward
	Look gamemath.Vec2 // mouse delta, X right, Y up

	Run          bool
	Jump         bool
	Interact     bool
	ToggleCursor bool
}

// InputSource is polled once per step. The core never reads a device itself.
type InputSource interface {
	Sample() InputSample
}

// ActionState represents the temporal state of a button.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this step
	JustReleased bool // Released this step
}

func actionState(curr, prev bool) ActionState {
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputFrame is what the controller consumes: clamped axes plus edge-aware
// button states.
type InputFrame struct {
	Move gamemath.Vec2
	Look gamemath.Vec2

	Run          ActionState
	Jump         ActionState
	Interact     ActionState
	ToggleCursor ActionState
}

// InputTracker turns level samples into frames by remembering the previous
// button levels.
type InputTracker struct {
	prev InputSample

	// press edges and look travel seen by Defer, not yet handed out
	pending InputSample
}

// Next builds the frame for s and remembers s for the following call.
// Presses and look banked by Defer since the last frame are folded in.
func (t *InputTracker) Next(s InputSample) InputFrame {
	f := InputFrame{
		Move:         clampAxes(s.Move),
		Look:         s.Look.Add(t.pending.Look),
		Run:          actionState(s.Run, t.prev.Run),
		Jump:         actionState(s.Jump, t.prev.Jump),
		Interact:     actionState(s.Interact, t.prev.Interact),
		ToggleCursor: actionState(s.ToggleCursor, t.prev.ToggleCursor),
	}
	f.Run.JustPressed = f.Run.JustPressed || t.pending.Run
	f.Jump.JustPressed = f.Jump.JustPressed || t.pending.Jump
	f.Interact.JustPressed = f.Interact.JustPressed || t.pending.Interact
	f.ToggleCursor.JustPressed = f.ToggleCursor.JustPressed || t.pending.ToggleCursor
	if !f.Look.IsFinite() {
		f.Look = gamemath.Vec2{}
	}
	t.prev = s
	t.pending = InputSample{}
	return f
}

// Defer records s for a step that does not run, keeping its press edges and
// look travel for the next frame.
func (t *InputTracker) Defer(s InputSample) {
	t.pending.Run = t.pending.Run || (s.Run && !t.prev.Run)
	t.pending.Jump = t.pending.Jump || (s.Jump && !t.prev.Jump)
	t.pending.Interact = t.pending.Interact || (s.Interact && !t.prev.Interact)
	t.pending.ToggleCursor = t.pending.ToggleCursor || (s.ToggleCursor && !t.prev.ToggleCursor)
	if s.Look.IsFinite() {
		t.pending.Look = t.pending.Look.Add(s.Look)
	}
	t.prev = s
}

func clampAxes(v gamemath.Vec2) gamemath.Vec2 {
	if !v.IsFinite() {
		return gamemath.Vec2{}
	}
	return gamemath.Vec2{X: gamemath.Clamp(v.X, -1, 1), Y: gamemath.Clamp(v.Y, -1, 1)}
}

// ScriptedInput replays a fixed list of samples, then repeats the last one
// (or loops when Loop is set). Useful for headless runs and tests.
type ScriptedInput struct {
	Samples []InputSample
	Loop    bool

	next int
}

func (s *ScriptedInput) Sample() InputSample {
	if len(s.Samples) == 0 {
		return InputSample{}
	}
	if s.next >= len(s.Samples) {
		if !s.Loop {
			return s.Samples[len(s.Samples)-1]
		}
		s.next = 0
	}
	out := s.Samples[s.next]
	s.next++
	return out
}

// Repeat returns n copies of sample, for building scripts.
func Repeat(sample InputSample, n int) []InputSample {
	out := make([]InputSample, n)
	for i := range out {
		out[i] = sample
	}
	return out
}
