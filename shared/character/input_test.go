package character

import (
	"math"
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestInputTrackerEdges(t *testing.T) {
	var tr InputTracker

	f := tr.Next(InputSample{Jump: true})
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, f.Jump)

	f = tr.Next(InputSample{Jump: true})
	assert.Equal(t, ActionState{Pressed: true}, f.Jump)

	f = tr.Next(InputSample{})
	assert.Equal(t, ActionState{JustReleased: true}, f.Jump)

	f = tr.Next(InputSample{})
	assert.Equal(t, ActionState{}, f.Jump)
}

func TestInputTrackerDeferKeepsPresses(t *testing.T) {
	var tr InputTracker
	tr.Next(InputSample{})

	tr.Defer(InputSample{Jump: true, Look: gamemath.Vec2{X: 2}})
	tr.Defer(InputSample{Jump: true, Look: gamemath.Vec2{X: 1}})

	f := tr.Next(InputSample{Jump: true})
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, f.Jump)
	assert.Equal(t, gamemath.Vec2{X: 3}, f.Look)

	f = tr.Next(InputSample{Jump: true})
	assert.Equal(t, ActionState{Pressed: true}, f.Jump, "a banked press is handed out once")
	assert.Equal(t, gamemath.Vec2{}, f.Look)
}

func TestInputTrackerDeferKeepsTaps(t *testing.T) {
	var tr InputTracker
	tr.Next(InputSample{})

	tr.Defer(InputSample{Interact: true})
	tr.Defer(InputSample{})

	f := tr.Next(InputSample{})
	assert.True(t, f.Interact.JustPressed)
	assert.False(t, f.Interact.Pressed)
}

func TestInputTrackerClampsAxes(t *testing.T) {
	var tr InputTracker

	f := tr.Next(InputSample{Move: gamemath.Vec2{X: 3, Y: -2}})
	assert.Equal(t, gamemath.Vec2{X: 1, Y: -1}, f.Move)

	f = tr.Next(InputSample{Move: gamemath.Vec2{X: math.NaN()}, Look: gamemath.Vec2{Y: math.Inf(1)}})
	assert.Equal(t, gamemath.Vec2{}, f.Move)
	assert.Equal(t, gamemath.Vec2{}, f.Look)
}

func TestScriptedInput(t *testing.T) {
	a := InputSample{Jump: true}
	b := InputSample{Run: true}

	s := &ScriptedInput{Samples: []InputSample{a, b}}
	assert.Equal(t, a, s.Sample())
	assert.Equal(t, b, s.Sample())
	assert.Equal(t, b, s.Sample(), "holds the last sample")

	loop := &ScriptedInput{Samples: []InputSample{a, b}, Loop: true}
	loop.Sample()
	loop.Sample()
	assert.Equal(t, a, loop.Sample())

	assert.Equal(t, InputSample{}, (&ScriptedInput{}).Sample())
	assert.Len(t, Repeat(a, 4), 4)
}
