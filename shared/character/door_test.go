package character

import (
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoor() *Door {
	return NewDoor(gamemath.V3(0, 0, 0), 0, DoorConfig{OpenAngle: 90, OpenSpeed: 2, Width: 1, Height: 2, Thickness: 0.1})
}

// runDoor advances d until it stops, returning the number of completions
// and checking the progress contract on every step.
func runDoor(t *testing.T, d *Door, dt float64) int {
	t.Helper()
	completions := 0
	prev := d.Progress()
	for i := 0; i < 1000 && d.Moving(); i++ {
		if d.Update(dt) {
			completions++
		}
		p := d.Progress()
		require.GreaterOrEqual(t, p, prev)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		prev = p
	}
	// Extra steps never complete again.
	for i := 0; i < 5; i++ {
		if d.Update(dt) {
			completions++
		}
	}
	return completions
}

func TestDoorOpenAndClose(t *testing.T) {
	d := testDoor()
	assert.Equal(t, PromptOpenDoor, d.Prompt())

	require.True(t, d.Interact())
	assert.True(t, d.Open())
	assert.Empty(t, d.Prompt(), "no prompt while swinging")
	assert.Equal(t, 0.0, d.Progress())

	assert.Equal(t, 1, runDoor(t, d, 0.1))
	assert.Equal(t, 1.0, d.Progress())
	assert.InDelta(t, 90, d.Yaw(), 1e-9)
	assert.Equal(t, PromptCloseDoor, d.Prompt())

	require.True(t, d.Interact())
	assert.False(t, d.Open())
	assert.Equal(t, 1, runDoor(t, d, 0.1))
	assert.InDelta(t, 0, d.Yaw(), 1e-9)
	assert.Equal(t, PromptOpenDoor, d.Prompt())
}

func TestDoorProgressScalesWithSpeed(t *testing.T) {
	d := testDoor()
	d.Interact()

	d.Update(0.1)
	assert.InDelta(t, 0.2, d.Progress(), 1e-6)
	assert.InDelta(t, 18, d.Yaw(), 1e-4)
}

func TestDoorIgnoresInteractWhileMoving(t *testing.T) {
	d := testDoor()
	require.True(t, d.Interact())
	d.Update(0.1)

	assert.False(t, d.Interact())
	assert.True(t, d.Open())
	assert.Equal(t, 1, runDoor(t, d, 0.1))
}

func TestDoorZeroStep(t *testing.T) {
	d := testDoor()
	d.Interact()
	assert.False(t, d.Update(0))
	assert.False(t, d.Update(-1))
	assert.Equal(t, 0.0, d.Progress())
}

func TestDoorLargeStepCompletesOnce(t *testing.T) {
	d := testDoor()
	d.Interact()
	assert.True(t, d.Update(10))
	assert.Equal(t, 1.0, d.Progress())
	assert.False(t, d.Update(10))
}

func TestDoorBoundsFollowSwing(t *testing.T) {
	d := testDoor()
	closed := d.Bounds()
	assert.InDelta(t, 0, closed.Min.X, 1e-9)
	assert.InDelta(t, 1, closed.Max.X, 1e-9)
	assert.InDelta(t, 0.1, closed.Size().Z, 1e-9)
	assert.InDelta(t, 2, closed.Size().Y, 1e-9)

	d.Interact()
	runDoor(t, d, 0.1)
	open := d.Bounds()
	assert.InDelta(t, 0.1, open.Size().X, 1e-9)
	assert.InDelta(t, -1, open.Min.Z, 1e-9)
	assert.InDelta(t, 0, open.Max.Z, 1e-9)
}

var _ Interactable = (*Door)(nil)

func TestDoorSwingsAcrossNorth(t *testing.T) {
	d := NewDoor(gamemath.V3(0, 0, 0), 300, DoorConfig{OpenAngle: 90, OpenSpeed: 1, Width: 1, Height: 2, Thickness: 0.1})

	require.True(t, d.Interact())
	d.Update(0.5)
	assert.InDelta(t, 345, d.Yaw(), 1e-9)
	runDoor(t, d, 0.1)
	assert.InDelta(t, 30, d.Yaw(), 1e-9)

	require.True(t, d.Interact())
	d.Update(0.5)
	assert.InDelta(t, 345, d.Yaw(), 1e-9, "closing retraces the 90 degree arc")
	runDoor(t, d, 0.1)
	assert.InDelta(t, 300, d.Yaw(), 1e-9)
}
