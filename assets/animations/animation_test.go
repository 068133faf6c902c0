package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesWithTime(t *testing.T) {
	a := NewAnimation(0, 3, 1, 10)

	a.Update(0.05)
	assert.Equal(t, 0, a.Frame())

	a.Update(0.05)
	assert.Equal(t, 1, a.Frame())

	a.Update(0.25)
	assert.Equal(t, 3, a.Frame(), "a long step skips frames")
	assert.False(t, a.Looped)

	a.Update(0.1)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(2, 4, 1, 10)
	a.FreezeOnComplete = true

	a.Update(1)
	assert.Equal(t, 4, a.Frame())
	assert.True(t, a.Looped)

	a.Restart()
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimationIgnoresEmptySteps(t *testing.T) {
	a := NewAnimation(0, 3, 1, 10)
	a.Update(0)
	a.Update(-1)
	assert.Equal(t, 0, a.Frame())
}
