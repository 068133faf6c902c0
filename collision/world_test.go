package collision

import (
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld() *World {
	w := NewWorld(gamemath.Vec2{X: -20, Y: -20}, 40, 40, 2)
	// floor
	w.Add(gamemath.AABB{Min: gamemath.V3(-20, -1, -20), Max: gamemath.V3(20, 0, 20)}, "floor", TagSolid)
	// wall in front of the origin
	w.Add(gamemath.AABB{Min: gamemath.V3(-5, 0, 4), Max: gamemath.V3(5, 3, 5)}, "wall", TagSolid)
	return w
}

func TestRaycastHitsFloor(t *testing.T) {
	w := testWorld()

	hit, ok := w.Raycast(gamemath.V3(0, 0.1, 0), gamemath.Down, 0.3)
	require.True(t, ok)
	assert.InDelta(t, 0.1, hit.Distance, 1e-9)
	assert.Equal(t, gamemath.Up, hit.Normal)
	assert.Equal(t, "floor", hit.Body.Data)

	_, ok = w.Raycast(gamemath.V3(0, 1, 0), gamemath.Down, 0.5)
	assert.False(t, ok, "floor is out of reach")
}

func TestRaycastPicksNearest(t *testing.T) {
	w := testWorld()
	w.Add(gamemath.AABB{Min: gamemath.V3(-1, 0, 2), Max: gamemath.V3(1, 2, 2.5)}, "crate", TagSolid)

	hit, ok := w.Raycast(gamemath.V3(0, 1, 0), gamemath.Forward, 10)
	require.True(t, ok)
	assert.Equal(t, "crate", hit.Body.Data)
	assert.InDelta(t, 2, hit.Distance, 1e-9)
}

func TestRaycastTags(t *testing.T) {
	w := testWorld()
	w.Add(gamemath.AABB{Min: gamemath.V3(-1, 0, 2), Max: gamemath.V3(1, 2, 2.5)}, "door", TagInteractable)

	hit, ok := w.Raycast(gamemath.V3(0, 1, 0), gamemath.Forward, 10)
	require.True(t, ok)
	assert.Equal(t, "wall", hit.Body.Data, "solid rays ignore interactables")

	hit, ok = w.RaycastTags(gamemath.V3(0, 1, 0), gamemath.Forward, 10, TagInteractable)
	require.True(t, ok)
	assert.Equal(t, "door", hit.Body.Data)
}

func TestSphereCast(t *testing.T) {
	w := testWorld()

	hit, ok := w.SphereCast(gamemath.V3(0, 1.5, 0), 0.5, gamemath.Forward, 10)
	require.True(t, ok)
	assert.InDelta(t, 3.5, hit.Distance, 1e-9)
	assert.InDelta(t, 4, hit.Point.Z, 1e-9)
	assert.Equal(t, gamemath.V3(0, 0, -1), hit.Normal)
}

func TestSetBoundsAndRemove(t *testing.T) {
	w := testWorld()
	b := w.Add(gamemath.AABB{Min: gamemath.V3(10, 0, 10), Max: gamemath.V3(11, 2, 11)}, "box", TagSolid)

	_, ok := w.Raycast(gamemath.V3(0, 1, -2), gamemath.V3(0, 0, -1), 5)
	assert.False(t, ok)

	w.SetBounds(b, gamemath.AABB{Min: gamemath.V3(-1, 0, -5), Max: gamemath.V3(1, 2, -4)})
	hit, ok := w.Raycast(gamemath.V3(0, 1, -2), gamemath.V3(0, 0, -1), 5)
	require.True(t, ok)
	assert.Equal(t, "box", hit.Body.Data)

	w.Remove(b)
	_, ok = w.Raycast(gamemath.V3(0, 1, -2), gamemath.V3(0, 0, -1), 5)
	assert.False(t, ok)
	assert.Len(t, w.Bodies(TagSolid), 2)
}

func TestQuery(t *testing.T) {
	w := testWorld()
	zone := w.Add(gamemath.AABB{Min: gamemath.V3(-2, 0, -2), Max: gamemath.V3(2, 3, 2)}, "zone", TagZone)

	found := w.Query(gamemath.AABB{Min: gamemath.V3(-0.5, 0.5, -0.5), Max: gamemath.V3(0.5, 1.5, 0.5)}, TagZone)
	require.Len(t, found, 1)
	assert.Same(t, zone, found[0])

	found = w.Query(gamemath.AABB{Min: gamemath.V3(8, 0.5, 8), Max: gamemath.V3(9, 1.5, 9)}, TagZone)
	assert.Empty(t, found)
}
