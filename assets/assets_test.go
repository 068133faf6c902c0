package assets

import (
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelLoads(t *testing.T) {
	level, err := leveldata.Load(Levels(), DefaultLevel, leveldata.Options{
		PixelsPerUnit: 16,
		WallHeight:    3,
		FloorDepth:    1,
		ZoneHeight:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "courtyard", level.Name)
	assert.Equal(t, 40.0, level.Width)
	assert.Len(t, level.Solids, 11)
	require.Len(t, level.Doors, 1)
	require.Len(t, level.CameraZones, 1)

	assert.Equal(t, gamemath.V3(20, 0, 10), level.Spawn.Position)
	assert.InDelta(t, 19.4, level.Doors[0].Hinge.X, 1e-9)
	assert.InDelta(t, 24.5, level.Doors[0].Hinge.Z, 1e-9)
	assert.True(t, level.CameraZones[0].Bounds.Contains(gamemath.V3(20, 0.5, 28)))
	assert.False(t, level.CameraZones[0].Bounds.Contains(level.Spawn.Position))
}
