package character

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Mode:                    CameraModeOrbit,
		Distance:                5,
		Height:                  2,
		FollowSmoothing:         0.125,
		CollisionRadius:         0.3,
		CollisionBuffer:         0.2,
		CollisionSmoothingSpeed: 10,
		MinDistanceToPlayer:     1.5,
		MinCameraHeightOffset:   0.5,
		MinPitch:                -30,
		MaxPitch:                60,
		SensitivityX:            100,
		SensitivityY:            100,
	}
}

type openSky struct{}

func (openSky) SphereCast(gamemath.Vec3, float64, gamemath.Vec3, float64) (collision.Hit, bool) {
	return collision.Hit{}, false
}

func wallBehindPlayer() *collision.World {
	w := collision.NewWorld(gamemath.Vec2{X: -20, Y: -20}, 40, 40, 2)
	w.Add(gamemath.AABB{Min: gamemath.V3(-20, -1, -20), Max: gamemath.V3(20, 0, 20)}, "floor", collision.TagSolid)
	w.Add(gamemath.AABB{Min: gamemath.V3(-5, 0, -2), Max: gamemath.V3(5, 3, -1.5)}, "wall", collision.TagSolid)
	return w
}

func TestCameraPitchStaysClamped(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		d := gamemath.Vec2{X: rng.NormFloat64() * 400, Y: rng.NormFloat64() * 400}
		c.Rotate(d, step)
		require.GreaterOrEqual(t, c.Pitch(), -30.0)
		require.LessOrEqual(t, c.Pitch(), 60.0)
		require.GreaterOrEqual(t, c.Yaw(), 0.0)
		require.Less(t, c.Yaw(), 360.0)
	}
}

func TestCameraRotateSensitivity(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)

	c.Rotate(gamemath.Vec2{X: 10, Y: 5}, step)
	assert.InDelta(t, 16, c.Yaw(), 1e-9)
	assert.InDelta(t, -8, c.Pitch(), 1e-9, "moving the mouse up looks up")

	c.SetSensitivity(50, 50)
	c.Rotate(gamemath.Vec2{X: 10}, step)
	assert.InDelta(t, 24, c.Yaw(), 1e-9)

	c.Rotate(gamemath.Vec2{X: 10}, 0)
	assert.InDelta(t, 24, c.Yaw(), 1e-9, "zero dt")
}

func TestCameraDesiredPosition(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)
	player := gamemath.V3(1, 1, 1)

	d := c.Desired(player)
	assert.InDelta(t, 1, d.X, 1e-9)
	assert.InDelta(t, 3, d.Y, 1e-9)
	assert.InDelta(t, -4, d.Z, 1e-9)

	c.SetOrientation(90, 0)
	d = c.Desired(player)
	assert.InDelta(t, -4, d.X, 1e-9)
	assert.InDelta(t, 3, d.Y, 1e-9)
	assert.InDelta(t, 1, d.Z, 1e-9)

	c.SetOrientation(0, 30)
	d = c.Desired(player)
	assert.InDelta(t, 1+2*math.Cos(math.Pi/6)+5*math.Sin(math.Pi/6), d.Y, 1e-9, "pitching down raises the camera")
}

func TestCameraFirstFollowSnapsAndLooksAtPlayer(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)
	c.SetOrientation(90, 0)

	p := c.Follow(gamemath.V3(0, 1, 0), 0, step)
	assert.False(t, p.Collided)
	assert.InDelta(t, 0, p.Smoothed.Distance(gamemath.V3(-5, 3, 0)), 1e-9)

	tr := c.Transform()
	assert.Equal(t, gamemath.V3(0, 3, 0), tr.Target)
	fwd := tr.Forward()
	assert.InDelta(t, 1, fwd.X, 1e-9)

	s := c.FacingSuggestion()
	assert.InDelta(t, 1, s.X, 1e-9)
	assert.InDelta(t, 0, s.Y, 1e-9)
	assert.InDelta(t, 1, s.Length(), gamemath.Epsilon)
}

func TestCameraHeightFloorWithoutCollision(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)
	c.SetOrientation(0, -30)

	p := c.Follow(gamemath.V3(0, 1, 0), 1, step)
	assert.Less(t, p.Desired.Y, 1.5)
	assert.InDelta(t, 1.5, p.Adjusted.Y, 1e-9)
	assert.InDelta(t, 1.5, p.Smoothed.Y, 1e-9)
}

func TestCameraCollisionRespectsFloors(t *testing.T) {
	w := wallBehindPlayer()
	c := NewOrbitCamera(testCameraConfig(), w, nil)
	player := gamemath.V3(0, 0.001, 0)
	rng := rand.New(rand.NewSource(3))

	collided := 0
	for i := 0; i < 300; i++ {
		c.Rotate(gamemath.Vec2{X: rng.NormFloat64() * 20, Y: rng.NormFloat64() * 40}, step)
		p := c.Follow(player, player.Y, step)
		if !p.Collided {
			continue
		}
		collided++
		for _, pos := range []gamemath.Vec3{p.Adjusted, p.Smoothed} {
			assert.GreaterOrEqual(t, pos.Distance(player), 1.5-1e-6)
			assert.GreaterOrEqual(t, pos.Y, player.Y+0.5-1e-6)
		}
	}
	assert.Greater(t, collided, 0)
}

func TestCameraPullsInFrontOfWall(t *testing.T) {
	w := wallBehindPlayer()
	c := NewOrbitCamera(testCameraConfig(), w, nil)
	player := gamemath.V3(0, 1, 0)

	p := c.Follow(player, 0, step)
	require.True(t, p.Collided)
	assert.Greater(t, p.Adjusted.Z, -1.5, "camera stays on the player's side of the wall")
	assert.Less(t, p.Adjusted.Distance(player), p.Desired.Distance(player))
}

func TestCameraCollisionBlendsFasterThanFollow(t *testing.T) {
	w := wallBehindPlayer()
	c := NewOrbitCamera(testCameraConfig(), w, nil)
	free := NewOrbitCamera(testCameraConfig(), openSky{}, nil)

	start := gamemath.V3(0, 1, 10)
	c.Follow(start, 0, step)
	free.Follow(start, 0, step)

	player := gamemath.V3(0, 1, 0)
	blocked := c.Follow(player, 0, step)
	open := free.Follow(player, 0, step)
	require.True(t, blocked.Collided)

	prev := start.Add(gamemath.V3(0, 2, -5))
	blockedFrac := blocked.Smoothed.Sub(prev).Length() / blocked.Adjusted.Sub(prev).Length()
	openFrac := open.Smoothed.Sub(prev).Length() / open.Adjusted.Sub(prev).Length()
	assert.InDelta(t, 0.125, openFrac, 1e-9)
	assert.Greater(t, blockedFrac, openFrac)
}

func TestCameraConvergesWhenIdle(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), wallBehindPlayer(), nil)
	c.Follow(gamemath.V3(0, 1, 8), 0, step)

	player := gamemath.V3(0, 1, 3)
	var last CameraPlacement
	prevGap := math.Inf(1)
	for i := 0; i < 300; i++ {
		last = c.Follow(player, 0, step)
		gap := last.Smoothed.Distance(last.Adjusted)
		assert.LessOrEqual(t, gap, prevGap+1e-12)
		prevGap = gap
	}
	assert.Less(t, prevGap, 1e-9)

	again := c.Follow(player, 0, step)
	assert.InDelta(t, 0, again.Smoothed.Distance(last.Smoothed), 1e-9)
}

func TestCameraFollowMode(t *testing.T) {
	cfg := testCameraConfig()
	cfg.Mode = CameraModeFollow
	c := NewOrbitCamera(cfg, openSky{}, nil)

	c.Rotate(gamemath.Vec2{X: 100, Y: 100}, step)
	assert.Equal(t, 0.0, c.Yaw())

	p := c.Follow(gamemath.V3(2, 0, 2), 0, step)
	assert.InDelta(t, 0, p.Smoothed.Distance(gamemath.V3(2, 2, -3)), 1e-9)
	assert.InDelta(t, 0, c.Heading(), 1e-9)
}

func TestCameraZeroStepKeepsPlacement(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)
	first := c.Follow(gamemath.V3(0, 1, 0), 0, step)
	again := c.Follow(gamemath.V3(10, 1, 0), 0, 0)
	assert.Equal(t, first, again)
}

func TestCameraStepFeedsFacing(t *testing.T) {
	c := NewOrbitCamera(testCameraConfig(), openSky{}, nil)

	tr, suggestion := c.Step(gamemath.V3(0, 1, 0), 0, gamemath.Vec2{X: 90 / (100 * step)}, step)
	assert.InDelta(t, 90, c.Yaw(), 1e-9)
	assert.InDelta(t, 1, suggestion.X, 1e-6)
	assert.InDelta(t, -5, tr.Position.X, 1e-6)
}

func TestCameraWithoutCasterReports(t *testing.T) {
	r := &recordingReporter{}
	c := NewOrbitCamera(testCameraConfig(), nil, r)
	require.Len(t, r.errs, 1)
	assert.ErrorIs(t, r.errs[0], ErrMissingCollaborator)

	p := c.Follow(gamemath.V3(0, 1, 0), 0, step)
	assert.False(t, p.Collided)
}
