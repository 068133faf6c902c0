package systems

import (
	"image/color"
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// topDown projects world XZ onto the screen around a focus point, +Z up.
type topDown struct {
	cx, cy float64
	focus  gamemath.Vec3
	scale  float64
}

func newTopDown(screen *ebiten.Image, focus gamemath.Vec3, scale float64) topDown {
	b := screen.Bounds()
	return topDown{
		cx:    float64(b.Dx()) / 2,
		cy:    float64(b.Dy()) / 2,
		focus: focus,
		scale: scale,
	}
}

func (v topDown) point(p gamemath.Vec3) (float32, float32) {
	return float32(v.cx + (p.X-v.focus.X)*v.scale), float32(v.cy - (p.Z-v.focus.Z)*v.scale)
}

func (v topDown) fillBox(screen *ebiten.Image, b gamemath.AABB, c color.RGBA) {
	x, y := v.point(gamemath.Vec3{X: b.Min.X, Z: b.Max.Z})
	w := float32((b.Max.X - b.Min.X) * v.scale)
	h := float32((b.Max.Z - b.Min.Z) * v.scale)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func (v topDown) strokeBox(screen *ebiten.Image, b gamemath.AABB, c color.RGBA) {
	x, y := v.point(gamemath.Vec3{X: b.Min.X, Z: b.Max.Z})
	w := float32((b.Max.X - b.Min.X) * v.scale)
	h := float32((b.Max.Z - b.Min.Z) * v.scale)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}

func (v topDown) line(screen *ebiten.Image, a, b gamemath.Vec3, c color.RGBA) {
	x0, y0 := v.point(a)
	x1, y1 := v.point(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
}

// viewFor centres the top-down view on the player.
func viewFor(e *ecs.ECS, screen *ebiten.Image) (topDown, bool) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return topDown{}, false
	}
	scale := cfg.Debug.Scale
	if debugEntry, ok := components.Debug.First(e.World); ok {
		scale = components.Debug.Get(debugEntry).Scale
	}
	return newTopDown(screen, components.Player.Get(playerEntry).Position(), scale), true
}

// DrawLevel renders the level, doors, player and camera from above.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := viewFor(e, screen)
	if !ok {
		return
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry).CurrentLevel
		view.fillBox(screen, level.Floor.Bounds, cfg.DarkBlue)
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		b := components.Body.Get(entry).Bounds
		c := cfg.Gray
		if b.Max.Y <= 1.2 {
			// Low enough to jump onto.
			c = cfg.Purple
		}
		view.fillBox(screen, b, c)
	})

	components.Door.Each(e.World, func(entry *donburi.Entry) {
		door := components.Door.Get(entry).Door
		c := cfg.Orange
		if door.Open() && !door.Moving() {
			c = cfg.Yellow
		}
		view.fillBox(screen, door.Bounds(), c)
	})

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		pos := player.Position()
		x, y := view.point(pos)
		c := cfg.LightGreen
		if !player.Grounded {
			c = cfg.LightBlue
		}
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(2, player.Body.Capsule.Radius*view.scale)), c, true)
		facing := gamemath.DirectionFromYaw(player.Locomotion.Yaw())
		view.line(screen, pos, pos.Add(facing.Scale(player.Body.Capsule.Radius*2)), cfg.White)
	})

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camView := components.Camera.Get(cameraEntry).View
		x, y := view.point(camView.Position)
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, cfg.Red, false)
		view.line(screen, camView.Position, camView.Target, cfg.Red)
	}
}
