// Package collision is the world-query collaborator of the character
// controller: ray and sphere sweeps plus capsule displacement against static
// and moving boxes. Boxes live in a resolv space laid out over the XZ plane,
// which serves as the broadphase; the vertical extent is checked here.
package collision

import (
	"math"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Resolv tags understood by the world.
const (
	TagSolid        = "solid"
	TagInteractable = "interactable"
	TagZone         = "zone"
	tagProbe        = "probe"
)

// Body is a box registered in the world. Data links back to the owning entity.
type Body struct {
	Bounds gamemath.AABB
	Data   interface{}

	object *resolv.Object
}

// HasTags reports whether the body carries any of the tags.
func (b *Body) HasTags(tags ...string) bool {
	return b.object != nil && b.object.HasTags(tags...)
}

// Hit describes the first surface met by a sweep.
type Hit struct {
	Point    gamemath.Vec3
	Normal   gamemath.Vec3
	Distance float64
	Body     *Body
}

// spaceScale converts world units into resolv space units. resolv works on
// whole-pixel cells, so footprints are scaled up and padded by one unit.
const spaceScale = 16

// World holds every collidable box of a level.
type World struct {
	space  *resolv.Space
	probe  *resolv.Object
	origin gamemath.Vec2
}

// NewWorld creates a world covering width x depth units starting at origin
// (X, Z), bucketed into cells of cellSize units. Boxes outside that area
// never collide.
func NewWorld(origin gamemath.Vec2, width, depth, cellSize float64) *World {
	if cellSize <= 0 {
		cellSize = 2
	}
	cell := int(math.Max(1, math.Round(cellSize*spaceScale)))
	w := &World{
		space: resolv.NewSpace(
			int(math.Ceil(width*spaceScale)),
			int(math.Ceil(depth*spaceScale)),
			cell, cell,
		),
		origin: origin,
	}
	w.probe = resolv.NewObject(0, 0, 0, 0, tagProbe)
	w.space.Add(w.probe)
	return w
}

// Add registers a box with the given tags.
func (w *World) Add(bounds gamemath.AABB, data interface{}, tags ...string) *Body {
	b := &Body{Bounds: bounds, Data: data}
	x, y, bw, bh := w.footprint(bounds)
	b.object = resolv.NewObject(x, y, bw, bh, tags...)
	b.object.Data = b
	w.space.Add(b.object)
	return b
}

// Remove unregisters a body.
func (w *World) Remove(b *Body) {
	if b == nil || b.object == nil {
		return
	}
	w.space.Remove(b.object)
	b.object = nil
}

// SetBounds moves or resizes a registered body.
func (w *World) SetBounds(b *Body, bounds gamemath.AABB) {
	if b == nil || b.object == nil {
		return
	}
	b.Bounds = bounds
	b.object.X, b.object.Y, b.object.W, b.object.H = w.footprint(bounds)
	b.object.Update()
}

// Bodies returns every registered body carrying any of the tags.
func (w *World) Bodies(tags ...string) []*Body {
	var out []*Body
	for _, o := range w.space.Objects() {
		b, ok := o.Data.(*Body)
		if !ok {
			continue
		}
		if len(tags) > 0 && !o.HasTags(tags...) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Query returns the bodies with any of the tags whose boxes overlap area.
func (w *World) Query(area gamemath.AABB, tags ...string) []*Body {
	var out []*Body
	for _, b := range w.candidates(area, tags...) {
		if b.Bounds.Overlaps(area) {
			out = append(out, b)
		}
	}
	return out
}

// Raycast sweeps a ray against solid bodies.
func (w *World) Raycast(origin, dir gamemath.Vec3, maxDistance float64) (Hit, bool) {
	return w.sweep(origin, 0, dir, maxDistance, TagSolid)
}

// RaycastTags sweeps a ray against bodies carrying any of the tags.
func (w *World) RaycastTags(origin, dir gamemath.Vec3, maxDistance float64, tags ...string) (Hit, bool) {
	return w.sweep(origin, 0, dir, maxDistance, tags...)
}

// SphereCast sweeps a sphere against solid bodies. Each box is inflated by
// the radius, so box corners are treated as square rather than rounded.
func (w *World) SphereCast(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDistance float64) (Hit, bool) {
	return w.sweep(origin, radius, dir, maxDistance, TagSolid)
}

func (w *World) sweep(origin gamemath.Vec3, radius float64, dir gamemath.Vec3, maxDistance float64, tags ...string) (Hit, bool) {
	dir = dir.Normalize()
	if dir.IsZero() || !gamemath.ValidStep(maxDistance) || !origin.IsFinite() {
		return Hit{}, false
	}

	end := origin.Add(dir.Scale(maxDistance))
	area := gamemath.BoundingPoints(origin, end).Expand(radius)

	var best Hit
	found := false
	for _, b := range w.candidates(area, tags...) {
		box := b.Bounds.Expand(radius)
		if box.Contains(origin) {
			continue
		}
		t, normal, ok := box.RayIntersect(origin, dir, maxDistance)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		center := origin.Add(dir.Scale(t))
		best = Hit{
			Point:    center.Sub(normal.Scale(radius)),
			Normal:   normal,
			Distance: t,
			Body:     b,
		}
		found = true
	}
	return best, found
}

// candidates runs the resolv broadphase over the XZ footprint of area.
func (w *World) candidates(area gamemath.AABB, tags ...string) []*Body {
	w.probe.X, w.probe.Y, w.probe.W, w.probe.H = w.footprint(area)
	w.probe.Update()

	check := w.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	out := make([]*Body, 0, len(check.Objects))
	for _, o := range check.Objects {
		if b, ok := o.Data.(*Body); ok {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) footprint(b gamemath.AABB) (x, y, width, height float64) {
	x = (b.Min.X-w.origin.X)*spaceScale - 1
	y = (b.Min.Z-w.origin.Y)*spaceScale - 1
	width = (b.Max.X-b.Min.X)*spaceScale + 2
	height = (b.Max.Z-b.Min.Z)*spaceScale + 2
	return x, y, width, height
}
