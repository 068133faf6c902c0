package gamemath

import "math"

// AABB is an axis-aligned box.
type AABB struct {
	Min, Max Vec3
}

// BoxFromFootprint builds a box from an XZ rectangle and a vertical span.
func BoxFromFootprint(x, z, w, d, base, height float64) AABB {
	return AABB{
		Min: Vec3{x, base, z},
		Max: Vec3{x + w, base + height, z + d},
	}
}

func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Expand grows the box by r on every side.
func (b AABB) Expand(r float64) AABB {
	d := Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies strictly inside the box.
func (b AABB) Contains(p Vec3) bool {
	return p.X > b.Min.X && p.X < b.Max.X &&
		p.Y > b.Min.Y && p.Y < b.Max.Y &&
		p.Z > b.Min.Z && p.Z < b.Max.Z
}

// Overlaps reports whether the interiors of a and b intersect.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// Union returns the smallest box containing both.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// BoundingPoints returns the box enclosing all points.
func BoundingPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Union(AABB{Min: p, Max: p})
	}
	return b
}

// RayIntersect runs a slab test for a ray starting at origin along the unit
// vector dir. It returns the entry distance and the normal of the entered face.
// Rays starting inside the box report no hit.
func (b AABB) RayIntersect(origin, dir Vec3, maxDistance float64) (float64, Vec3, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var normal Vec3

	for axis := 0; axis < 3; axis++ {
		o := origin.Component(axis)
		d := dir.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math.Abs(d) < Epsilon {
			if o < lo || o > hi {
				return 0, Vec3{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tNear {
			tNear = t1
			normal = Vec3{}.WithComponent(axis, sign)
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar || tFar < 0 {
			return 0, Vec3{}, false
		}
	}

	if tNear < 0 || tNear > maxDistance {
		return 0, Vec3{}, false
	}
	return tNear, normal, true
}
