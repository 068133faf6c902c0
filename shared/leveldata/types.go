// Package leveldata turns Tiled maps into 3D level descriptions. Maps are
// drawn top-down: the map's X axis is world X, map up is world +Z, and
// heights come from object properties.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import (
	"github.com/automoto/thirdperson/shared/gamemath"
)

// Object groups read from a map.
const (
	GroupSolids      = "Solids"
	GroupDoors       = "Doors"
	GroupCameraZones = "CameraZones"
	GroupPlayerSpawn = "PlayerSpawn"
)

// Level holds everything the scene needs to build a world.
type Level struct {
	Name  string
	Width float64 // world units along X
	Depth float64 // world units along Z

	Floor       Box
	Solids      []Box
	Doors       []DoorSpawn
	CameraZones []CameraZone
	Spawn       Spawn
}

// Box is a solid axis-aligned block.
type Box struct {
	Name   string
	Bounds gamemath.AABB
}

// DoorSpawn places a door hinge. Yaw is the closed heading in degrees.
type DoorSpawn struct {
	Name  string
	Hinge gamemath.Vec3
	Yaw   float64
}

// CameraZone is a trigger volume with the fixed view used inside it.
type CameraZone struct {
	Name     string
	Bounds   gamemath.AABB
	Position gamemath.Vec3
	Target   gamemath.Vec3
}

// Spawn is where the player starts.
type Spawn struct {
	Position gamemath.Vec3
	Yaw      float64
}

// Options control the pixel to world conversion.
type Options struct {
	PixelsPerUnit float64
	WallHeight    float64 // height of solids without a "height" property
	FloorDepth    float64 // thickness of the generated floor slab
	ZoneHeight    float64 // height of camera zones without a "height" property
}
