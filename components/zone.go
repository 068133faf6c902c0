package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraZoneData is a trigger volume that swaps the view to a fixed camera
// while the player stands inside it.
type CameraZoneData struct {
	Name     string
	Bounds   gamemath.AABB
	Position gamemath.Vec3
	Target   gamemath.Vec3
}

var CameraZone = donburi.NewComponentType[CameraZoneData]()
