package components

import (
	"github.com/automoto/thirdperson/shared/character"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Rig *character.OrbitCamera

	// View is what gets rendered: the rig's transform, a zone's fixed view,
	// or a blend between the two.
	View character.CameraTransform

	Zone      *donburi.Entry // active camera zone, nil while the rig is live
	Blend     *gween.Tween   // nil when no switch is in progress
	BlendFrom character.CameraTransform
	BlendTime float64 // seconds, 0 cuts instantly
}

var Camera = donburi.NewComponentType[CameraData]()
