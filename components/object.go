package components

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()

type SpaceData struct {
	*collision.World
}

var Space = donburi.NewComponentType[SpaceData]()
