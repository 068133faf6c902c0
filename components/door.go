package components

import (
	"github.com/automoto/thirdperson/collision"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
)

type DoorData struct {
	Name string
	Door *character.Door
	Body *collision.Body // solid panel, follows the swing
}

var Door = donburi.NewComponentType[DoorData]()
