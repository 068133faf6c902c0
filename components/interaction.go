package components

import (
	"github.com/yohamta/donburi"
)

// InteractionData tracks what the camera is pointing at.
type InteractionData struct {
	Target *donburi.Entry
	Prompt string
}

var Interaction = donburi.NewComponentType[InteractionData]()

type DebugData struct {
	Enabled bool
	Scale   float64
}

var Debug = donburi.NewComponentType[DebugData]()
