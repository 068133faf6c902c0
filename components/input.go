package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/character"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionPoller marks the bound actions held right now and reports the device
// used, if any. Sessions driven only by a character source leave it unset.
type ActionPoller interface {
	PollActions(into *[cfg.ActionCount]bool) (InputMethod, bool)
}

// InputData is the per-session input state. Source feeds the character,
// Actions feeds the settings and debug toggles.
type InputData struct {
	Source  character.InputSource
	Actions ActionPoller

	Tracker character.InputTracker
	Frame   character.InputFrame

	Current         [cfg.ActionCount]bool // Current step's Pressed state
	Previous        [cfg.ActionCount]bool // Previous step's Pressed state
	LastInputMethod InputMethod

	// CursorCaptured gates mouse look. Released, the camera ignores deltas.
	CursorCaptured bool
}

// Action returns the edge-aware state of a bound action.
func (d *InputData) Action(id cfg.ActionID) character.ActionState {
	curr, prev := d.Current[id], d.Previous[id]
	return character.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
