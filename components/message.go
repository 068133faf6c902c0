package components

import "github.com/yohamta/donburi"

// MessageData is the session's short-lived status message.
type MessageData struct {
	Text      string
	Remaining float64 // seconds left on screen, 0 = hidden
}

var Message = donburi.NewComponentType[MessageData]()
