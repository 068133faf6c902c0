package components

import "github.com/yohamta/donburi"

// ClockData carries the step's dt. The scene writes it before any system runs.
type ClockData struct {
	DT      float64
	Elapsed float64
	Steps   int
}

var Clock = donburi.NewComponentType[ClockData]()
