package config

// StateID identifies an animation state driven by the controller.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	Running
	Jump
	Fall
)

// StateToClip maps a state to the clip name the animator plays.
var StateToClip = map[StateID]string{
	Idle:    "Idle",
	Walk:    "Walking",
	Running: "Running",
	Jump:    "Jumping",
	Fall:    "Falling",
}

func (s StateID) String() string {
	if name, ok := StateToClip[s]; ok {
		return name
	}
	return "None"
}
