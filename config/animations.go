package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float64 // frames per second
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 6, Step: 1, Speed: 8},
		Walk:    {First: 0, Last: 7, Step: 1, Speed: 10},
		Running: {First: 0, Last: 7, Step: 1, Speed: 14},
		Jump:    {First: 0, Last: 2, Step: 1, Speed: 10},
		Fall:    {First: 0, Last: 1, Step: 1, Speed: 6},
	},
}
