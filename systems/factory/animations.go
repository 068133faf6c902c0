package factory

import (
	"fmt"

	"github.com/automoto/thirdperson/assets/animations"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
)

// GenerateAnimations creates an AnimatorData based on the character key
// (e.g., "player") which maps to a set of clip definitions in config.
func GenerateAnimations(key string) (*components.AnimatorData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions found for key: %s", key)
	}

	animData := &components.AnimatorData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
		CurrentSheet: cfg.StateNone,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.SetAnimation(cfg.Idle)

	return animData, nil
}
