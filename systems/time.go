package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// WithTimeStep wraps a system to skip execution on an empty or invalid step.
func WithTimeStep(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !gamemath.ValidStep(StepDT(e)) {
			return
		}
		system(e)
	}
}

// StepDT returns the dt of the step being run, 0 without a clock.
func StepDT(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}

// SetStep records dt for the coming step. Invalid steps are stored as-is so
// the gameplay systems skip them.
func SetStep(e *ecs.ECS, dt float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.DT = dt
	if gamemath.ValidStep(dt) {
		clock.Elapsed += dt
		clock.Steps++
	}
}
