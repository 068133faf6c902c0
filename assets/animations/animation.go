package animations

// Animation walks a range of sprite-sheet frames at a fixed rate. Time is
// fed in seconds, so playback speed does not depend on the step rate.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices to move per advance
	FPS              float64 // advances per second
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // stay on the last frame instead of looping
}

// Update advances playback by dt seconds. Several frames may pass in one
// long step.
func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || !(dt > 0) {
		return
	}
	a.elapsed += dt
	period := 1 / a.FPS
	for a.elapsed >= period {
		a.elapsed -= period
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
				a.elapsed = 0
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, fps float64) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
		frame: first,
	}
}
