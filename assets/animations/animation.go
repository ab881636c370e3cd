package animations

// Animation steps through a frame index range at a fixed tick rate. It only
// tracks the index; callers map it to an image name.
type Animation struct {
	First            int
	Last             int
	Step             int     // index delta per advance
	SpeedInTps       float32 // ticks between advances
	Looped           bool    // set once the range has been played through
	FreezeOnComplete bool    // hold the last frame instead of wrapping

	frame        int
	frameCounter float32
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frame:        first,
		frameCounter: speed,
	}
}

// Update advances the counter one tick and steps the frame when it expires.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}

	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
}
