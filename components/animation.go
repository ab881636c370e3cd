package components

import (
	"github.com/omazim/snowrush/assets/animations"
	"github.com/omazim/snowrush/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     config.StateID
	Frames           map[config.StateID][]string // frame image names, indexed by Animation.Frame()
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentState = state
			a.CurrentAnimation.Restart()
			a.CurrentAnimation.Looped = false
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentState = state
	}
}

// FrameImage returns the image name for the current animation frame.
func (a *AnimationData) FrameImage() (string, bool) {
	if a.CurrentAnimation == nil {
		return "", false
	}
	frames := a.Frames[a.CurrentState]
	idx := a.CurrentAnimation.Frame()
	if idx < 0 || idx >= len(frames) {
		return "", false
	}
	return frames[idx], true
}

var Animation = donburi.NewComponentType[AnimationData]()
