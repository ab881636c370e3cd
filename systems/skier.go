package systems

import (
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Gameplay actions dispatched to the skier, in a fixed order so two keys
// pressed on the same frame resolve deterministically.
var skierActions = [...]cfg.ActionID{
	cfg.ActionTurnLeft,
	cfg.ActionTurnRight,
	cfg.ActionTurnUp,
	cfg.ActionTurnDown,
	cfg.ActionJump,
}

// UpdateSkier dispatches buffered input to the skier and applies per-tick
// slope movement. Must run after UpdateInput.
func UpdateSkier(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Skier.Each(ecs.World, func(entry *donburi.Entry) {
		for _, action := range skierActions {
			if GetAction(input, action).JustPressed {
				HandleSkierAction(entry, action)
			}
		}

		moveSkier(entry)
	})
}

// HandleSkierAction applies a single input action to the skier and reports
// whether it produced an effect. Dead skiers ignore everything.
func HandleSkierAction(entry *donburi.Entry, action cfg.ActionID) bool {
	state := components.State.Get(entry)
	if state.CurrentState == cfg.Dead {
		return false
	}

	skier := components.Skier.Get(entry)

	switch action {
	case cfg.ActionTurnLeft:
		turnSkier(skier, state, cfg.DirFullLeft)
		return true
	case cfg.ActionTurnRight:
		turnSkier(skier, state, cfg.DirFullRight)
		return true
	case cfg.ActionTurnUp:
		if state.CurrentState == cfg.Crashed {
			return false
		}
		if skier.Direction == cfg.DirFullLeft || skier.Direction == cfg.DirFullRight {
			skier.Position.Y -= cfg.Skier.StartingSpeed
			return true
		}
		// Cannot sidestep uphill while facing downhill.
		return false
	case cfg.ActionTurnDown:
		if state.CurrentState == cfg.Crashed {
			return false
		}
		setDirection(skier, state, cfg.DirDown)
		return true
	case cfg.ActionJump:
		return StartJump(entry)
	}

	return false
}

// turnSkier rotates the facing one step toward the given extreme. A crashed
// skier first recovers, standing up facing that extreme; a skier already at
// the extreme gets a fixed positional nudge instead.
func turnSkier(skier *components.SkierData, state *components.StateData, toward cfg.DirectionID) {
	if state.CurrentState == cfg.Crashed {
		recoverFromCrash(skier, state, toward)
	}

	if skier.Direction == toward {
		// Nudge magnitude is the starting speed, not the current speed.
		if toward == cfg.DirFullLeft {
			skier.Position.X -= cfg.Skier.StartingSpeed
		} else {
			skier.Position.X += cfg.Skier.StartingSpeed
		}
		return
	}

	if toward == cfg.DirFullLeft {
		setDirection(skier, state, skier.Direction-1)
	} else {
		setDirection(skier, state, skier.Direction+1)
	}
}

// setDirection turns the skier and refreshes the sprite. While airborne the
// sprite comes from the jump sequence; the new facing shows on landing.
func setDirection(skier *components.SkierData, state *components.StateData, dir cfg.DirectionID) {
	skier.Direction = dir
	if state.CurrentState == cfg.Jumping {
		return
	}
	if img, ok := cfg.DirectionImages[dir]; ok {
		skier.ImageName = img
	}
}

func recoverFromCrash(skier *components.SkierData, state *components.StateData, dir cfg.DirectionID) {
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Skiing
	state.StateTimer = 0
	skier.Speed = cfg.Skier.StartingSpeed
	setDirection(skier, state, dir)
}

// moveSkier applies the per-tick displacement for the current facing.
// Only a skiing or airborne skier moves; the extremes hold position.
func moveSkier(entry *donburi.Entry) {
	state := components.State.Get(entry)
	if state.CurrentState != cfg.Skiing && state.CurrentState != cfg.Jumping {
		return
	}

	skier := components.Skier.Get(entry)

	switch skier.Direction {
	case cfg.DirLeftDown:
		d := skier.Speed / cfg.Skier.DiagonalSpeedReducer
		skier.Position.X -= d
		skier.Position.Y += d
	case cfg.DirDown:
		skier.Position.Y += skier.Speed
	case cfg.DirRightDown:
		d := skier.Speed / cfg.Skier.DiagonalSpeedReducer
		skier.Position.X += d
		skier.Position.Y += d
	}

	state.StateTimer++
}

// crashSkier puts the skier down where they stand. Speed drops to zero
// until a turn input recovers them.
func crashSkier(entry *donburi.Entry) {
	state := components.State.Get(entry)
	skier := components.Skier.Get(entry)

	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Crashed
	state.StateTimer = 0
	skier.Speed = 0
	skier.ImageName = cfg.CrashImage

	TriggerScreenShake(entry.World, cfg.Skier.CrashShakeIntensity, cfg.Skier.CrashShakeDuration)
}

// KillSkier applies the external kill signal. Terminal: position, speed and
// state freeze, and rendering of the skier stops.
func KillSkier(entry *donburi.Entry) {
	state := components.State.Get(entry)
	if state.CurrentState == cfg.Dead {
		return
	}

	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Dead
	state.StateTimer = 0
	components.Skier.Get(entry).Speed = 0
}
