package systems

import (
	"time"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// jumpNow is swappable so the stage timer can be driven in tests.
var jumpNow = time.Now

func jumpStageDelay() time.Duration {
	return time.Duration(cfg.Skier.JumpStageDelayMs) * time.Millisecond
}

// StartJump begins the airborne pose sequence: stage 0 shows immediately and
// the next stage is armed one delay ahead. Refused while crashed or dead; a
// jump already in flight simply continues.
func StartJump(entry *donburi.Entry) bool {
	state := components.State.Get(entry)

	switch state.CurrentState {
	case cfg.Crashed, cfg.Dead:
		return false
	case cfg.Jumping:
		return true
	}

	skier := components.Skier.Get(entry)
	jump := components.Jump.Get(entry)

	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Jumping
	state.StateTimer = 0

	jump.Stage = 0
	jump.NextStageAt = jumpNow().Add(jumpStageDelay())
	skier.ImageName = cfg.JumpStageImages[0]

	startJumpArc(entry, skier)
	return true
}

// UpdateJump advances the airborne pose whenever the wall clock passes the
// armed deadline. Reaching the last pose ends the jump. Crashed or dead
// skiers are skipped, so a kill mid-air swallows any pending advance.
func UpdateJump(e *ecs.ECS) {
	tags.Skier.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		if state.CurrentState != cfg.Jumping {
			return
		}

		skier := components.Skier.Get(entry)
		jump := components.Jump.Get(entry)

		now := jumpNow()
		for state.CurrentState == cfg.Jumping && !now.Before(jump.NextStageAt) {
			jump.Stage++
			if jump.Stage >= 0 && jump.Stage < len(cfg.JumpStageImages) {
				skier.ImageName = cfg.JumpStageImages[jump.Stage]
			}

			if jump.Stage >= cfg.Skier.JumpStages-1 {
				landSkier(skier, state)
				break
			}
			jump.NextStageAt = jump.NextStageAt.Add(jumpStageDelay())
		}
	})
}

func landSkier(skier *components.SkierData, state *components.StateData) {
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Skiing
	state.StateTimer = 0
	skier.ArcOffset = 0
	setDirection(skier, state, skier.Direction)
}

// startJumpArc drives the sprite lift over the whole jump: up to the apex
// over the first half, back down over the second.
func startJumpArc(entry *donburi.Entry, skier *components.SkierData) {
	if !entry.HasComponent(components.Tween) {
		return
	}

	half := float32(cfg.Skier.JumpStages*cfg.Skier.JumpStageDelayMs) / 2000.0
	arc := float32(cfg.Skier.JumpArcHeight)
	tw := gween.NewSequence(
		gween.New(0, arc, half, ease.OutQuad),
		gween.New(arc, 0, half, ease.InQuad),
	)
	components.Tween.Set(entry, tw)
	skier.ArcOffset = 0
}

// UpdateTweens eases the airborne sprite lift each tick. Grounded skiers
// carry no lift.
func UpdateTweens(e *ecs.ECS) {
	tags.Skier.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Tween) {
			return
		}

		skier := components.Skier.Get(entry)
		state := components.State.Get(entry)

		if state.CurrentState != cfg.Jumping {
			skier.ArcOffset = 0
			return
		}

		tw := components.Tween.Get(entry)
		value, _, done := tw.Update(1.0 / 60.0)
		if done {
			skier.ArcOffset = 0
			return
		}
		skier.ArcOffset = float64(value)
	})
}
