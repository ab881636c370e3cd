package systems

import (
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore tracks the deepest descent this run, in meters.
func UpdateScore(e *ecs.ECS) {
	tags.Skier.Each(e.World, func(entry *donburi.Entry) {
		if components.State.Get(entry).CurrentState == cfg.Dead {
			return
		}

		skier := components.Skier.Get(entry)
		score := components.Score.Get(entry)

		meters := (skier.Position.Y - score.StartY) / cfg.HUD.PixelsPerMeter
		if meters > score.DistanceM {
			score.DistanceM = meters
		}
		if score.DistanceM > score.BestM {
			score.BestBeaten = true
		}
	})
}
