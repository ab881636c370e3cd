package factory

import (
	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateSkier(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	skier := archetypes.Skier.Spawn(ecs)

	startImage := cfg.DirectionImages[cfg.DirDown]
	components.Skier.SetValue(skier, components.SkierData{
		Position:  math.Vec2{X: x, Y: y},
		Direction: cfg.DirDown,
		Speed:     cfg.Skier.StartingSpeed,
		ImageName: startImage,
	})
	components.State.SetValue(skier, components.StateData{
		CurrentState:  cfg.Skiing,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Score.SetValue(skier, components.ScoreData{
		StartY: y,
	})
	components.Tween.Set(skier, gween.NewSequence())

	// Placeholder extents; the collision system re-derives the rect from the
	// current sprite every tick.
	obj := resolv.NewObject(x, y, 1, 1)
	obj.AddTags(tags.ResolvSkier)
	obj.Data = skier
	components.Object.SetValue(skier, components.ObjectData{Object: obj})

	return skier
}
