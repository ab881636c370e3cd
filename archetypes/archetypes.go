package archetypes

import (
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Skier = newArchetype(
		tags.Skier,
		components.Skier,
		components.Object,
		components.State,
		components.Jump,
		components.Tween,
		components.Score,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Rhino = newArchetype(
		tags.Rhino,
		components.Rhino,
		components.Object,
		components.State,
		components.Animation,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Course = newArchetype(
		tags.Course,
		components.Course,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
