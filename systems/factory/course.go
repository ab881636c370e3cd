package factory

import (
	"math/rand"

	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourse loads the course layout and spawns its hand-placed obstacles.
func CreateCourse(ecs *ecs.ECS, path string, rng *rand.Rand) *donburi.Entry {
	course := assets.MustLoadCourse(path)

	entry := archetypes.Course.Spawn(ecs)
	components.Course.SetValue(entry, components.CourseData{
		Course:    course,
		Rand:      rng,
		NextSeedY: course.SkierSpawnY + cfg.Obstacle.SeedInterval,
	})

	for _, spawn := range course.ObstacleSpawns {
		CreateObstacle(ecs, spawn.X, spawn.Y, spawn.Category)
	}

	return entry
}

// AddToSpace registers every entity that owns a resolv object with the space.
func AddToSpace(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space == nil {
			space.Add(obj.Object)
		}
	})
}
