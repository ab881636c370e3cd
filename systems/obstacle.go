package systems

import (
	"math"
	"sort"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/systems/factory"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles seeds new obstacles below the viewport as the skier
// descends and culls the ones left far behind.
func UpdateObstacles(e *ecs.ECS) {
	courseEntry, ok := components.Course.First(e.World)
	if !ok {
		return
	}
	course := components.Course.Get(courseEntry)

	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	if components.State.Get(skierEntry).CurrentState == cfg.Dead {
		return
	}
	skier := components.Skier.Get(skierEntry)

	for skier.Position.Y >= course.NextSeedY {
		course.NextSeedY += cfg.Obstacle.SeedInterval

		if course.Rand == nil || course.Rand.Float64() >= cfg.Obstacle.SeedChance {
			continue
		}

		seedObstacle(e, course, skier)
	}

	cullObstacles(e, skier)
}

// seedObstacle rolls a category and a spot just past the bottom edge of the
// viewport, respecting spacing and the skier's safe radius.
func seedObstacle(e *ecs.ECS, course *components.CourseData, skier *components.SkierData) {
	category := rollCategory(course)
	if category == "" {
		return
	}

	width := course.Course.Width
	x := course.Rand.Float64() * width
	y := skier.Position.Y + float64(cfg.C.Height)/2 + cfg.Obstacle.EdgePadding

	if !placementClear(e, skier, x, y) {
		return
	}

	obstacle := factory.CreateObstacle(e, x, y, category)
	if obstacle == nil {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(components.Object.Get(obstacle).Object)
	}
}

// rollCategory picks a weighted random category. Keys are sorted so the
// roll is reproducible for a seeded source.
func rollCategory(course *components.CourseData) string {
	names := make([]string, 0, len(cfg.Obstacle.Categories))
	total := 0
	for name, cat := range cfg.Obstacle.Categories {
		names = append(names, name)
		total += cat.Weight
	}
	if total == 0 {
		return ""
	}
	sort.Strings(names)

	roll := course.Rand.Intn(total)
	for _, name := range names {
		roll -= cfg.Obstacle.Categories[name].Weight
		if roll < 0 {
			return name
		}
	}
	return ""
}

// placementClear rejects spots on top of the skier or crowding another
// obstacle.
func placementClear(e *ecs.ECS, skier *components.SkierData, x, y float64) bool {
	if math.Hypot(x-skier.Position.X, y-skier.Position.Y) < cfg.Obstacle.SafeRadius {
		return false
	}

	clear := true
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if !clear {
			return
		}
		obj := components.Object.Get(entry)
		if math.Hypot(x-obj.X, y-obj.Y) < cfg.Obstacle.MinSpacing {
			clear = false
		}
	})
	return clear
}

// cullObstacles removes obstacles two screens above the skier; the run only
// goes downhill, so they can never matter again.
func cullObstacles(e *ecs.ECS, skier *components.SkierData) {
	cutoff := skier.Position.Y - float64(cfg.C.Height)*2

	var doomed []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Y+obj.H < cutoff {
			doomed = append(doomed, entry)
		}
	})

	for _, entry := range doomed {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		entry.Remove()
	}
}
