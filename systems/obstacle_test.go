package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/omazim/snowrush/archetypes"
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/systems/factory"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestCourse(t *testing.T, e *ecs.ECS, width float64, seed int64) *components.CourseData {
	t.Helper()
	entry := archetypes.Course.Spawn(e)
	components.Course.SetValue(entry, components.CourseData{
		Course: &assets.Course{Name: "test", Width: width},
		Rand:   rand.New(rand.NewSource(seed)),
	})
	return components.Course.Get(entry)
}

func countObstacles(e *ecs.ECS) int {
	count := 0
	tags.Obstacle.Each(e.World, func(*donburi.Entry) { count++ })
	return count
}

func TestSeedingFollowsTheDescent(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 100000, 128, 128)
	skier := newTestSkier(t, e, 640, 0)
	course := newTestCourse(t, e, 1280, 7)
	course.NextSeedY = cfg.Obstacle.SeedInterval

	// A long descent must seed something with any reasonable chance.
	skierOf(skier).Position.Y = 5000
	UpdateObstacles(e)

	if countObstacles(e) == 0 {
		t.Fatal("no obstacles seeded over a 5000px descent")
	}
	if course.NextSeedY <= 5000 {
		t.Fatalf("seed cursor = %f, want past the skier", course.NextSeedY)
	}
}

func TestSeedingStopsWhenSkierIsDead(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 100000, 128, 128)
	skier := newTestSkier(t, e, 640, 0)
	course := newTestCourse(t, e, 1280, 7)
	course.NextSeedY = cfg.Obstacle.SeedInterval

	KillSkier(skier)
	skierOf(skier).Position.Y = 5000
	UpdateObstacles(e)

	if got := countObstacles(e); got != 0 {
		t.Fatalf("%d obstacles seeded for a dead skier, want 0", got)
	}
}

func TestSeededObstaclesSitBelowTheViewport(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 100000, 128, 128)
	skier := newTestSkier(t, e, 640, 0)
	course := newTestCourse(t, e, 1280, 11)
	course.NextSeedY = cfg.Obstacle.SeedInterval

	skierOf(skier).Position.Y = 3000
	UpdateObstacles(e)

	minY := 0.0 + float64(cfg.C.Height)/2
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Y < minY {
			t.Fatalf("obstacle seeded at y=%f, above the first possible seed line %f", obj.Y, minY)
		}
		if obj.X < 0 || obj.X > 1280 {
			t.Fatalf("obstacle seeded at x=%f, outside the course", obj.X)
		}
	})
}

func TestPlacementRespectsSafeRadius(t *testing.T) {
	e := newTestECS()
	skier := newTestSkier(t, e, 640, 1000)
	s := skierOf(skier)

	if placementClear(e, s, 640, 1000+cfg.Obstacle.SafeRadius-1) {
		t.Fatal("placement allowed inside the skier's safe radius")
	}
	if !placementClear(e, s, 640, 1000+cfg.Obstacle.SafeRadius+1) {
		t.Fatal("placement refused outside the safe radius")
	}
}

func TestPlacementRespectsMinSpacing(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 10000, 128, 128)
	skier := newTestSkier(t, e, 0, 0)
	s := skierOf(skier)

	if factory.CreateObstacle(e, 600, 2000, "tree") == nil {
		t.Fatal("could not place reference tree")
	}

	tooClose := 600 + cfg.Obstacle.MinSpacing/2
	if placementClear(e, s, tooClose, 2000) {
		t.Fatal("placement allowed inside min spacing of another obstacle")
	}
	if !placementClear(e, s, 600+cfg.Obstacle.MinSpacing*2, 2000) {
		t.Fatal("placement refused well clear of other obstacles")
	}
}

func TestRollCategoryAlwaysValid(t *testing.T) {
	e := newTestECS()
	course := newTestCourse(t, e, 1280, 3)

	for i := 0; i < 100; i++ {
		name := rollCategory(course)
		if _, ok := cfg.Obstacle.Categories[name]; !ok {
			t.Fatalf("roll %d produced unknown category %q", i, name)
		}
	}
}

func TestCullRemovesObstaclesFarUphill(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1280, 100000, 128, 128)
	skier := newTestSkier(t, e, 640, 0)
	newTestCourse(t, e, 1280, 5)

	behind := factory.CreateObstacle(e, 200, 100, "rock_1")
	ahead := factory.CreateObstacle(e, 200, 5000, "rock_1")
	if behind == nil || ahead == nil {
		t.Fatal("could not place obstacles")
	}

	skierOf(skier).Position.Y = 100 + float64(cfg.C.Height)*2 + 100
	cullObstacles(e, skierOf(skier))

	if got := countObstacles(e); got != 1 {
		t.Fatalf("%d obstacles after cull, want 1", got)
	}
	if !ahead.Valid() {
		t.Fatal("downhill obstacle was culled")
	}
}

func TestSeededPlacementIsReproducible(t *testing.T) {
	run := func() []float64 {
		e := newTestECS()
		factory.CreateSpace(e, 1280, 100000, 128, 128)
		skier := newTestSkier(t, e, 640, 0)
		course := newTestCourse(t, e, 1280, 42)
		course.NextSeedY = cfg.Obstacle.SeedInterval

		skierOf(skier).Position.Y = 4000
		UpdateObstacles(e)

		var xs []float64
		tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
			xs = append(xs, components.Object.Get(entry).X)
		})
		return xs
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("runs seeded %d vs %d obstacles", len(first), len(second))
	}
	for i := range first {
		if math.Abs(first[i]-second[i]) > 1e-9 {
			t.Fatalf("obstacle %d at x=%f vs x=%f across identical seeds", i, first[i], second[i])
		}
	}
}
