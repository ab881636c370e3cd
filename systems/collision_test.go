package systems

import (
	"testing"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stubSkierSprite pins the skier sprite lookup to fixed extents so bounds
// math is independent of the shipped images.
func stubSkierSprite(t *testing.T, w, h int, ok bool) {
	t.Helper()
	orig := sizeOf
	sizeOf = func(string) (int, int, bool) { return w, h, ok }
	t.Cleanup(func() { sizeOf = orig })
}

func setupSlope(t *testing.T, skierX, skierY float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestECS()
	factory.CreateSpace(e, 640, 640, 32, 32)

	skier := newTestSkier(t, e, skierX, skierY)
	addToSpace(t, e, skier)
	return e, skier
}

func addToSpace(t *testing.T, e *ecs.ECS, entry *donburi.Entry) {
	t.Helper()
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no space in world")
	}
	components.Space.Get(spaceEntry).Add(components.Object.Get(entry).Object)
}

func placeObstacle(t *testing.T, e *ecs.ECS, x, y float64, category string) {
	t.Helper()
	obstacle := factory.CreateObstacle(e, x, y, category)
	if obstacle == nil {
		t.Fatalf("could not place obstacle %q", category)
	}
	addToSpace(t, e, obstacle)
}

func TestSkierBoundsBiasedAboveCenter(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)

	skier := &components.SkierData{ImageName: "skier_down"}
	skier.Position.X = 100
	skier.Position.Y = 200

	x, y, w, h, ok := skierBounds(skier)
	if !ok {
		t.Fatal("bounds not resolvable")
	}
	if x != 76 || y != 168 || w != 48 || h != 48 {
		t.Fatalf("bounds = (%f, %f, %f, %f), want (76, 168, 48, 48)", x, y, w, h)
	}
}

func TestSkierBoundsMissingSprite(t *testing.T) {
	stubSkierSprite(t, 0, 0, false)

	skier := &components.SkierData{ImageName: "nope"}
	if _, _, _, _, ok := skierBounds(skier); ok {
		t.Fatal("bounds resolved for a missing sprite")
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	a := resolv.NewObject(0, 0, 10, 10)
	adjacent := resolv.NewObject(10, 0, 10, 10)
	overlapping := resolv.NewObject(9, 0, 10, 10)

	if hit := firstOverlapping(a, []*resolv.Object{adjacent}); hit != nil {
		t.Fatal("edge contact counted as overlap")
	}
	if hit := firstOverlapping(a, []*resolv.Object{adjacent, overlapping}); hit != overlapping {
		t.Fatal("real overlap not found")
	}
}

func TestRampLaunchesGroundedSkier(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 132, 113)
	placeObstacle(t, e, 100, 100, "jump_ramp")

	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Jumping {
		t.Fatalf("state after ramp = %v, want jumping", got)
	}
}

func TestRampIgnoredWhileAirborne(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 132, 113)
	placeObstacle(t, e, 100, 100, "jump_ramp")

	StartJump(skier)
	stage := components.Jump.Get(skier).Stage

	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Jumping {
		t.Fatalf("state = %v, want still jumping", got)
	}
	if got := components.Jump.Get(skier).Stage; got != stage {
		t.Fatalf("ramp overflight restarted the jump: stage %d, want %d", got, stage)
	}
}

func TestRockCrashesGroundedSkier(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 120, 110)
	placeObstacle(t, e, 100, 100, "rock_1")

	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Crashed {
		t.Fatalf("state after rock = %v, want crashed", got)
	}
	if got := skierOf(skier).Speed; got != 0 {
		t.Fatalf("crashed speed = %f, want 0", got)
	}
}

func TestRockClearedMidJump(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 120, 110)
	placeObstacle(t, e, 100, 100, "rock_1")

	StartJump(skier)
	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Jumping {
		t.Fatalf("airborne skier hit a rock: state = %v", got)
	}
}

func TestTreeCrashesEvenMidJump(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 124, 110)
	placeObstacle(t, e, 100, 100, "tree")

	StartJump(skier)
	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Crashed {
		t.Fatalf("state after tree = %v, want crashed", got)
	}
}

func TestClearSlopeNoCollision(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 500, 500)
	placeObstacle(t, e, 100, 100, "tree")

	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Skiing {
		t.Fatalf("state = %v, want skiing", got)
	}
}

func TestMissingSpriteSkipsCollision(t *testing.T) {
	stubSkierSprite(t, 0, 0, false)
	e, skier := setupSlope(t, 124, 110)
	placeObstacle(t, e, 100, 100, "tree")

	UpdateCollisions(e)

	if got := stateOf(skier).CurrentState; got != cfg.Skiing {
		t.Fatalf("state = %v, want skiing when bounds are unresolvable", got)
	}
}

func TestCrashedSkierSkipsCollision(t *testing.T) {
	stubSkierSprite(t, 48, 64, true)
	e, skier := setupSlope(t, 124, 110)
	placeObstacle(t, e, 100, 100, "tree")

	crashSkier(skier)
	state := stateOf(skier)
	prev := state.PreviousState

	UpdateCollisions(e)

	if state.CurrentState != cfg.Crashed || state.PreviousState != prev {
		t.Fatal("collision ran against a skier already down")
	}
}
