package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/systems"
	"github.com/omazim/snowrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Vertical extent of the collision space. The run is open-ended downhill,
// so this just needs to outlast any realistic descent.
const slopeSpaceHeight = 1000000

// SkiScene runs a downhill round.
type SkiScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSkiScene creates a new downhill run scene
func NewSkiScene(sc SceneChanger) *SkiScene {
	return &SkiScene{sceneChanger: sc}
}

func (ss *SkiScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SkiScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkiScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createSkiScene := func() interface{} {
		return NewSkiScene(ss.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger)
	}

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.NewUpdatePause(ss.sceneChanger, createSkiScene, createMenuScene))
	ecs.AddSystem(systems.NewUpdateGameOver(ss.sceneChanger, createSkiScene, createMenuScene))

	// Gameplay systems, skipped while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSkier))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateJump))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRhino))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateScore))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateTweens))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawCourse)
	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawSkier)
	ecs.AddRenderer(cfg.Default, systems.DrawRhino)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	ss.ecs = ecs

	// Build the world: course first, so the space and skier can use its layout.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	courseEntry := factory.CreateCourse(ss.ecs, "courses/downhill.tmx", rng)
	course := components.Course.Get(courseEntry).Course

	factory.CreateSpace(ss.ecs, int(course.Width), slopeSpaceHeight, 128, 128)
	factory.CreateCamera(ss.ecs)

	skier := factory.CreateSkier(ss.ecs, course.SkierSpawnX, course.SkierSpawnY)
	components.Score.Get(skier).BestM = systems.LoadRecords().BestDistanceM

	// Register every collision object built so far with the space.
	factory.AddToSpace(ss.ecs)

	// Start the camera on the skier instead of easing in from the origin.
	if cameraEntry, ok := components.Camera.First(ss.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = course.SkierSpawnX
		camera.Position.Y = course.SkierSpawnY
	}
}
