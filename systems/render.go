package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/omazim/snowrush/assets"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(e *ecs.ECS) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(cfg.C.Width)/2 - camera.Position.X, float64(cfg.C.Height)/2 - camera.Position.Y, true
}

// DrawCourse paints the slope backdrop.
func DrawCourse(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Snow)
}

// DrawObstacles renders every placed obstacle, skipping ones off screen.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := cameraOffset(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obstacle := components.Obstacle.Get(entry)
		obj := components.Object.Get(entry)

		sx := obj.X + ox
		sy := obj.Y + oy
		if sx+obj.W < 0 || sx > width || sy+obj.H < 0 || sy > height {
			return
		}

		img := assets.GetImage(obstacle.ImageName)
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(img, drawOp)
	})
}

// DrawSkier renders the skier sprite centered on its position. A dead
// skier is not drawn at all.
func DrawSkier(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := cameraOffset(e)
	if !ok {
		return
	}

	tags.Skier.Each(e.World, func(entry *donburi.Entry) {
		if components.State.Get(entry).CurrentState == cfg.Dead {
			return
		}

		skier := components.Skier.Get(entry)
		img := assets.GetImage(skier.ImageName)
		bounds := img.Bounds()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(
			skier.Position.X-float64(bounds.Dx())/2+ox,
			skier.Position.Y-float64(bounds.Dy())/2+oy-skier.ArcOffset,
		)
		screen.DrawImage(img, drawOp)
	})
}

// DrawRhino renders the chaser with its current animation frame.
func DrawRhino(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy, ok := cameraOffset(e)
	if !ok {
		return
	}

	tags.Rhino.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		name, ok := anim.FrameImage()
		if !ok {
			return
		}

		obj := components.Object.Get(entry)
		img := assets.GetImage(name)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(obj.X+ox, obj.Y+oy)
		screen.DrawImage(img, drawOp)
	})
}
