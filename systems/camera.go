package systems

import (
	"math"

	"github.com/omazim/snowrush/components"
	"github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}

	// Freeze the camera once the run is over so the scene stays put.
	if components.State.Get(skierEntry).CurrentState == config.Dead {
		return
	}

	skier := components.Skier.Get(skierEntry)

	// Ease the look-ahead toward its downhill offset; only a moving skier
	// needs the run ahead in view.
	targetLookAhead := 0.0
	if skier.Speed > 0 {
		targetLookAhead = config.Camera.LookAheadY
	}
	camera.LookAheadY += (targetLookAhead - camera.LookAheadY) * config.Camera.FollowSmoothing

	targetX := skier.Position.X
	targetY := skier.Position.Y + camera.LookAheadY

	// Keep the slope filling the screen horizontally. Downhill is unbounded.
	if courseEntry, ok := components.Course.First(e.World); ok {
		course := components.Course.Get(courseEntry)
		if course.Course != nil {
			screenWidth := float64(config.C.Width)
			minCameraX := screenWidth / 2
			maxCameraX := course.Course.Width - screenWidth/2
			targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
		}
	}

	// Center the camera on the target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	camera.Position.X += offsetX
	camera.Position.Y += offsetY

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
