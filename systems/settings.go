package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/omazim/snowrush/config"
	"github.com/yohamta/donburi/ecs"
)

// Swappable so the toggle can be exercised without a display.
var (
	isFullscreen  = ebiten.IsFullscreen
	setFullscreen = ebiten.SetFullscreen
)

// UpdateSettings toggles fullscreen on its key binding and persists the
// choice so the next launch starts the same way.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionFullscreen).JustPressed {
		return
	}

	enabled := !isFullscreen()
	setFullscreen(enabled)
	_ = SaveSettings(&SavedSettings{Fullscreen: enabled})
}
