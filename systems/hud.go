package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/fonts"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the run distance and the best distance in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(skierEntry)

	margin := int(cfg.HUD.Margin)
	face := fonts.SansBold.Get()

	distance := fmt.Sprintf("%.0f m", score.DistanceM)
	text.Draw(screen, distance, face, margin, margin+20, cfg.DarkBlue)

	best := score.BestM
	if score.BestBeaten {
		best = score.DistanceM
	}
	bestLine := fmt.Sprintf("Best: %.0f m", best)
	if score.BestBeaten {
		text.Draw(screen, bestLine, fonts.Sans.Get(), margin, margin+38, cfg.BrightOrange)
	} else {
		text.Draw(screen, bestLine, fonts.Sans.Get(), margin, margin+38, cfg.DarkBlue)
	}
}
