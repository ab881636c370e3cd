package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/fonts"
	"github.com/omazim/snowrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the run-over system: it arms the overlay when
// the skier dies, persists a beaten record, and routes the menu selection.
func NewUpdateGameOver(sceneChanger SceneChanger, createSkiScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		skierEntry, ok := tags.Skier.First(e.World)
		if !ok {
			return
		}
		if components.State.Get(skierEntry).CurrentState != cfg.Dead {
			return
		}

		gameOver, armed := getOrCreateGameOver(e)
		if armed {
			score := components.Score.Get(skierEntry)
			gameOver.DistanceM = score.DistanceM
			gameOver.BestM = score.BestM
			gameOver.BestBeaten = score.BestBeaten
			if score.BestBeaten {
				gameOver.BestM = score.DistanceM
				_ = SaveBestDistance(score.DistanceM)
			}
		}

		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		// R restarts straight away; back bails out to the main menu
		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createSkiScene())
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createSkiScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the run-over overlay once the skier is dead.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	skierEntry, ok := tags.Skier.First(e.World)
	if !ok {
		return
	}
	if components.State.Get(skierEntry).CurrentState != cfg.Dead {
		return
	}

	gameOver, _ := getOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())

	// Dim the frozen run behind the overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.BlackOverlay,
		false,
	)

	// Title
	titleFont := fonts.SansTitle.Get()
	title := "CAUGHT!"
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	// Run stats
	statsFont := fonts.SansBold.Get()
	stats := fmt.Sprintf("Distance: %.0f m   Best: %.0f m", gameOver.DistanceM, gameOver.BestM)
	if gameOver.BestBeaten {
		stats = fmt.Sprintf("Distance: %.0f m   New best!", gameOver.DistanceM)
	}
	statsWidth := len(stats) * 10
	statsX := int((width - float64(statsWidth)) / 2)
	text.Draw(screen, stats, statsFont, statsX, int(cfg.GameOver.StatsY), cfg.GameOver.TextColorNormal)

	// Menu options
	menuOptions := cfg.GameOver.MenuOptions
	for i, option := range menuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		// Center text horizontally
		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, statsFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// getOrCreateGameOver returns the singleton GameOver component. The second
// return is true the first time, when the overlay has just been armed.
func getOrCreateGameOver(e *ecs.ECS) (*components.GameOverData, bool) {
	if ent, ok := components.GameOver.First(e.World); ok {
		return components.GameOver.Get(ent), false
	}

	ent := e.World.Entry(e.World.Create(components.GameOver))
	components.GameOver.SetValue(ent, components.GameOverData{
		SelectedOption: components.GameOverRetry,
	})
	return components.GameOver.Get(ent), true
}
