package systems

import (
	"testing"

	"github.com/omazim/snowrush/components"
	cfg "github.com/omazim/snowrush/config"
)

func TestScoreTracksDeepestDescent(t *testing.T) {
	e := newTestECS()
	skier := newTestSkier(t, e, 0, 1000)
	score := components.Score.Get(skier)

	skierOf(skier).Position.Y = 1000 + 40*cfg.HUD.PixelsPerMeter
	UpdateScore(e)
	if score.DistanceM != 40 {
		t.Fatalf("distance = %f m, want 40", score.DistanceM)
	}

	// Sidestepping back uphill never takes distance away.
	skierOf(skier).Position.Y = 1000 + 10*cfg.HUD.PixelsPerMeter
	UpdateScore(e)
	if score.DistanceM != 40 {
		t.Fatalf("distance shrank to %f m after moving uphill", score.DistanceM)
	}
}

func TestScoreMarksABeatenBest(t *testing.T) {
	e := newTestECS()
	skier := newTestSkier(t, e, 0, 0)
	score := components.Score.Get(skier)
	score.BestM = 50

	skierOf(skier).Position.Y = 49 * cfg.HUD.PixelsPerMeter
	UpdateScore(e)
	if score.BestBeaten {
		t.Fatal("best marked beaten before passing it")
	}

	skierOf(skier).Position.Y = 51 * cfg.HUD.PixelsPerMeter
	UpdateScore(e)
	if !score.BestBeaten {
		t.Fatal("best not marked beaten after passing it")
	}
}

func TestScoreFreezesOnDeath(t *testing.T) {
	e := newTestECS()
	skier := newTestSkier(t, e, 0, 0)
	score := components.Score.Get(skier)

	skierOf(skier).Position.Y = 30 * cfg.HUD.PixelsPerMeter
	UpdateScore(e)
	KillSkier(skier)

	skierOf(skier).Position.Y = 60 * cfg.HUD.PixelsPerMeter
	UpdateScore(e)

	if score.DistanceM != 30 {
		t.Fatalf("distance = %f m after death, want frozen at 30", score.DistanceM)
	}
}
