package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/omazim/snowrush/config"
	"github.com/omazim/snowrush/fonts"
	"github.com/omazim/snowrush/systems"
	"github.com/omazim/snowrush/ui"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once

	// The title bobs up and down on a looping tween.
	titleBob    *gween.Sequence
	titleOffset float64
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.Update()

	value, _, seqDone := ms.titleBob.Update(1.0 / 60.0)
	if seqDone {
		ms.titleBob.Reset()
	}
	ms.titleOffset = float64(value)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)

	title := "SNOWRUSH"
	face := fonts.SansTitle.Get()
	titleWidth := len(title) * 20
	x := (screen.Bounds().Dx() - titleWidth) / 2
	y := int(cfg.Menu.TitleY + ms.titleOffset)
	text.Draw(screen, title, face, x, y, cfg.Menu.TitleColor)
}

func (ms *MenuScene) configure() {
	records := systems.LoadRecords()

	ms.ui = ui.NewMenuUI(
		records.BestDistanceM,
		func() {
			ms.sceneChanger.ChangeScene(NewSkiScene(ms.sceneChanger))
		},
		func() {
			_ = systems.ClearRecords()
		},
		func() {
			os.Exit(0)
		},
	)

	bob := float32(cfg.Menu.TitleBobHeight)
	ms.titleBob = gween.NewSequence(
		gween.New(0, bob, 0.8, ease.InOutQuad),
		gween.New(bob, 0, 0.8, ease.InOutQuad),
	)
}
