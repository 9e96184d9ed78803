package scenes

import (
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene is the match setup screen
type MenuScene struct {
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	logger       *log.Logger
	setupUI      *ui.SetupUI
}

// NewMenuScene creates a setup screen pre-filled with settings
func NewMenuScene(sc SceneChanger, settings systems.SavedSettings, logger *log.Logger) *MenuScene {
	ms := &MenuScene{sceneChanger: sc, settings: &settings, logger: logger}
	ms.setupUI = ui.NewSetupUI(ms.settings, ms.startMatch)
	return ms
}

func (ms *MenuScene) Update() {
	ms.setupUI.Update()

	// Enter starts without reaching for the mouse
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ms.startMatch()
	}
}

func (ms *MenuScene) startMatch() {
	if err := systems.SaveSettings(*ms.settings); err != nil {
		ms.logger.Warn("settings not saved", "err", err)
	}
	ms.sceneChanger.ChangeScene(NewMatchScene(ms.sceneChanger, *ms.settings, ms.logger))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	ms.setupUI.UI.Draw(screen)
}
