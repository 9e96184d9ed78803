package scenes

import (
	"fmt"
	"image/color"
	"strconv"
	"sync"
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/core"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MatchScene hosts one engine. The engine's clock is the time since the
// scene was configured.
type MatchScene struct {
	sceneChanger SceneChanger
	settings     systems.SavedSettings
	logger       *log.Logger
	once         sync.Once

	engine *core.Engine
	start  time.Time

	flash      *gween.Tween
	flashSide  cfg.Side
	flashAlpha float32

	winner string
	debug  bool
}

// NewMatchScene creates a match scene for settings
func NewMatchScene(sc SceneChanger, settings systems.SavedSettings, logger *log.Logger) *MatchScene {
	return &MatchScene{sceneChanger: sc, settings: settings, logger: logger}
}

// MatchConfig turns host settings into an engine configuration.
func MatchConfig(s systems.SavedSettings, seed int64) (core.Config, error) {
	d, err := cfg.ParseDifficulty(s.Difficulty)
	if err != nil {
		return core.Config{}, err
	}
	return core.Config{
		Player1Name:  s.Player1Name,
		Player2Name:  s.Player2Name,
		Player1IsAI:  s.Player1IsAI,
		Player2IsAI:  s.Player2IsAI,
		AIDifficulty: d,
		TargetScore:  s.TargetScore,
		ArenaWidth:   cfg.Defaults.ArenaWidth,
		ArenaHeight:  cfg.Defaults.ArenaHeight,
		Seed:         seed,
	}, nil
}

func (ms *MatchScene) configure() {
	matchCfg, err := MatchConfig(ms.settings, time.Now().UnixNano())
	if err == nil {
		ms.engine, err = core.NewEngine(matchCfg, core.Options{
			Logger: ms.logger,
			OnGameEnd: func(winner string, _ core.FinalScores) {
				ms.winner = winner
			},
		})
	}
	if err != nil {
		ms.logger.Error("could not create match", "err", err)
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.settings, ms.logger))
		return
	}
	ms.start = time.Now()
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	if ms.engine == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ms.engine.Stop()
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.settings, ms.logger))
		return
	}
	ms.handleStateKeys()

	ms.engine.SetInput(cfg.SideLeft, components.MovementIntent{
		Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		Down: ebiten.IsKeyPressed(ebiten.KeyS),
	})
	ms.engine.SetInput(cfg.SideRight, components.MovementIntent{
		Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	})

	res := ms.engine.Tick(time.Since(ms.start))
	if res.Scored != cfg.SideNone {
		ms.flash = gween.New(1, 0, cfg.Host.ScoreFlashSeconds, ease.OutQuad)
		ms.flashSide = res.Scored
	}
	ms.updateFlash()
}

func (ms *MatchScene) handleStateKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if !ms.engine.Start() {
			ms.engine.Resume()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if !ms.engine.Pause() {
			ms.engine.Resume()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		ms.debug = !ms.debug
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if ms.engine.Restart() {
			ms.winner = ""
		}
	}
}

func (ms *MatchScene) updateFlash() {
	if ms.flash == nil {
		return
	}
	alpha, finished := ms.flash.Update(1 / float32(ebiten.TPS()))
	ms.flashAlpha = alpha
	if finished {
		ms.flash = nil
		ms.flashAlpha = 0
	}
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Host.BackgroundColor)
	if ms.engine == nil {
		return
	}

	snap := ms.engine.Snapshot()
	ms.drawFlash(screen, snap)
	drawNet(screen, snap)

	fg := cfg.Host.ForegroundColor
	for _, r := range []core.Rect{snap.Left.Rect, snap.Right.Rect, snap.Ball} {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fg, false)
	}

	quarter := int(snap.ArenaWidth / 4)
	drawAt(screen, strconv.Itoa(snap.Left.Score), fonts.Score, quarter, 60, fg)
	drawAt(screen, strconv.Itoa(snap.Right.Score), fonts.Score, 3*quarter, 60, fg)
	drawAt(screen, snap.Left.Name, fonts.Small, quarter, 80, cfg.Host.NetColor)
	drawAt(screen, snap.Right.Name, fonts.Small, 3*quarter, 80, cfg.Host.NetColor)

	if ms.debug {
		drawDebug(screen, snap, ms.engine.Debug())
	}
	ms.drawOverlay(screen, snap)
}

func (ms *MatchScene) drawFlash(screen *ebiten.Image, snap core.Snapshot) {
	if ms.flashAlpha <= 0 {
		return
	}
	// color.RGBA is premultiplied, so every channel fades together.
	f := 0.3 * ms.flashAlpha
	fc := cfg.Host.FlashColor
	c := color.RGBA{
		R: uint8(float32(fc.R) * f),
		G: uint8(float32(fc.G) * f),
		B: uint8(float32(fc.B) * f),
		A: uint8(float32(fc.A) * f),
	}
	half := float32(snap.ArenaWidth / 2)
	x := float32(0)
	if ms.flashSide == cfg.SideRight {
		x = half
	}
	vector.FillRect(screen, x, 0, half, float32(snap.ArenaHeight), c, false)
}

func drawNet(screen *ebiten.Image, snap core.Snapshot) {
	const dash, gap = 10, 10
	x := float32(snap.ArenaWidth/2 - 1)
	for y := float32(0); y < float32(snap.ArenaHeight); y += dash + gap {
		vector.FillRect(screen, x, y, 2, dash, cfg.Host.NetColor, false)
	}
}

func (ms *MatchScene) drawOverlay(screen *ebiten.Image, snap core.Snapshot) {
	var title, hint string
	switch snap.State {
	case cfg.MatchStateReady:
		title, hint = fmt.Sprintf("First to %d", snap.TargetScore), "Space to serve"
	case cfg.MatchStatePaused:
		title, hint = "PAUSED", "P or Space to resume"
	case cfg.MatchStateGameOver:
		title, hint = ms.winner+" wins", "R to play again, Esc for menu"
	default:
		return
	}

	w, h := float32(snap.ArenaWidth), float32(snap.ArenaHeight)
	vector.FillRect(screen, 0, h/2-60, w, 100, cfg.Host.OverlayColor, false)
	drawCentered(screen, title, fonts.Title, int(h/2-15), cfg.Host.FlashColor)
	drawCentered(screen, hint, fonts.Regular, int(h/2+25), cfg.Host.ForegroundColor)
}
