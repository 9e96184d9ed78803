package main

import (
	"flag"
	"os"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/scenes"
	"github.com/automoto/pong/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(settings systems.SavedSettings, logger *log.Logger, skipMenu bool) *Game {
	g := &Game{}

	if skipMenu {
		g.scene = scenes.NewMatchScene(g, settings, logger)
	} else {
		g.scene = scenes.NewMenuScene(g, settings, logger)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen at arena size; the window scales it.
func (g *Game) Layout(width, height int) (int, int) {
	return int(cfg.Defaults.ArenaWidth), int(cfg.Defaults.ArenaHeight)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "pong",
	})

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("pong"); err != nil {
		logger.Warn("settings will not be remembered", "err", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	p1 := flag.String("p1", settings.Player1Name, "left player name")
	p2 := flag.String("p2", settings.Player2Name, "right player name")
	p1AI := flag.Bool("p1ai", settings.Player1IsAI, "left paddle is played by the computer")
	p2AI := flag.Bool("p2ai", settings.Player2IsAI, "right paddle is played by the computer")
	difficulty := flag.String("difficulty", settings.Difficulty, "computer difficulty: easy, medium or hard")
	target := flag.Int("target", settings.TargetScore, "points needed to win")
	fullscreen := flag.Bool("fullscreen", settings.Fullscreen, "start in fullscreen")
	skipMenu := flag.Bool("play", false, "skip the setup menu")
	reset := flag.Bool("reset", false, "forget saved settings")
	level := flag.String("loglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		logger.Fatal("bad -loglevel", "err", err)
	}
	logger.SetLevel(lvl)

	if *reset {
		if err := systems.ClearSettings(); err != nil {
			logger.Warn("could not clear settings", "err", err)
		}
		settings = systems.DefaultSettings()
	}

	d, err := cfg.ParseDifficulty(*difficulty)
	if err != nil {
		logger.Fatal("bad -difficulty", "err", err)
	}
	settings.Player1Name, settings.Player2Name = *p1, *p2
	settings.Player1IsAI, settings.Player2IsAI = *p1AI, *p2AI
	settings.Difficulty = d.String()
	settings.TargetScore = *target
	settings.Fullscreen = *fullscreen

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", "err", err)
	}

	res := cfg.Host.Resolutions[settings.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(cfg.Host.TickRate)

	if err := ebiten.RunGame(NewGame(settings, logger, *skipMenu)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
