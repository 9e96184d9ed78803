package systems

import (
	"encoding/json"
	"errors"

	cfg "github.com/automoto/pong/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings are the host choices remembered between runs. Match results
// are never stored.
type SavedSettings struct {
	Player1Name     string `json:"player1Name"`
	Player2Name     string `json:"player2Name"`
	Player1IsAI     bool   `json:"player1IsAI"`
	Player2IsAI     bool   `json:"player2IsAI"`
	Difficulty      string `json:"difficulty"`
	TargetScore     int    `json:"targetScore"`
	ResolutionIndex int    `json:"resolutionIndex"`
	Fullscreen      bool   `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		Player1Name:     cfg.Defaults.Player1Name,
		Player2Name:     cfg.Defaults.CPUName,
		Player2IsAI:     true,
		Difficulty:      cfg.Defaults.Difficulty.String(),
		TargetScore:     cfg.Defaults.TargetScore,
		ResolutionIndex: cfg.Host.DefaultResolutionIndex,
	}
}

// InitPersistence opens the per-user data directory for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings merged over the defaults. Without
// persistence, or before the first save, it returns the defaults.
func LoadSettings() (SavedSettings, error) {
	settings := DefaultSettings()
	if gdataManager == nil {
		return settings, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return settings, nil
	}
	if len(data) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return DefaultSettings(), err
	}
	return settings.sanitize(), nil
}

// SaveSettings writes s to disk. It is a no-op without persistence.
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s.sanitize())
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ErrNoPersistence is returned by ClearSettings when InitPersistence was not
// called or failed.
var ErrNoPersistence = errors.New("persistence not initialized")

// ClearSettings forgets the saved settings.
func ClearSettings() error {
	if gdataManager == nil {
		return ErrNoPersistence
	}
	return gdataManager.SaveItem(settingsKey, nil)
}

// sanitize replaces values a hand-edited file could have broken.
func (s SavedSettings) sanitize() SavedSettings {
	def := DefaultSettings()
	if s.TargetScore <= 0 {
		s.TargetScore = def.TargetScore
	}
	if _, err := cfg.ParseDifficulty(s.Difficulty); err != nil {
		s.Difficulty = def.Difficulty
	}
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.Host.Resolutions) {
		s.ResolutionIndex = def.ResolutionIndex
	}
	if s.Player1Name == "" && s.Player2Name == "" {
		s.Player1Name, s.Player2Name = def.Player1Name, def.Player2Name
	}
	return s
}
