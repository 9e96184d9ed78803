package config

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"EASY", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{" Hard ", DifficultyHard, false},
		{"insane", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDifficulty) {
				t.Errorf("ParseDifficulty(%q) error = %v, want ErrUnknownDifficulty", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestTuningTable(t *testing.T) {
	arena := DefaultArena()
	h := arena.Height()

	tests := []struct {
		d         Difficulty
		tolerance float64
		accuracy  float64
		delayMs   int64
	}{
		{DifficultyEasy, h / 10, 0.2, 800},
		{DifficultyMedium, h / 25, 0.5, 500},
		{DifficultyHard, h / 30, 0.7, 250},
	}
	for _, tt := range tests {
		got, err := TuningFor(tt.d, arena)
		if err != nil {
			t.Fatalf("TuningFor(%v): %v", tt.d, err)
		}
		if got.Tolerance != tt.tolerance || got.PredictionAccuracy != tt.accuracy || got.ReactionDelay.Milliseconds() != tt.delayMs {
			t.Errorf("TuningFor(%v) = %+v", tt.d, got)
		}
	}
}

func TestTuningIsMonotonic(t *testing.T) {
	arena := DefaultArena()
	easy, _ := TuningFor(DifficultyEasy, arena)
	medium, _ := TuningFor(DifficultyMedium, arena)
	hard, _ := TuningFor(DifficultyHard, arena)

	if !(hard.ReactionDelay <= medium.ReactionDelay && medium.ReactionDelay <= easy.ReactionDelay) {
		t.Errorf("reaction delays not ordered: %v %v %v", hard.ReactionDelay, medium.ReactionDelay, easy.ReactionDelay)
	}
	if !(hard.PredictionAccuracy >= medium.PredictionAccuracy && medium.PredictionAccuracy >= easy.PredictionAccuracy) {
		t.Error("prediction accuracy not ordered")
	}
	if !(hard.Tolerance <= medium.Tolerance && medium.Tolerance <= easy.Tolerance) {
		t.Error("tolerance not ordered")
	}
}

func TestTuningForUnknownDifficulty(t *testing.T) {
	_, err := TuningFor(Difficulty(42), DefaultArena())
	if !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("error = %v, want ErrUnknownDifficulty", err)
	}
	if Difficulty(42).Valid() {
		t.Error("Difficulty(42).Valid() = true")
	}
}
