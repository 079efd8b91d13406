package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	ScoresPath string `env:"GUESSING_GAME_TEST_SCORES_PATH" envDefault:"highscores.txt"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.ScoresPath != "highscores.txt" {
		t.Fatalf("expected default scores path, got %q", cfg.ScoresPath)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESSING_GAME_TEST_SCORES_PATH", "/tmp/scores.txt")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.ScoresPath != "/tmp/scores.txt" {
		t.Fatalf("expected override, got %q", cfg.ScoresPath)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg struct {
		Limit int `env:"GUESSING_GAME_TEST_LIMIT"`
	}
	t.Setenv("GUESSING_GAME_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
