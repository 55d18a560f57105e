package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	saved := []any{flagConfig, flagDifficulty, flagWalls, flagNoWalls}
	t.Cleanup(func() {
		flagConfig = saved[0].(string)
		flagDifficulty = saved[1].(string)
		flagWalls = saved[2].(bool)
		flagNoWalls = saved[3].(bool)
	})
	flagConfig, flagDifficulty, flagWalls, flagNoWalls = "", "", false, false
}

func TestLoadGameConfigFlags(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  cells: 15\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	flagConfig = path
	flagDifficulty = "fixed"
	flagNoWalls = true

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Board.Cells != 15 {
		t.Errorf("cells = %d, expected 15", cfg.Board.Cells)
	}
	if cfg.Speed.Step != 0 {
		t.Errorf("fixed preset should disable progression, step = %d", cfg.Speed.Step)
	}
	if cfg.Gameplay.CollideWalls {
		t.Error("--no-walls should disable wall collisions")
	}
}

func TestLoadGameConfigBadPreset(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for a missing --config file")
	}

	flagConfig = ""
	flagDifficulty = "insane"
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for an unknown preset")
	}
}

func TestLoadGameConfigDefaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Board.Cells != config.DefaultSnakeConfig().Board.Cells {
		t.Errorf("cells = %d, expected default", cfg.Board.Cells)
	}
}
