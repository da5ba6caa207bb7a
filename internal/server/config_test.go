package server

import (
	"os"
	"path/filepath"
	"testing"

	. "TurtleAdventure/internal/game"
)

// A missing config file is not an error; the base config comes back untouched.
func TestLoadGameConfigMissingFile(t *testing.T) {
	base := Config{ArenaW: 640, Level: 2}
	got, err := loadGameConfigFromFile(filepath.Join(t.TempDir(), "absent.json"), base)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if got != base {
		t.Fatalf("expected base config back, got %+v", got)
	}
}

// Fields present in the file replace the base; absent fields keep it.
func TestLoadGameConfigMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	data := []byte(`{"game": {"arenaW": 640, "playerSpeed": 7.5}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	base := Config{ArenaW: 800, ArenaH: 500, Level: 2, PlayerSpeed: 5}
	got, err := loadGameConfigFromFile(path, base)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ArenaW != 640 {
		t.Fatalf("expected arena width 640 from file, got %v", got.ArenaW)
	}
	if got.PlayerSpeed != 7.5 {
		t.Fatalf("expected player speed 7.5 from file, got %v", got.PlayerSpeed)
	}
	if got.ArenaH != 500 || got.Level != 2 {
		t.Fatalf("expected untouched fields to keep base values, got %+v", got)
	}
}

func TestLoadGameConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	if err := os.WriteFile(path, []byte(`{"game": {`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadGameConfigFromFile(path, Config{}); err == nil {
		t.Fatalf("expected parse error for malformed JSON")
	}
}

// Command-line overrides beat the file, and defaults fill whatever is left.
func TestResolveGameConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	data := []byte(`{"game": {"arenaW": 640, "level": 3}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	width := 1024.0
	seed := int64(42)
	got := resolveGameConfig(AppConfig{
		GameConfigPath: path,
		GameOverrides:  GameParamOverrides{ArenaW: &width, Seed: &seed},
	})

	if got.ArenaW != 1024 {
		t.Fatalf("expected override width 1024 to beat the file, got %v", got.ArenaW)
	}
	if got.Level != 3 {
		t.Fatalf("expected level 3 from file, got %d", got.Level)
	}
	if got.Seed != 42 {
		t.Fatalf("expected seed 42 from override, got %d", got.Seed)
	}
	if got.ArenaH != DefaultArenaH || got.PlayerSpeed != PlayerSpeed {
		t.Fatalf("expected defaults for unset fields, got %+v", got)
	}
}
