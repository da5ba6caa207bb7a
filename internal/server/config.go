package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	. "TurtleAdventure/internal/game"
)

type gameParams struct {
	ArenaW      *float64 `json:"arenaW"`
	ArenaH      *float64 `json:"arenaH"`
	Level       *int     `json:"level"`
	PlayerSpeed *float64 `json:"playerSpeed"`
}

type fileConfig struct {
	Game *gameParams `json:"game"`
}

// GameParamOverrides represents optional command-line overrides for the
// session defaults.
type GameParamOverrides struct {
	ArenaW      *float64
	ArenaH      *float64
	Level       *int
	PlayerSpeed *float64
	Seed        *int64
}

func (o GameParamOverrides) apply(base Config) Config {
	if o.ArenaW != nil {
		base.ArenaW = *o.ArenaW
	}
	if o.ArenaH != nil {
		base.ArenaH = *o.ArenaH
	}
	if o.Level != nil {
		base.Level = *o.Level
	}
	if o.PlayerSpeed != nil {
		base.PlayerSpeed = *o.PlayerSpeed
	}
	if o.Seed != nil {
		base.Seed = *o.Seed
	}
	return base
}

func mergeGameParams(base Config, cfg *gameParams) Config {
	if cfg == nil {
		return base
	}
	if cfg.ArenaW != nil {
		base.ArenaW = *cfg.ArenaW
	}
	if cfg.ArenaH != nil {
		base.ArenaH = *cfg.ArenaH
	}
	if cfg.Level != nil {
		base.Level = *cfg.Level
	}
	if cfg.PlayerSpeed != nil {
		base.PlayerSpeed = *cfg.PlayerSpeed
	}
	return base
}

func loadGameConfigFromFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read game config %q: %w", cleanPath, err)
	}
	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse game config %q: %w", cleanPath, err)
	}
	return mergeGameParams(base, cfg.Game), nil
}

func applyGameOverrides(base Config, overrides GameParamOverrides) Config {
	return overrides.apply(base)
}
