package server

import (
	"log"
	"time"

	. "TurtleAdventure/internal/game"
)

type AppConfig struct {
	GameConfigPath string
	GameOverrides  GameParamOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		GameConfigPath: "configs/game.json",
	}
}

func resolveGameConfig(cfg AppConfig) Config {
	base := Config{}
	loaded, err := loadGameConfigFromFile(cfg.GameConfigPath, base)
	if err != nil {
		log.Printf("game config: %v (using defaults)", err)
	} else {
		base = loaded
	}
	return applyGameOverrides(base, cfg.GameOverrides).WithDefaults()
}

func StartApp(addr string, cfg AppConfig) {
	base := resolveGameConfig(cfg)
	hub := NewHub(base)

	// Periodic cleanup of abandoned sessions (every 60 seconds)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if n := hub.CleanupIdleSessions(10 * time.Minute); n > 0 {
				log.Printf("swept %d idle session(s)", n)
			}
		}
	}()

	log.Printf("starting web server on %s (arena %.0fx%.0f, level %d, player speed %.1f)\n",
		addr, base.ArenaW, base.ArenaH, base.Level, base.PlayerSpeed)
	startServer(hub, addr)
}
