package main

import (
	"flag"
	"math"

	"TurtleAdventure/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	gameConfigPath := flag.String("game-config", "configs/game.json", "path to game tuning JSON")
	arenaW := flag.Float64("arena-width", math.NaN(), "override arena width in pixels")
	arenaH := flag.Float64("arena-height", math.NaN(), "override arena height in pixels")
	level := flag.Int("level", 0, "override starting level (>= 1)")
	playerSpeed := flag.Float64("player-speed", math.NaN(), "override player speed in pixels per tick")
	seed := flag.Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.GameConfigPath = *gameConfigPath

	var overrides server.GameParamOverrides

	if !math.IsNaN(*arenaW) {
		val := *arenaW
		overrides.ArenaW = &val
	}
	if !math.IsNaN(*arenaH) {
		val := *arenaH
		overrides.ArenaH = &val
	}
	if *level > 0 {
		val := *level
		overrides.Level = &val
	}
	if !math.IsNaN(*playerSpeed) {
		val := *playerSpeed
		overrides.PlayerSpeed = &val
	}
	if *seed != 0 {
		val := *seed
		overrides.Seed = &val
	}

	cfg.GameOverrides = overrides

	server.StartApp(*addr, cfg)
}
