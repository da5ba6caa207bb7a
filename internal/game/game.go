package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// State tracks whether a game is still being played or how it ended. Won and
// Lost are terminal; a finished game never transitions again.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config carries the per-session knobs. Zero or negative values fall back to
// defaults, so the zero Config is playable.
type Config struct {
	ArenaW      float64
	ArenaH      float64
	Level       int
	PlayerSpeed float64
	Seed        int64 // 0 seeds from the clock
}

// WithDefaults fills unset arena, level and speed fields. The seed is left
// as is; NewGame draws one from the clock when it is still zero.
func (c Config) WithDefaults() Config {
	if c.ArenaW <= 0 {
		c.ArenaW = DefaultArenaW
	}
	if c.ArenaH <= 0 {
		c.ArenaH = DefaultArenaH
	}
	if c.Level < 1 {
		c.Level = DefaultLevel
	}
	if c.PlayerSpeed <= 0 {
		c.PlayerSpeed = PlayerSpeed
	}
	return c
}

// Game is one single-player session: the turtle, its home, the enemy swarm
// and the timers that grow it. Tick, Click, State and Snapshot synchronize on
// Mu so any goroutine may drive them; everything else is meant for the tick
// goroutine, which already holds the lock during update callbacks.
type Game struct {
	Mu sync.Mutex

	arenaW float64
	arenaH float64
	level  int
	state  State
	rng    *rand.Rand
	sched  *Scheduler

	player   *Player
	waypoint *Waypoint
	home     *Home
	enemies  []Enemy
	gen      *EnemyGenerator

	frame Frame
}

// NewGame builds a fresh session: the player on the left edge at mid-height,
// home near the right edge, no enemies yet, and the spawn chains armed.
func NewGame(cfg Config) *Game {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g := &Game{
		arenaW: cfg.ArenaW,
		arenaH: cfg.ArenaH,
		level:  cfg.Level,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		sched:  NewScheduler(),
	}
	g.waypoint = NewWaypoint()
	g.home = NewHome(Vec2{X: cfg.ArenaW - HomeInsetRight, Y: cfg.ArenaH / 2}, HomeSize)
	g.player = NewPlayer(Vec2{X: PlayerStartX, Y: cfg.ArenaH / 2}, cfg.PlayerSpeed)
	g.gen = newEnemyGenerator(g, cfg.Level)
	g.render()
	return g
}

// Tick advances the world one step: the player moves first, then every enemy
// in spawn order, then the waypoint, then the clock advances and due timers
// fire so new enemies join from the next tick. The tick aborts as soon as a
// terminal state is reached, and a finished game ticks as a no-op.
func (g *Game) Tick() {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.state != StateRunning {
		return
	}
	g.player.Update(g)
	for _, e := range g.enemies {
		if g.state != StateRunning {
			break
		}
		e.Update(g)
	}
	g.waypoint.Update(g)
	g.sched.Advance(TickMillis)
	g.render()
}

// Click reports a pointer press in arena coordinates and retargets the
// waypoint. Clicks after the game is over are ignored.
func (g *Game) Click(x, y float64) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.state != StateRunning {
		return
	}
	g.waypoint.Activate(x, y)
}

// AddEnemy registers an enemy with the running game. The spawn chains call it
// from timer callbacks inside Tick; callers on other goroutines must hold Mu.
// Nil enemies and additions to a finished game are dropped.
func (g *Game) AddEnemy(e Enemy) {
	if e == nil || g.state != StateRunning {
		return
	}
	g.enemies = append(g.enemies, e)
}

func (g *Game) State() State {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.state
}

// ArenaSize reports the playfield bounds.
func (g *Game) ArenaSize() (w, h float64) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.arenaW, g.arenaH
}

// Snapshot copies the most recent frame for transport off the tick goroutine.
func (g *Game) Snapshot() Frame {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	f := g.frame
	f.Shapes = append([]Shape(nil), g.frame.Shapes...)
	return f
}

// NowMillis returns the logical clock. Meant for the tick goroutine and tests.
func (g *Game) NowMillis() int64 { return g.sched.Now() }

func (g *Game) winGame() {
	if g.state != StateRunning {
		return
	}
	g.state = StateWon
	g.sched.CancelAll()
}

func (g *Game) loseGame() {
	if g.state != StateRunning {
		return
	}
	g.state = StateLost
	g.sched.CancelAll()
}

// render rebuilds the frame back to front: home, enemies in spawn order, the
// player, and the waypoint marker on top.
func (g *Game) render() {
	f := Frame{
		NowMillis: g.sched.Now(),
		State:     g.state,
		ArenaW:    g.arenaW,
		ArenaH:    g.arenaH,
		Level:     g.level,
		Shapes:    make([]Shape, 0, 3+len(g.enemies)),
	}
	g.home.Render(&f)
	for _, e := range g.enemies {
		e.Render(&f)
	}
	g.player.Render(&f)
	g.waypoint.Render(&f)
	switch g.state {
	case StateWon:
		f.Banner = "You Win"
	case StateLost:
		f.Banner = "You Lose"
	}
	g.frame = f
}
