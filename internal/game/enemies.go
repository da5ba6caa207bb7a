package game

import "math/rand"

/* ---- RandomWalkEnemy ---- */

// RandomWalkEnemy drifts along one axis and reverses that axis whenever its
// edge reaches a wall. Position is never clamped; only the velocity flips, and
// the if/else-if pairing keeps a single crossing from reversing twice.
type RandomWalkEnemy struct {
	enemyCore
	vel Vec2
}

func NewRandomWalkEnemy(rng *rand.Rand, pos Vec2, size float64, color string) *RandomWalkEnemy {
	e := &RandomWalkEnemy{enemyCore: newEnemyCore(pos, size, color)}
	switch rng.Intn(4) {
	case 0:
		e.vel = Vec2{Y: RandomWalkSpeed}
	case 1:
		e.vel = Vec2{Y: -RandomWalkSpeed}
	case 2:
		e.vel = Vec2{X: -RandomWalkSpeed}
	default:
		e.vel = Vec2{X: RandomWalkSpeed}
	}
	return e
}

func (e *RandomWalkEnemy) Update(g *Game) {
	e.pos = e.pos.Add(e.vel)
	half := e.size / 2
	if e.pos.X+half >= g.arenaW {
		e.vel.X = -e.vel.X
	} else if e.pos.X-half <= 0 {
		e.vel.X = -e.vel.X
	}
	if e.pos.Y+half >= g.arenaH {
		e.vel.Y = -e.vel.Y
	} else if e.pos.Y-half <= 0 {
		e.vel.Y = -e.vel.Y
	}
	e.checkPlayer(g)
}

func (e *RandomWalkEnemy) Render(f *Frame) {
	f.oval(e.pos, e.size, e.color)
}

/* ---- ChasingEnemy ---- */

// ChasingEnemy takes a full step along the unit vector toward the player every
// tick. Slower than the player, so it can be outrun but never shaken off.
type ChasingEnemy struct {
	enemyCore
}

func NewChasingEnemy(pos Vec2, size float64, color string) *ChasingEnemy {
	return &ChasingEnemy{enemyCore: newEnemyCore(pos, size, color)}
}

func (e *ChasingEnemy) Update(g *Game) {
	to := g.player.Pos().Sub(e.pos)
	if d := to.Len(); d > 0 {
		e.pos = e.pos.Add(to.Scale(ChaseSpeed / d))
	}
	e.checkPlayer(g)
}

func (e *ChasingEnemy) Render(f *Frame) {
	f.oval(e.pos, e.size, e.color)
}

/* ---- FencingEnemy ---- */

type fenceDir int

const (
	fenceRight fenceDir = iota
	fenceDown
	fenceLeft
	fenceUp
)

// FencingEnemy patrols the square of side FenceSide centered on home, walking
// right, down, left, up. On reaching a corner it is clamped to the edge and
// turns, so after the first lap it tracks the square exactly.
type FencingEnemy struct {
	enemyCore
	dir fenceDir
}

func NewFencingEnemy(pos Vec2, size float64, color string) *FencingEnemy {
	return &FencingEnemy{enemyCore: newEnemyCore(pos, size, color), dir: fenceRight}
}

func (e *FencingEnemy) Update(g *Game) {
	c := g.home.Pos()
	left, right := c.X-FenceSide/2, c.X+FenceSide/2
	top, bottom := c.Y-FenceSide/2, c.Y+FenceSide/2
	switch e.dir {
	case fenceRight:
		e.pos.X += FenceSpeed
		if e.pos.X >= right {
			e.pos.X = right
			e.dir = fenceDown
		}
	case fenceDown:
		e.pos.Y += FenceSpeed
		if e.pos.Y >= bottom {
			e.pos.Y = bottom
			e.dir = fenceLeft
		}
	case fenceLeft:
		e.pos.X -= FenceSpeed
		if e.pos.X <= left {
			e.pos.X = left
			e.dir = fenceUp
		}
	case fenceUp:
		e.pos.Y -= FenceSpeed
		if e.pos.Y <= top {
			e.pos.Y = top
			e.dir = fenceRight
		}
	}
	e.checkPlayer(g)
}

func (e *FencingEnemy) Render(f *Frame) {
	f.oval(e.pos, e.size, e.color)
}

/* ---- TeleportingEnemy ---- */

// TeleportingEnemy sits still and relocates every TeleportTicks updates to a
// random spot near either the player or home, picked by coin flip.
type TeleportingEnemy struct {
	enemyCore
	counter int
}

func NewTeleportingEnemy(pos Vec2, size float64, color string) *TeleportingEnemy {
	return &TeleportingEnemy{enemyCore: newEnemyCore(pos, size, color)}
}

func (e *TeleportingEnemy) Update(g *Game) {
	e.counter++
	if e.counter >= TeleportTicks {
		e.teleport(g)
		e.counter = 0
	}
	e.checkPlayer(g)
}

func (e *TeleportingEnemy) teleport(g *Game) {
	base := g.home.Pos()
	if g.rng.Intn(2) == 0 {
		base = g.player.Pos()
	}
	e.pos = randAround(g.rng, base, TeleportSpread)
}

func (e *TeleportingEnemy) Render(f *Frame) {
	f.rect(e.pos, e.size, e.color, true)
}

/* ---- DemoEnemy ---- */

// DemoEnemy creeps diagonally one unit per tick. Not spawned by the
// generator; it exists as the simplest complete variant.
type DemoEnemy struct {
	enemyCore
}

func NewDemoEnemy(pos Vec2, size float64, color string) *DemoEnemy {
	return &DemoEnemy{enemyCore: newEnemyCore(pos, size, color)}
}

func (e *DemoEnemy) Update(g *Game) {
	e.pos.X++
	e.pos.Y++
	e.checkPlayer(g)
}

func (e *DemoEnemy) Render(f *Frame) {
	f.oval(e.pos, e.size, e.color)
}
