package game

import (
	"math"
	"math/rand"
	"testing"
)

// TestHitBoundaryPolicy verifies the strict-interior collision rule: landing
// exactly on the enemy's edge is not a hit, a hair inside is.
func TestHitBoundaryPolicy(t *testing.T) {
	g := newTestGame(t)
	e := NewDemoEnemy(Vec2{X: 100, Y: 100}, 20, ColorDemo)

	g.player.pos = Vec2{X: 110, Y: 100} // on the right edge
	if e.hitsPlayer(g) {
		t.Fatal("boundary contact must not count as a hit")
	}
	g.player.pos = Vec2{X: 110 - 1e-9, Y: 100}
	if !e.hitsPlayer(g) {
		t.Fatal("expected a hit just inside the right edge")
	}
	g.player.pos = Vec2{X: 100, Y: 90} // on the top edge
	if e.hitsPlayer(g) {
		t.Fatal("boundary contact must not count as a hit")
	}
	g.player.pos = Vec2{X: 100, Y: 90 + 1e-9}
	if !e.hitsPlayer(g) {
		t.Fatal("expected a hit just inside the top edge")
	}
}

func TestEnemySizeClamped(t *testing.T) {
	e := NewDemoEnemy(Vec2{}, -5, ColorDemo)
	if e.Size() <= 0 {
		t.Fatalf("expected positive size, got %v", e.Size())
	}
}

func TestRandomWalkDirectionIsAxisAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		e := NewRandomWalkEnemy(rng, Vec2{X: 400, Y: 250}, EnemySize, ColorRandomWalk)
		if e.vel.X != 0 && e.vel.Y != 0 {
			t.Fatalf("expected a single-axis velocity, got %v", e.vel)
		}
		if e.vel.Len() != RandomWalkSpeed {
			t.Fatalf("expected speed %v, got %v", RandomWalkSpeed, e.vel.Len())
		}
	}
}

// TestRandomWalkReflectsOnce verifies a wall crossing reverses the normal
// velocity component exactly once in that tick, even when the opposite wall's
// threshold would also match.
func TestRandomWalkReflectsOnce(t *testing.T) {
	g := newTestGame(t)
	e := &RandomWalkEnemy{
		enemyCore: newEnemyCore(Vec2{X: 788, Y: 250}, EnemySize, ColorRandomWalk),
		vel:       Vec2{X: RandomWalkSpeed},
	}
	e.Update(g)
	if e.pos.X != 791 {
		t.Fatalf("expected position 791 with no clamping, got %v", e.pos.X)
	}
	if e.vel.X != -RandomWalkSpeed {
		t.Fatalf("expected vx reversed once at the right wall, got %v", e.vel.X)
	}

	narrow := NewGame(Config{ArenaW: 15, ArenaH: 500, Seed: 1})
	e = &RandomWalkEnemy{
		enemyCore: newEnemyCore(Vec2{X: 7, Y: 250}, EnemySize, ColorRandomWalk),
		vel:       Vec2{X: RandomWalkSpeed},
	}
	e.Update(narrow)
	if e.vel.X != -RandomWalkSpeed {
		t.Fatalf("expected exactly one reversal when both wall checks match, got vx %v", e.vel.X)
	}
}

func TestChasingEnemyStepsTowardPlayer(t *testing.T) {
	g := newTestGame(t)
	g.player.pos = Vec2{X: 100, Y: 100}
	e := NewChasingEnemy(Vec2{X: 100, Y: 200}, EnemySize, ColorChaser)

	e.Update(g)
	if e.Pos() != (Vec2{X: 100, Y: 196}) {
		t.Fatalf("expected chaser at (100,196), got %v", e.Pos())
	}
	if g.State() != StateRunning {
		t.Fatalf("chaser 96 units away ended the game: %v", g.State())
	}
}

// TestChasingEnemyCoincidentWithPlayer verifies the zero-distance guard: no
// NaN motion, and the overlap still loses the game.
func TestChasingEnemyCoincidentWithPlayer(t *testing.T) {
	g := newTestGame(t)
	e := NewChasingEnemy(g.player.Pos(), EnemySize, ColorChaser)

	e.Update(g)
	if math.IsNaN(e.Pos().X) || math.IsNaN(e.Pos().Y) {
		t.Fatalf("chaser position became NaN: %v", e.Pos())
	}
	if e.Pos() != g.player.Pos() {
		t.Fatalf("coincident chaser moved to %v", e.Pos())
	}
	if g.State() != StateLost {
		t.Fatalf("expected overlap to lose the game, got %v", g.State())
	}
}

// TestFencingEnemyLapsTheSquare verifies the patrol never leaves the 80-side
// square around home and returns to its corner with direction right after one
// full lap of four corner turns.
func TestFencingEnemyLapsTheSquare(t *testing.T) {
	g := newTestGame(t)
	g.player.pos = Vec2{X: -1000, Y: -1000}
	home := g.home.Pos()
	left, right := home.X-FenceSide/2, home.X+FenceSide/2
	top, bottom := home.Y-FenceSide/2, home.Y+FenceSide/2

	start := Vec2{X: left, Y: top}
	e := NewFencingEnemy(start, EnemySize, ColorFencer)

	lap := int(4 * FenceSide / FenceSpeed) // 80 ticks
	for i := 0; i < 3*lap; i++ {
		e.Update(g)
		p := e.Pos()
		if p.X < left || p.X > right || p.Y < top || p.Y > bottom {
			t.Fatalf("tick %d: fencer left the square: %v", i, p)
		}
	}
	if e.Pos() != start {
		t.Fatalf("expected fencer back at %v after full laps, got %v", start, e.Pos())
	}
	if e.dir != fenceRight {
		t.Fatalf("expected direction cycle back to right, got %v", e.dir)
	}
}

func TestTeleportingEnemyCooldown(t *testing.T) {
	g := newTestGame(t)
	start := Vec2{X: 400, Y: 100}
	e := NewTeleportingEnemy(start, EnemySize, ColorTeleporter)

	for i := 0; i < TeleportTicks-1; i++ {
		e.Update(g)
		if e.Pos() != start {
			t.Fatalf("teleporter moved on tick %d before cooldown expired: %v", i, e.Pos())
		}
	}

	e.Update(g) // 60th tick
	p := e.Pos()
	if p == start {
		t.Fatalf("teleporter failed to relocate after %d ticks", TeleportTicks)
	}
	nearPlayer := math.Abs(p.X-g.player.Pos().X) <= TeleportSpread && math.Abs(p.Y-g.player.Pos().Y) <= TeleportSpread
	nearHome := math.Abs(p.X-g.home.Pos().X) <= TeleportSpread && math.Abs(p.Y-g.home.Pos().Y) <= TeleportSpread
	if !nearPlayer && !nearHome {
		t.Fatalf("teleporter landed at %v, not near player %v or home %v", p, g.player.Pos(), g.home.Pos())
	}
	if e.counter != 0 {
		t.Fatalf("expected cooldown counter reset, got %d", e.counter)
	}
}

func TestDemoEnemyCreepsDiagonally(t *testing.T) {
	g := newTestGame(t)
	e := NewDemoEnemy(Vec2{X: 10, Y: 10}, EnemySize, ColorDemo)
	e.Update(g)
	if e.Pos() != (Vec2{X: 11, Y: 11}) {
		t.Fatalf("expected (11,11), got %v", e.Pos())
	}
	if g.State() != StateRunning {
		t.Fatalf("demo enemy far from player ended the game: %v", g.State())
	}
}
