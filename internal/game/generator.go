package game

// EnemyGenerator seeds a running game with enemies on fixed timer chains: a
// random walker every second from 1s in, a chaser every second from 2s, a
// one-time fencing squad at 3s, and teleporter batches every half second from
// 4s. The level is carried for difficulty scaling; the chains currently run
// the same cadence at every level.
type EnemyGenerator struct {
	game  *Game
	level int
}

func newEnemyGenerator(g *Game, level int) *EnemyGenerator {
	gen := &EnemyGenerator{game: g, level: level}
	g.sched.Every(RandomWalkDelayMS, RandomWalkPeriodMS, gen.spawnRandomWalker)
	g.sched.Every(ChaserDelayMS, ChaserPeriodMS, gen.spawnChaser)
	g.sched.After(FencerDelayMS, gen.spawnFencers)
	g.sched.Every(TeleporterDelayMS, TeleporterPeriodMS, gen.spawnTeleporters)
	return gen
}

func (gen *EnemyGenerator) Level() int { return gen.level }

func (gen *EnemyGenerator) spawnRandomWalker() {
	g := gen.game
	g.AddEnemy(NewRandomWalkEnemy(g.rng, gen.randomPoint(), EnemySize, ColorRandomWalk))
}

func (gen *EnemyGenerator) spawnChaser() {
	gen.game.AddEnemy(NewChasingEnemy(gen.randomPoint(), EnemySize, ColorChaser))
}

func (gen *EnemyGenerator) spawnFencers() {
	for i := 0; i < FenceSpawnCount; i++ {
		gen.game.AddEnemy(NewFencingEnemy(gen.fencePlacement(), EnemySize, ColorFencer))
	}
}

func (gen *EnemyGenerator) spawnTeleporters() {
	for i := 0; i < TeleportBatch; i++ {
		gen.game.AddEnemy(NewTeleportingEnemy(gen.randomPoint(), EnemySize, ColorTeleporter))
	}
}

func (gen *EnemyGenerator) randomPoint() Vec2 {
	g := gen.game
	return Vec2{
		X: randBetween(g.rng, 0, g.arenaW),
		Y: randBetween(g.rng, 0, g.arenaH),
	}
}

// fencePlacement picks a spot within FenceSpread of home, re-rolling any that
// lands inside the home square so the squad starts on the outside.
func (gen *EnemyGenerator) fencePlacement() Vec2 {
	g := gen.game
	p := randAround(g.rng, g.home.Pos(), FenceSpread)
	for g.home.Contains(p.X, p.Y) {
		p = randAround(g.rng, g.home.Pos(), FenceSpread)
	}
	return p
}
