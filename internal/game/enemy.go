package game

// Enemy is implemented by every hostile variant. Update advances the enemy by
// one tick and is responsible for ending the game when it lands on the player;
// the game loop itself never checks collisions.
type Enemy interface {
	Update(g *Game)
	Render(f *Frame)
	Pos() Vec2
	Size() float64
}

// enemyCore carries the state and hit test shared by every variant.
type enemyCore struct {
	pos   Vec2
	size  float64
	color string
}

func newEnemyCore(pos Vec2, size float64, color string) enemyCore {
	if size <= 0 {
		size = 1
	}
	return enemyCore{pos: pos, size: size, color: color}
}

func (e *enemyCore) Pos() Vec2     { return e.pos }
func (e *enemyCore) Size() float64 { return e.size }

// hitsPlayer reports whether the player's position lies strictly inside this
// enemy's bounding square. Touching the boundary exactly is not a hit.
func (e *enemyCore) hitsPlayer(g *Game) bool {
	p := g.player.Pos()
	half := e.size / 2
	return p.X > e.pos.X-half && p.X < e.pos.X+half &&
		p.Y > e.pos.Y-half && p.Y < e.pos.Y+half
}

func (e *enemyCore) checkPlayer(g *Game) {
	if e.hitsPlayer(g) {
		g.loseGame()
	}
}
