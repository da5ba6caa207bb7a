package game

// Player is the turtle. Each tick it takes one full step of its speed toward
// the active waypoint; there is no easing near the target, so it can overshoot
// by up to a step before the waypoint releases it.
type Player struct {
	pos   Vec2
	speed float64
	size  float64
}

func NewPlayer(pos Vec2, speed float64) *Player {
	if speed <= 0 {
		speed = PlayerSpeed
	}
	return &Player{pos: pos, speed: speed, size: EnemySize}
}

func (p *Player) Pos() Vec2      { return p.pos }
func (p *Player) Speed() float64 { return p.speed }

func (p *Player) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	p.speed = speed
}

func (p *Player) Update(g *Game) {
	if g.home.Contains(p.pos.X, p.pos.Y) {
		g.winGame()
		return
	}
	wp := g.waypoint
	if !wp.Active() {
		return
	}
	to := wp.Pos().Sub(p.pos)
	if d := to.Len(); d > 0 {
		p.pos = p.pos.Add(to.Scale(p.speed / d))
	}
	// Stepping at full speed means the target is rarely hit exactly; once it
	// is within one step the waypoint is considered reached.
	if p.pos.Sub(wp.Pos()).Len() < p.speed {
		wp.Deactivate()
	}
}

func (p *Player) Render(f *Frame) {
	f.turtle(p.pos, p.size, ColorPlayer)
}
