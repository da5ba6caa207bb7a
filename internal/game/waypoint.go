package game

// Waypoint is the player's current movement target. It is inactive until the
// first click and deactivates again once the player has effectively reached
// it, so the player only ever steers toward an active waypoint.
type Waypoint struct {
	pos    Vec2
	active bool
	size   float64
}

func NewWaypoint() *Waypoint {
	return &Waypoint{size: 20}
}

// Activate moves the waypoint to (x, y) and makes it the player's target.
// Re-clicking simply relocates it; there is no queue of targets.
func (w *Waypoint) Activate(x, y float64) {
	w.pos = Vec2{X: x, Y: y}
	w.active = true
}

func (w *Waypoint) Deactivate()  { w.active = false }
func (w *Waypoint) Active() bool { return w.active }
func (w *Waypoint) Pos() Vec2    { return w.pos }

// Update is a no-op. The waypoint only changes through Activate/Deactivate,
// but it stays in the per-tick cycle like every other element.
func (w *Waypoint) Update(g *Game) {}

func (w *Waypoint) Render(f *Frame) {
	if !w.active {
		return
	}
	f.cross(w.pos, w.size, ColorWaypoint)
}
