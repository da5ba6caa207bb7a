package game

// Home is the square the player must reach to win. It never moves during a
// game; size can be adjusted before play for larger or smaller levels.
type Home struct {
	pos  Vec2
	size float64
}

func NewHome(pos Vec2, size float64) *Home {
	if size <= 0 {
		size = HomeSize
	}
	return &Home{pos: pos, size: size}
}

func (h *Home) Pos() Vec2     { return h.pos }
func (h *Home) Size() float64 { return h.size }

func (h *Home) SetSize(size float64) {
	if size <= 0 {
		return
	}
	h.size = size
}

// Contains reports whether (x, y) lies within the home square. Unlike an
// enemy hit, landing exactly on the edge counts as inside.
func (h *Home) Contains(x, y float64) bool {
	half := h.size / 2
	return x >= h.pos.X-half && x <= h.pos.X+half &&
		y >= h.pos.Y-half && y <= h.pos.Y+half
}

func (h *Home) Update(g *Game) {}

func (h *Home) Render(f *Frame) {
	f.rect(h.pos, h.size, ColorHome, false)
}
