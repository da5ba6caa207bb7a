package game

// ShapeKind tells a frontend how to draw one element. Frontends that lack a
// native primitive for a kind may approximate it (a cross as two lines, a
// turtle as a filled circle) without affecting the simulation.
type ShapeKind string

const (
	ShapeOval   ShapeKind = "oval"   // circle centered on Pos, diameter Size
	ShapeRect   ShapeKind = "rect"   // square centered on Pos, side Size
	ShapeCross  ShapeKind = "cross"  // X marker spanning Size around Pos
	ShapePlayer ShapeKind = "player" // the turtle itself
)

type Shape struct {
	Kind  ShapeKind
	Pos   Vec2
	Size  float64
	Color string
	Fill  bool
}

// Frame is one rendered snapshot of the world, rebuilt after every tick.
// Shapes are ordered back to front.
type Frame struct {
	NowMillis int64
	State     State
	ArenaW    float64
	ArenaH    float64
	Level     int
	Shapes    []Shape
	Banner    string // set once the game is over
}

func (f *Frame) oval(pos Vec2, size float64, color string) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapeOval, Pos: pos, Size: size, Color: color, Fill: true})
}

func (f *Frame) rect(pos Vec2, size float64, color string, fill bool) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapeRect, Pos: pos, Size: size, Color: color, Fill: fill})
}

func (f *Frame) cross(pos Vec2, size float64, color string) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapeCross, Pos: pos, Size: size, Color: color})
}

func (f *Frame) turtle(pos Vec2, size float64, color string) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapePlayer, Pos: pos, Size: size, Color: color, Fill: true})
}
