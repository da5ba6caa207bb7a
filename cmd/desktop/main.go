package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"TurtleAdventure/internal/game"
)

var palette = map[string]color.RGBA{
	"green":  {0x2e, 0x8b, 0x2e, 0xff},
	"brown":  {0x8b, 0x5a, 0x2b, 0xff},
	"red":    {0xcc, 0x33, 0x33, 0xff},
	"purple": {0x8a, 0x2b, 0xe2, 0xff},
	"blue":   {0x33, 0x66, 0xcc, 0xff},
	"black":  {0x11, 0x11, 0x11, 0xff},
	"gray":   {0x88, 0x88, 0x88, 0xff},
}

func shapeColor(name string) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return color.RGBA{0xff, 0x00, 0xff, 0xff}
}

// App drives one local game with ebiten's frame loop. Frames arrive at the
// display rate, so a millisecond accumulator decides when simulation ticks
// are due.
type App struct {
	cfg     game.Config
	g       *game.Game
	accumMS float64
}

func (a *App) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w, h := a.g.ArenaSize()
		a.g.Click(game.Clamp(float64(x), 0, w), game.Clamp(float64(y), 0, h))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.g = game.NewGame(a.cfg)
		a.accumMS = 0
	}

	a.accumMS += 1000.0 / float64(ebiten.TPS())
	for a.accumMS >= game.TickMillis {
		a.g.Tick()
		a.accumMS -= game.TickMillis
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0xee, 0xee, 0xee, 0xff})
	f := a.g.Snapshot()
	for _, s := range f.Shapes {
		drawShape(screen, s)
	}

	ink := color.RGBA{0x22, 0x22, 0x22, 0xff}
	hud := fmt.Sprintf("level %d  t=%.1fs", f.Level, float64(f.NowMillis)/1000.0)
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, ink)

	if f.Banner != "" {
		cx := int(f.ArenaW) / 2
		cy := int(f.ArenaH) / 2
		sub := "press R to play again"
		text.Draw(screen, f.Banner, basicfont.Face7x13, cx-len(f.Banner)*7/2, cy-20, ink)
		text.Draw(screen, sub, basicfont.Face7x13, cx-len(sub)*7/2, cy, ink)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.g.ArenaSize()
	return int(w), int(h)
}

func drawShape(dst *ebiten.Image, s game.Shape) {
	clr := shapeColor(s.Color)
	x := float32(s.Pos.X)
	y := float32(s.Pos.Y)
	half := float32(s.Size / 2)
	switch s.Kind {
	case game.ShapeOval, game.ShapePlayer:
		vector.DrawFilledCircle(dst, x, y, half, clr, true)
	case game.ShapeRect:
		if s.Fill {
			vector.DrawFilledRect(dst, x-half, y-half, float32(s.Size), float32(s.Size), clr, true)
		} else {
			vector.StrokeRect(dst, x-half, y-half, float32(s.Size), float32(s.Size), 2, clr, true)
		}
	case game.ShapeCross:
		vector.StrokeLine(dst, x-half, y-half, x+half, y+half, 2, clr, true)
		vector.StrokeLine(dst, x+half, y-half, x-half, y+half, 2, clr, true)
	}
}

func main() {
	arenaW := flag.Float64("arena-width", 0, "arena width in pixels (0 for the default)")
	arenaH := flag.Float64("arena-height", 0, "arena height in pixels (0 for the default)")
	level := flag.Int("level", 0, "starting level (0 for the default)")
	playerSpeed := flag.Float64("player-speed", 0, "player speed in pixels per tick (0 for the default)")
	seed := flag.Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
	flag.Parse()

	cfg := game.Config{
		ArenaW:      *arenaW,
		ArenaH:      *arenaH,
		Level:       *level,
		PlayerSpeed: *playerSpeed,
		Seed:        *seed,
	}
	app := &App{cfg: cfg, g: game.NewGame(cfg)}

	w, h := app.g.ArenaSize()
	ebiten.SetWindowTitle("Turtle Adventure")
	ebiten.SetWindowSize(int(w), int(h))
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
