package game

import (
	"math"
	"math/rand"
)

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// randBetween draws uniformly from [lo, hi). A degenerate or inverted range
// collapses to lo.
func randBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// randAround draws a point offset from center by at most spread on each axis.
func randAround(rng *rand.Rand, center Vec2, spread float64) Vec2 {
	return Vec2{
		X: randBetween(rng, center.X-spread, center.X+spread),
		Y: randBetween(rng, center.Y-spread, center.Y+spread),
	}
}
