package parallax

import (
	"image/color"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

// Orb is a large blurred glow behind the hero section.
type Orb struct {
	X, Y   float64 // anchor, as a fraction of the viewport
	Radius float64
	Color  color.NRGBA

	OffsetX, OffsetY float64 // pointer parallax
	DriftX, DriftY   float64 // idle noise drift
}

// Orbs moves the glows against the pointer, each one a bit faster than the last.
type Orbs struct {
	Items []*Orb
	noise *perlin.Perlin
	t     float64
}

func New(seed int64) *Orbs {
	return &Orbs{
		Items: []*Orb{
			{X: 0.18, Y: 0.25, Radius: 220, Color: color.NRGBA{R: 77, G: 225, B: 196, A: 40}},
			{X: 0.82, Y: 0.35, Radius: 180, Color: color.NRGBA{R: 99, G: 102, B: 241, A: 36}},
			{X: 0.55, Y: 0.8, Radius: 260, Color: color.NRGBA{R: 168, G: 85, B: 247, A: 28}},
		}[:config.OrbCount],
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Move applies the pointer parallax for a pointer at (x, y) in a w×h viewport.
func (o *Orbs) Move(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	mx := x/w - 0.5
	my := y/h - 0.5
	for i, orb := range o.Items {
		speed := float64(i+1) * config.OrbSpeedStep
		orb.OffsetX = mx * speed
		orb.OffsetY = my * speed
	}
}

// Step advances the idle drift by dt seconds.
func (o *Orbs) Step(dt float64) {
	o.t += dt * config.OrbDriftScale
	for i, orb := range o.Items {
		k := float64(i) * 10
		orb.DriftX = o.noise.Noise2D(o.t, k) * config.OrbDriftPx
		orb.DriftY = o.noise.Noise2D(k, o.t) * config.OrbDriftPx
	}
}

// Position is the orb centre in pixels for a w×h viewport.
func (orb *Orb) Position(w, h float64) (float64, float64) {
	return orb.X*w + orb.OffsetX + orb.DriftX, orb.Y*h + orb.OffsetY + orb.DriftY
}
