package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

// Particle struct: Represents a single point of the ambient field
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, pixels per frame
	Radius float64
}

// Bounds is the drawable area particles bounce inside
type Bounds struct {
	W, H float64
}

// Surface is the minimal drawing target the field renders into.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	Line(x0, y0, x1, y1 float64, c color.Color)
}

// Params tunes the field. Zero values are not valid; use DefaultParams.
type Params struct {
	Count        int
	Speed        float64 // velocity components are drawn from [-Speed/2, Speed/2)
	MinRadius    float64
	MaxRadius    float64
	LinkDistance float64
	LinkOpacity  float64
	Color        color.NRGBA // alpha is the dot opacity
}

// DefaultParams returns the tuning used on the landing page.
func DefaultParams() Params {
	return Params{
		Count:        config.ParticleCount,
		Speed:        config.ParticleSpeed,
		MinRadius:    config.ParticleMinSize,
		MaxRadius:    config.ParticleMaxSize,
		LinkDistance: config.LinkDistance,
		LinkOpacity:  config.LinkOpacity,
		Color: color.NRGBA{
			R: config.AccentR, G: config.AccentG, B: config.AccentB,
			A: uint8(math.Round(config.ParticleAlpha * 255)),
		},
	}
}

// Field struct: Holds the particles and the viewport they live in
type Field struct {
	Params    Params
	Bounds    Bounds
	Particles []Particle
	rng       *rand.Rand
}

// New creates p.Count particles spread uniformly over bounds.
func New(p Params, bounds Bounds, rng *rand.Rand) *Field {
	f := &Field{
		Params:    p,
		Bounds:    bounds,
		Particles: make([]Particle, p.Count),
		rng:       rng,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      f.rng.Float64() * bounds.W,
			Y:      f.rng.Float64() * bounds.H,
			VX:     (f.rng.Float64() - 0.5) * p.Speed,
			VY:     (f.rng.Float64() - 0.5) * p.Speed,
			Radius: f.rng.Float64()*(p.MaxRadius-p.MinRadius) + p.MinRadius,
		}
	}
	return f
}

// Resize swaps the bounds. Particles keep their positions and bounce back in
// once they reach the new edges.
func (f *Field) Resize(b Bounds) {
	f.Bounds = b
}

// Tick advances every particle by one frame
func (f *Field) Tick() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		// Reflect, no clamping: a particle may sit outside for one frame.
		// Only outward motion flips, so a particle left outside by a
		// shrinking resize heads back in instead of jittering at the edge.
		if (p.X < 0 && p.VX < 0) || (p.X > f.Bounds.W && p.VX > 0) {
			p.VX = -p.VX
		}
		if (p.Y < 0 && p.VY < 0) || (p.Y > f.Bounds.H && p.VY > 0) {
			p.VY = -p.VY
		}
	}
}

// Render clears s and draws the dots plus the links between close pairs.
func (f *Field) Render(s Surface) {
	s.Clear()

	for _, p := range f.Particles {
		s.FillCircle(p.X, p.Y, p.Radius, f.Params.Color)
	}

	for i := range f.Particles {
		a := &f.Particles[i]
		for j := i + 1; j < len(f.Particles); j++ {
			b := &f.Particles[j]
			dist := math.Hypot(b.X-a.X, b.Y-a.Y)
			if dist >= f.Params.LinkDistance {
				continue
			}
			alpha := f.linkOpacity(dist)
			s.Line(a.X, a.Y, b.X, b.Y, f.linkColor(alpha))
		}
	}
}

// LineOpacity is the link alpha for the default tuning: 0.15 at distance 0,
// falling linearly to 0 at 120 and beyond.
func LineOpacity(dist float64) float64 {
	return opacity(dist, config.LinkDistance, config.LinkOpacity)
}

func (f *Field) linkOpacity(dist float64) float64 {
	return opacity(dist, f.Params.LinkDistance, f.Params.LinkOpacity)
}

func opacity(dist, threshold, base float64) float64 {
	if dist >= threshold {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return base * (1 - dist/threshold)
}

// linkColor returns the accent colour at the given alpha, non-premultiplied.
func (f *Field) linkColor(alpha float64) color.NRGBA {
	c := f.Params.Color
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}
