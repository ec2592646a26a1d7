package reveal

import (
	"image"
	"time"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

// Kind picks the direction an element slides in from.
type Kind int

const (
	Up Kind = iota
	Left
	Right
)

// Element is one observed block in page coordinates.
type Element struct {
	Rect     image.Rectangle
	Kind     Kind
	Revealed bool
	Progress float64 // 0..1 once revealed
}

// Offset is the draw offset for the current progress.
func (e *Element) Offset() (dx, dy float64) {
	rest := 1 - ease(e.Progress)
	switch e.Kind {
	case Left:
		return -60 * rest, 0
	case Right:
		return 60 * rest, 0
	default:
		return 0, 40 * rest
	}
}

// Alpha is the draw opacity for the current progress.
func (e *Element) Alpha() float64 {
	return ease(e.Progress)
}

// Observer flips elements to revealed when enough of them enters the viewport.
type Observer struct {
	Threshold float64 // fraction of the element that must be visible
	Margin    int     // the viewport is shrunk by this much on every side
	Duration  time.Duration
	Elements  []*Element
}

func NewObserver() *Observer {
	return &Observer{
		Threshold: config.RevealThreshold,
		Margin:    config.RevealMargin,
		Duration:  config.RevealDuration,
	}
}

// Observe registers an element and returns it for drawing.
func (o *Observer) Observe(r image.Rectangle, k Kind) *Element {
	e := &Element{Rect: r, Kind: k}
	o.Elements = append(o.Elements, e)
	return e
}

// Update checks every element against the viewport (page coordinates) and
// advances the reveal animation by dt.
func (o *Observer) Update(viewport image.Rectangle, dt time.Duration) {
	root := viewport.Inset(o.Margin)
	for _, e := range o.Elements {
		if !e.Revealed && Ratio(e.Rect, root) >= o.Threshold {
			e.Revealed = true
		}
		if e.Revealed && e.Progress < 1 {
			e.Progress += float64(dt) / float64(o.Duration)
			if e.Progress > 1 {
				e.Progress = 1
			}
		}
	}
}

// Ratio is the visible fraction of r inside root.
func Ratio(r, root image.Rectangle) float64 {
	area := r.Dx() * r.Dy()
	if area == 0 {
		return 0
	}
	in := r.Intersect(root)
	return float64(in.Dx()*in.Dy()) / float64(area)
}

func ease(t float64) float64 {
	// ease-out cubic
	u := 1 - t
	return 1 - u*u*u
}
