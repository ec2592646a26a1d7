package page

import (
	"github.com/charmbracelet/harmonica"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

// Scroller is the page's vertical scroll with a spring-smoothed offset.
type Scroller struct {
	Y, vel  float64 // rendered offset and its velocity
	Target  float64
	Content float64 // total page height
	View    float64 // viewport height
	Locked  bool

	spring harmonica.Spring
}

func NewScroller(tps int, content, view float64) *Scroller {
	return &Scroller{
		Content: content,
		View:    view,
		spring:  harmonica.NewSpring(harmonica.FPS(tps), config.ScrollFrequency, config.ScrollDamping),
	}
}

// Wheel scrolls by a wheel delta; positive dy scrolls up like ebiten.Wheel.
func (s *Scroller) Wheel(dy float64) {
	if s.Locked || dy == 0 {
		return
	}
	s.ScrollTo(s.Target - dy*config.WheelStep)
}

// ScrollTo sets the target offset, e.g. for an anchor link.
func (s *Scroller) ScrollTo(y float64) {
	if s.Locked {
		return
	}
	s.Target = s.clamp(y)
}

// Resize updates the viewport height and keeps the target in range.
func (s *Scroller) Resize(content, view float64) {
	s.Content = content
	s.View = view
	s.Target = s.clamp(s.Target)
}

// Step moves the rendered offset one frame toward the target.
func (s *Scroller) Step() {
	s.Y, s.vel = s.spring.Update(s.Y, s.vel, s.Target)
	s.Y = s.clamp(s.Y)
}

// NavScrolled reports whether the nav bar switches to its compact look.
func (s *Scroller) NavScrolled() bool {
	return s.Y > config.NavScrolledAfter
}

func (s *Scroller) clamp(y float64) float64 {
	limit := max(0, s.Content-s.View)
	return min(limit, max(0, y))
}
