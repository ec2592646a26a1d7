package cursor

import "github.com/olivierh59500/smarthome-landing/internal/config"

// Follower tracks the raw pointer (the dot) and an eased ring that trails it.
type Follower struct {
	MouseX, MouseY float64 // latest pointer position, where the dot is drawn
	X, Y           float64 // ring position
	Ease           float64
	Hover          bool
}

func New() *Follower {
	return &Follower{Ease: config.CursorEase}
}

// Move records a pointer move.
func (f *Follower) Move(x, y float64) {
	f.MouseX = x
	f.MouseY = y
}

// Step eases the ring toward the pointer; called once per frame.
func (f *Follower) Step() {
	f.X += (f.MouseX - f.X) * f.Ease
	f.Y += (f.MouseY - f.Y) * f.Ease
}

// SetHover toggles the enlarged ring used over interactive elements.
func (f *Follower) SetHover(on bool) {
	f.Hover = on
}

// RingRadius is the ring size for the current hover state.
func (f *Follower) RingRadius() float64 {
	if f.Hover {
		return config.CursorRingHover
	}
	return config.CursorRing
}
