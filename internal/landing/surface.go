package landing

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// layer is the particle canvas: an offscreen image sized to the viewport
// that the field renders into each frame.
type layer struct {
	img *ebiten.Image
}

// fit reallocates the image when the viewport size changed.
func (l *layer) fit(w, h int) {
	if l.img != nil {
		b := l.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(w, h)
}

func (l *layer) Clear() {
	l.img.Clear()
}

func (l *layer) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), c, true)
}

func (l *layer) Line(x0, y0, x1, y1 float64, c color.Color) {
	vector.StrokeLine(l.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
}
