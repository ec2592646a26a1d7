package landing

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts caches one face per size over the Go Regular source, which has
// Cyrillic glyphs.
type fonts struct {
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &fonts{src: src, faces: map[float64]*text.GoTextFace{}}, nil
}

func (f *fonts) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.src, Size: size}
	f.faces[size] = face
	return face
}

// draw writes s with its top-left (or top-centre when centred) at x, y.
func (f *fonts) draw(dst *ebiten.Image, s string, x, y, size float64, clr color.Color, centred bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = size * 1.3
	op.ColorScale.ScaleWithColor(clr)
	if centred {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, f.face(size), op)
}

// width measures s at size.
func (f *fonts) width(s string, size float64) float64 {
	w, _ := text.Measure(s, f.face(size), 0)
	return w
}
