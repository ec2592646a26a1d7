package layout

import (
	"image"
	"testing"

	"github.com/olivierh59500/smarthome-landing/internal/hotspot"
)

func TestRow(t *testing.T) {
	cells := Row(image.Rect(0, 0, 316, 40), 4, 8)
	if len(cells) != 4 {
		t.Fatalf("cells: %d", len(cells))
	}
	for i, c := range cells {
		if c.Dx() != 73 || c.Dy() != 40 {
			t.Fatalf("cell %d: %v", i, c)
		}
		if i > 0 && c.Min.X-cells[i-1].Max.X != 8 {
			t.Fatalf("gap before cell %d: %d", i, c.Min.X-cells[i-1].Max.X)
		}
	}
	if Row(image.Rect(0, 0, 10, 10), 0, 8) != nil {
		t.Fatalf("zero cells should be nil")
	}
}

func TestSliderValue(t *testing.T) {
	track := image.Rect(100, 0, 300, 10)
	cases := []struct {
		x    int
		want float64
	}{
		{50, 16},
		{100, 16},
		{200, 22},
		{300, 28},
		{400, 28},
		{117, 17}, // 16 + 0.085*12 = 17.02, snapped
	}
	for _, c := range cases {
		if got := SliderValue(track, c.x, 16, 28, 1); got != c.want {
			t.Fatalf("x=%d: got %v want %v", c.x, got, c.want)
		}
	}
}

func TestComputeNoOverlaps(t *testing.T) {
	p := Compute(1280, 800, 4, 3)

	if len(p.Nav) != 3 || len(p.Tabs) != 4 || len(p.Toggles) != 3 || len(p.Services) != 3 {
		t.Fatalf("counts: nav=%d tabs=%d toggles=%d services=%d", len(p.Nav), len(p.Tabs), len(p.Toggles), len(p.Services))
	}
	for typ, r := range p.Hotspots {
		if !r.In(p.Home) {
			t.Fatalf("hotspot %s outside illustration: %v", typ, r)
		}
	}
	for _, typ := range []string{hotspot.Bed, hotspot.Light, hotspot.Temp, hotspot.Curtain} {
		if _, ok := p.Hotspots[typ]; !ok {
			t.Fatalf("missing hotspot %s", typ)
		}
	}
	if p.Home.Overlaps(p.Scene) {
		t.Fatalf("illustration overlaps scene panel")
	}
	for i, tab := range p.Tabs {
		if !tab.In(p.Scene) {
			t.Fatalf("tab %d outside panel", i)
		}
	}
	if !p.Modal.Box.In(image.Rect(0, 0, 1280, 800)) {
		t.Fatalf("modal outside viewport: %v", p.Modal.Box)
	}
	if p.Height != PageHeight {
		t.Fatalf("height: %d", p.Height)
	}
}

func TestNavTargetsFollowSections(t *testing.T) {
	p := Compute(1280, 800, 4, 3)
	prev := -1.0
	for _, a := range p.Nav {
		if a.Target <= prev {
			t.Fatalf("nav targets not increasing: %+v", p.Nav)
		}
		prev = a.Target
	}
}

func TestToScreenAndHit(t *testing.T) {
	r := ToScreen(image.Rect(0, 1000, 100, 1100), 950)
	if r != image.Rect(0, 50, 100, 150) {
		t.Fatalf("to screen: %v", r)
	}
	if !Hit(r, 10, 60) || Hit(r, 10, 150) {
		t.Fatalf("hit test")
	}
}
