package layout

import (
	"image"
	"math"

	"github.com/olivierh59500/smarthome-landing/internal/config"
	"github.com/olivierh59500/smarthome-landing/internal/hotspot"
)

// Section tops in page coordinates
const (
	HeroTop     = 0
	ServicesTop = 640
	HomeTop     = 980
	ContactTop  = 1580
	FooterTop   = 2100
	PageHeight  = 2180
)

// Anchor is a nav link scrolling to a section.
type Anchor struct {
	Label  string
	Target float64
	Rect   image.Rectangle // screen coordinates, the nav is fixed
}

// Modal geometry, screen coordinates.
type Modal struct {
	Box       image.Rectangle
	Close     image.Rectangle
	Types     []image.Rectangle
	Levels    []image.Rectangle
	Timelines []image.Rectangle
	Area      image.Rectangle
	Rooms     image.Rectangle
	Result    image.Rectangle
	Submit    image.Rectangle
}

// Page is the full page geometry for one viewport size. Everything except
// Nav and Modal is in page coordinates (add the scroll offset to draw).
type Page struct {
	Width, Height int
	Margin        int

	Nav        []Anchor
	CalcButton image.Rectangle

	ServicesHeader image.Rectangle
	Services       []image.Rectangle

	Home     image.Rectangle
	Hotspots map[string]image.Rectangle

	Scene       image.Rectangle
	Tabs        []image.Rectangle
	TempSlider  image.Rectangle
	LightSlider image.Rectangle
	Toggles     []image.Rectangle

	Contact image.Rectangle
	Fields  map[string]image.Rectangle
	Submit  image.Rectangle

	Modal Modal
}

// hotspot anchors as fractions of the illustration
var hotspotAt = map[string][2]float64{
	hotspot.Bed:     {0.28, 0.7},
	hotspot.Light:   {0.5, 0.16},
	hotspot.Temp:    {0.82, 0.42},
	hotspot.Curtain: {0.1, 0.32},
}

const hotspotSize = 44

// Compute lays out a w×h viewport with nTabs scene tabs and nToggles toggles.
func Compute(w, h, nTabs, nToggles int) Page {
	margin := max(40, (w-1100)/2)
	col := w - 2*margin

	p := Page{
		Width:  w,
		Height: PageHeight,
		Margin: margin,
	}

	// Nav links, right aligned
	labels := []struct {
		label string
		top   float64
	}{
		{"Услуги", ServicesTop},
		{"Умный дом", HomeTop},
		{"Контакты", ContactTop},
	}
	x := w - margin
	for i := len(labels) - 1; i >= 0; i-- {
		lw := 110
		x -= lw
		p.Nav = append([]Anchor{{
			Label:  labels[i].label,
			Target: labels[i].top - config.NavHeight,
			Rect:   image.Rect(x, 16, x+lw, config.NavHeight-16),
		}}, p.Nav...)
	}

	p.CalcButton = image.Rect(margin, 420, margin+280, 472)

	// Services
	p.ServicesHeader = image.Rect(margin, ServicesTop+40, margin+col, ServicesTop+100)
	gap := 24
	cw := (col - 2*gap) / 3
	for i := 0; i < 3; i++ {
		cx := margin + i*(cw+gap)
		p.Services = append(p.Services, image.Rect(cx, ServicesTop+120, cx+cw, ServicesTop+300))
	}

	// Smart home illustration and scene panel side by side
	homeW := col * 6 / 10
	p.Home = image.Rect(margin, HomeTop+80, margin+homeW, HomeTop+540)
	p.Hotspots = make(map[string]image.Rectangle, len(hotspotAt))
	for typ, at := range hotspotAt {
		cx := p.Home.Min.X + int(at[0]*float64(p.Home.Dx()))
		cy := p.Home.Min.Y + int(at[1]*float64(p.Home.Dy()))
		p.Hotspots[typ] = image.Rect(cx-hotspotSize/2, cy-hotspotSize/2, cx+hotspotSize/2, cy+hotspotSize/2)
	}

	p.Scene = image.Rect(p.Home.Max.X+gap, p.Home.Min.Y, margin+col, p.Home.Max.Y)
	p.Tabs = Row(image.Rect(p.Scene.Min.X+16, p.Scene.Min.Y+16, p.Scene.Max.X-16, p.Scene.Min.Y+52), nTabs, 8)
	p.TempSlider = image.Rect(p.Scene.Min.X+16, p.Scene.Min.Y+232, p.Scene.Max.X-16, p.Scene.Min.Y+248)
	p.LightSlider = image.Rect(p.Scene.Min.X+16, p.Scene.Min.Y+300, p.Scene.Max.X-16, p.Scene.Min.Y+316)
	p.Toggles = Row(image.Rect(p.Scene.Min.X+16, p.Scene.Min.Y+360, p.Scene.Max.X-16, p.Scene.Min.Y+420), nToggles, 8)

	// Contact form
	fw := col / 2
	p.Contact = image.Rect(margin, ContactTop+80, margin+fw, ContactTop+460)
	p.Fields = map[string]image.Rectangle{
		"name":    image.Rect(margin, ContactTop+100, margin+fw, ContactTop+148),
		"phone":   image.Rect(margin, ContactTop+164, margin+fw, ContactTop+212),
		"message": image.Rect(margin, ContactTop+228, margin+fw, ContactTop+324),
	}
	p.Submit = image.Rect(margin, ContactTop+348, margin+260, ContactTop+400)

	p.Modal = computeModal(w, h)
	return p
}

func computeModal(w, h int) Modal {
	mw, mh := min(640, w-40), min(600, h-40)
	box := image.Rect((w-mw)/2, (h-mh)/2, (w+mw)/2, (h+mh)/2)
	in := box.Inset(24)

	return Modal{
		Box:       box,
		Close:     image.Rect(box.Max.X-48, box.Min.Y+16, box.Max.X-16, box.Min.Y+48),
		Types:     Row(image.Rect(in.Min.X, in.Min.Y+56, in.Max.X, in.Min.Y+92), 3, 8),
		Levels:    Row(image.Rect(in.Min.X, in.Min.Y+116, in.Max.X, in.Min.Y+152), 3, 8),
		Timelines: Row(image.Rect(in.Min.X, in.Min.Y+176, in.Max.X, in.Min.Y+212), 3, 8),
		Area:      image.Rect(in.Min.X, in.Min.Y+256, in.Max.X, in.Min.Y+272),
		Rooms:     image.Rect(in.Min.X, in.Min.Y+316, in.Max.X, in.Min.Y+332),
		Result:    image.Rect(in.Min.X, in.Min.Y+352, in.Max.X, in.Max.Y-72),
		Submit:    image.Rect(in.Min.X, in.Max.Y-52, in.Max.X, in.Max.Y),
	}
}

// Row splits r into n equal cells separated by gap.
func Row(r image.Rectangle, n, gap int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	cw := (r.Dx() - (n-1)*gap) / n
	out := make([]image.Rectangle, n)
	for i := range out {
		x := r.Min.X + i*(cw+gap)
		out[i] = image.Rect(x, r.Min.Y, x+cw, r.Max.Y)
	}
	return out
}

// SliderValue maps a pointer x on a slider track to a value in [lo, hi],
// snapped to step.
func SliderValue(track image.Rectangle, x int, lo, hi, step float64) float64 {
	if track.Dx() <= 0 {
		return lo
	}
	t := float64(x-track.Min.X) / float64(track.Dx())
	t = min(1, max(0, t))
	v := lo + t*(hi-lo)
	if step > 0 {
		v = lo + math.Round((v-lo)/step)*step
	}
	return min(hi, max(lo, v))
}

// Hit reports whether the point lies in r.
func Hit(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}

// ToScreen shifts a page rectangle by the scroll offset.
func ToScreen(r image.Rectangle, scrollY float64) image.Rectangle {
	return r.Sub(image.Pt(0, int(math.Round(scrollY))))
}
