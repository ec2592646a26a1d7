package landing

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/smarthome-landing/internal/config"
	"github.com/olivierh59500/smarthome-landing/internal/estimator"
	"github.com/olivierh59500/smarthome-landing/internal/layout"
)

var (
	typeOptions     = []string{estimator.Apartment, estimator.House, estimator.Office}
	levelOptions    = []string{estimator.Base, estimator.Pro, estimator.Elite}
	timelineOptions = []string{estimator.Standard, estimator.Priority, estimator.Express}
)

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() error {
	mx, my := ebiten.CursorPosition()
	if mx != g.prevMX || my != g.prevMY {
		g.cursor.Move(float64(mx), float64(my))
		g.orbs.Move(float64(mx), float64(my), float64(g.width), float64(g.height))
		g.prevMX, g.prevMY = mx, my
	}

	// Keyboard
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.modal.Escape() {
			g.form.Focus = ""
		}
	}
	if g.form.Captures(g.modal.IsOpen()) {
		g.form.Type(ebiten.AppendInputChars(nil))
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.form.Backspace()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.form.Enter()
		}
	} else if !g.modal.IsOpen() && g.form.Focus == "" && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	_, wheelY := ebiten.Wheel()
	g.scroll.Wheel(wheelY)

	// Page-space pointer
	px, py := mx, my+int(g.scroll.Y)

	g.updateHover(mx, my, px, py)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.modal.IsOpen() {
			g.clickModal(mx, my)
		} else {
			g.clickPage(mx, my, px, py)
		}
	}
	if g.dragging != noSlider {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.drag(mx)
		} else {
			g.dragging = noSlider
		}
	}
	return nil
}

// updateHover drives the hotspot enter/leave events and the cursor ring.
func (g *Game) updateHover(mx, my, px, py int) {
	over := ""
	if !g.modal.IsOpen() {
		for typ, r := range g.layout.Hotspots {
			if layout.Hit(r, px, py) {
				over = typ
				break
			}
		}
	}
	if over != g.hovered {
		if g.hovered != "" {
			g.hotspots.Leave(g.hovered)
		}
		if over != "" {
			g.hotspots.Enter(over)
		}
		g.hovered = over
	}

	g.cursor.SetHover(g.overInteractive(mx, my, px, py))
}

func (g *Game) overInteractive(mx, my, px, py int) bool {
	l := g.layout
	if g.modal.IsOpen() {
		m := l.Modal
		screen := []image.Rectangle{m.Close, m.Submit}
		screen = append(screen, m.Types...)
		screen = append(screen, m.Levels...)
		screen = append(screen, m.Timelines...)
		return anyHit(screen, mx, my)
	}
	for _, a := range l.Nav {
		if layout.Hit(a.Rect, mx, my) {
			return true
		}
	}
	paged := []image.Rectangle{l.CalcButton, l.Submit}
	paged = append(paged, l.Services...)
	paged = append(paged, l.Tabs...)
	paged = append(paged, l.Toggles...)
	for _, r := range l.Hotspots {
		paged = append(paged, r)
	}
	return anyHit(paged, px, py)
}

func (g *Game) clickPage(mx, my, px, py int) {
	l := g.layout

	// The nav is fixed on top of the page.
	for _, a := range l.Nav {
		if layout.Hit(a.Rect, mx, my) {
			g.scroll.ScrollTo(a.Target)
			return
		}
	}
	if my < config.NavHeight {
		return
	}

	if layout.Hit(l.CalcButton, px, py) {
		g.form.Focus = ""
		g.modal.Open()
		return
	}
	for typ, r := range l.Hotspots {
		if layout.Hit(r, px, py) {
			g.hotspots.Click(typ)
			return
		}
	}
	for i, r := range l.Tabs {
		if layout.Hit(r, px, py) {
			g.scene.Apply(i)
			return
		}
	}
	for i, r := range l.Toggles {
		if layout.Hit(r, px, py) {
			g.scene.Toggles[i].Click()
			return
		}
	}
	if hitSlider(l.TempSlider, px, py) {
		g.dragging = tempSlider
		g.drag(mx)
		return
	}
	if hitSlider(l.LightSlider, px, py) {
		g.dragging = lightSlider
		g.drag(mx)
		return
	}

	g.form.Focus = ""
	for name, r := range l.Fields {
		if layout.Hit(r, px, py) {
			g.form.Focus = name
			return
		}
	}
	if layout.Hit(l.Submit, px, py) {
		g.form.Submit()
	}
}

func (g *Game) clickModal(mx, my int) {
	m := g.layout.Modal
	switch {
	case layout.Hit(m.Close, mx, my), !layout.Hit(m.Box, mx, my):
		g.modal.Close()
	case layout.Hit(m.Submit, mx, my):
		if !g.modal.ButtonDisabled {
			g.modal.Submit()
		}
	case hitSlider(m.Area, mx, my):
		g.dragging = areaSlider
		g.drag(mx)
	case hitSlider(m.Rooms, mx, my):
		g.dragging = roomsSlider
		g.drag(mx)
	default:
		if i := hitIndex(m.Types, mx, my); i >= 0 {
			g.modal.SetType(typeOptions[i])
		} else if i := hitIndex(m.Levels, mx, my); i >= 0 {
			g.modal.SetLevel(levelOptions[i])
		} else if i := hitIndex(m.Timelines, mx, my); i >= 0 {
			g.modal.SetTimeline(timelineOptions[i])
		}
	}
}

// drag feeds the active slider with the pointer x.
func (g *Game) drag(mx int) {
	l := g.layout
	switch g.dragging {
	case tempSlider:
		r := g.scene.TempRange
		v := layout.SliderValue(l.TempSlider, mx, r.Min, r.Max, 1)
		g.scene.SetTemperature(strconv.FormatFloat(v, 'f', -1, 64))
	case lightSlider:
		r := g.scene.LightRange
		v := layout.SliderValue(l.LightSlider, mx, r.Min, r.Max, 1)
		g.scene.SetLight(strconv.FormatFloat(v, 'f', -1, 64), "")
	case areaSlider:
		g.modal.SetArea(layout.SliderValue(l.Modal.Area, mx, estimator.AreaMin, estimator.AreaMax, 1))
	case roomsSlider:
		g.modal.SetRooms(layout.SliderValue(l.Modal.Rooms, mx, estimator.RoomsMin, estimator.RoomsMax, 1))
	}
}

// hitSlider grows the thin track so it is easy to grab.
func hitSlider(track image.Rectangle, x, y int) bool {
	return layout.Hit(image.Rect(track.Min.X-8, track.Min.Y-12, track.Max.X+8, track.Max.Y+12), x, y)
}

func hitIndex(rs []image.Rectangle, x, y int) int {
	for i, r := range rs {
		if layout.Hit(r, x, y) {
			return i
		}
	}
	return -1
}

func anyHit(rs []image.Rectangle, x, y int) bool {
	return hitIndex(rs, x, y) >= 0
}
