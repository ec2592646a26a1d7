package landing

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/smarthome-landing/internal/config"
	"github.com/olivierh59500/smarthome-landing/internal/contact"
	"github.com/olivierh59500/smarthome-landing/internal/estimator"
	"github.com/olivierh59500/smarthome-landing/internal/hotspot"
	"github.com/olivierh59500/smarthome-landing/internal/layout"
)

var (
	colBackground = color.RGBA{R: 0x0a, G: 0x0f, B: 0x1a, A: 0xff}
	colCard       = color.RGBA{R: 0x12, G: 0x1a, B: 0x2b, A: 0xff}
	colBorder     = color.RGBA{R: 0x24, G: 0x30, B: 0x48, A: 0xff}
	colText       = color.RGBA{R: 0xe8, G: 0xee, B: 0xf6, A: 0xff}
	colMuted      = color.RGBA{R: 0x8a, G: 0x96, B: 0xab, A: 0xff}
	colAccent     = color.RGBA{R: config.AccentR, G: config.AccentG, B: config.AccentB, A: 0xff}
	colSuccess    = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
)

var services = []struct{ title, body string }{
	{"Проектирование", "Схема сети, щитов и датчиков под вашу планировку"},
	{"Монтаж", "Прокладка линий и установка устройств без пыли"},
	{"Настройка сцен", "Сценарии света, климата и безопасности"},
}

var zoneLabels = map[string]string{
	hotspot.Bed:     "Кровать",
	hotspot.Light:   "Освещение",
	hotspot.Temp:    "Климат",
	hotspot.Curtain: "Шторы",
}

var (
	typeLabels     = []string{"Квартира", "Дом", "Офис"}
	levelLabels    = []string{"Базовый", "Про", "Элит"}
	timelineLabels = []string{"Стандарт", "Приоритет", "Экспресс"}
)

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	// Particle canvas sits beneath all content
	g.layer.fit(g.width, g.height)
	g.field.Render(&g.layer)
	screen.DrawImage(g.layer.img, nil)

	g.drawOrbs(screen)

	g.drawHero(screen)
	g.drawServices(screen)
	g.drawHome(screen)
	g.drawScene(screen)
	g.drawContact(screen)
	g.drawFooter(screen)
	g.drawNav(screen)

	if g.modal.IsOpen() {
		g.drawModal(screen)
	}
	g.drawCursor(screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f TPS %.1f scroll %.0f | %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scroll.Y, g.scene), 8, g.height-20)
	}
}

// page converts a page rectangle to the screen.
func (g *Game) page(r image.Rectangle) image.Rectangle {
	return layout.ToScreen(r, g.scroll.Y)
}

// revealed shifts r by the element's slide-in offset and returns its opacity.
func (g *Game) revealed(i int, r image.Rectangle) (image.Rectangle, float64) {
	e := g.reveals[i]
	dx, dy := e.Offset()
	return r.Add(image.Pt(int(dx), int(dy))), e.Alpha()
}

func (g *Game) drawOrbs(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	for _, orb := range g.orbs.Items {
		x, y := orb.Position(w, h)
		// stacked translucent discs for a soft edge
		for i := 4; i >= 1; i-- {
			r := orb.Radius * float64(i) / 4
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), orb.Color, true)
		}
	}
}

func (g *Game) drawHero(screen *ebiten.Image) {
	m := float64(g.layout.Margin)
	top := float64(layout.HeroTop+160) - g.scroll.Y
	g.fonts.draw(screen, "Умный дом под ключ", m, top, 56, colText, false)
	g.fonts.draw(screen, "Свет, климат и безопасность в одном приложении.", m, top+84, 22, colMuted, false)
	g.fonts.draw(screen, "Проектируем, монтируем и настраиваем за несколько недель.", m, top+116, 22, colMuted, false)

	btn := g.page(g.layout.CalcButton)
	fillRect(screen, btn, colAccent)
	g.fonts.draw(screen, "Рассчитать проект", float64(btn.Min.X+btn.Dx()/2), float64(btn.Min.Y+14), 20, colBackground, true)
}

func (g *Game) drawServices(screen *ebiten.Image) {
	hdr, a := g.revealed(0, g.page(g.layout.ServicesHeader))
	g.fonts.draw(screen, "Что мы делаем", float64(hdr.Min.X), float64(hdr.Min.Y), 36, fade(colText, a), false)

	for i, card := range g.layout.Services {
		r, a := g.revealed(1+i, g.page(card))
		fillRect(screen, r, fade(colCard, a))
		strokeRect(screen, r, fade(colBorder, a))
		g.fonts.draw(screen, services[i].title, float64(r.Min.X+24), float64(r.Min.Y+28), 22, fade(colText, a), false)
		g.fonts.draw(screen, services[i].body, float64(r.Min.X+24), float64(r.Min.Y+72), 14, fade(colMuted, a), false)
	}
}

func (g *Game) drawHome(screen *ebiten.Image) {
	r, a := g.revealed(4, g.page(g.layout.Home))
	off := r.Min.Sub(g.page(g.layout.Home).Min)
	at := func(pr image.Rectangle) image.Rectangle { return g.page(pr).Add(off) }
	in := g.hotspots.Intensity

	fillRect(screen, r, fade(colCard, a))
	strokeRect(screen, r, fade(colBorder, a))

	// Ceiling light: rays then the lamp glow, scaled by brightness
	lamp := at(g.layout.Hotspots[hotspot.Light])
	lx, ly := centre(lamp)
	rays := color.NRGBA{R: 255, G: 214, B: 120, A: uint8(120 * in.RaysLow * a)}
	if g.hotspots.Zones[hotspot.Light].Active {
		rays.A = uint8(120 * in.Rays * a)
	}
	vector.DrawFilledCircle(screen, lx, ly+80, float32(60+100*in.Light), rays, true)
	vector.DrawFilledCircle(screen, lx, ly, 14, color.NRGBA{R: 255, G: 230, B: 160, A: uint8(255 * max(in.LightLow, 0.2) * a)}, true)

	// Bed
	bed := at(g.layout.Hotspots[hotspot.Bed])
	bedCol := color.NRGBA{R: 90, G: 110, B: 160, A: uint8(255 * a)}
	if g.hotspots.Zones[hotspot.Bed].Toggled {
		bedCol = color.NRGBA{R: 60, G: 70, B: 110, A: uint8(255 * a)}
	}
	fillRect(screen, image.Rect(bed.Min.X-70, bed.Min.Y-10, bed.Max.X+70, bed.Max.Y+30), bedCol)

	// Curtains slide apart while hovered or toggled
	win := image.Rect(r.Min.X+24, r.Min.Y+60, r.Min.X+180, r.Min.Y+260)
	fillRect(screen, win, fade(color.RGBA{R: 40, G: 70, B: 110, A: 0xff}, a))
	half := win.Dx() / 2
	curtain := g.hotspots.Zones[hotspot.Curtain]
	if curtain.Active || curtain.Toggled {
		half = win.Dx() / 6
	}
	curtainCol := fade(color.RGBA{R: 120, G: 90, B: 140, A: 0xff}, a)
	fillRect(screen, image.Rect(win.Min.X, win.Min.Y, win.Min.X+half, win.Max.Y), curtainCol)
	fillRect(screen, image.Rect(win.Max.X-half, win.Min.Y, win.Max.X, win.Max.Y), curtainCol)

	// Thermostat ring, warm when toggled
	temp := at(g.layout.Hotspots[hotspot.Temp])
	tx, ty := centre(temp)
	tempCol := color.NRGBA{R: 96, G: 165, B: 250, A: uint8(255 * a)}
	if g.hotspots.Zones[hotspot.Temp].Toggled {
		tempCol = color.NRGBA{R: 251, G: 146, B: 60, A: uint8(255 * a)}
	}
	vector.StrokeCircle(screen, tx, ty, 30, 4, tempCol, true)

	// Hotspot markers and tooltips
	for _, typ := range []string{hotspot.Curtain, hotspot.Light, hotspot.Bed, hotspot.Temp} {
		z := g.hotspots.Zones[typ]
		hs := at(g.layout.Hotspots[typ])
		cx, cy := centre(hs)
		ring := fade(colAccent, a*0.6)
		if z.Active || z.Toggled {
			ring = fade(colAccent, a)
		}
		vector.DrawFilledCircle(screen, cx, cy, 8, fade(colAccent, a), true)
		vector.StrokeCircle(screen, cx, cy, float32(hs.Dx()/2), 2, ring, true)

		if z.Tooltip.Visible {
			g.drawTooltip(screen, hs, zoneLabels[typ], z.Tooltip.Value, z.Tooltip.Highlight)
		}
	}
}

func (g *Game) drawTooltip(screen *ebiten.Image, anchor image.Rectangle, label, value string, highlight bool) {
	w := int(max(g.fonts.width(label, 14), g.fonts.width(value, 18))) + 24
	box := image.Rect(anchor.Max.X+8, anchor.Min.Y-8, anchor.Max.X+8+w, anchor.Min.Y+56)
	fillRect(screen, box, colBackground)
	strokeRect(screen, box, colBorder)
	g.fonts.draw(screen, label, float64(box.Min.X+12), float64(box.Min.Y+8), 14, colMuted, false)
	valueCol := colText
	if highlight {
		valueCol = colAccent
	}
	g.fonts.draw(screen, value, float64(box.Min.X+12), float64(box.Min.Y+28), 18, valueCol, false)
}

func (g *Game) drawScene(screen *ebiten.Image) {
	p := g.scene
	r, a := g.revealed(5, g.page(g.layout.Scene))
	off := r.Min.Sub(g.page(g.layout.Scene).Min)
	at := func(pr image.Rectangle) image.Rectangle { return g.page(pr).Add(off) }

	fillRect(screen, r, fade(colCard, a))
	// panel glow follows the light slider
	fillRect(screen, r, color.NRGBA{R: 255, G: 220, B: 150, A: uint8(24 * p.PanelLight * a)})
	strokeRect(screen, r, fade(colBorder, a))

	for i, tr := range g.layout.Tabs {
		t := at(tr)
		if p.Tabs[i].Active {
			fillRect(screen, t, fade(colAccent, a))
			g.fonts.draw(screen, tabTitle(p.Tabs[i].Title), float64(t.Min.X+t.Dx()/2), float64(t.Min.Y+9), 14, fade(colBackground, a), true)
		} else {
			strokeRect(screen, t, fade(colBorder, a))
			g.fonts.draw(screen, tabTitle(p.Tabs[i].Title), float64(t.Min.X+t.Dx()/2), float64(t.Min.Y+9), 14, fade(colMuted, a), true)
		}
	}

	x := float64(r.Min.X + 16)
	y := float64(r.Min.Y + 72)
	g.fonts.draw(screen, p.Title+" · "+p.Room, x, y, 24, fade(colText, a), false)
	g.fonts.draw(screen, p.Subtitle, x, y+34, 14, fade(colMuted, a), false)

	statusCol := colSuccess
	if p.Offline {
		statusCol = colMuted
	}
	vector.DrawFilledCircle(screen, float32(x+5), float32(y+70), 5, fade(statusCol, a), true)
	g.fonts.draw(screen, p.StatusText, x+18, y+60, 14, fade(statusCol, a), false)

	temp := at(g.layout.TempSlider)
	g.fonts.draw(screen, "Температура  "+p.TempValue+"  "+p.TempLabel, float64(temp.Min.X), float64(temp.Min.Y-26), 15, fade(colText, a), false)
	drawSlider(screen, temp, p.TempRange.Fill()/100, fade(p.TempAccent, a), a)

	light := at(g.layout.LightSlider)
	g.fonts.draw(screen, "Свет  "+p.LightValue+"  "+p.LightLabel, float64(light.Min.X), float64(light.Min.Y-26), 15, fade(colText, a), false)
	drawSlider(screen, light, p.LightRange.Fill()/100, fade(colAccent, a), a)

	for i, tr := range g.layout.Toggles {
		t := at(tr)
		tg := p.Toggles[i]
		border := colBorder
		if tg.Pressed {
			border = colAccent
		}
		strokeRect(screen, t, fade(border, a))
		g.fonts.draw(screen, tg.Label, float64(t.Min.X+10), float64(t.Min.Y+8), 13, fade(colMuted, a), false)
		g.fonts.draw(screen, tg.State, float64(t.Min.X+10), float64(t.Min.Y+30), 15, fade(colText, a), false)
	}

	g.fonts.draw(screen, "♪ "+p.Media, x, float64(r.Max.Y-56), 15, fade(colText, a), false)
	g.fonts.draw(screen, p.MediaSubtitle, x, float64(r.Max.Y-34), 13, fade(colMuted, a), false)
}

func (g *Game) drawContact(screen *ebiten.Image) {
	r, a := g.revealed(6, g.page(g.layout.Contact))
	off := r.Min.Sub(g.page(g.layout.Contact).Min)

	g.fonts.draw(screen, "Оставьте заявку", float64(r.Min.X), float64(r.Min.Y-56), 36, fade(colText, a), false)

	placeholders := map[string]string{
		contact.Name:    "Имя",
		contact.Phone:   "Телефон",
		contact.Message: "Расскажите о проекте",
	}
	for name, fr := range g.layout.Fields {
		f := g.page(fr).Add(off)
		fillRect(screen, f, fade(colCard, a))
		border := colBorder
		if g.form.Focus == name {
			border = colAccent
		}
		strokeRect(screen, f, fade(border, a))
		if v := g.form.Fields[name]; v != "" {
			g.fonts.draw(screen, v, float64(f.Min.X+14), float64(f.Min.Y+14), 16, fade(colText, a), false)
		} else {
			g.fonts.draw(screen, placeholders[name], float64(f.Min.X+14), float64(f.Min.Y+14), 16, fade(colMuted, a), false)
		}
	}

	btn := g.page(g.layout.Submit).Add(off)
	btnCol := colAccent
	if g.form.State() == contact.Sent {
		btnCol = colSuccess
	}
	fillRect(screen, btn, fade(btnCol, a))
	label := g.form.Label()
	if g.form.State() == contact.Sending {
		label = spinner(ebiten.Tick()) + " " + label
	}
	g.fonts.draw(screen, label, float64(btn.Min.X+btn.Dx()/2), float64(btn.Min.Y+15), 18, fade(colBackground, a), true)
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	y := float64(layout.FooterTop+24) - g.scroll.Y
	g.fonts.draw(screen, "© Умный дом · Все права защищены", float64(g.layout.Margin), y, 14, colMuted, false)
}

func (g *Game) drawNav(screen *ebiten.Image) {
	bar := image.Rect(0, 0, g.width, config.NavHeight)
	if g.scroll.NavScrolled() {
		fillRect(screen, bar, color.NRGBA{R: 0x0a, G: 0x0f, B: 0x1a, A: 230})
		vector.StrokeLine(screen, 0, config.NavHeight, float32(g.width), config.NavHeight, 1, colBorder, false)
	}
	g.fonts.draw(screen, "SMART·HOME", float64(g.layout.Margin), 20, 20, colAccent, false)
	for _, a := range g.layout.Nav {
		g.fonts.draw(screen, a.Label, float64(a.Rect.Min.X+a.Rect.Dx()/2), float64(a.Rect.Min.Y+6), 16, colText, true)
	}
}

func (g *Game) drawModal(screen *ebiten.Image) {
	m := g.layout.Modal
	md := g.modal
	in := md.Input
	est := md.Estimate

	fillRect(screen, image.Rect(0, 0, g.width, g.height), color.NRGBA{A: 170})
	fillRect(screen, m.Box, colCard)
	strokeRect(screen, m.Box, colBorder)

	g.fonts.draw(screen, "Расчёт проекта", float64(m.Box.Min.X+24), float64(m.Box.Min.Y+22), 26, colText, false)
	strokeRect(screen, m.Close, colBorder)
	g.fonts.draw(screen, "×", float64(m.Close.Min.X+m.Close.Dx()/2), float64(m.Close.Min.Y+4), 20, colText, true)

	g.drawOptions(screen, m.Types, typeLabels, typeOptions, in.Type)
	g.drawOptions(screen, m.Levels, levelLabels, levelOptions, in.Level)
	g.drawOptions(screen, m.Timelines, timelineLabels, timelineOptions, in.Timeline)

	areaFill := float64(estimator.RangeFill(in.Area, estimator.AreaMin, estimator.AreaMax)) / 100
	g.fonts.draw(screen, "Площадь  "+estimator.AreaLabel(in.Area), float64(m.Area.Min.X), float64(m.Area.Min.Y-26), 15, colText, false)
	drawSlider(screen, m.Area, areaFill, colAccent, 1)

	roomsFill := float64(estimator.RangeFill(in.Rooms, estimator.RoomsMin, estimator.RoomsMax)) / 100
	g.fonts.draw(screen, fmt.Sprintf("Комнат  %g", in.Rooms), float64(m.Rooms.Min.X), float64(m.Rooms.Min.Y-26), 15, colText, false)
	drawSlider(screen, m.Rooms, roomsFill, colAccent, 1)

	res := m.Result
	x, y := float64(res.Min.X), float64(res.Min.Y)
	g.fonts.draw(screen, estimator.FormatCurrency(est.Avg), x, y, 32, colAccent, false)
	g.fonts.draw(screen, estimator.FormatCurrency(est.Min)+" – "+estimator.FormatCurrency(est.Max), x, y+44, 15, colMuted, false)
	g.fonts.draw(screen, "Срок: "+est.Weeks(), x, y+70, 15, colText, false)
	g.fonts.draw(screen, fmt.Sprintf("Устройств: %d   Сценариев: %d", est.Devices, est.Scenes), x, y+94, 15, colText, false)

	btnCol := colAccent
	if md.ButtonDisabled {
		btnCol = colSuccess
	}
	fillRect(screen, m.Submit, btnCol)
	g.fonts.draw(screen, md.ButtonText, float64(m.Submit.Min.X+m.Submit.Dx()/2), float64(m.Submit.Min.Y+15), 18, colBackground, true)
}

func (g *Game) drawOptions(screen *ebiten.Image, rects []image.Rectangle, labels, values []string, selected string) {
	for i, r := range rects {
		if values[i] == selected {
			fillRect(screen, r, colAccent)
			g.fonts.draw(screen, labels[i], float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+9), 15, colBackground, true)
			continue
		}
		strokeRect(screen, r, colBorder)
		g.fonts.draw(screen, labels[i], float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+9), 15, colText, true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	c := g.cursor
	ring := fade(colAccent, 0.5)
	if c.Hover {
		ring = fade(colAccent, 0.9)
	}
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.RingRadius()), 1.5, ring, true)
	vector.DrawFilledCircle(screen, float32(c.MouseX), float32(c.MouseY), config.CursorDotRadius, colAccent, true)
}

func drawSlider(screen *ebiten.Image, track image.Rectangle, fill float64, accent color.Color, alpha float64) {
	fill = min(1, max(0, fill))
	y := float32(track.Min.Y + track.Dy()/2)
	x0, x1 := float32(track.Min.X), float32(track.Max.X)
	knob := x0 + (x1-x0)*float32(fill)
	vector.StrokeLine(screen, x0, y, x1, y, 4, fade(colBorder, alpha), true)
	vector.StrokeLine(screen, x0, y, knob, y, 4, accent, true)
	vector.DrawFilledCircle(screen, knob, y, 8, fade(colText, alpha), true)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}

func centre(r image.Rectangle) (float32, float32) {
	return float32(r.Min.X + r.Dx()/2), float32(r.Min.Y + r.Dy()/2)
}

// fade scales c's alpha by a.
func fade(c color.RGBA, a float64) color.NRGBA {
	a = min(1, max(0, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * a))}
}

// tabTitle keeps long scene names inside their tab.
func tabTitle(s string) string {
	r := []rune(s)
	if len(r) > 10 {
		return string(r[:9]) + "…"
	}
	return s
}

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

func spinner(tick uint64) string {
	return spinnerFrames[(tick/8)%uint64(len(spinnerFrames))]
}
