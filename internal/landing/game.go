package landing

import (
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/smarthome-landing/internal/config"
	"github.com/olivierh59500/smarthome-landing/internal/contact"
	"github.com/olivierh59500/smarthome-landing/internal/cursor"
	"github.com/olivierh59500/smarthome-landing/internal/estimator"
	"github.com/olivierh59500/smarthome-landing/internal/hotspot"
	"github.com/olivierh59500/smarthome-landing/internal/layout"
	"github.com/olivierh59500/smarthome-landing/internal/page"
	"github.com/olivierh59500/smarthome-landing/internal/parallax"
	"github.com/olivierh59500/smarthome-landing/internal/particles"
	"github.com/olivierh59500/smarthome-landing/internal/reveal"
	"github.com/olivierh59500/smarthome-landing/internal/scene"
)

// slider ids for drag tracking
const (
	noSlider = iota
	tempSlider
	lightSlider
	areaSlider
	roomsSlider
)

// Game struct: Owns every widget on the page and implements ebiten.Game
type Game struct {
	cfg           config.Config
	dt            time.Duration
	width, height int
	layout        layout.Page

	field *particles.Field
	layer layer

	cursor   *cursor.Follower
	observer *reveal.Observer
	reveals  []*reveal.Element // same order as revealRects
	hotspots *hotspot.Set
	hovered  string
	scene    *scene.Panel
	modal    *estimator.Modal
	form     *contact.Form
	orbs     *parallax.Orbs
	scroll   *page.Scroller
	fonts    *fonts

	dragging       int
	prevMX, prevMY int
}

// NewGame wires the page for cfg with the given scene tabs.
func NewGame(cfg config.Config, tabs []scene.Tab) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	params := particles.DefaultParams()
	params.Count = cfg.Particles

	g := &Game{
		cfg:      cfg,
		dt:       cfg.FrameDelta(),
		width:    cfg.Width,
		height:   cfg.Height,
		field:    particles.New(params, particles.Bounds{W: float64(cfg.Width), H: float64(cfg.Height)}, rng),
		cursor:   cursor.New(),
		observer: reveal.NewObserver(),
		hotspots: hotspot.NewSet(),
		scene:    scene.NewPanel(tabs, scene.DefaultToggles()),
		modal:    estimator.NewModal(),
		form:     contact.NewForm(),
		orbs:     parallax.New(cfg.Seed),
		scroll:   page.NewScroller(cfg.TPS, layout.PageHeight, float64(cfg.Height)),
		fonts:    f,
	}
	g.layout = layout.Compute(g.width, g.height, len(g.scene.Tabs), len(g.scene.Toggles))

	kinds := []reveal.Kind{reveal.Up, reveal.Up, reveal.Up, reveal.Up, reveal.Left, reveal.Right, reveal.Up}
	for i, r := range g.revealRects() {
		g.reveals = append(g.reveals, g.observer.Observe(r, kinds[i]))
	}

	log.Printf("landing: %dx%d, %d particles, seed %d, %d scenes", cfg.Width, cfg.Height, cfg.Particles, cfg.Seed, len(tabs))
	return g, nil
}

// revealRects lists the blocks that fade in: the services header, three
// cards, the illustration, the scene panel and the contact form.
func (g *Game) revealRects() []image.Rectangle {
	l := g.layout
	rects := []image.Rectangle{l.ServicesHeader}
	rects = append(rects, l.Services...)
	return append(rects, l.Home, l.Scene, l.Contact)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	g.cursor.Step()
	g.field.Tick()
	g.orbs.Step(g.dt.Seconds())

	g.scroll.Locked = g.modal.IsOpen()
	g.scroll.Step()

	viewport := image.Rect(0, 0, g.width, g.height).Add(image.Pt(0, int(g.scroll.Y)))
	g.observer.Update(viewport, g.dt)

	g.form.Update(g.dt)
	g.modal.Update(g.dt)
	return nil
}

// Layout follows the window size; a change is the resize notification.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.field.Resize(particles.Bounds{W: float64(w), H: float64(h)})
	g.layout = layout.Compute(w, h, len(g.scene.Tabs), len(g.scene.Toggles))
	g.scroll.Resize(float64(g.layout.Height), float64(h))
	for i, r := range g.revealRects() {
		g.reveals[i].Rect = r
	}
}
