package scene

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/crazy3lf/colorconv"
)

// Tab is one scene preset. Values are kept as text, like the attributes they
// were authored as; an empty string means "not set".
type Tab struct {
	Title         string `json:"title"`
	Room          string `json:"room"`
	Subtitle      string `json:"subtitle"`
	Media         string `json:"media"`
	MediaSubtitle string `json:"mediaSubtitle"`
	Status        string `json:"status"`
	Temp          string `json:"temp"`
	Light         string `json:"light"`
	LightLabel    string `json:"lightLabel"`
	Active        bool   `json:"active"`
}

// Range is a slider.
type Range struct {
	Min, Max, Value float64
}

// Fill is the slider fill in percent of its track.
func (r Range) Fill() float64 {
	if r.Max == r.Min {
		return 0
	}
	return (r.Value - r.Min) / (r.Max - r.Min) * 100
}

// Toggle is an on/off switch on the panel.
type Toggle struct {
	Label   string
	On, Off string // state texts
	Pressed bool
	State   string
}

// Click flips the toggle.
func (t *Toggle) Click() {
	t.Pressed = !t.Pressed
	on, off := t.On, t.Off
	if on == "" {
		on = "Вкл"
	}
	if off == "" {
		off = "Выкл"
	}
	if t.Pressed {
		t.State = on
	} else {
		t.State = off
	}
}

// Panel is the scene card: tabs, two sliders, status and media lines.
type Panel struct {
	Tabs    []Tab
	Toggles []*Toggle

	Title, Room, Subtitle string
	Media, MediaSubtitle  string
	Offline               bool
	StatusText            string

	TempRange  Range
	TempValue  string
	TempLabel  string
	TempAccent color.RGBA

	LightRange Range
	LightValue string
	LightLabel string
	PanelLight float64

	active int
}

// NewPanel builds a panel over tabs and applies the initial one: the first
// tab flagged active, or the first tab.
func NewPanel(tabs []Tab, toggles []*Toggle) *Panel {
	p := &Panel{
		Tabs:       tabs,
		Toggles:    toggles,
		TempRange:  Range{Min: 16, Max: 28, Value: 20},
		LightRange: Range{Min: 0, Max: 100, Value: 40},
		active:     -1,
	}
	if len(tabs) == 0 {
		return p
	}
	initial := 0
	for i, t := range tabs {
		if t.Active {
			initial = i
			break
		}
	}
	p.Apply(initial)
	return p
}

// Active is the index of the active tab, -1 when there are no tabs.
func (p *Panel) Active() int {
	return p.active
}

// Apply activates tab i and pushes its values into the panel. Applying the
// active tab again leaves the panel as it is, slider changes included.
func (p *Panel) Apply(i int) {
	if i < 0 || i >= len(p.Tabs) || i == p.active {
		return
	}
	for j := range p.Tabs {
		p.Tabs[j].Active = j == i
	}
	p.active = i
	tab := p.Tabs[i]

	p.Title = or(tab.Title, "Сцена")
	p.Room = or(tab.Room, "Комната")
	p.Subtitle = tab.Subtitle
	p.Media = or(tab.Media, "System Silent")
	p.MediaSubtitle = or(tab.MediaSubtitle, "Мультимедиа")

	status := strings.ToLower(or(tab.Status, "online"))
	p.Offline = status == "offline"
	if p.Offline {
		p.StatusText = "Offline"
	} else {
		p.StatusText = "Online"
	}

	p.SetTemperature(or(tab.Temp, formatNumber(p.TempRange.Value)))
	p.SetLight(or(tab.Light, formatNumber(p.LightRange.Value)), tab.LightLabel)
}

// SetTemperature handles temperature slider input. Non-numeric input is ignored.
func (p *Panel) SetTemperature(raw string) {
	temp, ok := parseNumber(raw)
	if !ok {
		return
	}
	p.TempValue = formatNumber(temp) + "°"
	switch {
	case temp <= 18:
		p.TempLabel = "Прохладно"
	case temp <= 22:
		p.TempLabel = "Комфорт"
	default:
		p.TempLabel = "Тепло"
	}

	lo, hi := p.TempRange.Min, p.TempRange.Max
	if lo == 0 {
		lo = 16
	}
	if hi == 0 {
		hi = 28
	}
	ratio := min(1, max(0, (temp-lo)/(hi-lo)))
	p.TempAccent = accent(210 - 210*ratio)
	p.TempRange.Value = temp
}

// SetLight handles light slider input; label overrides the derived label when set.
func (p *Panel) SetLight(raw, label string) {
	light, ok := parseNumber(raw)
	if !ok {
		return
	}
	p.LightValue = formatNumber(light) + "%"
	switch {
	case label != "":
		p.LightLabel = label
	case light <= 20:
		p.LightLabel = "Ночник"
	case light <= 60:
		p.LightLabel = "Мягкий"
	default:
		p.LightLabel = "Основной"
	}
	p.LightRange.Value = light
	p.PanelLight = light / 100
}

// accent converts hsl(hue 85% 60%) to RGB.
func accent(hue float64) color.RGBA {
	r, g, b, err := colorconv.HSLToRGB(hue, 0.85, 0.6)
	if err != nil {
		return color.RGBA{R: 0x4d, G: 0xe1, B: 0xc4, A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// parseNumber reads slider text: blank is 0, anything non-finite is rejected.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// String is used by the debug overlay.
func (p *Panel) String() string {
	return fmt.Sprintf("%s/%s %s %s", p.Title, p.Room, p.TempValue, p.LightValue)
}
