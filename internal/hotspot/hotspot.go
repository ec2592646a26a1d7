package hotspot

import (
	"fmt"
	"slices"
)

// Zone types on the smart-home illustration
const (
	Bed     = "bed"
	Light   = "light"
	Temp    = "temp"
	Curtain = "curtain"
)

var (
	LightLevels       = []int{20, 40, 60, 80, 100}
	DefaultLightLevel = 80
)

// Tooltip is the floating label attached to a zone.
type Tooltip struct {
	Visible   bool
	Value     string
	Highlight bool
}

// Zone is one hoverable/clickable device.
type Zone struct {
	Type    string
	Active  bool // pointer is over the zone
	Toggled bool
	Tooltip Tooltip
}

// Intensity are the light-derived levels the illustration is tinted with.
type Intensity struct {
	Light, LightLow, Rays, RaysLow float64
}

// Set is the whole widget: the four zones plus the light level.
type Set struct {
	Zones      map[string]*Zone
	Intensity  Intensity
	lightIndex int
}

func NewSet() *Set {
	s := &Set{
		Zones: map[string]*Zone{
			Bed:     {Type: Bed, Tooltip: Tooltip{Value: "Сон 7ч 40м"}},
			Light:   {Type: Light},
			Temp:    {Type: Temp, Tooltip: Tooltip{Value: "24°C"}},
			Curtain: {Type: Curtain, Tooltip: Tooltip{Value: "Закрыты"}},
		},
	}
	s.lightIndex = slices.Index(LightLevels, DefaultLightLevel)
	if s.lightIndex == -1 {
		s.lightIndex = len(LightLevels) - 1
	}
	s.setLightLevel(DefaultLightLevel)
	return s
}

// Enter marks the zone as hovered and shows its tooltip.
func (s *Set) Enter(typ string) {
	z, ok := s.Zones[typ]
	if !ok {
		return
	}
	z.Active = true
	z.Tooltip.Visible = true
	if typ == Curtain {
		z.Tooltip.Value = "Открыты"
		z.Tooltip.Highlight = true
	}
}

// Leave reverts Enter.
func (s *Set) Leave(typ string) {
	z, ok := s.Zones[typ]
	if !ok {
		return
	}
	z.Active = false
	z.Tooltip.Visible = false
	if typ == Curtain {
		z.Tooltip.Value = "Закрыты"
		z.Tooltip.Highlight = false
	}
}

// Click cycles the light level or toggles any other zone.
func (s *Set) Click(typ string) {
	z, ok := s.Zones[typ]
	if !ok {
		return
	}
	if typ == Light {
		s.lightIndex = (s.lightIndex + 1) % len(LightLevels)
		s.setLightLevel(LightLevels[s.lightIndex])
		return
	}

	z.Toggled = !z.Toggled

	if typ == Temp {
		if z.Toggled {
			z.Tooltip.Value = "26°C"
		} else {
			z.Tooltip.Value = "24°C"
		}
	}
}

// LightLevel is the current brightness in percent.
func (s *Set) LightLevel() int {
	return LightLevels[s.lightIndex]
}

func (s *Set) setLightLevel(percent int) {
	clamped := max(0, min(100, percent))
	s.Zones[Light].Tooltip.Value = fmt.Sprintf("%d%%", clamped)
	i := float64(clamped) / 100
	s.Intensity = Intensity{
		Light:    i,
		LightLow: i * 0.5,
		Rays:     i * 0.85,
		RaysLow:  i * 0.25,
	}
}
