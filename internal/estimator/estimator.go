package estimator

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Property types
const (
	Apartment = "apartment"
	House     = "house"
	Office    = "office"
)

// Finish levels
const (
	Base  = "base"
	Pro   = "pro"
	Elite = "elite"
)

// Timelines
const (
	Standard = "standard"
	Priority = "priority"
	Express  = "express"
)

var (
	baseRate = map[string]float64{
		Apartment: 9500,
		House:     12000,
		Office:    14000,
	}
	levelFactor = map[string]float64{
		Base:  1,
		Pro:   1.25,
		Elite: 1.6,
	}
	timelineFactor = map[string]float64{
		Standard: 1,
		Priority: 1.12,
		Express:  1.22,
	}
)

// Input is the calculator form.
type Input struct {
	Type     string
	Level    string
	Timeline string
	Area     float64 // m²
	Rooms    float64
}

// DefaultInput is the form as first shown.
func DefaultInput() Input {
	return Input{Type: Apartment, Level: Base, Timeline: Standard, Area: 85, Rooms: 3}
}

// Estimate is everything the result card shows.
type Estimate struct {
	Raw, Min, Max, Avg float64
	WeeksMin, WeeksMax int
	Devices, Scenes    int
}

// Calculate prices a project. Unknown type, level or timeline fall back to
// the apartment rate and a factor of 1.
func Calculate(in Input) Estimate {
	rate, ok := baseRate[in.Type]
	if !ok {
		rate = baseRate[Apartment]
	}
	lf, ok := levelFactor[in.Level]
	if !ok {
		lf = 1
	}
	tf, ok := timelineFactor[in.Timeline]
	if !ok {
		tf = 1
	}

	roomsFactor := 1 + (in.Rooms-1)*0.08
	raw := in.Area * rate * lf * roomsFactor * tf
	lo := raw * 0.92
	hi := raw * 1.08

	weeks := max(2, round(in.Area/38))
	switch in.Level {
	case Elite:
		weeks += 2
	case Pro:
		weeks++
	}
	switch in.Timeline {
	case Express:
		weeks--
	case Priority:
	default:
		weeks++
	}
	weeks = max(2, weeks)

	var deviceBonus, sceneBonus float64
	switch in.Level {
	case Elite:
		deviceBonus, sceneBonus = 8, 12
	case Pro:
		deviceBonus, sceneBonus = 4, 7
	default:
		deviceBonus, sceneBonus = 0, 4
	}

	return Estimate{
		Raw:      raw,
		Min:      lo,
		Max:      hi,
		Avg:      (lo + hi) / 2,
		WeeksMin: max(2, weeks-1),
		WeeksMax: weeks + 1,
		Devices:  max(8, round(in.Area/6+in.Rooms*2+deviceBonus)),
		Scenes:   max(6, round(in.Rooms*4+sceneBonus)),
	}
}

// Weeks is the duration label, e.g. "2-4 нед".
func (e Estimate) Weeks() string {
	return fmt.Sprintf("%d-%d нед", e.WeeksMin, e.WeeksMax)
}

// FormatCurrency rounds to whole roubles and groups thousands the ru-RU way
// (no-break space), followed by the rouble sign.
func FormatCurrency(v float64) string {
	return FormatNumber(v) + " ₽"
}

var ruPrinter = message.NewPrinter(language.Russian)

// FormatNumber rounds half up and groups thousands the ru-RU way, with U+00A0.
func FormatNumber(v float64) string {
	return ruPrinter.Sprintf("%d", int64(math.Floor(v+0.5)))
}

// AreaLabel is the area slider caption.
func AreaLabel(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64) + " м²"
}

// RangeFill is a slider's filled share in whole percent.
func RangeFill(value, lo, hi float64) int {
	if hi == lo {
		return 0
	}
	return round((value - lo) / (hi - lo) * 100)
}

// round is half-up rounding to int.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
