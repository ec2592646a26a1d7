package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func activeCount(p *Panel) int {
	n := 0
	for _, t := range p.Tabs {
		if t.Active {
			n++
		}
	}
	return n
}

func TestInitialTab(t *testing.T) {
	p := NewPanel([]Tab{{Title: "A"}, {Title: "B", Active: true}, {Title: "C"}}, nil)
	if p.Active() != 1 || p.Title != "B" {
		t.Fatalf("flagged tab not applied: active=%d title=%q", p.Active(), p.Title)
	}

	p = NewPanel([]Tab{{Title: "A"}, {Title: "B"}}, nil)
	if p.Active() != 0 || p.Title != "A" {
		t.Fatalf("first tab not applied: active=%d title=%q", p.Active(), p.Title)
	}

	p = NewPanel(nil, nil)
	if p.Active() != -1 {
		t.Fatalf("empty panel active=%d", p.Active())
	}
}

func TestApplyIsExclusiveAndIdempotent(t *testing.T) {
	p := NewPanel(DefaultTabs(), DefaultToggles())
	for i := range p.Tabs {
		p.Apply(i)
		if activeCount(p) != 1 || !p.Tabs[i].Active || p.Active() != i {
			t.Fatalf("apply %d: active tabs=%d", i, activeCount(p))
		}
	}

	p.Apply(2)
	before := *p
	beforeTabs := append([]Tab(nil), p.Tabs...)
	p.Apply(2)
	if p.Title != before.Title || p.TempValue != before.TempValue || p.LightLabel != before.LightLabel ||
		p.TempAccent != before.TempAccent || p.PanelLight != before.PanelLight {
		t.Fatalf("re-applying changed state")
	}
	for i := range beforeTabs {
		if beforeTabs[i] != p.Tabs[i] {
			t.Fatalf("re-applying changed tab %d", i)
		}
	}

	p.Apply(99)
	if p.Active() != 2 {
		t.Fatalf("out of range apply changed the active tab")
	}
}

func TestReapplyKeepsSliderChanges(t *testing.T) {
	p := NewPanel(DefaultTabs(), DefaultToggles())
	if p.TempValue != "21°" {
		t.Fatalf("initial temp %q", p.TempValue)
	}
	p.SetTemperature("27")
	p.SetLight("15", "")

	p.Apply(p.Active())
	if p.TempValue != "27°" || p.TempRange.Value != 27 || p.TempLabel != "Тепло" {
		t.Fatalf("re-applying reset the temperature: %q %v %q", p.TempValue, p.TempRange.Value, p.TempLabel)
	}
	if p.LightValue != "15%" || p.LightLabel != "Ночник" {
		t.Fatalf("re-applying reset the light: %q %q", p.LightValue, p.LightLabel)
	}

	// switching away and back does apply the preset
	p.Apply(1)
	p.Apply(0)
	if p.TempValue != "21°" || p.LightValue != "60%" {
		t.Fatalf("preset not applied on switch back: %q %q", p.TempValue, p.LightValue)
	}
}

func TestApplyFallbacks(t *testing.T) {
	p := NewPanel([]Tab{{Status: "OFFLINE"}}, nil)
	if p.Title != "Сцена" || p.Room != "Комната" || p.Media != "System Silent" || p.MediaSubtitle != "Мультимедиа" {
		t.Fatalf("fallbacks: %+v", p)
	}
	if !p.Offline || p.StatusText != "Offline" {
		t.Fatalf("status: offline=%v text=%q", p.Offline, p.StatusText)
	}
	// Sliders keep their current values.
	if p.TempValue != "20°" || p.LightValue != "40%" {
		t.Fatalf("slider fallbacks: %q %q", p.TempValue, p.LightValue)
	}
}

func TestSetTemperatureLabels(t *testing.T) {
	p := NewPanel(nil, nil)
	cases := []struct {
		raw   string
		value string
		label string
	}{
		{"16", "16°", "Прохладно"},
		{"18", "18°", "Прохладно"},
		{"18.5", "18.5°", "Комфорт"},
		{"22", "22°", "Комфорт"},
		{"23", "23°", "Тепло"},
	}
	for _, c := range cases {
		p.SetTemperature(c.raw)
		if p.TempValue != c.value || p.TempLabel != c.label {
			t.Fatalf("%s: got %q %q", c.raw, p.TempValue, p.TempLabel)
		}
	}
}

func TestSetTemperatureAccent(t *testing.T) {
	p := NewPanel(nil, nil)
	p.SetTemperature("16")
	cold := p.TempAccent
	p.SetTemperature("28")
	warm := p.TempAccent
	p.SetTemperature("40") // clamped to the warm end
	if p.TempAccent != warm {
		t.Fatalf("accent not clamped: %+v vs %+v", p.TempAccent, warm)
	}
	// hsl(210 85% 60%) is blue, hsl(0 85% 60%) is red.
	if cold.B <= cold.R || warm.R <= warm.B {
		t.Fatalf("accent hues: cold=%+v warm=%+v", cold, warm)
	}
	if p.TempRange.Value != 40 {
		t.Fatalf("slider value: %v", p.TempRange.Value)
	}
}

func TestInvalidNumbersAreIgnored(t *testing.T) {
	p := NewPanel(DefaultTabs(), nil)
	temp, light := p.TempValue, p.LightValue
	p.SetTemperature("warm")
	p.SetLight("NaN", "")
	if p.TempValue != temp || p.LightValue != light {
		t.Fatalf("invalid input changed state: %q %q", p.TempValue, p.LightValue)
	}
	p.SetLight("", "")
	if p.LightValue != "0%" {
		t.Fatalf("blank should read as 0, got %q", p.LightValue)
	}
}

func TestSetLightLabels(t *testing.T) {
	p := NewPanel(nil, nil)
	cases := []struct {
		raw, override, label string
	}{
		{"20", "", "Ночник"},
		{"21", "", "Мягкий"},
		{"60", "", "Мягкий"},
		{"61", "", "Основной"},
		{"10", "Подсветка", "Подсветка"},
	}
	for _, c := range cases {
		p.SetLight(c.raw, c.override)
		if p.LightLabel != c.label {
			t.Fatalf("%s/%s: got %q", c.raw, c.override, p.LightLabel)
		}
	}
	p.SetLight("75", "")
	if math.Abs(p.PanelLight-0.75) > 1e-12 || p.LightRange.Fill() != 75 {
		t.Fatalf("panel light %v fill %v", p.PanelLight, p.LightRange.Fill())
	}
}

func TestToggleClick(t *testing.T) {
	tg := &Toggle{Label: "Охрана"}
	tg.Click()
	if !tg.Pressed || tg.State != "Вкл" {
		t.Fatalf("on: %+v", tg)
	}
	tg.Click()
	if tg.Pressed || tg.State != "Выкл" {
		t.Fatalf("off: %+v", tg)
	}
	custom := &Toggle{On: "Открыты", Off: "Закрыты"}
	custom.Click()
	if custom.State != "Открыты" {
		t.Fatalf("custom on: %q", custom.State)
	}
}

func TestLoadTabs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenes.json")
	if err := os.WriteFile(path, []byte(`[{"title":"Гости","temp":"22","light":"80","active":true}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	tabs, err := LoadTabs(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tabs) != 1 || tabs[0].Title != "Гости" || !tabs[0].Active {
		t.Fatalf("tabs: %+v", tabs)
	}

	if _, err := LoadTabs(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("missing file: expected error")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTabs(bad); err == nil {
		t.Fatalf("empty list: expected error")
	}
}
