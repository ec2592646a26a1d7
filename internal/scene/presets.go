package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultTabs are the presets shown when no scenes file is configured.
func DefaultTabs() []Tab {
	return []Tab{
		{
			Title: "Утро", Room: "Спальня", Subtitle: "Плавный рассвет и свежий воздух",
			Media: "Morning Jazz", MediaSubtitle: "Spotify · Гостиная",
			Temp: "21", Light: "60", Active: true,
		},
		{
			Title: "Вечер", Room: "Гостиная", Subtitle: "Тёплый свет и тишина",
			Media: "Lo-Fi Beats", MediaSubtitle: "Яндекс Музыка",
			Temp: "23", Light: "40",
		},
		{
			Title: "Кино", Room: "Гостиная", Subtitle: "Шторы закрыты, проектор включён",
			Media: "Dune: Part Two", MediaSubtitle: "Apple TV",
			Temp: "22", Light: "10", LightLabel: "Подсветка",
		},
		{
			Title: "Ночь", Room: "Весь дом", Subtitle: "Охрана включена, свет выключен",
			Status: "offline", Temp: "18", Light: "0",
		},
	}
}

// DefaultToggles are the switches under the sliders.
func DefaultToggles() []*Toggle {
	return []*Toggle{
		{Label: "Шторы", On: "Открыты", Off: "Закрыты", State: "Закрыты"},
		{Label: "Охрана", State: "Выкл"},
		{Label: "Увлажнитель", State: "Выкл"},
	}
}

// LoadTabs reads a JSON array of tabs from path.
func LoadTabs(path string) ([]Tab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	var tabs []Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		return nil, fmt.Errorf("parse scenes %s: %w", path, err)
	}
	if len(tabs) == 0 {
		return nil, fmt.Errorf("parse scenes %s: no tabs", path)
	}
	return tabs, nil
}
