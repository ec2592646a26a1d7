package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/smarthome-landing/internal/config"
	"github.com/olivierh59500/smarthome-landing/internal/landing"
	"github.com/olivierh59500/smarthome-landing/internal/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Scene presets, optionally replaced from a JSON file
	tabs := scene.DefaultTabs()
	if cfg.ScenesFile != "" {
		if tabs, err = scene.LoadTabs(cfg.ScenesFile); err != nil {
			log.Fatal(err)
		}
	}

	game, err := landing.NewGame(cfg, tabs)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine window
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Умный дом")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden) // the page draws its own cursor

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
