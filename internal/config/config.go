package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	TPS          = 60

	// Particle field
	ParticleCount   = 80
	ParticleSpeed   = 0.5 // full width of the velocity range, centred on 0
	ParticleMinSize = 0.5
	ParticleMaxSize = 2.0
	LinkDistance    = 120.0
	LinkOpacity     = 0.15
	ParticleAlpha   = 0.6

	// Cursor
	CursorEase      = 0.15
	CursorRing      = 18.0
	CursorRingHover = 30.0
	CursorDotRadius = 3.0

	// Scroll reveal
	RevealThreshold = 0.1
	RevealMargin    = 50
	RevealDuration  = 800 * time.Millisecond

	// Navigation
	NavHeight        = 64
	NavScrolledAfter = 50.0

	// Smooth scroll spring
	ScrollFrequency = 6.0
	ScrollDamping   = 1.0
	WheelStep       = 60.0

	// Mocked submissions
	ContactSendDelay  = 1500 * time.Millisecond
	ContactResetDelay = 3000 * time.Millisecond
	ProjectCloseDelay = 1800 * time.Millisecond

	// Parallax
	OrbCount      = 3
	OrbSpeedStep  = 15.0
	OrbDriftScale = 0.15
	OrbDriftPx    = 12.0
)

// Particle colour rgb(77, 225, 196)
const (
	AccentR = 77
	AccentG = 225
	AccentB = 196
)

// Config holds the values that can be overridden at startup.
type Config struct {
	Width, Height int
	Particles     int
	Seed          int64
	TPS           int
	Debug         bool
	ScenesFile    string // optional JSON file with scene tabs
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Particles: ParticleCount,
		Seed:      time.Now().UnixNano(),
		TPS:       TPS,
	}
}

// Load reads an optional .env file from the working directory and then applies
// LANDING_* environment variables on top of Default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"LANDING_WIDTH", &cfg.Width},
		{"LANDING_HEIGHT", &cfg.Height},
		{"LANDING_PARTICLES", &cfg.Particles},
		{"LANDING_TPS", &cfg.TPS},
	}
	for _, v := range ints {
		s := getenv(v.key)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", v.key, err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %d", v.key, n)
		}
		*v.dst = n
	}

	if s := getenv("LANDING_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("LANDING_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if s := getenv("LANDING_DEBUG"); s != "" {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("LANDING_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	cfg.ScenesFile = getenv("LANDING_SCENES_FILE")

	return cfg, nil
}

// FrameDelta is the simulated time between two Update calls.
func (c Config) FrameDelta() time.Duration {
	return time.Second / time.Duration(c.TPS)
}
