// Package config decodes the on-disk settings file the core reads at
// startup. Only the fields the simulation core actually consumes are
// typed; everything else (screen, font, graphics — the external
// renderer's concern) is preserved as opaque JSON so round-tripping
// the file never drops fields this package doesn't understand.
package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config holds the subset of settings.json the core reads: grid
// dimensions, tick rate, and input sensitivity.
type Config struct {
	GridWidth  int             `json:"gridWidth"`
	GridDepth  int             `json:"gridDepth"`
	GridHeight int             `json:"gridHeight"`
	Ground     int             `json:"ground"`
	MaxFPS     int             `json:"maxFps"`
	MouseSens  float64         `json:"mouseSensitivity"`
	RimStride  int             `json:"rimStride"`
	NumClosest int             `json:"numClosest"`
	Extra      json.RawMessage `json:"-"`
}

// Default returns production defaults matching terrain.DefaultDims
// and the usual 60Hz/1x tick and mouse-sensitivity baseline.
func Default() *Config {
	return &Config{
		GridWidth:  64,
		GridDepth:  64,
		GridHeight: 64,
		Ground:     24,
		MaxFPS:     60,
		MouseSens:  1.0,
		RimStride:  8,
		NumClosest: 16,
	}
}

// TickInterval converts MaxFPS into a tick period, defaulting to 60Hz
// if MaxFPS is unset or non-positive.
func (c *Config) TickInterval() time.Duration {
	fps := c.MaxFPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Load decodes raw JSON into a Config seeded with Default() values,
// so a settings file that only overrides a few fields still produces
// a fully populated Config.
func Load(raw []byte) (*Config, error) {
	cfg := Default()

	var known map[string]json.RawMessage
	if err := json.Unmarshal(raw, &known); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	// Everything besides the fields above belongs to the external
	// renderer (screen size, font, color palette, graphics toggles);
	// keep it verbatim so a caller writing the config back out doesn't
	// silently drop it.
	for _, k := range []string{"gridWidth", "gridDepth", "gridHeight", "ground", "maxFps", "mouseSensitivity", "rimStride", "numClosest"} {
		delete(known, k)
	}
	extra, err := json.Marshal(known)
	if err != nil {
		return nil, fmt.Errorf("re-encode extra settings: %w", err)
	}
	cfg.Extra = extra

	return cfg, nil
}
