package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file.
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[font]
//	path = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Font     FontConfig     `toml:"font"`
}

// ViewportConfig sets the initial containing block, in pixels.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// FontConfig points at the TTF file used for measurement and text drawing.
// When empty, a heuristic measurer is used and text is not painted.
type FontConfig struct {
	Path string `toml:"path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600},
	}
}

// LoadConfig reads a TOML config file, filling unset viewport fields from
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Viewport.Width <= 0 {
		cfg.Viewport.Width = 800
	}
	if cfg.Viewport.Height <= 0 {
		cfg.Viewport.Height = 600
	}
	return cfg, nil
}
