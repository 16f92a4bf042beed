// Package config loads the gallery's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the gallery looks for its config, relative to the
// working directory.
const DefaultPath = "config/gallery.yaml"

type Window struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	VSync      bool    `yaml:"vsync"`
	PixelRatio float32 `yaml:"pixel_ratio"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Presets struct {
	Dir string `yaml:"dir"`
}

// Config is the persisted gallery configuration.
type Config struct {
	Window  Window  `yaml:"window"`
	Page    string  `yaml:"page"`
	Log     Log     `yaml:"log"`
	Presets Presets `yaml:"presets"`
}

// Default returns an 800x600 window on the hello page.
func Default() Config {
	return Config{
		Window: Window{
			Width:      800,
			Height:     600,
			Title:      "Scene Gallery",
			VSync:      true,
			PixelRatio: 1,
		},
		Page:    "hello",
		Log:     Log{Level: "info"},
		Presets: Presets{Dir: "presets"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes c to path, creating its directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate replaces unusable values with their defaults.
func (c *Config) Validate() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.PixelRatio <= 0 {
		c.Window.PixelRatio = def.Window.PixelRatio
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Page == "" {
		c.Page = def.Page
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		c.Log.Level = def.Log.Level
	}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// PresetPath returns the preset file for page inside the presets dir.
func (c Config) PresetPath(page string) string {
	return filepath.Join(c.Presets.Dir, page+".yaml")
}
