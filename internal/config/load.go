// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the runtime configuration: the constants above overlaid with
// values from an optional TOML file and then with command line flags.
type Config struct {
	Title      string
	Width      int
	Height     int
	Background string
	Backend    string
	Output     string
	Seed       int64

	MinSize  int
	MaxSize  int
	Palette  []string
	Count    int
	LogLevel string
}

type configFile struct {
	Window struct {
		Title      string `toml:"title"`
		Width      int    `toml:"width"`
		Height     int    `toml:"height"`
		Background string `toml:"background"`
		Backend    string `toml:"backend"`
	} `toml:"window"`
	Shapes struct {
		MinSize int      `toml:"min_size"`
		MaxSize int      `toml:"max_size"`
		Palette []string `toml:"palette"`
		Count   int      `toml:"count"`
		Seed    int64    `toml:"seed"`
	} `toml:"shapes"`
	Output struct {
		Path string `toml:"path"`
	} `toml:"output"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the configuration built from the package constants.
func Default() *Config {
	palette := make([]string, len(Palette))
	copy(palette, Palette)
	return &Config{
		Title:    WindowTitle,
		Width:    ScreenWidth,
		Height:   ScreenHeight,
		Backend:  BackendEbiten,
		MinSize:  MinRandomSize,
		MaxSize:  MaxRandomSize,
		Palette:  palette,
		Count:    RandomShapes,
		LogLevel: "info",
	}
}

// Load reads the TOML file at path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.apply(&file)
	return cfg, nil
}

func (c *Config) apply(file *configFile) {
	if file.Window.Title != "" {
		c.Title = file.Window.Title
	}
	if file.Window.Width > 0 {
		c.Width = file.Window.Width
	}
	if file.Window.Height > 0 {
		c.Height = file.Window.Height
	}
	if file.Window.Background != "" {
		c.Background = file.Window.Background
	}
	if file.Window.Backend != "" {
		c.Backend = file.Window.Backend
	}
	if file.Shapes.MinSize > 0 {
		c.MinSize = file.Shapes.MinSize
	}
	if file.Shapes.MaxSize > 0 {
		c.MaxSize = file.Shapes.MaxSize
	}
	if len(file.Shapes.Palette) > 0 {
		c.Palette = file.Shapes.Palette
	}
	if file.Shapes.Count > 0 {
		c.Count = file.Shapes.Count
	}
	if file.Shapes.Seed != 0 {
		c.Seed = file.Shapes.Seed
	}
	if file.Output.Path != "" {
		c.Output = file.Output.Path
	}
	if file.Log.Level != "" {
		c.LogLevel = file.Log.Level
	}
}
