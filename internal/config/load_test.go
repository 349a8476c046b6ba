package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ScreenWidth, cfg.Width)
	assert.Equal(t, ScreenHeight, cfg.Height)
	assert.Equal(t, WindowTitle, cfg.Title)
	assert.Equal(t, BackendEbiten, cfg.Backend)
	assert.Equal(t, Palette, cfg.Palette)

	cfg.Palette[0] = "orange"
	assert.Equal(t, "red", Palette[0], "Default must copy the palette")
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.toml")
	data := `
[window]
title = "Paper"
width = 800
backend = "png"

[shapes]
min_size = 10
palette = ["red", "fuchsia"]
seed = 42

[output]
path = "out.png"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Paper", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, ScreenHeight, cfg.Height)
	assert.Equal(t, BackendPNG, cfg.Backend)
	assert.Equal(t, 10, cfg.MinSize)
	assert.Equal(t, MaxRandomSize, cfg.MaxSize)
	assert.Equal(t, []string{"red", "fuchsia"}, cfg.Palette)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "out.png", cfg.Output)
}

func TestLoadBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth = "), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
