package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the handful of window/theme knobs a user can override without
// touching code, read from handviewer.toml in the current working directory.
type Config struct {
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
	// DarkTheme forces Fyne's dark variant regardless of the OS preference.
	DarkTheme bool `toml:"dark_theme"`
}

func defaultConfig() Config {
	return Config{WindowWidth: 900, WindowHeight: 600, DarkTheme: true}
}

// loadConfig reads path and overlays it onto defaultConfig. A missing file is
// not an error — the viewer just runs with defaults, the way a standalone demo
// should behave without requiring any setup.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}
