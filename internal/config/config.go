package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings for the preview tool.
type Config struct {
	// Output
	OutputPath  string `json:"output_path"`
	DumpDir     string `json:"dump_dir"`
	WebPQuality int    `json:"webp_quality"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	DebugView   string  `json:"debug_view"`
	FOV         float64 `json:"fov"`
	Workers     int     `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputPath string
	DumpDir    string
	Size       int
	DebugView  string
	Quality    int
	Workers    int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.DumpDir != "" {
		c.DumpDir = flags.DumpDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.DebugView != "" {
		c.DebugView = flags.DebugView
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputPath == "" {
		c.OutputPath = "surface.webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.DebugView == "" {
		c.DebugView = "color"
	}
	if c.FOV <= 0 {
		c.FOV = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
