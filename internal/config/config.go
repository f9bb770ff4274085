package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	ModelPath  string `json:"model"`
	OutputDir  string `json:"output_dir"`
	Background string `json:"background"`

	// Render settings
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Frames    int     `json:"frames"`
	Shader    string  `json:"shader"`
	NoiseSeed int64   `json:"noise_seed"`
	Workers   int     `json:"workers"`
	OrbitTurn float64 `json:"orbit_turns"` // full turns over the sequence
	Wireframe bool    `json:"wireframe"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills them in.
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
	ModelPath  string
	OutputDir  string
	Background string
	Shader     string
	Frames     int
	Workers    int
	NoiseSeed  int64
	Wireframe  bool
}

// Resolve merges CLI flags over config-file values and fills any empty
// fields with defaults. Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.ModelPath != "" {
		c.ModelPath = flags.ModelPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.Shader != "" {
		c.Shader = flags.Shader
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.NoiseSeed != 0 {
		c.NoiseSeed = flags.NoiseSeed
	}
	if flags.Wireframe {
		c.Wireframe = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Shader == "" {
		c.Shader = "earth"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OrbitTurn <= 0 {
		c.OrbitTurn = 1
	}
}
