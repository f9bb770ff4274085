package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Frames != 36 {
		t.Errorf("frames = %d, want 36", cfg.Frames)
	}
	if cfg.Shader != "earth" {
		t.Errorf("shader = %q, want earth", cfg.Shader)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("output dir = %q, want renders", cfg.OutputDir)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("workers = %d, want NumCPU", cfg.Workers)
	}
	if cfg.OrbitTurn != 1 {
		t.Errorf("orbit turns = %v, want 1", cfg.OrbitTurn)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{Shader: "moon", Frames: 10, OutputDir: "from-file"}
	cfg.Resolve(Flags{Shader: "sun", Frames: 20})

	if cfg.Shader != "sun" {
		t.Errorf("shader = %q, flag must win", cfg.Shader)
	}
	if cfg.Frames != 20 {
		t.Errorf("frames = %d, flag must win", cfg.Frames)
	}
	if cfg.OutputDir != "from-file" {
		t.Errorf("output dir = %q, file value must survive", cfg.OutputDir)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"model": "planet.obj", "shader": "gas", "width": 320, "height": 240}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ModelPath != "planet.obj" || cfg.Shader != "gas" {
		t.Fatalf("loaded %+v", cfg)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("no-such-config.json"); err == nil {
		t.Fatal("missing file did not error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed JSON did not error")
	}
}
