package batch

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/geometry"
	"planet-renderer/internal/noise"
	"planet-renderer/internal/shader"
)

// quadVerts is a small camera-facing square at the origin, two triangles.
func quadVerts() []geometry.Vertex {
	corner := func(x, y float32) geometry.Vertex {
		return geometry.NewVertex(mgl32.Vec3{x, y, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}, y)
	}
	return []geometry.Vertex{
		corner(-1, -1), corner(1, -1), corner(1, 1),
		corner(-1, -1), corner(1, 1), corner(-1, 1),
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	surface, err := shader.Lookup("earth")
	if err != nil {
		t.Fatal(err)
	}
	return Config{
		OutputDir:  t.TempDir(),
		Width:      64,
		Height:     48,
		Frames:     4,
		OrbitTurns: 1,
		Workers:    2,
		Surface:    surface,
		Verts:      quadVerts(),
		Noise:      noise.Flat(0.3),
	}
}

func TestRenderOneCoversPixels(t *testing.T) {
	cfg := testConfig(t)

	fb := RenderOne(cfg, 0)

	covered := 0
	for _, d := range fb.Depth {
		if !math.IsInf(float64(d), 1) {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("frame 0 rendered nothing")
	}
}

func TestRenderOneDeterministic(t *testing.T) {
	cfg := testConfig(t)

	a := RenderOne(cfg, 2)
	b := RenderOne(cfg, 2)

	for i := range a.Color {
		if a.Color[i] != b.Color[i] {
			t.Fatalf("pixel %d differs between identical renders", i)
		}
	}
}

func TestRunWritesFramesAndManifest(t *testing.T) {
	cfg := testConfig(t)

	results := Run(cfg)

	if len(results) != cfg.Frames {
		t.Fatalf("got %d results, want %d", len(results), cfg.Frames)
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Frame, r.Error)
		}
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, r.File)); err != nil {
			t.Fatalf("frame file missing: %v", err)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := WriteManifest(manifestPath, "earth", cfg, results); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(manifestPath); err != nil {
		t.Fatal(err)
	}
}
