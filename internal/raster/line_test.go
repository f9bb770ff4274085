package raster

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
)

func lineVertex(x, y, z float32) geometry.Vertex {
	return geometry.Vertex{TransformedPosition: mgl32.Vec3{x, y, z}}
}

func TestLineHorizontal(t *testing.T) {
	frags := Line(lineVertex(0, 0, 1), lineVertex(3, 0, 4))

	if len(frags) != 4 {
		t.Fatalf("got %d fragments, want 4", len(frags))
	}
	for i, f := range frags {
		if f.Position.X() != float32(i) || f.Position.Y() != 0 {
			t.Errorf("fragment %d at (%v, %v)", i, f.Position.X(), f.Position.Y())
		}
		if f.Color != color.White() {
			t.Errorf("fragment %d color %v, want white", i, f.Color)
		}
		// Depth interpolates 1 → 4 along the x-span.
		want := float32(1 + i)
		if f.Depth != want {
			t.Errorf("fragment %d depth %v, want %v", i, f.Depth, want)
		}
	}
	for i := 1; i < len(frags); i++ {
		if frags[i].Depth < frags[i-1].Depth {
			t.Fatal("depth not monotonic along the line")
		}
	}
}

func TestLineVerticalSharedX(t *testing.T) {
	// start.x == end.x: depth must interpolate along y, not divide by the
	// zero x-span.
	frags := Line(lineVertex(2, 0, 0), lineVertex(2, 3, 3))

	if len(frags) != 4 {
		t.Fatalf("got %d fragments, want 4", len(frags))
	}
	for i, f := range frags {
		if f.Position.X() != 2 || f.Position.Y() != float32(i) {
			t.Errorf("fragment %d at (%v, %v)", i, f.Position.X(), f.Position.Y())
		}
		if f.Depth != float32(i) {
			t.Errorf("fragment %d depth %v, want %v", i, f.Depth, float32(i))
		}
	}
}

func TestLineZeroLength(t *testing.T) {
	frags := Line(lineVertex(5, 5, 2), lineVertex(5, 5, 9))

	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	if frags[0].Depth != 2 {
		t.Fatalf("depth = %v, want start depth 2", frags[0].Depth)
	}
}

func TestLineDiagonal(t *testing.T) {
	frags := Line(lineVertex(0, 0, 0), lineVertex(3, 3, 6))

	if len(frags) != 4 {
		t.Fatalf("got %d fragments, want 4", len(frags))
	}
	for i, f := range frags {
		if f.Position.X() != float32(i) || f.Position.Y() != float32(i) {
			t.Errorf("fragment %d at (%v, %v)", i, f.Position.X(), f.Position.Y())
		}
		if f.Depth != float32(i*2) {
			t.Errorf("fragment %d depth %v, want %v", i, f.Depth, float32(i*2))
		}
	}
}
