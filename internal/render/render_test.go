package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
	"planet-renderer/internal/noise"
	"planet-renderer/internal/raster"
	"planet-renderer/internal/shader"
)

// passthroughUniforms leaves positions untouched so screen space equals
// object space.
func passthroughUniforms() *shader.Uniforms {
	return &shader.Uniforms{
		Model:      mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Viewport:   mgl32.Ident4(),
		Noise:      noise.Flat(0),
	}
}

func triangleVerts() []geometry.Vertex {
	return []geometry.Vertex{
		geometry.NewVertex(mgl32.Vec3{0, 0, 0.5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}, 0),
		geometry.NewVertex(mgl32.Vec3{8, 0, 0.5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}, 0),
		geometry.NewVertex(mgl32.Vec3{0, 8, 0.5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{}, 0),
	}
}

func TestFrameWritesSurfaceColor(t *testing.T) {
	fb := raster.NewFramebuffer(16, 16)
	red := color.New(200, 0, 0)
	surface := func(frag geometry.Fragment, u *shader.Uniforms) color.Color {
		return red
	}

	Frame(fb, triangleVerts(), passthroughUniforms(), surface)

	idx := 1*16 + 1
	if fb.Color[idx] != red.Hex() {
		t.Fatalf("pixel (1,1) = %06x, want surface color", fb.Color[idx])
	}
	if math.IsInf(float64(fb.Depth[idx]), 1) {
		t.Fatal("depth not written for a covered pixel")
	}

	// A pixel outside the triangle stays at the background.
	if fb.Color[12*16+12] != 0 {
		t.Fatal("pixel outside the triangle was written")
	}
}

func TestFrameSkipsIncompleteTriple(t *testing.T) {
	fb := raster.NewFramebuffer(16, 16)
	surface := func(frag geometry.Fragment, u *shader.Uniforms) color.Color {
		return color.White()
	}

	// Two vertices do not form a primitive; nothing must be drawn.
	Frame(fb, triangleVerts()[:2], passthroughUniforms(), surface)

	for i, c := range fb.Color {
		if c != 0 {
			t.Fatalf("pixel %d written from an incomplete triple", i)
		}
	}
}

func TestWireframeDrawsEdges(t *testing.T) {
	fb := raster.NewFramebuffer(16, 16)

	Wireframe(fb, triangleVerts(), passthroughUniforms())

	// A point on the bottom edge must be white.
	if fb.Color[0*16+4] != color.White().Hex() {
		t.Fatalf("edge pixel = %06x, want white", fb.Color[4])
	}
	// The triangle interior must stay empty.
	if fb.Color[2*16+2] != 0 {
		t.Fatal("wireframe filled the interior")
	}
}
