package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
)

// Fragment is a candidate pixel write produced by the rasterizer and
// consumed immediately by the surface shader and the framebuffer.
type Fragment struct {
	Position  mgl32.Vec2 // screen-space pixel coordinates
	Color     color.Color
	Depth     float32
	Normal    mgl32.Vec3
	Intensity float32
	// VertexPosition is the object-space position interpolated across the
	// primitive, sampled by the procedural surface shaders.
	VertexPosition mgl32.Vec3
}

// NewFragment builds a fragment at pixel (x, y).
func NewFragment(x, y float32, c color.Color, depth float32, normal mgl32.Vec3, intensity float32, vertexPosition mgl32.Vec3) Fragment {
	return Fragment{
		Position:       mgl32.Vec2{x, y},
		Color:          c,
		Depth:          depth,
		Normal:         normal,
		Intensity:      intensity,
		VertexPosition: vertexPosition,
	}
}
