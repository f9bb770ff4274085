package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
)

// Elevation band colors.
var (
	oceanColor    = color.New(0, 105, 148)
	landColor     = color.New(34, 139, 34)
	mountainColor = color.New(139, 69, 19)
)

// Vertex carries the object-space attributes set at mesh-load time plus
// the per-frame transformed view. Object-space fields never change after
// construction; the vertex stage returns a fresh copy with the
// Transformed* fields derived for the current frame.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
	Color     color.Color
	Elevation float32

	TransformedPosition mgl32.Vec3
	TransformedNormal   mgl32.Vec3
}

// NewVertex builds a vertex with the transformed fields initialized to the
// object-space values and the color left black until the vertex stage
// derives it from the elevation.
func NewVertex(position, normal mgl32.Vec3, texCoords mgl32.Vec2, elevation float32) Vertex {
	return Vertex{
		Position:            position,
		Normal:              normal,
		TexCoords:           texCoords,
		Color:               color.Black(),
		Elevation:           elevation,
		TransformedPosition: position,
		TransformedNormal:   normal,
	}
}

// ColorForElevation applies the fixed three-band elevation rule:
// below 0 ocean, below 0.5 land, otherwise mountain.
func (v Vertex) ColorForElevation() color.Color {
	switch {
	case v.Elevation < 0:
		return oceanColor
	case v.Elevation < 0.5:
		return landColor
	default:
		return mountainColor
	}
}
