// Package shader implements the two programmable pipeline stages: the
// vertex transform and the pluggable per-fragment surface shaders.
package shader

import (
	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/noise"
)

// Uniforms is the read-only frame context handed to both shader stages.
// It is rebuilt once per frame and never mutated inside a shader.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   mgl32.Mat4
	Time       float32
	Noise      noise.Source
}
