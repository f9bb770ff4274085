package shader

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/geometry"
)

// Clip-space w below this magnitude means the vertex sits on the camera
// plane; the primitive is dropped instead of dividing.
const minW = 1e-6

// Transform runs the vertex stage: lift to homogeneous, apply
// projection·view·model, perspective divide, viewport map, normal
// transform, then recolor from elevation. It is a pure function; the
// input vertex is never modified.
//
// The second return is false when the perspective divide would be
// degenerate (|w| ≈ 0). Callers must skip the whole primitive so nothing
// non-finite reaches the framebuffer.
func Transform(v geometry.Vertex, u *Uniforms) (geometry.Vertex, bool) {
	position := mgl32.Vec4{v.Position.X(), v.Position.Y(), v.Position.Z(), 1}

	clip := u.Projection.Mul4(u.View).Mul4(u.Model).Mul4x1(position)

	w := clip.W()
	if float32(math.Abs(float64(w))) < minW {
		return geometry.Vertex{}, false
	}

	ndc := mgl32.Vec4{clip.X() / w, clip.Y() / w, clip.Z() / w, 1}
	screen := u.Viewport.Mul4x1(ndc)

	normalMat := normalMatrix(u.Model)

	out := v
	out.TransformedPosition = mgl32.Vec3{screen.X(), screen.Y(), screen.Z()}
	out.TransformedNormal = normalMat.Mul3x1(v.Normal)
	// Elevation always wins over any externally assigned vertex color.
	out.Color = v.ColorForElevation()
	return out, true
}

// normalMatrix is the inverse-transpose of the model matrix's upper-left
// 3×3 block. A singular model matrix falls back to identity; this stage
// must never fail the pipeline.
func normalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	m := model.Mat3().Transpose()
	if m.Det() == 0 {
		return mgl32.Ident3()
	}
	return m.Inv()
}
