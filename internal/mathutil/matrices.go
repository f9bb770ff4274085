// Package mathutil holds the few matrix builders and rotation helpers the
// pipeline needs on top of mgl32.
package mathutil

import "github.com/go-gl/mathgl/mgl32"

// RotateVec3 rotates v by angle radians around axis.
func RotateVec3(v mgl32.Vec3, angle float32, axis mgl32.Vec3) mgl32.Vec3 {
	return mgl32.QuatRotate(angle, axis.Normalize()).Rotate(v)
}

// ViewportMatrix maps NDC [-1, 1] into screen space with Y pointing down:
// x' = w/2·x + w/2, y' = -h/2·y + h/2, z' = z.
func ViewportMatrix(width, height float32) mgl32.Mat4 {
	return mgl32.Translate3D(width/2, height/2, 0).
		Mul4(mgl32.Scale3D(width/2, -height/2, 1))
}

// ModelMatrix composes translation ∘ rotation(Z·Y·X) ∘ uniform scale.
func ModelMatrix(translation mgl32.Vec3, scale float32, rotation mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))
	return mgl32.Translate3D(translation.X(), translation.Y(), translation.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// ProjectionMatrix is a standard perspective projection.
func ProjectionMatrix(fovyRadians, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovyRadians, aspect, near, far)
}
