// Package camera holds the orbital view-state that feeds the per-frame
// uniform set.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/mathutil"
)

// Pitch stays clear of ±π/2 so the up vector never degenerates.
const pitchLimit = math.Pi/2 - 0.1

// Camera is an eye/center/up view state. Every mutator bumps an internal
// version counter; consumers detect changes by comparing versions (see
// Observer) so any number of independent observers can poll it.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	version uint64
}

// New returns a camera whose first version already counts as a change, so
// a fresh observer renders the initial frame.
func New(eye, center, up mgl32.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up, version: 1}
}

// Version returns the current change counter. It increases by exactly one
// per mutating call and never decreases.
func (c *Camera) Version() uint64 { return c.version }

// ViewMatrix builds the right-handed look-at matrix for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// Orbit recomputes the eye on a sphere around Center, adding deltaYaw and
// deltaPitch to the current spherical angles. Yaw wraps mod 2π; pitch is
// clamped away from the poles.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	radiusVector := c.Eye.Sub(c.Center)
	radius := radiusVector.Len()

	currentYaw := float32(math.Atan2(float64(radiusVector.Z()), float64(radiusVector.X())))

	radiusXZ := float32(math.Sqrt(float64(radiusVector.X()*radiusVector.X() + radiusVector.Z()*radiusVector.Z())))
	currentPitch := float32(math.Atan2(float64(-radiusVector.Y()), float64(radiusXZ)))

	newYaw := float32(math.Mod(float64(currentYaw+deltaYaw), 2*math.Pi))
	newPitch := clamp(currentPitch+deltaPitch, -pitchLimit, pitchLimit)

	sinYaw, cosYaw := math.Sincos(float64(newYaw))
	sinPitch, cosPitch := math.Sincos(float64(newPitch))

	c.Eye = c.Center.Add(mgl32.Vec3{
		radius * float32(cosYaw*cosPitch),
		-radius * float32(sinPitch),
		radius * float32(sinYaw*cosPitch),
	})
	c.version++
}

// Zoom moves the eye along the normalized eye→center direction by delta.
// Negative delta zooms out.
func (c *Camera) Zoom(delta float32) {
	direction := c.Center.Sub(c.Eye).Normalize()
	c.Eye = c.Eye.Add(direction.Mul(delta))
	c.version++
}

// MoveCenter re-orients the look target while holding the eye fixed: the
// eye→center vector rotates by small angles derived from direction.X and
// direction.Y around world-up and the camera's current right vector,
// preserving the radius.
func (c *Camera) MoveCenter(direction mgl32.Vec3) {
	radiusVector := c.Center.Sub(c.Eye)
	radius := radiusVector.Len()

	angleX := direction.X() * 0.05
	angleY := direction.Y() * 0.05

	rotated := mathutil.RotateVec3(radiusVector, angleX, mgl32.Vec3{0, 1, 0})

	right := rotated.Cross(c.Up).Normalize()
	finalRotated := mathutil.RotateVec3(rotated, angleY, right)

	c.Center = c.Eye.Add(finalRotated.Normalize().Mul(radius))
	c.version++
}

// BasisChange re-expresses vector in the camera's right/up/forward basis
// and renormalizes it.
func (c *Camera) BasisChange(vector mgl32.Vec3) mgl32.Vec3 {
	forward := c.Center.Sub(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rotated := right.Mul(vector.X()).
		Add(up.Mul(vector.Y())).
		Add(forward.Mul(-vector.Z()))

	return rotated.Normalize()
}

// Observer tracks the last camera version it has seen. Each observer sees
// every change exactly once, independently of any other observer.
type Observer struct {
	seen uint64
}

// Changed reports whether the camera has mutated since the last call on
// this observer, and records the current version.
func (o *Observer) Changed(c *Camera) bool {
	if c.version == o.seen {
		return false
	}
	o.seen = c.version
	return true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
