package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
)

// Triangles with |signed area| below this are degenerate: dividing by the
// area would blow up the weights, so they emit nothing.
const minArea = 1e-8

// Fixed light direction pointing out of the screen.
var lightDir = mgl32.Vec3{0, 0, 1}

var triangleBase = color.New(100, 100, 100)

// Triangle scan-converts a triangle from three transformed vertices. It
// tests every pixel center inside the integer bounding box against the
// barycentric weights and emits a fragment for each covered pixel,
// carrying the interpolated normal, lighting intensity, depth and
// object-space position.
//
// This is the hot path. Interpolation is affine in screen space, not
// perspective-correct: the edge tests and weights use only post-projection
// x and y.
func Triangle(v1, v2, v3 geometry.Vertex) []geometry.Fragment {
	a := v1.TransformedPosition
	b := v2.TransformedPosition
	c := v3.TransformedPosition

	minX := int(math.Floor(float64(min3(a.X(), b.X(), c.X()))))
	minY := int(math.Floor(float64(min3(a.Y(), b.Y(), c.Y()))))
	maxX := int(math.Ceil(float64(max3(a.X(), b.X(), c.X()))))
	maxY := int(math.Ceil(float64(max3(a.Y(), b.Y(), c.Y()))))

	area := edgeFunction(a, b, c)
	if area > -minArea && area < minArea {
		return nil
	}
	invArea := 1 / area

	var fragments []geometry.Fragment

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, 0}

			w1 := edgeFunction(b, c, p) * invArea
			w2 := edgeFunction(c, a, p) * invArea
			w3 := edgeFunction(a, b, p) * invArea

			if w1 < 0 || w1 > 1 || w2 < 0 || w2 > 1 || w3 < 0 || w3 > 1 {
				continue
			}

			normal := v1.TransformedNormal.Mul(w1).
				Add(v2.TransformedNormal.Mul(w2)).
				Add(v3.TransformedNormal.Mul(w3))
			if normal.Len() == 0 {
				continue
			}
			normal = normal.Normalize()

			intensity := normal.Dot(lightDir)
			if intensity < 0 {
				intensity = 0
			}
			litColor := triangleBase.Scale(intensity)

			depth := a.Z()*w1 + b.Z()*w2 + c.Z()*w3

			vertexPosition := v1.Position.Mul(w1).
				Add(v2.Position.Mul(w2)).
				Add(v3.Position.Mul(w3))

			fragments = append(fragments, geometry.Fragment{
				Position:       mgl32.Vec2{float32(x), float32(y)},
				Color:          litColor,
				Depth:          depth,
				Normal:         normal,
				Intensity:      intensity,
				VertexPosition: vertexPosition,
			})
		}
	}

	return fragments
}

// edgeFunction is the 2D cross product of (b-a) and (p-a); z is ignored.
// Its sign tells which side of edge ab the point p lies on, and
// edgeFunction(a, b, c) is the triangle's signed area (times two).
func edgeFunction(a, b, p mgl32.Vec3) float32 {
	return (p.X()-a.X())*(b.Y()-a.Y()) - (p.Y()-a.Y())*(b.X()-a.X())
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
