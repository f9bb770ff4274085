// Package render drives the per-frame pipeline: vertex shading, primitive
// assembly, rasterization, surface shading and depth-tested writes.
package render

import (
	"planet-renderer/internal/geometry"
	"planet-renderer/internal/raster"
	"planet-renderer/internal/shader"
)

// Frame renders consecutive vertex triples as filled triangles into fb.
// Degenerate vertices (perspective divide at w ≈ 0) drop their whole
// primitive, so the frame always completes without non-finite values
// reaching the framebuffer.
func Frame(fb *raster.Framebuffer, verts []geometry.Vertex, u *shader.Uniforms, surface shader.Surface) {
	shaded, valid := shadeVertices(verts, u)

	for i := 0; i+2 < len(shaded); i += 3 {
		if !valid[i] || !valid[i+1] || !valid[i+2] {
			continue
		}
		for _, frag := range raster.Triangle(shaded[i], shaded[i+1], shaded[i+2]) {
			fb.SetCurrentColor(surface(frag, u))
			fb.Point(int(frag.Position.X()), int(frag.Position.Y()), frag.Depth)
		}
	}
}

// Wireframe renders the three edges of each triangle as white lines.
func Wireframe(fb *raster.Framebuffer, verts []geometry.Vertex, u *shader.Uniforms) {
	shaded, valid := shadeVertices(verts, u)

	for i := 0; i+2 < len(shaded); i += 3 {
		if !valid[i] || !valid[i+1] || !valid[i+2] {
			continue
		}
		edges := [3][2]int{{i, i + 1}, {i + 1, i + 2}, {i + 2, i}}
		for _, e := range edges {
			for _, frag := range raster.Line(shaded[e[0]], shaded[e[1]]) {
				fb.SetCurrentColor(frag.Color)
				fb.Point(int(frag.Position.X()), int(frag.Position.Y()), frag.Depth)
			}
		}
	}
}

func shadeVertices(verts []geometry.Vertex, u *shader.Uniforms) ([]geometry.Vertex, []bool) {
	shaded := make([]geometry.Vertex, len(verts))
	valid := make([]bool, len(verts))
	for i, v := range verts {
		shaded[i], valid[i] = shader.Transform(v, u)
	}
	return shaded, valid
}
