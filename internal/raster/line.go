package raster

import (
	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/color"
	"planet-renderer/internal/geometry"
)

var lineColor = color.White()

// Line scan-converts the segment between the rounded screen positions of
// a and b with Bresenham's algorithm, inclusive of both endpoints. Each
// fragment is white with the depth interpolated along the line's major
// axis between the endpoint depths; a zero-length line emits one fragment
// at the start depth.
func Line(a, b geometry.Vertex) []geometry.Fragment {
	start := a.TransformedPosition
	end := b.TransformedPosition

	x0, y0 := int(start.X()), int(start.Y())
	x1, y1 := int(end.X()), int(end.Y())

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx / 2
	if dx <= dy {
		err = -dy / 2
	}

	// Depth runs along whichever axis actually advances, so a vertical
	// line never divides by its zero x-span.
	major := dx
	majorStart := x0
	alongX := true
	if dy > dx {
		major = dy
		majorStart = y0
		alongX = false
	}

	fragments := make([]geometry.Fragment, 0, major+1)

	x, y := x0, y0
	for {
		var t float32
		if major > 0 {
			pos := x
			if !alongX {
				pos = y
			}
			t = float32(abs(pos-majorStart)) / float32(major)
		}
		z := start.Z() + (end.Z()-start.Z())*t

		fragments = append(fragments, geometry.Fragment{
			Position: mgl32.Vec2{float32(x), float32(y)},
			Color:    lineColor,
			Depth:    z,
		})

		if x == x1 && y == y1 {
			break
		}

		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}

	return fragments
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
