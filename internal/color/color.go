package color

import "fmt"

// Color is an 8-bit-per-channel RGB value. All arithmetic saturates to
// [0, 255]; channels never wrap around.
type Color struct {
	R, G, B uint8
}

// New builds a color from its three channels.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex unpacks a 24-bit 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

func Black() Color { return Color{} }

func White() Color { return Color{R: 255, G: 255, B: 255} }

// Hex packs the color back into 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Lerp interpolates toward other by t. t is clamped to [0, 1] and each
// channel rounds to the nearest integer.
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}

// Add is a channel-wise saturating add. Shaders sum many weighted colors,
// so clamping at 255 instead of wrapping is a hard contract here.
func (c Color) Add(other Color) Color {
	return Color{
		R: satAdd(c.R, other.R),
		G: satAdd(c.G, other.G),
		B: satAdd(c.B, other.B),
	}
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Scale multiplies each channel by s and clamps the result to [0, 255].
// s may be any sign or magnitude; clamping happens after the multiply.
func (c Color) Scale(s float32) Color {
	return Color{
		R: clamp255(float32(c.R) * s),
		G: clamp255(float32(c.G) * s),
		B: clamp255(float32(c.B) * s),
	}
}

// BlendNormal replaces the color with the overlay unless the overlay is
// pure black, which is treated as "no overlay". Not true alpha
// compositing; an intentional limitation.
func (c Color) BlendNormal(overlay Color) Color {
	if overlay.IsBlack() {
		return c
	}
	return overlay
}

// BlendMultiply is the per-channel product divided by 255, truncated.
func (c Color) BlendMultiply(overlay Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(overlay.R) / 255),
		G: uint8(uint16(c.G) * uint16(overlay.G) / 255),
		B: uint8(uint16(c.B) * uint16(overlay.B) / 255),
	}
}

// BlendAdd is a saturating channel-wise add.
func (c Color) BlendAdd(overlay Color) Color {
	return c.Add(overlay)
}

// BlendSubtract subtracts the overlay per channel, clamping at 0.
func (c Color) BlendSubtract(overlay Color) Color {
	return Color{
		R: satSub(c.R, overlay.R),
		G: satSub(c.G, overlay.G),
		B: satSub(c.B, overlay.B),
	}
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d)", c.R, c.G, c.B)
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
