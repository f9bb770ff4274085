package raster

import (
	"image"
	"math"

	"planet-renderer/internal/color"
)

// Framebuffer owns the color and depth targets as flat slices for cache
// locality. The color buffer holds packed 0xRRGGBB values; the depth
// buffer starts at +Inf, meaning "nothing drawn yet".
type Framebuffer struct {
	Width  int
	Height int
	Color  []uint32
	Depth  []float32

	background color.Color
	current    color.Color
}

// NewFramebuffer allocates a framebuffer cleared to black with every
// depth at +Inf.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:   width,
		Height:  height,
		Color:   make([]uint32, width*height),
		Depth:   make([]float32, width*height),
		current: color.White(),
	}
	fb.Clear()
	return fb
}

// Clear resets every color cell to the background color and every depth
// to +Inf.
func (fb *Framebuffer) Clear() {
	bg := fb.background.Hex()
	inf := float32(math.Inf(1))
	for i := range fb.Color {
		fb.Color[i] = bg
		fb.Depth[i] = inf
	}
}

// Point writes the current draw color at (x, y) if the pixel is in bounds
// and depth is strictly closer than the stored value. Out-of-range writes
// and losing depth tests are ignored silently; nothing in the draw path
// can fail mid-frame.
func (fb *Framebuffer) Point(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	index := y*fb.Width + x
	if depth < fb.Depth[index] {
		fb.Color[index] = fb.current.Hex()
		fb.Depth[index] = depth
	}
}

// SetBackgroundColor sets the color Clear fills with.
func (fb *Framebuffer) SetBackgroundColor(c color.Color) {
	fb.background = c
}

// SetCurrentColor sets the draw color consumed by subsequent Point calls.
func (fb *Framebuffer) SetCurrentColor(c color.Color) {
	fb.current = c
}

// Fill copies an already-sized backdrop image into the color buffer
// without touching the depth buffer, so geometry drawn afterwards always
// wins the depth test over it.
func (fb *Framebuffer) Fill(img *image.NRGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > fb.Width {
		w = fb.Width
	}
	if h > fb.Height {
		h = fb.Height
	}
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			i := row + x*4
			fb.Color[y*fb.Width+x] = uint32(img.Pix[i])<<16 |
				uint32(img.Pix[i+1])<<8 |
				uint32(img.Pix[i+2])
		}
	}
}

// NRGBA converts the color buffer to an opaque image for encoding.
func (fb *Framebuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, packed := range fb.Color {
		j := i * 4
		img.Pix[j] = uint8(packed >> 16)
		img.Pix[j+1] = uint8(packed >> 8)
		img.Pix[j+2] = uint8(packed)
		img.Pix[j+3] = 255
	}
	return img
}
