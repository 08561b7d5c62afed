package core

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer stores linear RGB colors in row-major order, x fastest.
// Row 0 holds the pixels rendered for y = 0.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Vec3, width*height),
	}
}

// Set stores a color at (x, y)
func (fb *Framebuffer) Set(x, y int, c Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// Get returns the color stored at (x, y)
func (fb *Framebuffer) Get(x, y int) Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Row returns the slice backing row y. Writers of distinct rows never overlap.
func (fb *Framebuffer) Row(y int) []Vec3 {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// ToByte quantizes a color channel by truncation: floor(clamp(c) * 255).
// NaN quantizes to 0.
func ToByte(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	c = max(0, min(1, c))
	return uint8(math.Floor(c * 255))
}

// RGB8 returns the quantized channels of the pixel at (x, y)
func (fb *Framebuffer) RGB8(x, y int) (r, g, b uint8) {
	c := fb.Get(x, y)
	return ToByte(c.X), ToByte(c.Y), ToByte(c.Z)
}

// ColorModel implements image.Image
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image using the same truncating quantization as the PPM writer
func (fb *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := fb.RGB8(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
