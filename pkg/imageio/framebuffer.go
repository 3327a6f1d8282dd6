package imageio

import (
	"fmt"
	"image"
	"image/color"
)

// RGB8 is one pixel with 8 bits per channel
type RGB8 struct {
	R, G, B uint8
}

// Framebuffer is a row-major grid of RGB8 pixels
type Framebuffer struct {
	Rows   int
	Cols   int
	Pixels []RGB8
}

var _ image.Image = (*Framebuffer)(nil)

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(rows, cols int) *Framebuffer {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("imageio: invalid framebuffer size %dx%d", cols, rows))
	}
	return &Framebuffer{
		Rows:   rows,
		Cols:   cols,
		Pixels: make([]RGB8, rows*cols),
	}
}

// Row returns the pixels of row r. The slice aliases the framebuffer.
func (fb *Framebuffer) Row(r int) []RGB8 {
	return fb.Pixels[r*fb.Cols : (r+1)*fb.Cols]
}

// Pixel returns the pixel at row r, column c
func (fb *Framebuffer) Pixel(r, c int) RGB8 {
	return fb.Pixels[r*fb.Cols+c]
}

// Set writes the pixel at row r, column c
func (fb *Framebuffer) Set(r, c int, p RGB8) {
	fb.Pixels[r*fb.Cols+c] = p
}

// ColorModel implements image.Image
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Cols, fb.Rows)
}

// At implements image.Image
func (fb *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(fb.Bounds())) {
		return color.RGBA{}
	}
	p := fb.Pixel(y, x)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
