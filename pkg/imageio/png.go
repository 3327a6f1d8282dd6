package imageio

import (
	"fmt"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// WritePNG encodes the framebuffer as PNG
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, fb); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteThumbnail encodes a PNG scaled to width, keeping the aspect ratio
func (fb *Framebuffer) WriteThumbnail(w io.Writer, width int) error {
	if width <= 0 {
		return fmt.Errorf("invalid thumbnail width %d", width)
	}

	thumb := resize.Resize(uint(width), 0, fb, resize.Bilinear)
	if err := png.Encode(w, thumb); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}
