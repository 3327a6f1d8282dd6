package imageio

import (
	"bytes"
	"fmt"
)

// Content types for the supported formats
const (
	ContentTypePPM = "image/x-portable-pixmap"
	ContentTypePNG = "image/png"
)

// Encode serializes fb as "ppm" (8-bit, footer tagged with tag when non-empty)
// or "png", returning the bytes and their content type
func (fb *Framebuffer) Encode(format, tag string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "ppm":
		var footer *Footer
		if tag != "" {
			footer = NewFooter(tag)
		}
		if err := fb.WritePPM(&buf, 255, footer); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ContentTypePPM, nil
	case "png":
		if err := fb.WritePNG(&buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ContentTypePNG, nil
	default:
		return nil, "", fmt.Errorf("unknown image format %q", format)
	}
}
