package imageio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// FooterSize is the encoded size of a Footer in bytes
	FooterSize = 32

	ppmMagic = "P6"
)

// FooterMagic identifies a footer appended after the pixel data
var FooterMagic = [4]byte{'S', 'D', 'F', 'T'}

// Footer is a fixed-size record that may follow the pixel data.
// Ordinary PPM readers stop after the pixels and never see it.
type Footer struct {
	Magic [4]byte
	Tag   [28]byte
}

// NewFooter creates a footer holding tag, truncated to 28 bytes
func NewFooter(tag string) *Footer {
	f := &Footer{Magic: FooterMagic}
	copy(f.Tag[:], tag)
	return f
}

// TagString returns the tag without trailing zero padding
func (f *Footer) TagString() string {
	return string(bytes.TrimRight(f.Tag[:], "\x00"))
}

// PPMHeader describes a binary PPM image
type PPMHeader struct {
	Width  int
	Height int
	MaxVal int
}

// WritePPM writes the framebuffer as binary PPM: the P6 tag, width, height and
// maximum channel value each on their own line, then raw RGB triples row by row.
// A non-nil footer is appended after the pixels.
func (fb *Framebuffer) WritePPM(w io.Writer, maxVal int, footer *Footer) error {
	if maxVal <= 0 || maxVal > 255 {
		return fmt.Errorf("invalid PPM max value %d", maxVal)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d\n%d\n%d\n", ppmMagic, fb.Cols, fb.Rows, maxVal); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}

	row := make([]byte, 3*fb.Cols)
	for r := 0; r < fb.Rows; r++ {
		for c, p := range fb.Row(r) {
			row[3*c] = p.R
			row[3*c+1] = p.G
			row[3*c+2] = p.B
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("while writing PPM row %d: %w", r, err)
		}
	}

	if footer != nil {
		if err := binary.Write(bw, binary.LittleEndian, footer); err != nil {
			return fmt.Errorf("while writing PPM footer: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing PPM: %w", err)
	}
	return nil
}

// ReadPPMHeader parses a binary PPM header, leaving r positioned at the first pixel byte
func ReadPPMHeader(r *bufio.Reader) (PPMHeader, error) {
	var h PPMHeader

	magic, err := readToken(r)
	if err != nil {
		return h, fmt.Errorf("while reading PPM magic: %w", err)
	}
	if magic != ppmMagic {
		return h, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	fields := []*int{&h.Width, &h.Height, &h.MaxVal}
	names := []string{"width", "height", "max value"}
	for i, field := range fields {
		tok, err := readToken(r)
		if err != nil {
			return h, fmt.Errorf("while reading PPM %s: %w", names[i], err)
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return h, fmt.Errorf("invalid PPM %s %q", names[i], tok)
		}
		*field = v
	}
	if h.MaxVal > 255 {
		return h, fmt.Errorf("unsupported PPM max value %d", h.MaxVal)
	}

	return h, nil
}

// ReadPPM decodes a binary PPM written by WritePPM. The footer is nil when
// the pixel data is not followed by one.
func ReadPPM(r io.Reader) (*Framebuffer, *Footer, error) {
	br := bufio.NewReader(r)

	h, err := ReadPPMHeader(br)
	if err != nil {
		return nil, nil, err
	}

	fb := NewFramebuffer(h.Height, h.Width)
	row := make([]byte, 3*h.Width)
	for y := 0; y < h.Height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, nil, fmt.Errorf("while reading PPM row %d: %w", y, err)
		}
		pixels := fb.Row(y)
		for x := range pixels {
			pixels[x] = RGB8{R: row[3*x], G: row[3*x+1], B: row[3*x+2]}
		}
	}

	var footer Footer
	if err := binary.Read(br, binary.LittleEndian, &footer); err != nil {
		if errors.Is(err, io.EOF) {
			return fb, nil, nil
		}
		return nil, nil, fmt.Errorf("while reading PPM footer: %w", err)
	}
	if footer.Magic != FooterMagic {
		return nil, nil, fmt.Errorf("unrecognised PPM footer magic %q", footer.Magic[:])
	}

	return fb, &footer, nil
}

// readToken returns the next whitespace-delimited header token, skipping
// comments. It consumes exactly one whitespace byte after the token.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}

		switch {
		case b == '#' && len(tok) == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return "", err
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
