package imageio

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gradientFramebuffer fills red by row and green by column
func gradientFramebuffer(rows, cols int) *Framebuffer {
	fb := NewFramebuffer(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fb.Set(r, c, RGB8{R: uint8(255 * r / rows), G: uint8(255 * c / cols)})
		}
	}
	return fb
}

func TestWritePPM_Header(t *testing.T) {
	fb := gradientFramebuffer(3, 5)

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf, 255, nil); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	wantHeader := "P6\n5\n3\n255\n"
	if !strings.HasPrefix(buf.String(), wantHeader) {
		t.Errorf("Expected header %q, got %q", wantHeader, buf.String()[:len(wantHeader)])
	}
	if got, want := buf.Len(), len(wantHeader)+3*5*3; got != want {
		t.Errorf("Expected %d bytes, got %d", want, got)
	}

	h, err := ReadPPMHeader(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("ReadPPMHeader failed: %v", err)
	}
	if diff := cmp.Diff(h, PPMHeader{Width: 5, Height: 3, MaxVal: 255}); diff != "" {
		t.Errorf("header diff (-got +want):\n%s", diff)
	}
}

func TestPPM_RoundTrip(t *testing.T) {
	fb := gradientFramebuffer(128, 128)

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf, 255, nil); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	got, footer, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	if footer != nil {
		t.Errorf("Expected no footer, got %+v", footer)
	}
	if diff := cmp.Diff(got, fb); diff != "" {
		t.Errorf("framebuffer diff (-got +want):\n%s", diff)
	}
}

func TestPPM_Footer(t *testing.T) {
	fb := gradientFramebuffer(4, 4)

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf, 255, NewFooter("sphere")); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	if got, want := buf.Len(), len("P6\n4\n4\n255\n")+3*16+FooterSize; got != want {
		t.Errorf("Expected %d bytes, got %d", want, got)
	}
	if !bytes.Equal(buf.Bytes()[buf.Len()-FooterSize:][:4], []byte("SDFT")) {
		t.Error("Expected footer magic after pixel data")
	}

	got, footer, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	if footer == nil {
		t.Fatal("Expected footer")
	}
	if footer.TagString() != "sphere" {
		t.Errorf("Expected tag %q, got %q", "sphere", footer.TagString())
	}
	if diff := cmp.Diff(got, fb); diff != "" {
		t.Errorf("framebuffer diff (-got +want):\n%s", diff)
	}
}

func TestNewFooter_Truncates(t *testing.T) {
	f := NewFooter(strings.Repeat("x", 40))
	if got := f.TagString(); len(got) != 28 {
		t.Errorf("Expected 28-byte tag, got %d bytes", len(got))
	}
}

func TestReadPPMHeader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PPMHeader
		wantErr bool
	}{
		{"newline separated", "P6\n2\n3\n255\n", PPMHeader{2, 3, 255}, false},
		{"space separated", "P6 2 3 255\n", PPMHeader{2, 3, 255}, false},
		{"with comment", "P6\n# made by hand\n2 3\n15\n", PPMHeader{2, 3, 15}, false},
		{"ascii variant", "P3\n2\n3\n255\n", PPMHeader{}, true},
		{"negative width", "P6\n-2\n3\n255\n", PPMHeader{}, true},
		{"sixteen bit", "P6\n2\n3\n65535\n", PPMHeader{}, true},
		{"truncated", "P6\n2\n", PPMHeader{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPPMHeader(bufio.NewReader(strings.NewReader(tt.input)))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got header %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadPPMHeader failed: %v", err)
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("header diff (-got +want):\n%s", diff)
			}
		})
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"short pixel data", append([]byte("P6\n2\n1\n255\n"), 1, 2, 3)},
		{"partial footer", append([]byte("P6\n1\n1\n255\n"), 1, 2, 3, 'S', 'D')},
		{"bad footer magic", append([]byte("P6\n1\n1\n255\n"), append([]byte{1, 2, 3}, make([]byte, FooterSize)...)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ReadPPM(bytes.NewReader(tt.input)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestWritePPM_InvalidMaxVal(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	for _, maxVal := range []int{0, 256} {
		if err := fb.WritePPM(&bytes.Buffer{}, maxVal, nil); err == nil {
			t.Errorf("Expected error for max value %d", maxVal)
		}
	}
}

func TestEncode(t *testing.T) {
	fb := gradientFramebuffer(4, 4)

	tests := []struct {
		format      string
		tag         string
		contentType string
		wantFooter  bool
	}{
		{"ppm", "box", ContentTypePPM, true},
		{"ppm", "", ContentTypePPM, false},
		{"png", "ignored", ContentTypePNG, false},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.tag, func(t *testing.T) {
			data, ct, err := fb.Encode(tt.format, tt.tag)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if ct != tt.contentType {
				t.Errorf("Expected content type %s, got %s", tt.contentType, ct)
			}
			if tt.format != "ppm" {
				return
			}
			_, footer, err := ReadPPM(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("ReadPPM failed: %v", err)
			}
			if (footer != nil) != tt.wantFooter {
				t.Errorf("Expected footer=%v, got %+v", tt.wantFooter, footer)
			}
		})
	}

	if _, _, err := fb.Encode("gif", ""); err == nil {
		t.Error("Expected error for unknown format")
	}
}
