package renderer

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(10, 20)

	if canvas.Width != 10 || canvas.Height != 20 {
		t.Errorf("Expected 10x20 canvas, got %dx%d", canvas.Width, canvas.Height)
	}
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			if !canvas.PixelAt(x, y).Equals(math.Black()) {
				t.Fatalf("Expected black at (%d, %d), got %v", x, y, canvas.PixelAt(x, y))
			}
		}
	}
}

func TestCanvas_WritePixel(t *testing.T) {
	canvas := NewCanvas(10, 20)
	red := math.NewColor(1, 0, 0)

	canvas.WritePixel(2, 3, red)
	if !canvas.PixelAt(2, 3).Equals(red) {
		t.Errorf("Expected red at (2, 3), got %v", canvas.PixelAt(2, 3))
	}
}

func TestCanvas_WritePixelOutOfRange(t *testing.T) {
	canvas := NewCanvas(4, 4)

	// Must not panic, and must not disturb the canvas
	canvas.WritePixel(-1, 0, math.White())
	canvas.WritePixel(0, -1, math.White())
	canvas.WritePixel(4, 0, math.White())
	canvas.WritePixel(0, 4, math.White())

	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			if !canvas.PixelAt(x, y).Equals(math.Black()) {
				t.Fatalf("Expected out-of-range writes to be ignored, got %v at (%d, %d)", canvas.PixelAt(x, y), x, y)
			}
		}
	}
}

func TestCanvas_ToPPMHeader(t *testing.T) {
	canvas := NewCanvas(5, 3)
	lines := strings.Split(canvas.ToPPM(), "\n")

	if lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
		t.Errorf("Unexpected header: %q %q %q", lines[0], lines[1], lines[2])
	}
}

func TestCanvas_ToPPMPixelData(t *testing.T) {
	canvas := NewCanvas(5, 3)
	canvas.WritePixel(0, 0, math.NewColor(1.5, 0, 0))
	canvas.WritePixel(2, 1, math.NewColor(0, 0.5, 0))
	canvas.WritePixel(4, 2, math.NewColor(-0.5, 0, 1))

	lines := strings.Split(canvas.ToPPM(), "\n")

	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, line := range expected {
		if lines[3+i] != line {
			t.Errorf("Line %d: expected %q, got %q", 3+i, line, lines[3+i])
		}
	}
}

func TestCanvas_ToPPMLineWrapping(t *testing.T) {
	canvas := NewCanvas(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			canvas.WritePixel(x, y, math.NewColor(1, 0.8, 0.6))
		}
	}

	for i, line := range strings.Split(canvas.ToPPM(), "\n") {
		if len(line) > 70 {
			t.Errorf("Line %d exceeds 70 characters (%d): %q", i, len(line), line)
		}
	}
}

func TestCanvas_ToPPMTrailingNewline(t *testing.T) {
	canvas := NewCanvas(5, 3)
	if ppm := canvas.ToPPM(); !strings.HasSuffix(ppm, "\n") {
		t.Errorf("Expected PPM data to end with a newline")
	}
}

func TestCanvas_WritePPMGz(t *testing.T) {
	canvas := NewCanvas(3, 2)
	canvas.WritePixel(1, 1, math.NewColor(1, 0, 0))

	var buf bytes.Buffer
	if err := canvas.WritePPMGz(&buf); err != nil {
		t.Fatalf("WritePPMGz failed: %v", err)
	}

	zr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatalf("Expected a gzip stream: %v", err)
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		t.Fatalf("Decompression failed: %v", err)
	}
	if out.String() != canvas.ToPPM() {
		t.Errorf("Expected round-tripped PPM to match")
	}
}

func TestCanvas_ToImage(t *testing.T) {
	canvas := NewCanvas(2, 2)
	canvas.WritePixel(0, 0, math.NewColor(1, 0, 0))
	canvas.WritePixel(1, 1, math.NewColor(0, 0, 2)) // clamps to full blue

	img := canvas.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}

	r, _, _, a := img.At(0, 0).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("Expected opaque red at (0, 0), got r=%x a=%x", r, a)
	}
	_, _, b, _ := img.At(1, 1).RGBA()
	if b != 0xffff {
		t.Errorf("Expected clamped blue at (1, 1), got b=%x", b)
	}
}
