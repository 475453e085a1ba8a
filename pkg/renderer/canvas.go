package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	stdmath "math"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

const (
	maxColorValue = 255
	maxLineLength = 70
)

// Canvas is the rendered pixel buffer: a row-major grid of unclamped
// floating-point colors with the origin at the top left. Clamping and gamma
// belong to the encoders, not the render loop.
type Canvas struct {
	Width  int
	Height int
	pixels []math.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]math.Color, width*height),
	}
}

// WritePixel stores a color. Out-of-range writes are logged and ignored;
// a camera rounding error at the border should not kill a long render.
func (c *Canvas) WritePixel(x, y int, col math.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		log.Printf("canvas: ignoring pixel at (%d, %d), canvas size is (%d, %d)", x, y, c.Width, c.Height)
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) math.Color {
	return c.pixels[y*c.Width+x]
}

func toPPMValue(v float64) int {
	value := int(stdmath.Round(v * maxColorValue))
	if value < 0 {
		return 0
	}
	if value > maxColorValue {
		return maxColorValue
	}
	return value
}

// ToPPM serializes the canvas as plain PPM (P3), wrapping data lines at 70
// columns without splitting a component.
func (c *Canvas) ToPPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n%d\n", c.Width, c.Height, maxColorValue)

	for y := 0; y < c.Height; y++ {
		lineLength := 0
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			for _, v := range [3]int{toPPMValue(pixel.R), toPPMValue(pixel.G), toPPMValue(pixel.B)} {
				word := fmt.Sprintf("%d", v)
				if lineLength > 0 {
					if lineLength+1+len(word) > maxLineLength {
						b.WriteByte('\n')
						lineLength = 0
					} else {
						b.WriteByte(' ')
						lineLength++
					}
				}
				b.WriteString(word)
				lineLength += len(word)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	return b.String()
}

// WritePPM writes the plain PPM serialization to w
func (c *Canvas) WritePPM(w io.Writer) error {
	_, err := io.WriteString(w, c.ToPPM())
	return err
}

// WritePPMGz writes a gzip-compressed PPM stream to w
func (c *Canvas) WritePPMGz(w io.Writer) error {
	zw := gzip.NewWriter(w)
	if err := c.WritePPM(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ToImage converts the canvas to an image.Image, clamping components to
// [0, 255] the same way the PPM encoder does.
func (c *Canvas) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(toPPMValue(pixel.R)),
				G: uint8(toPPMValue(pixel.G)),
				B: uint8(toPPMValue(pixel.B)),
				A: 255,
			})
		}
	}
	return img
}
