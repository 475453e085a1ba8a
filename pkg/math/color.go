package math

// Color represents an RGB color with unclamped floating-point components.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns the unit color
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard (component-wise) product of two colors.
// This is the blend used everywhere two colors combine: surface color with
// light intensity, and pattern colors.
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals compares two colors component-wise within Epsilon
func (c Color) Equals(other Color) bool {
	return Equal(c.R, other.R) && Equal(c.G, other.G) && Equal(c.B, other.B)
}
