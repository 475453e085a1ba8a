package material

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// PatternKind selects the procedural pattern function.
type PatternKind int

const (
	PatternStripe PatternKind = iota
	PatternGradient
	PatternRing
	PatternCheckers
)

// Pattern is a procedural two-color pattern with its own transform relative
// to the object it is attached to.
type Pattern struct {
	Transform math.Matrix
	Kind      PatternKind
	A, B      math.Color
}

// NewStripePattern alternates colors along the x axis
func NewStripePattern(a, b math.Color) *Pattern {
	return &Pattern{Transform: math.Identity(), Kind: PatternStripe, A: a, B: b}
}

// NewGradientPattern blends linearly from a to b along the x axis
func NewGradientPattern(a, b math.Color) *Pattern {
	return &Pattern{Transform: math.Identity(), Kind: PatternGradient, A: a, B: b}
}

// NewRingPattern alternates colors in concentric rings in the xz plane
func NewRingPattern(a, b math.Color) *Pattern {
	return &Pattern{Transform: math.Identity(), Kind: PatternRing, A: a, B: b}
}

// NewCheckersPattern alternates colors in a 3D checkerboard
func NewCheckersPattern(a, b math.Color) *Pattern {
	return &Pattern{Transform: math.Identity(), Kind: PatternCheckers, A: a, B: b}
}

// ColorAt evaluates the pattern at a point in pattern space
func (p *Pattern) ColorAt(point math.Vec3) math.Color {
	switch p.Kind {
	case PatternGradient:
		distance := p.B.Subtract(p.A)
		fraction := stdmath.Max(0, stdmath.Min(1, point.X))
		return p.A.Add(distance.Scale(fraction))
	case PatternRing:
		if stdmath.Mod(stdmath.Floor(stdmath.Sqrt(point.X*point.X+point.Z*point.Z)), 2) == 0 {
			return p.A
		}
		return p.B
	case PatternCheckers:
		// The nudge keeps points computed right on a cell boundary from
		// flickering between cells.
		const eps = 1e-6
		sum := int(stdmath.Floor(point.X+eps)) + int(stdmath.Floor(point.Y+eps)) + int(stdmath.Floor(point.Z+eps))
		if sum&1 == 0 {
			return p.A
		}
		return p.B
	default: // PatternStripe
		if stdmath.Mod(stdmath.Floor(point.X), 2) == 0 {
			return p.A
		}
		return p.B
	}
}

// ColorAtObject evaluates the pattern at a world-space point on an object,
// mapping world -> object -> pattern space through both inverse transforms.
func (p *Pattern) ColorAtObject(object Surface, worldPoint math.Vec3) math.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := math.TransformPoint(math.Inverse(p.Transform), objectPoint)
	return p.ColorAt(patternPoint)
}
