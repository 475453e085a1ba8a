package lights

import "github.com/timothyhahn/raytracer-go/pkg/math"

// PointLight is a light source with no size, radiating equally in all
// directions from a single position.
type PointLight struct {
	Position  math.Vec3
	Intensity math.Color
}

// NewPointLight creates a new point light
func NewPointLight(position math.Vec3, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
