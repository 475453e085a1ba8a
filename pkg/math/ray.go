package math

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray transformed by the given matrix. The direction
// is not renormalized, so t values keep their meaning across spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    TransformPoint(m, r.Origin),
		Direction: TransformVector(m, r.Direction),
	}
}
