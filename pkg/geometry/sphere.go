package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// sphereIntersect solves |O + tD|^2 = 1 for a unit sphere at the origin.
func sphereIntersect(ray math.Ray) []float64 {
	sphereToRay := ray.Origin

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	if t1 <= t2 {
		return []float64{t1, t2}
	}
	return []float64{t2, t1}
}

// sphereNormalAt returns the normal on a unit sphere: the point itself, as a vector.
func sphereNormalAt(point math.Vec3) math.Vec3 {
	return point
}
