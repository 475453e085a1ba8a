package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// planeIntersect intersects a ray with the xz-plane at y=0. A ray parallel
// to the plane, including one lying in it, yields no intersection.
func planeIntersect(ray math.Ray) []float64 {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func planeNormalAt() math.Vec3 {
	return math.NewVec3(0, 1, 0)
}
