package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// cylinderIntersect intersects a unit-radius cylinder along y, truncated to
// the exclusive (Minimum, Maximum) range, plus end caps when closed.
func cylinderIntersect(cyl *Object, ray math.Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	var xs []float64

	// Ray parallel to the y axis only ever hits the caps
	if math.Equal(a, 0) {
		return cylinderIntersectCaps(cyl, ray, xs)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if y0 := ray.Origin.Y + t0*ray.Direction.Y; cyl.Minimum < y0 && y0 < cyl.Maximum {
		xs = append(xs, t0)
	}
	if y1 := ray.Origin.Y + t1*ray.Direction.Y; cyl.Minimum < y1 && y1 < cyl.Maximum {
		xs = append(xs, t1)
	}

	return cylinderIntersectCaps(cyl, ray, xs)
}

// checkCap reports whether the ray at t lies within a radius-1 disk
func checkCap(ray math.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

func cylinderIntersectCaps(cyl *Object, ray math.Ray, xs []float64) []float64 {
	if !cyl.Closed || math.Equal(ray.Direction.Y, 0) {
		return xs
	}

	if t := (cyl.Minimum - ray.Origin.Y) / ray.Direction.Y; checkCap(ray, t) {
		xs = append(xs, t)
	}
	if t := (cyl.Maximum - ray.Origin.Y) / ray.Direction.Y; checkCap(ray, t) {
		xs = append(xs, t)
	}
	return xs
}

// cylinderNormalAt returns a cap normal near the end disks, otherwise the
// radial lateral normal.
func cylinderNormalAt(cyl *Object, point math.Vec3) math.Vec3 {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= cyl.Maximum-math.Epsilon {
		return math.NewVec3(0, 1, 0)
	}
	if dist < 1 && point.Y <= cyl.Minimum+math.Epsilon {
		return math.NewVec3(0, -1, 0)
	}
	return math.NewVec3(point.X, 0, point.Z)
}
