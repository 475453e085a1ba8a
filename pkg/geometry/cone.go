package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// coneIntersect intersects the double-napped unit cone along y. Unlike the
// cylinder the quadratic coefficient a can vanish when the ray parallels one
// half of the cone, degenerating to a single linear root.
func coneIntersect(cone *Object, ray math.Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	var xs []float64

	if math.Equal(a, 0) {
		if math.Equal(b, 0) {
			return coneIntersectCaps(cone, ray, xs)
		}
		t := -c / (2 * b)
		if y := ray.Origin.Y + t*ray.Direction.Y; cone.Minimum < y && y < cone.Maximum {
			xs = append(xs, t)
		}
		return coneIntersectCaps(cone, ray, xs)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return coneIntersectCaps(cone, ray, xs)
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if y0 := ray.Origin.Y + t0*ray.Direction.Y; cone.Minimum < y0 && y0 < cone.Maximum {
		xs = append(xs, t0)
	}
	if y1 := ray.Origin.Y + t1*ray.Direction.Y; cone.Minimum < y1 && y1 < cone.Maximum {
		xs = append(xs, t1)
	}

	return coneIntersectCaps(cone, ray, xs)
}

// checkConeCap tests against a disk whose radius equals |y| at that cap
func checkConeCap(ray math.Ray, t, y float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	radius := stdmath.Abs(y)
	return x*x+z*z <= radius*radius
}

func coneIntersectCaps(cone *Object, ray math.Ray, xs []float64) []float64 {
	if !cone.Closed || math.Equal(ray.Direction.Y, 0) {
		return xs
	}

	if t := (cone.Minimum - ray.Origin.Y) / ray.Direction.Y; checkConeCap(ray, t, cone.Minimum) {
		xs = append(xs, t)
	}
	if t := (cone.Maximum - ray.Origin.Y) / ray.Direction.Y; checkConeCap(ray, t, cone.Maximum) {
		xs = append(xs, t)
	}
	return xs
}

// coneNormalAt returns the cap normals near the end disks; the lateral
// normal's y magnitude is the radial distance, pointing away from the apex.
func coneNormalAt(cone *Object, point math.Vec3) math.Vec3 {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= cone.Maximum-math.Epsilon {
		return math.NewVec3(0, 1, 0)
	}
	if dist < 1 && point.Y <= cone.Minimum+math.Epsilon {
		return math.NewVec3(0, -1, 0)
	}

	y := stdmath.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return math.NewVec3(point.X, y, point.Z)
}
