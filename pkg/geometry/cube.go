package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// cubeCheckAxis computes entry/exit distances against the [-1,1] slab on one
// axis, producing +/-Inf when the ray runs parallel to the slab.
func cubeCheckAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if stdmath.Abs(direction) >= math.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * stdmath.Inf(1)
		tmax = tmaxNumerator * stdmath.Inf(1)
	}

	if tmin > tmax {
		return tmax, tmin
	}
	return tmin, tmax
}

// cubeIntersect intersects the unit cube with the slab method, intersecting
// the per-axis entry/exit intervals.
func cubeIntersect(ray math.Ray) []float64 {
	tmin, tmax := cubeCheckAxis(ray.Origin.X, ray.Direction.X)

	ytmin, ytmax := cubeCheckAxis(ray.Origin.Y, ray.Direction.Y)
	tmin = stdmath.Max(tmin, ytmin)
	tmax = stdmath.Min(tmax, ytmax)
	if tmin > tmax {
		return nil
	}

	ztmin, ztmax := cubeCheckAxis(ray.Origin.Z, ray.Direction.Z)
	tmin = stdmath.Max(tmin, ztmin)
	tmax = stdmath.Min(tmax, ztmax)
	if tmin > tmax {
		return nil
	}

	return []float64{tmin, tmax}
}

// cubeNormalAt picks the face whose coordinate has the largest magnitude,
// ties resolved in x, y, z order.
func cubeNormalAt(point math.Vec3) math.Vec3 {
	maxc := stdmath.Max(stdmath.Abs(point.X), stdmath.Max(stdmath.Abs(point.Y), stdmath.Abs(point.Z)))

	switch {
	case stdmath.Abs(maxc-stdmath.Abs(point.X)) < math.Epsilon:
		return math.NewVec3(point.X, 0, 0)
	case stdmath.Abs(maxc-stdmath.Abs(point.Y)) < math.Epsilon:
		return math.NewVec3(0, point.Y, 0)
	default:
		return math.NewVec3(0, 0, point.Z)
	}
}
