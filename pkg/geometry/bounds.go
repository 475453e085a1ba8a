package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// Bounds is an axis-aligned bounding box in a shape's local space, used to
// prune group traversal before touching children.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBounds creates a bounding box from min and max corners
func NewBounds(min, max math.Vec3) Bounds {
	return Bounds{Min: min, Max: max}
}

// EmptyBounds returns the merge identity: a box with inverted infinite
// extents that any added point will collapse to itself.
func EmptyBounds() Bounds {
	return Bounds{
		Min: math.NewVec3(stdmath.Inf(1), stdmath.Inf(1), stdmath.Inf(1)),
		Max: math.NewVec3(stdmath.Inf(-1), stdmath.Inf(-1), stdmath.Inf(-1)),
	}
}

// InfiniteBounds returns a box with unconstrained extent, used for planes
// and unbounded cylinders/cones.
func InfiniteBounds() Bounds {
	return Bounds{
		Min: math.NewVec3(stdmath.Inf(-1), stdmath.Inf(-1), stdmath.Inf(-1)),
		Max: math.NewVec3(stdmath.Inf(1), stdmath.Inf(1), stdmath.Inf(1)),
	}
}

// AddPoint expands the box to contain the given point
func (b *Bounds) AddPoint(p math.Vec3) {
	b.Min.X = stdmath.Min(b.Min.X, p.X)
	b.Min.Y = stdmath.Min(b.Min.Y, p.Y)
	b.Min.Z = stdmath.Min(b.Min.Z, p.Z)

	b.Max.X = stdmath.Max(b.Max.X, p.X)
	b.Max.Y = stdmath.Max(b.Max.Y, p.Y)
	b.Max.Z = stdmath.Max(b.Max.Z, p.Z)
}

// Merge returns a box containing both boxes
func (b Bounds) Merge(other Bounds) Bounds {
	result := b
	result.AddPoint(other.Min)
	result.AddPoint(other.Max)
	return result
}

func (b Bounds) hasInfiniteExtent() bool {
	return stdmath.IsInf(b.Min.X, 0) || stdmath.IsInf(b.Min.Y, 0) || stdmath.IsInf(b.Min.Z, 0) ||
		stdmath.IsInf(b.Max.X, 0) || stdmath.IsInf(b.Max.Y, 0) || stdmath.IsInf(b.Max.Z, 0)
}

// Transform returns the axis-aligned box containing all 8 transformed
// corners of b. Infinite bounds stay infinite: rotating or scaling an
// infinite corner would produce 0*Inf = NaN.
func (b Bounds) Transform(m math.Matrix) Bounds {
	if b.hasInfiniteExtent() {
		return InfiniteBounds()
	}

	corners := [8]math.Vec3{
		b.Min,
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		b.Max,
	}

	result := EmptyBounds()
	for _, corner := range corners {
		result.AddPoint(math.TransformPoint(m, corner))
	}
	return result
}

// Intersects tests the ray against the box with the slab method
func (b Bounds) Intersects(ray math.Ray) bool {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := stdmath.Max(xtmin, stdmath.Max(ytmin, ztmin))
	tmax := stdmath.Min(xtmax, stdmath.Min(ytmax, ztmax))

	return tmin <= tmax
}

// checkAxis computes the entry/exit distances for one slab. A near-zero
// direction component yields +/-Inf, which the min/max folding handles.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	var tmin, tmax float64
	if stdmath.Abs(direction) >= 1e-10 {
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
