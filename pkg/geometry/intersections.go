package geometry

import (
	stdmath "math"
	"sort"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// Intersection pairs a parametric distance along a ray with the object that
// was hit. The object reference is non-owning and only valid for the
// lifetime of the query that produced it.
type Intersection struct {
	T      float64
	Object *Object
}

// SortIntersections orders intersections by ascending t. The sort is stable
// so coincident hits keep their traversal order; NaN (never expected) sorts
// after everything else.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T || stdmath.IsNaN(xs[j].T)
	})
}

// Hit returns the first intersection with t >= 0. It assumes xs is already
// sorted ascending; entries behind the ray origin are skipped entirely.
func Hit(xs []Intersection) (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations is the transient shading state derived from one intersection:
// everything the lighting pipeline needs at the hit point.
type Computations struct {
	T          float64
	Object     *Object
	Point      math.Vec3
	EyeV       math.Vec3
	NormalV    math.Vec3
	ReflectV   math.Vec3
	Inside     bool
	OverPoint  math.Vec3 // origin for shadow and reflection rays
	UnderPoint math.Vec3 // origin for refraction rays
	N1         float64   // refractive index of the medium being left
	N2         float64   // refractive index of the medium being entered
}

// PrepareComputations derives the shading state for this intersection. The
// full sorted intersection list is needed to resolve the refractive index
// pair; pass nil when only this intersection exists.
func (i Intersection) PrepareComputations(ray math.Ray, xs []Intersection) Computations {
	if xs == nil {
		xs = []Intersection{i}
	}

	point := ray.Position(i.T)
	eyeV := ray.Direction.Negate()
	normalV := i.Object.NormalAt(point)

	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	comps := Computations{
		T:          i.T,
		Object:     i.Object,
		Point:      point,
		EyeV:       eyeV,
		NormalV:    normalV,
		ReflectV:   ray.Direction.Reflect(normalV),
		Inside:     inside,
		OverPoint:  point.Add(normalV.Multiply(math.Epsilon)),
		UnderPoint: point.Subtract(normalV.Multiply(math.Epsilon)),
		N1:         1.0,
		N2:         1.0,
	}

	// Replay the sorted list as a stack of objects the ray is currently
	// inside: first occurrence of an object enters it, second exits. n1 is
	// read just before the hit updates the stack, n2 just after.
	var containers []*Object
	for _, x := range xs {
		isHit := x.Object == i.Object && math.Equal(x.T, i.T)

		if isHit {
			if len(containers) > 0 {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfObject(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return comps
}

func indexOfObject(objects []*Object, target *Object) int {
	for i, o := range objects {
		if o == target {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit. When light moves
// into a less dense medium past the critical angle everything reflects.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = stdmath.Sqrt(1 - sin2T)
	}

	r0 := ((c.N1 - c.N2) / (c.N1 + c.N2)) * ((c.N1 - c.N2) / (c.N1 + c.N2))
	return r0 + (1-r0)*stdmath.Pow(1-cos, 5)
}
