package renderer

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/geometry"
	"github.com/timothyhahn/raytracer-go/pkg/lights"
	"github.com/timothyhahn/raytracer-go/pkg/material"
	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// MaxRecursionDepth bounds the reflection/refraction recursion. Running out
// of depth is the defined termination condition, not an error: the bounce
// contributes black. It is what keeps two facing mirrors from recursing
// forever.
const MaxRecursionDepth = 5

// World is the top-level scene container: the root objects plus at most one
// point light. A nil light renders fully unlit.
type World struct {
	Objects []*geometry.Object
	Light   *lights.PointLight
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{}
}

// DefaultWorld returns the canonical two-sphere test world lit from the
// upper left.
func DefaultWorld() *World {
	outer := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = math.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	inner.SetTransform(math.Scaling(0.5, 0.5, 0.5))

	light := lights.NewPointLight(math.NewVec3(-10, 10, -10), math.White())
	return &World{
		Objects: []*geometry.Object{outer, inner},
		Light:   &light,
	}
}

// Intersect gathers every object's intersections with the ray, sorted
// ascending by t.
func (w *World) Intersect(ray math.Ray) []geometry.Intersection {
	xs := make([]geometry.Intersection, 0, len(w.Objects)*2)
	for _, object := range w.Objects {
		xs = append(xs, object.IntersectWithObject(ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// ColorAt resolves the color seen along a ray, recursing into reflected and
// refracted contributions until remaining bounces run out. Callers start
// with MaxRecursionDepth.
func (w *World) ColorAt(ray math.Ray, remaining int) math.Color {
	xs := w.Intersect(ray)
	hit, ok := geometry.Hit(xs)
	if !ok {
		return math.Black()
	}
	comps := hit.PrepareComputations(ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines the Phong surface color with reflected and refracted
// contributions. A material that is both reflective and transparent blends
// the two by the Fresnel reflectance instead of summing both in full, so
// glass-like surfaces do not double-count energy.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) math.Color {
	if w.Light == nil {
		return math.Black()
	}

	inShadow := w.IsShadowed(comps.OverPoint)
	m := comps.Object.Material()
	surface := m.Lighting(comps.Object, *w.Light, comps.Point, comps.EyeV, comps.NormalV, inShadow)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflectivity > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether an object blocks the segment between the point
// and the light. Without a light nothing is shadowed.
func (w *World) IsShadowed(point math.Vec3) bool {
	if w.Light == nil {
		return false
	}

	v := w.Light.Position.Subtract(point)
	distance := v.Length()

	ray := math.NewRay(point, v.Normalize())
	hit, ok := geometry.Hit(w.Intersect(ray))
	return ok && hit.T < distance
}

// ReflectedColor traces the reflection bounce from just above the surface,
// scaled by the material's reflectivity. Depth exhaustion and matte
// materials contribute black.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) math.Color {
	if remaining <= 0 {
		return math.Black()
	}

	reflectivity := comps.Object.Material().Reflectivity
	if reflectivity == 0 {
		return math.Black()
	}

	reflectRay := math.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflectivity)
}

// RefractedColor traces the transmission ray from just below the surface
// using Snell's law in vector form, scaled by the material's transparency.
// Total internal reflection contributes black.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) math.Color {
	if remaining <= 0 {
		return math.Black()
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return math.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return math.Black()
	}

	cosT := stdmath.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := math.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}
