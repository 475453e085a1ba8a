package material

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/lights"
	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// Surface is the piece of an object a material needs to see: the mapping
// from world space into the object's local space, used to anchor patterns
// to the surface they are attached to.
type Surface interface {
	WorldToObject(worldPoint math.Vec3) math.Vec3
}

// Material holds the Phong shading parameters for a surface plus the
// reflection/refraction parameters used by the recursive shading pipeline.
type Material struct {
	Color           math.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflectivity    float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque
	RefractiveIndex float64 // 1.0 = vacuum/air
	Pattern         *Pattern
}

// NewMaterial returns the default material: white, mostly diffuse, opaque.
func NewMaterial() Material {
	return Material{
		Color:           math.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflectivity:    0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns a transparent material with the refractive index of glass
func Glass() Material {
	m := NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// Lighting computes the Phong illumination for a point on a surface.
// Ambient is always contributed; diffuse and specular drop out when the
// point is shadowed or the light is behind the surface.
func (m Material) Lighting(object Surface, light lights.PointLight, point, eye, normal math.Vec3, inShadow bool) math.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.ColorAtObject(object, point)
	}

	effectiveColor := color.Multiply(light.Intensity)
	lightV := light.Position.Subtract(point).Normalize()

	ambient := effectiveColor.Scale(m.Ambient)

	// Cosine of the angle between the light vector and the normal; negative
	// means the light is on the other side of the surface.
	lightDotNormal := lightV.Dot(normal)
	if lightDotNormal < 0 || inShadow {
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := math.Black()
	reflectV := lightV.Negate().Reflect(normal)
	if reflectDotEye := reflectV.Dot(eye); reflectDotEye > 0 {
		factor := stdmath.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
