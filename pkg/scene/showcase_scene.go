package scene

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/geometry"
	"github.com/timothyhahn/raytracer-go/pkg/lights"
	"github.com/timothyhahn/raytracer-go/pkg/material"
	"github.com/timothyhahn/raytracer-go/pkg/math"
	"github.com/timothyhahn/raytracer-go/pkg/renderer"
)

// NewShowcaseScene exercises every primitive: a striped floor, a glass
// sphere, a mirrored cube, a capped cylinder, a cone, and a group of small
// spheres sharing one transform.
func NewShowcaseScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	floorMat.Reflectivity = 0.2
	pattern := material.NewRingPattern(
		math.NewColor(0.9, 0.9, 0.9),
		math.NewColor(0.4, 0.45, 0.5),
	)
	pattern.Transform = math.Scaling(1.5, 1.5, 1.5)
	floorMat.Pattern = pattern
	floor.SetMaterial(floorMat)

	glass := geometry.NewGlassSphere()
	glass.SetTransform(math.Translation(0, 1, 0))
	glassMat := glass.Material()
	glassMat.Color = math.NewColor(0.05, 0.05, 0.08)
	glassMat.Diffuse = 0.1
	glassMat.Ambient = 0.05
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflectivity = 0.9
	glass.SetMaterial(glassMat)

	cube := geometry.NewCube()
	cube.SetTransform(math.Translation(3, 0.75, 1.5).
		Mul4(math.RotationY(stdmath.Pi / 5)).
		Mul4(math.Scaling(0.75, 0.75, 0.75)))
	cubeMat := material.NewMaterial()
	cubeMat.Color = math.NewColor(0.2, 0.2, 0.25)
	cubeMat.Reflectivity = 0.6
	cubeMat.Diffuse = 0.4
	cube.SetMaterial(cubeMat)

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 1.5
	cylinder.Closed = true
	cylinder.SetTransform(math.Translation(-3, 0, 2).Mul4(math.Scaling(0.6, 1, 0.6)))
	cylMat := material.NewMaterial()
	cylMat.Color = math.NewColor(0.8, 0.3, 0.2)
	cylMat.Specular = 0.6
	cylinder.SetMaterial(cylMat)

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	cone.SetTransform(math.Translation(1.8, 1, -1.2).Mul4(math.Scaling(0.5, 1, 0.5)))
	coneMat := material.NewMaterial()
	coneMat.Color = math.NewColor(0.95, 0.75, 0.1)
	gradient := material.NewGradientPattern(
		math.NewColor(0.95, 0.75, 0.1),
		math.NewColor(0.85, 0.2, 0.1),
	)
	coneMat.Pattern = gradient
	cone.SetMaterial(coneMat)

	// A trio of marbles positioned once, placed together by the group
	// transform.
	marbles := geometry.NewGroup()
	for i, offset := range []math.Vec3{
		math.NewVec3(-0.6, 0, 0),
		math.NewVec3(0.6, 0, 0),
		math.NewVec3(0, 0, 0.8),
	} {
		marble := geometry.NewSphere()
		marble.SetTransform(math.Translation(offset.X, offset.Y, offset.Z).
			Mul4(math.Scaling(0.25, 0.25, 0.25)))
		m := material.NewMaterial()
		m.Color = math.NewColor(0.2+0.3*float64(i), 0.3, 0.8-0.2*float64(i))
		m.Specular = 0.8
		marble.SetMaterial(m)
		marbles.AddChild(marble)
	}
	marbles.SetTransform(math.Translation(-1.5, 0.25, -1.5))

	light := lights.NewPointLight(math.NewVec3(-8, 9, -8), math.White())
	world := &renderer.World{
		Objects: []*geometry.Object{floor, glass, cube, cylinder, cone, marbles},
		Light:   &light,
	}

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	camera.Transform = math.ViewTransform(
		math.NewVec3(0, 2.5, -6.5),
		math.NewVec3(0, 0.8, 0),
		math.NewVec3(0, 1, 0),
	)

	return &Scene{World: world, Camera: camera}
}
