package scene

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/geometry"
	"github.com/timothyhahn/raytracer-go/pkg/lights"
	"github.com/timothyhahn/raytracer-go/pkg/material"
	"github.com/timothyhahn/raytracer-go/pkg/math"
	"github.com/timothyhahn/raytracer-go/pkg/renderer"
)

// NewDefaultScene builds three spheres on a checkered floor, with the middle
// sphere slightly reflective.
func NewDefaultScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	floorMat.Reflectivity = 0.1
	floorMat.Pattern = material.NewCheckersPattern(
		math.NewColor(0.85, 0.85, 0.85),
		math.NewColor(0.35, 0.35, 0.35),
	)
	floor.SetMaterial(floorMat)

	middle := geometry.NewSphere()
	middle.SetTransform(math.Translation(-0.5, 1, 0.5))
	middleMat := material.NewMaterial()
	middleMat.Color = math.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflectivity = 0.25
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	right.SetTransform(math.Translation(1.5, 0.5, -0.5).Mul4(math.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.NewMaterial()
	rightMat.Color = math.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	left.SetTransform(math.Translation(-1.5, 0.33, -0.75).Mul4(math.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.NewMaterial()
	leftMat.Color = math.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	light := lights.NewPointLight(math.NewVec3(-10, 10, -10), math.White())
	world := &renderer.World{
		Objects: []*geometry.Object{floor, middle, right, left},
		Light:   &light,
	}

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	camera.Transform = math.ViewTransform(
		math.NewVec3(0, 1.5, -5),
		math.NewVec3(0, 1, 0),
		math.NewVec3(0, 1, 0),
	)

	return &Scene{World: world, Camera: camera}
}
