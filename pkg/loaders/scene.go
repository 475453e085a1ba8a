// Package loaders turns declarative scene files into a populated object
// graph and camera. The core renderer never reads files; everything here is
// a front-end collaborator.
package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/timothyhahn/raytracer-go/pkg/geometry"
	"github.com/timothyhahn/raytracer-go/pkg/lights"
	"github.com/timothyhahn/raytracer-go/pkg/material"
	"github.com/timothyhahn/raytracer-go/pkg/math"
	"github.com/timothyhahn/raytracer-go/pkg/renderer"
	"github.com/timothyhahn/raytracer-go/pkg/scene"
)

// SceneFile is the top-level scene description
type SceneFile struct {
	Camera  CameraConfig   `json:"camera"`
	Light   *LightConfig   `json:"light"`
	Objects []ObjectConfig `json:"objects"`
}

// CameraConfig positions the camera and sizes the output
type CameraConfig struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	FOV    float64    `json:"fov"`
	From   [3]float64 `json:"from"`
	To     [3]float64 `json:"to"`
	Up     [3]float64 `json:"up"`
}

// LightConfig describes the scene's point light
type LightConfig struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

// TransformOp is one step in a transform pipeline, applied in the order
// listed: the first op acts on the object first.
type TransformOp struct {
	Op     string    `json:"op"`
	Values []float64 `json:"values"`
}

// MaterialConfig overrides fields of the default material; omitted fields
// keep their defaults.
type MaterialConfig struct {
	Color           *[3]float64    `json:"color"`
	Ambient         *float64       `json:"ambient"`
	Diffuse         *float64       `json:"diffuse"`
	Specular        *float64       `json:"specular"`
	Shininess       *float64       `json:"shininess"`
	Reflectivity    *float64       `json:"reflectivity"`
	Transparency    *float64       `json:"transparency"`
	RefractiveIndex *float64       `json:"refractive_index"`
	Pattern         *PatternConfig `json:"pattern"`
}

// PatternConfig describes a procedural two-color pattern
type PatternConfig struct {
	Type      string        `json:"type"`
	A         [3]float64    `json:"a"`
	B         [3]float64    `json:"b"`
	Transform []TransformOp `json:"transform"`
}

// ObjectConfig describes one node of the object graph
type ObjectConfig struct {
	Type      string          `json:"type"`
	Transform []TransformOp   `json:"transform"`
	Material  *MaterialConfig `json:"material"`
	Minimum   *float64        `json:"minimum"`
	Maximum   *float64        `json:"maximum"`
	Closed    bool            `json:"closed"`
	Children  []ObjectConfig  `json:"children"`
}

// Load reads and builds a scene from a JSON file
func Load(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from JSON scene-file bytes
func Parse(data []byte) (*scene.Scene, error) {
	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("loaders: parsing scene file: %w", err)
	}

	world := renderer.NewWorld()
	if file.Light != nil {
		light := lights.NewPointLight(toVec3(file.Light.Position), toColor(file.Light.Intensity))
		world.Light = &light
	}

	for i, cfg := range file.Objects {
		object, err := buildObject(cfg)
		if err != nil {
			return nil, fmt.Errorf("loaders: object %d: %w", i, err)
		}
		world.Objects = append(world.Objects, object)
	}

	if file.Camera.Width <= 0 || file.Camera.Height <= 0 {
		return nil, fmt.Errorf("loaders: camera size %dx%d is invalid", file.Camera.Width, file.Camera.Height)
	}
	camera := renderer.NewCamera(file.Camera.Width, file.Camera.Height, file.Camera.FOV)
	camera.Transform = math.ViewTransform(
		toVec3(file.Camera.From),
		toVec3(file.Camera.To),
		toVec3(file.Camera.Up),
	)

	return &scene.Scene{World: world, Camera: camera}, nil
}

func buildObject(cfg ObjectConfig) (*geometry.Object, error) {
	var object *geometry.Object
	switch cfg.Type {
	case "sphere":
		object = geometry.NewSphere()
	case "plane":
		object = geometry.NewPlane()
	case "cube":
		object = geometry.NewCube()
	case "cylinder":
		object = geometry.NewCylinder()
	case "cone":
		object = geometry.NewCone()
	case "group":
		object = geometry.NewGroup()
	default:
		return nil, fmt.Errorf("unknown object type %q", cfg.Type)
	}

	if cfg.Minimum != nil {
		object.Minimum = *cfg.Minimum
	}
	if cfg.Maximum != nil {
		object.Maximum = *cfg.Maximum
	}
	object.Closed = cfg.Closed

	if cfg.Material != nil {
		m, err := buildMaterial(cfg.Material)
		if err != nil {
			return nil, err
		}
		object.SetMaterial(m)
	}

	transform, err := buildTransform(cfg.Transform)
	if err != nil {
		return nil, err
	}
	object.SetTransform(transform)

	for i, childCfg := range cfg.Children {
		if cfg.Type != "group" {
			return nil, fmt.Errorf("%q objects cannot have children", cfg.Type)
		}
		child, err := buildObject(childCfg)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		object.AddChild(child)
	}

	return object, nil
}

func buildMaterial(cfg *MaterialConfig) (material.Material, error) {
	m := material.NewMaterial()
	if cfg.Color != nil {
		m.Color = toColor(*cfg.Color)
	}
	if cfg.Ambient != nil {
		m.Ambient = *cfg.Ambient
	}
	if cfg.Diffuse != nil {
		m.Diffuse = *cfg.Diffuse
	}
	if cfg.Specular != nil {
		m.Specular = *cfg.Specular
	}
	if cfg.Shininess != nil {
		m.Shininess = *cfg.Shininess
	}
	if cfg.Reflectivity != nil {
		m.Reflectivity = *cfg.Reflectivity
	}
	if cfg.Transparency != nil {
		m.Transparency = *cfg.Transparency
	}
	if cfg.RefractiveIndex != nil {
		m.RefractiveIndex = *cfg.RefractiveIndex
	}
	if cfg.Pattern != nil {
		pattern, err := buildPattern(cfg.Pattern)
		if err != nil {
			return m, err
		}
		m.Pattern = pattern
	}
	return m, nil
}

func buildPattern(cfg *PatternConfig) (*material.Pattern, error) {
	a, b := toColor(cfg.A), toColor(cfg.B)

	var pattern *material.Pattern
	switch cfg.Type {
	case "stripe":
		pattern = material.NewStripePattern(a, b)
	case "gradient":
		pattern = material.NewGradientPattern(a, b)
	case "ring":
		pattern = material.NewRingPattern(a, b)
	case "checkers":
		pattern = material.NewCheckersPattern(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", cfg.Type)
	}

	transform, err := buildTransform(cfg.Transform)
	if err != nil {
		return nil, err
	}
	pattern.Transform = transform
	return pattern, nil
}

// buildTransform composes ops in listed order: each later op left-multiplies,
// so "scale then translate" lands the object scaled at the translated spot.
func buildTransform(ops []TransformOp) (math.Matrix, error) {
	result := math.Identity()
	for _, op := range ops {
		m, err := opMatrix(op)
		if err != nil {
			return result, err
		}
		result = m.Mul4(result)
	}
	return result, nil
}

func opMatrix(op TransformOp) (math.Matrix, error) {
	switch op.Op {
	case "translate":
		if len(op.Values) != 3 {
			return math.Identity(), fmt.Errorf("translate needs 3 values, got %d", len(op.Values))
		}
		return math.Translation(op.Values[0], op.Values[1], op.Values[2]), nil
	case "scale":
		if len(op.Values) != 3 {
			return math.Identity(), fmt.Errorf("scale needs 3 values, got %d", len(op.Values))
		}
		return math.Scaling(op.Values[0], op.Values[1], op.Values[2]), nil
	case "rotate-x":
		if len(op.Values) != 1 {
			return math.Identity(), fmt.Errorf("rotate-x needs 1 value, got %d", len(op.Values))
		}
		return math.RotationX(op.Values[0]), nil
	case "rotate-y":
		if len(op.Values) != 1 {
			return math.Identity(), fmt.Errorf("rotate-y needs 1 value, got %d", len(op.Values))
		}
		return math.RotationY(op.Values[0]), nil
	case "rotate-z":
		if len(op.Values) != 1 {
			return math.Identity(), fmt.Errorf("rotate-z needs 1 value, got %d", len(op.Values))
		}
		return math.RotationZ(op.Values[0]), nil
	case "shear":
		if len(op.Values) != 6 {
			return math.Identity(), fmt.Errorf("shear needs 6 values, got %d", len(op.Values))
		}
		return math.Shearing(op.Values[0], op.Values[1], op.Values[2], op.Values[3], op.Values[4], op.Values[5]), nil
	default:
		return math.Identity(), fmt.Errorf("unknown transform op %q", op.Op)
	}
}

func toVec3(v [3]float64) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

func toColor(v [3]float64) math.Color {
	return math.NewColor(v[0], v[1], v[2])
}
