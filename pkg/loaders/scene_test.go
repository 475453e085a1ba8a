package loaders

import (
	"strings"
	"testing"

	"github.com/timothyhahn/raytracer-go/pkg/geometry"
	"github.com/timothyhahn/raytracer-go/pkg/math"
)

const fullScene = `{
  "camera": {
    "width": 320, "height": 240, "fov": 1.047,
    "from": [0, 1.5, -5], "to": [0, 1, 0], "up": [0, 1, 0]
  },
  "light": {"position": [-10, 10, -10], "intensity": [1, 1, 1]},
  "objects": [
    {
      "type": "plane",
      "material": {
        "specular": 0,
        "pattern": {
          "type": "checkers",
          "a": [1, 1, 1], "b": [0.2, 0.2, 0.2],
          "transform": [{"op": "scale", "values": [0.5, 0.5, 0.5]}]
        }
      }
    },
    {
      "type": "sphere",
      "transform": [
        {"op": "scale", "values": [0.5, 0.5, 0.5]},
        {"op": "translate", "values": [-0.5, 1, 0.5]}
      ],
      "material": {"color": [0.1, 1, 0.5], "diffuse": 0.7, "reflectivity": 0.25}
    },
    {
      "type": "cylinder",
      "minimum": 0, "maximum": 2, "closed": true,
      "transform": [{"op": "rotate-y", "values": [0.5]}]
    },
    {
      "type": "group",
      "transform": [{"op": "translate", "values": [3, 0, 0]}],
      "children": [
        {"type": "cube"},
        {"type": "cone", "minimum": -1, "maximum": 0}
      ]
    }
  ]
}`

func TestParse_FullScene(t *testing.T) {
	sc, err := Parse([]byte(fullScene))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if sc.Camera.HSize != 320 || sc.Camera.VSize != 240 {
		t.Errorf("Expected 320x240 camera, got %dx%d", sc.Camera.HSize, sc.Camera.VSize)
	}
	expectedTransform := math.ViewTransform(
		math.NewVec3(0, 1.5, -5),
		math.NewVec3(0, 1, 0),
		math.NewVec3(0, 1, 0),
	)
	if !math.MatricesEqual(sc.Camera.Transform, expectedTransform) {
		t.Errorf("Expected camera transform from the view parameters")
	}

	if sc.World.Light == nil {
		t.Fatalf("Expected a light")
	}
	if !sc.World.Light.Position.Equals(math.NewVec3(-10, 10, -10)) {
		t.Errorf("Expected light at (-10, 10, -10), got %v", sc.World.Light.Position)
	}

	if len(sc.World.Objects) != 4 {
		t.Fatalf("Expected 4 objects, got %d", len(sc.World.Objects))
	}

	plane := sc.World.Objects[0]
	if plane.Kind() != geometry.KindPlane {
		t.Errorf("Expected a plane first")
	}
	if plane.Material().Pattern == nil {
		t.Errorf("Expected the plane to carry a pattern")
	}
	if plane.Material().Specular != 0 {
		t.Errorf("Expected specular override, got %f", plane.Material().Specular)
	}
	// Unspecified fields keep their defaults
	if plane.Material().Ambient != 0.1 {
		t.Errorf("Expected default ambient, got %f", plane.Material().Ambient)
	}

	sphere := sc.World.Objects[1]
	expected := math.Translation(-0.5, 1, 0.5).Mul4(math.Scaling(0.5, 0.5, 0.5))
	if !math.MatricesEqual(sphere.Transform(), expected) {
		t.Errorf("Expected transform ops applied in listed order")
	}
	if sphere.Material().Reflectivity != 0.25 {
		t.Errorf("Expected reflectivity 0.25, got %f", sphere.Material().Reflectivity)
	}

	cylinder := sc.World.Objects[2]
	if cylinder.Minimum != 0 || cylinder.Maximum != 2 || !cylinder.Closed {
		t.Errorf("Expected a closed cylinder from 0 to 2, got min=%f max=%f closed=%v",
			cylinder.Minimum, cylinder.Maximum, cylinder.Closed)
	}

	group := sc.World.Objects[3]
	if group.Kind() != geometry.KindGroup || len(group.Children()) != 2 {
		t.Fatalf("Expected a group with 2 children")
	}
	cone := group.Children()[1]
	if cone.Kind() != geometry.KindCone || cone.Minimum != -1 || cone.Maximum != 0 {
		t.Errorf("Expected a bounded cone child")
	}
	if cone.Parent() != group {
		t.Errorf("Expected the cone to be parented to the group")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "invalid json",
			input:   `{`,
			wantErr: "parsing scene file",
		},
		{
			name:    "unknown object type",
			input:   `{"camera": {"width": 10, "height": 10, "fov": 1}, "objects": [{"type": "torus"}]}`,
			wantErr: `unknown object type "torus"`,
		},
		{
			name:    "unknown transform op",
			input:   `{"camera": {"width": 10, "height": 10, "fov": 1}, "objects": [{"type": "sphere", "transform": [{"op": "twist", "values": [1]}]}]}`,
			wantErr: `unknown transform op "twist"`,
		},
		{
			name:    "wrong arity",
			input:   `{"camera": {"width": 10, "height": 10, "fov": 1}, "objects": [{"type": "sphere", "transform": [{"op": "translate", "values": [1]}]}]}`,
			wantErr: "translate needs 3 values",
		},
		{
			name:    "children on a leaf",
			input:   `{"camera": {"width": 10, "height": 10, "fov": 1}, "objects": [{"type": "sphere", "children": [{"type": "sphere"}]}]}`,
			wantErr: "cannot have children",
		},
		{
			name:    "unknown pattern type",
			input:   `{"camera": {"width": 10, "height": 10, "fov": 1}, "objects": [{"type": "sphere", "material": {"pattern": {"type": "noise", "a": [0,0,0], "b": [1,1,1]}}}]}`,
			wantErr: `unknown pattern type "noise"`,
		},
		{
			name:    "missing camera size",
			input:   `{"objects": []}`,
			wantErr: "camera size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Expected an error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.json"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
