package scene

import (
	"github.com/timothyhahn/raytracer-go/pkg/renderer"
)

// Scene bundles a world with the camera set up to render it
type Scene struct {
	World  *renderer.World
	Camera *renderer.Camera
}

// Builders maps scene names to built-in scene constructors
var Builders = map[string]func(width, height int) *Scene{
	"default":  NewDefaultScene,
	"showcase": NewShowcaseScene,
}
