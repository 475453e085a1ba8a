package geometry

import (
	"sort"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// groupIntersect tests the group's local bounding box before touching any
// child; a miss prunes the whole subtree. Children apply their own local
// transforms through Intersect.
func groupIntersect(g *Object, ray math.Ray) []float64 {
	if !groupBounds(g).Intersects(ray) {
		return nil
	}

	var ts []float64
	for _, child := range g.children {
		ts = append(ts, child.Intersect(ray)...)
	}

	sort.Float64s(ts)
	return ts
}

// groupBounds merges every child's bounds transformed by that child's local
// transform into a single box in the group's local space.
func groupBounds(g *Object) Bounds {
	bounds := EmptyBounds()
	for _, child := range g.children {
		bounds = bounds.Merge(child.Bounds().Transform(child.transform))
	}
	return bounds
}
