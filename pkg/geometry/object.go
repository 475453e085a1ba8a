package geometry

import (
	stdmath "math"

	"github.com/timothyhahn/raytracer-go/pkg/material"
	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// Kind identifies the geometry variant an Object carries. The set is closed:
// intersection, normal and bounds dispatch switch over it, keeping every node
// the same size regardless of variant.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindGroup
)

// Object is a node in the scene graph: one geometry variant plus a local
// transform, a cached world transform, a material, and (for groups) owned
// children. The world transform cache satisfies the invariant
//
//	worldTransform = parent.worldTransform * transform
//
// at every node; SetTransform and AddChild repropagate it through all
// descendants whenever a local transform changes.
type Object struct {
	kind           Kind
	transform      math.Matrix
	worldTransform math.Matrix
	material       material.Material

	// Extent along y for cylinders and cones; exclusive bounds, open by
	// default. Ignored by other kinds.
	Minimum float64
	Maximum float64
	Closed  bool

	parent   *Object // non-owning back-reference
	children []*Object
}

func newObject(kind Kind) *Object {
	return &Object{
		kind:           kind,
		transform:      math.Identity(),
		worldTransform: math.Identity(),
		material:       material.NewMaterial(),
		Minimum:        stdmath.Inf(-1),
		Maximum:        stdmath.Inf(1),
	}
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Object {
	return newObject(KindSphere)
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Object {
	s := NewSphere()
	s.material = material.Glass()
	return s
}

// NewPlane creates the xz-plane at y=0
func NewPlane() *Object {
	return newObject(KindPlane)
}

// NewCube creates the unit cube spanning [-1,1] on every axis
func NewCube() *Object {
	return newObject(KindCube)
}

// NewCylinder creates an unbounded open unit-radius cylinder along y
func NewCylinder() *Object {
	return newObject(KindCylinder)
}

// NewCone creates an unbounded open double-napped cone along y
func NewCone() *Object {
	return newObject(KindCone)
}

// NewGroup creates an empty group
func NewGroup() *Object {
	return newObject(KindGroup)
}

// Kind returns the geometry variant of this object
func (o *Object) Kind() Kind {
	return o.kind
}

// Material returns the object's material
func (o *Object) Material() material.Material {
	return o.material
}

// SetMaterial replaces the object's material
func (o *Object) SetMaterial(m material.Material) {
	o.material = m
}

// Transform returns the object's local transform
func (o *Object) Transform() math.Matrix {
	return o.transform
}

// WorldTransform returns the cached composition of every ancestor's local
// transform with this object's own.
func (o *Object) WorldTransform() math.Matrix {
	return o.worldTransform
}

// Parent returns the owning group, or nil for a root object
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns a group's children. Callers must not mutate the slice.
func (o *Object) Children() []*Object {
	return o.children
}

// SetTransform replaces the local transform and repropagates cached world
// transforms through every descendant.
func (o *Object) SetTransform(m math.Matrix) {
	parentWorld := math.Identity()
	if o.parent != nil {
		parentWorld = o.parent.worldTransform
	}
	o.updateTransforms(m, parentWorld.Mul4(m))
}

// updateTransforms installs the local/world transform pair and pushes the
// new world transform down the subtree. Every transform mutation funnels
// through here; skipping the recursion would leave descendants' caches
// stale against the ancestor chain.
func (o *Object) updateTransforms(local, world math.Matrix) {
	o.transform = local
	o.worldTransform = world
	for _, child := range o.children {
		child.updateTransforms(child.transform, world.Mul4(child.transform))
	}
}

// AddChild takes ownership of child, re-rooting it (and, for groups, its
// whole subtree) under this group's transform chain.
func (o *Object) AddChild(child *Object) {
	if o.kind != KindGroup {
		panic("geometry: AddChild called on a non-group object")
	}
	child.parent = o
	child.updateTransforms(child.transform, o.worldTransform.Mul4(child.transform))
	o.children = append(o.children, child)
}

// WorldToObject converts a world-space point into this object's local space
// through the cached world transform.
func (o *Object) WorldToObject(worldPoint math.Vec3) math.Vec3 {
	return math.TransformPoint(math.Inverse(o.worldTransform), worldPoint)
}

// NormalToWorld converts a local-space normal into world space via the
// inverse-transpose of the world transform, renormalized.
func (o *Object) NormalToWorld(objectNormal math.Vec3) math.Vec3 {
	inverse := math.Inverse(o.worldTransform)
	return math.TransformVector(inverse.Transpose(), objectNormal).Normalize()
}

// Intersect transforms the ray into local space and returns the sorted
// parametric distances where it meets the geometry.
func (o *Object) Intersect(ray math.Ray) []float64 {
	localRay := ray.Transform(math.Inverse(o.transform))
	return o.localIntersect(localRay)
}

// IntersectWithObject returns object-tagged intersections. Groups bounds-test
// the local ray first, then recurse into children so the returned
// intersections always reference the leaf object that was hit.
func (o *Object) IntersectWithObject(ray math.Ray) []Intersection {
	if o.kind == KindGroup {
		localRay := ray.Transform(math.Inverse(o.transform))
		if !o.Bounds().Intersects(localRay) {
			return nil
		}
		var xs []Intersection
		for _, child := range o.children {
			xs = append(xs, child.IntersectWithObject(localRay)...)
		}
		SortIntersections(xs)
		return xs
	}

	ts := o.Intersect(ray)
	xs := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: o})
	}
	return xs
}

// NormalAt computes the world-space surface normal at a world-space point
func (o *Object) NormalAt(worldPoint math.Vec3) math.Vec3 {
	localPoint := o.WorldToObject(worldPoint)
	localNormal := o.localNormalAt(localPoint)
	return o.NormalToWorld(localNormal)
}

func (o *Object) localIntersect(ray math.Ray) []float64 {
	switch o.kind {
	case KindSphere:
		return sphereIntersect(ray)
	case KindPlane:
		return planeIntersect(ray)
	case KindCube:
		return cubeIntersect(ray)
	case KindCylinder:
		return cylinderIntersect(o, ray)
	case KindCone:
		return coneIntersect(o, ray)
	default:
		return groupIntersect(o, ray)
	}
}

func (o *Object) localNormalAt(point math.Vec3) math.Vec3 {
	switch o.kind {
	case KindSphere:
		return sphereNormalAt(point)
	case KindPlane:
		return planeNormalAt()
	case KindCube:
		return cubeNormalAt(point)
	case KindCylinder:
		return cylinderNormalAt(o, point)
	case KindCone:
		return coneNormalAt(o, point)
	default:
		// Shading always resolves to the leaf object from the intersection,
		// never a group.
		panic("geometry: groups have no local normal")
	}
}

// Bounds returns the object's local-space bounding box
func (o *Object) Bounds() Bounds {
	switch o.kind {
	case KindSphere, KindCube:
		return NewBounds(math.NewVec3(-1, -1, -1), math.NewVec3(1, 1, 1))
	case KindPlane:
		return NewBounds(
			math.NewVec3(stdmath.Inf(-1), 0, stdmath.Inf(-1)),
			math.NewVec3(stdmath.Inf(1), 0, stdmath.Inf(1)),
		)
	case KindCylinder:
		return NewBounds(
			math.NewVec3(-1, o.Minimum, -1),
			math.NewVec3(1, o.Maximum, 1),
		)
	case KindCone:
		limit := stdmath.Max(stdmath.Abs(o.Minimum), stdmath.Abs(o.Maximum))
		return NewBounds(
			math.NewVec3(-limit, o.Minimum, -limit),
			math.NewVec3(limit, o.Maximum, limit),
		)
	default:
		return groupBounds(o)
	}
}
