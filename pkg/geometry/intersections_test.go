package geometry

import (
	stdmath "math"
	"testing"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

func TestHit(t *testing.T) {
	sphere := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectedT float64
		expectHit bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest nonnegative", []float64{-3, 2, 5, 7}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := make([]Intersection, 0, len(tt.ts))
			for _, x := range tt.ts {
				xs = append(xs, Intersection{T: x, Object: sphere})
			}
			SortIntersections(xs)

			hit, ok := Hit(xs)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && !math.Equal(hit.T, tt.expectedT) {
				t.Errorf("Expected hit at t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestPrepareComputations(t *testing.T) {
	ray := math.NewRay(math.NewVec3(0, 0, -5), math.NewVec3(0, 0, 1))
	sphere := NewSphere()
	i := Intersection{T: 4, Object: sphere}

	comps := i.PrepareComputations(ray, nil)

	if !math.Equal(comps.T, 4) {
		t.Errorf("Expected t=4, got %f", comps.T)
	}
	if comps.Object != sphere {
		t.Errorf("Expected the intersected sphere")
	}
	if !comps.Point.Equals(math.NewVec3(0, 0, -1)) {
		t.Errorf("Expected point (0, 0, -1), got %v", comps.Point)
	}
	if !comps.EyeV.Equals(math.NewVec3(0, 0, -1)) {
		t.Errorf("Expected eye vector (0, 0, -1), got %v", comps.EyeV)
	}
	if !comps.NormalV.Equals(math.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Errorf("Expected intersection on the outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	ray := math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 0, 1))
	sphere := NewSphere()
	i := Intersection{T: 1, Object: sphere}

	comps := i.PrepareComputations(ray, nil)

	if !comps.Inside {
		t.Errorf("Expected intersection on the inside")
	}
	if !comps.Point.Equals(math.NewVec3(0, 0, 1)) {
		t.Errorf("Expected point (0, 0, 1), got %v", comps.Point)
	}
	// Normal is inverted because the hit is inside the sphere
	if !comps.NormalV.Equals(math.NewVec3(0, 0, -1)) {
		t.Errorf("Expected inverted normal (0, 0, -1), got %v", comps.NormalV)
	}
}

func TestPrepareComputations_OverPoint(t *testing.T) {
	ray := math.NewRay(math.NewVec3(0, 0, -5), math.NewVec3(0, 0, 1))
	sphere := NewSphere()
	sphere.SetTransform(math.Translation(0, 0, 1))
	i := Intersection{T: 5, Object: sphere}

	comps := i.PrepareComputations(ray, nil)

	if comps.OverPoint.Z >= -math.Epsilon/2 {
		t.Errorf("Expected over point nudged toward the eye, got z=%g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Expected surface point below the over point")
	}
}

func TestPrepareComputations_UnderPoint(t *testing.T) {
	ray := math.NewRay(math.NewVec3(0, 0, -5), math.NewVec3(0, 0, 1))
	sphere := NewGlassSphere()
	sphere.SetTransform(math.Translation(0, 0, 1))
	i := Intersection{T: 5, Object: sphere}

	comps := i.PrepareComputations(ray, []Intersection{i})

	if comps.UnderPoint.Z <= math.Epsilon/2 {
		t.Errorf("Expected under point nudged past the surface, got z=%g", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Expected surface point above the under point")
	}
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	plane := NewPlane()
	ray := math.NewRay(math.NewVec3(0, 1, -1), math.NewVec3(0, -stdmath.Sqrt2/2, stdmath.Sqrt2/2))
	i := Intersection{T: stdmath.Sqrt2, Object: plane}

	comps := i.PrepareComputations(ray, nil)

	if !comps.ReflectV.Equals(math.NewVec3(0, stdmath.Sqrt2/2, stdmath.Sqrt2/2)) {
		t.Errorf("Expected reflection vector (0, sqrt2/2, sqrt2/2), got %v", comps.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	// Three overlapping glass spheres with distinct refractive indices
	a := NewGlassSphere()
	a.SetTransform(math.Scaling(2, 2, 2))
	ma := a.Material()
	ma.RefractiveIndex = 1.5
	a.SetMaterial(ma)

	b := NewGlassSphere()
	b.SetTransform(math.Translation(0, 0, -0.25))
	mb := b.Material()
	mb.RefractiveIndex = 2.0
	b.SetMaterial(mb)

	c := NewGlassSphere()
	c.SetTransform(math.Translation(0, 0, 0.25))
	mc := c.Material()
	mc.RefractiveIndex = 2.5
	c.SetMaterial(mc)

	ray := math.NewRay(math.NewVec3(0, 0, -4), math.NewVec3(0, 0, 1))
	xs := []Intersection{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for index, exp := range expected {
		comps := xs[index].PrepareComputations(ray, xs)
		if !math.Equal(comps.N1, exp.n1) || !math.Equal(comps.N2, exp.n2) {
			t.Errorf("Intersection %d: expected n1=%f n2=%f, got n1=%f n2=%f",
				index, exp.n1, exp.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	tests := []struct {
		name     string
		ray      math.Ray
		ts       []float64
		hitIndex int
		expected float64
	}{
		{
			name:     "total internal reflection",
			ray:      math.NewRay(math.NewVec3(0, 0, stdmath.Sqrt2/2), math.NewVec3(0, 1, 0)),
			ts:       []float64{-stdmath.Sqrt2 / 2, stdmath.Sqrt2 / 2},
			hitIndex: 1,
			expected: 1.0,
		},
		{
			name:     "perpendicular viewing angle",
			ray:      math.NewRay(math.NewVec3(0, 0, 0), math.NewVec3(0, 1, 0)),
			ts:       []float64{-1, 1},
			hitIndex: 1,
			expected: 0.04,
		},
		{
			name:     "small angle with n2 greater than n1",
			ray:      math.NewRay(math.NewVec3(0, 0.99, -2), math.NewVec3(0, 0, 1)),
			ts:       []float64{1.8589},
			hitIndex: 0,
			expected: 0.48873,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewGlassSphere()
			xs := make([]Intersection, 0, len(tt.ts))
			for _, x := range tt.ts {
				xs = append(xs, Intersection{T: x, Object: sphere})
			}

			comps := xs[tt.hitIndex].PrepareComputations(tt.ray, xs)
			if got := comps.Schlick(); !math.Equal(got, tt.expected) {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
