package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transformation matrix. mgl64 provides the matrix algebra
// (multiplication, inverse, transpose, determinant); the helpers here build
// the transforms the renderer needs and apply matrices to Vec3 values with
// the appropriate homogeneous coordinate.
type Matrix = mgl64.Mat4

// Identity returns the identity matrix
func Identity() Matrix {
	return mgl64.Ident4()
}

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix {
	return mgl64.Translate3D(x, y, z)
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix {
	return mgl64.Scale3D(x, y, z)
}

// RotationX returns a rotation matrix about the x axis
func RotationX(radians float64) Matrix {
	return mgl64.HomogRotate3DX(radians)
}

// RotationY returns a rotation matrix about the y axis
func RotationY(radians float64) Matrix {
	return mgl64.HomogRotate3DY(radians)
}

// RotationZ returns a rotation matrix about the z axis
func RotationZ(radians float64) Matrix {
	return mgl64.HomogRotate3DZ(radians)
}

// Shearing returns a shear matrix where each coordinate moves in proportion
// to the other two: xy is x moving in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	// mgl64 matrices are column-major
	return Matrix{
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	}
}

// Inverse returns the inverse of m. A non-invertible transform is a scene
// authoring error, so it panics rather than propagating a zero matrix.
func Inverse(m Matrix) Matrix {
	if math.Abs(m.Det()) < 1e-12 {
		panic("math: matrix is not invertible")
	}
	return m.Inv()
}

// TransformPoint applies m to a point (w = 1)
func TransformPoint(m Matrix, p Vec3) Vec3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// TransformVector applies m to a direction vector (w = 0, no translation)
func TransformVector(m Matrix, d Vec3) Vec3 {
	v := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// ViewTransform builds the world-to-camera transform looking from `from`
// toward `to` with the given up hint. The left vector is deliberately not
// renormalized, matching the orientation convention the cameras expect when
// up is not perpendicular to the view direction.
func ViewTransform(from, to, up Vec3) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		left.X, trueUp.X, -forward.X, 0,
		left.Y, trueUp.Y, -forward.Y, 0,
		left.Z, trueUp.Z, -forward.Z, 0,
		0, 0, 0, 1,
	}
	return orientation.Mul4(Translation(-from.X, -from.Y, -from.Z))
}

// MatricesEqual compares two matrices element-wise within Epsilon
func MatricesEqual(a, b Matrix) bool {
	return a.ApproxEqualThreshold(b, Epsilon)
}
