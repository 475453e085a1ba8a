package math

import "math"

// Epsilon is the tolerance used for float comparison and for nudging hit
// points off surfaces. Kept loose enough to absorb error accumulated through
// matrix inversion chains.
const Epsilon = 1e-5

// Equal reports whether two floats are equal within Epsilon
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
