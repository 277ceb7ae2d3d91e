// Package basis defines the Func capability interface shared by every
// concrete basis-function variant, plus batched helpers.
package basis

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Func is one member of an ordered basis: a pure scalar function of a 3D
// separation vector, evaluated in batch.
//
// Every method takes the separations sep and their precomputed norms r
// (len(r) == len(sep)) and fills dst element-for-element. A nil dst is
// allocated; a dst of the wrong length panics (programmer error).
//
// Gradient is taken with respect to the separation vector, which by the
// package convention sep = r_particle − r_other equals the gradient with
// respect to the particle's own position. Laplacian is the trace of the
// second derivative under the same convention.
type Func interface {
	// Value fills dst[i] = b(r[i]).
	Value(dst []float64, sep []r3.Vec, r []float64) []float64

	// Gradient fills dst[i] = ∇b evaluated at sep[i].
	Gradient(dst []r3.Vec, sep []r3.Vec, r []float64) []r3.Vec

	// Laplacian fills dst[i] = Δb evaluated at sep[i].
	Laplacian(dst []float64, sep []r3.Vec, r []float64) []float64

	// GradientLaplacian fills both grad and lap in a single pass, sharing
	// the common subexpressions of the two derivatives.
	GradientLaplacian(grad []r3.Vec, lap []float64, sep []r3.Vec, r []float64) ([]r3.Vec, []float64)
}

// Norms fills dst[i] = |sep[i]|, the Euclidean norms of a batch of
// separation vectors. A nil dst is allocated.
func Norms(dst []float64, sep []r3.Vec) []float64 {
	dst = scalarDst(dst, len(sep))
	for i, v := range sep {
		dst[i] = r3.Norm(v)
	}

	return dst
}

// scalarDst returns dst resized-or-checked to length n.
func scalarDst(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic("basis: scalar dst length mismatch")
	}

	return dst
}

// vecDst returns dst resized-or-checked to length n.
func vecDst(dst []r3.Vec, n int) []r3.Vec {
	if dst == nil {
		return make([]r3.Vec, n)
	}
	if len(dst) != n {
		panic("basis: vector dst length mismatch")
	}

	return dst
}
