package basis

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Gaussian is the basis function
//
//	b(r) = exp(−α·r²)
//
// with
//
//	∇b = −2α·sep·b
//	Δb = (4α²r² − 6α)·b
//
// Alpha must be positive for a normalizable correlation term; the function
// itself is well defined for any finite Alpha.
type Gaussian struct {
	// Alpha is the exponent α.
	Alpha float64
}

// Value fills dst[i] = exp(−α·r[i]²).
func (g Gaussian) Value(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		rr := r[i] * r[i]
		dst[i] = math.Exp(-g.Alpha * rr)
	}

	return dst
}

// Gradient fills dst[i] = −2α·sep[i]·b(r[i]).
func (g Gaussian) Gradient(dst []r3.Vec, sep []r3.Vec, r []float64) []r3.Vec {
	dst = vecDst(dst, len(sep))
	for i, v := range sep {
		rr := r[i] * r[i]
		b := math.Exp(-g.Alpha * rr)
		dst[i] = r3.Scale(-2*g.Alpha*b, v)
	}

	return dst
}

// Laplacian fills dst[i] = (4α²r[i]² − 6α)·b(r[i]).
func (g Gaussian) Laplacian(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		rr := r[i] * r[i]
		dst[i] = (4*g.Alpha*g.Alpha*rr - 6*g.Alpha) * math.Exp(-g.Alpha*rr)
	}

	return dst
}

// GradientLaplacian fills both derivative batches sharing one exponential
// per element.
func (g Gaussian) GradientLaplacian(grad []r3.Vec, lap []float64, sep []r3.Vec, r []float64) ([]r3.Vec, []float64) {
	grad = vecDst(grad, len(sep))
	lap = scalarDst(lap, len(sep))
	for i, v := range sep {
		rr := r[i] * r[i]
		b := math.Exp(-g.Alpha * rr)
		grad[i] = r3.Scale(-2*g.Alpha*b, v)
		lap[i] = (4*g.Alpha*g.Alpha*rr - 6*g.Alpha) * b
	}

	return grad, lap
}
