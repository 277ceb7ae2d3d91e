package basis

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Pade is the saturating Padé basis function
//
//	b(r) = u/(1+u),  u = (α·r/2)²
//
// rising from 0 at the origin to 1 at large separation. Its radial
// derivatives are division-free:
//
//	∇b = (α²/2)/(1+u)² · sep
//	Δb = (3α²/2)/(1+u)² − (α⁴r²/2)/(1+u)³
type Pade struct {
	// Alpha is the inverse-length scale α.
	Alpha float64
}

// Value fills dst[i] = u/(1+u) at u = (α·r[i]/2)².
func (p Pade) Value(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		a := p.Alpha * r[i] / 2
		u := a * a
		dst[i] = u / (1 + u)
	}

	return dst
}

// Gradient fills dst[i] = (α²/2)/(1+u)² · sep[i].
func (p Pade) Gradient(dst []r3.Vec, sep []r3.Vec, r []float64) []r3.Vec {
	dst = vecDst(dst, len(sep))
	for i, v := range sep {
		a := p.Alpha * r[i] / 2
		den := 1 + a*a
		dst[i] = r3.Scale(p.Alpha*p.Alpha/2/(den*den), v)
	}

	return dst
}

// Laplacian fills dst[i] per the division-free radial form above.
func (p Pade) Laplacian(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	a2 := p.Alpha * p.Alpha
	for i := range sep {
		a := p.Alpha * r[i] / 2
		u := a * a
		den := 1 + u
		den2 := den * den
		dst[i] = 3*a2/2/den2 - 2*a2*u/(den2*den)
	}

	return dst
}

// GradientLaplacian fills both derivative batches in one pass.
func (p Pade) GradientLaplacian(grad []r3.Vec, lap []float64, sep []r3.Vec, r []float64) ([]r3.Vec, []float64) {
	grad = vecDst(grad, len(sep))
	lap = scalarDst(lap, len(sep))
	a2 := p.Alpha * p.Alpha
	for i, v := range sep {
		a := p.Alpha * r[i] / 2
		u := a * a
		den := 1 + u
		den2 := den * den
		grad[i] = r3.Scale(a2/2/den2, v)
		lap[i] = 3*a2/2/den2 - 2*a2*u/(den2*den)
	}

	return grad, lap
}
