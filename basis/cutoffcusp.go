package basis

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// CutoffCusp is the short-range cusp basis function
//
//	b(r) = rc·( −p/(1+γ·p) + 1/(3+γ) ),  p(y) = y − y² + y³/3,  y = r/rc
//
// for y ≤ 1 and exactly 0 beyond the cutoff rc. Its radial slope at the
// origin is db/dr = −1 independent of γ, which is what lets a linear
// coefficient on this function pin an exact derivative discontinuity at
// particle coincidence. Since p(1) = 1/3, the value and both derivatives
// vanish continuously at the cutoff.
//
// Radial derivatives:
//
//	db/dr   = −(1−y)²/(1+γp)²
//	d²b/dr² = [ 2γ(1−y)⁴/(1+γp)³ + 2(1−y)/(1+γp)² ] / rc
//
// The spherical Laplacian term (2/r)·db/dr diverges as r → 0, so Laplacian
// and GradientLaplacian require every r[i] > 0. Pair enumeration never
// produces a self-pair, and coincident distinct particles are a measure-zero
// configuration a sampler cannot reach.
type CutoffCusp struct {
	// Gamma is the curvature parameter γ (≥ 0).
	Gamma float64
	// RCut is the cutoff radius rc (> 0).
	RCut float64
}

// Value fills dst[i] = b(r[i]), exactly 0 beyond the cutoff.
func (c CutoffCusp) Value(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		y := r[i] / c.RCut
		if y > 1 {
			dst[i] = 0
			continue
		}
		p := y - y*y + y*y*y/3
		dst[i] = c.RCut * (-p/(1+c.Gamma*p) + 1/(3+c.Gamma))
	}

	return dst
}

// Gradient fills dst[i] = ∇b at sep[i], exactly zero beyond the cutoff.
// Every r[i] inside the cutoff must be positive.
func (c CutoffCusp) Gradient(dst []r3.Vec, sep []r3.Vec, r []float64) []r3.Vec {
	dst = vecDst(dst, len(sep))
	for i, v := range sep {
		y := r[i] / c.RCut
		if y > 1 {
			dst[i] = r3.Vec{}
			continue
		}
		dst[i] = r3.Scale(c.dbdr(y)/r[i], v)
	}

	return dst
}

// Laplacian fills dst[i] = Δb at sep[i], exactly zero beyond the cutoff.
// Every r[i] inside the cutoff must be positive.
func (c CutoffCusp) Laplacian(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		y := r[i] / c.RCut
		if y > 1 {
			dst[i] = 0
			continue
		}
		dst[i] = c.d2bdr2(y) + 2*c.dbdr(y)/r[i]
	}

	return dst
}

// GradientLaplacian fills both derivative batches in one pass.
// Every r[i] inside the cutoff must be positive.
func (c CutoffCusp) GradientLaplacian(grad []r3.Vec, lap []float64, sep []r3.Vec, r []float64) ([]r3.Vec, []float64) {
	grad = vecDst(grad, len(sep))
	lap = scalarDst(lap, len(sep))
	for i, v := range sep {
		y := r[i] / c.RCut
		if y > 1 {
			grad[i] = r3.Vec{}
			lap[i] = 0
			continue
		}
		d := c.dbdr(y)
		grad[i] = r3.Scale(d/r[i], v)
		lap[i] = c.d2bdr2(y) + 2*d/r[i]
	}

	return grad, lap
}

// dbdr evaluates db/dr at reduced radius y ≤ 1.
func (c CutoffCusp) dbdr(y float64) float64 {
	p := y - y*y + y*y*y/3
	den := 1 + c.Gamma*p
	omy := 1 - y

	return -omy * omy / (den * den)
}

// d2bdr2 evaluates d²b/dr² at reduced radius y ≤ 1.
func (c CutoffCusp) d2bdr2(y float64) float64 {
	p := y - y*y + y*y*y/3
	den := 1 + c.Gamma*p
	omy := 1 - y
	omy2 := omy * omy

	return (2*c.Gamma*omy2*omy2/(den*den*den) + 2*omy/(den*den)) / c.RCut
}
