package basis

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// PolyPade is the polynomial-Padé basis function
//
//	b(r) = (1−p)/(1+β·p),  p(z) = z²(6−8z+3z²),  z = r/rc
//
// for z ≤ 1 and exactly 0 beyond the cutoff rc. The quartic switch p rises
// from 0 to 1 with p'(0) = p'(1) = 0, so b, ∇b and Δb are all continuous at
// the cutoff.
//
// Radial derivatives in division-free form (z/r = 1/rc):
//
//	db/dp   = −(1+β)/(1+βp)²
//	d²b/dp² = 2β(1+β)/(1+βp)³
//	dp/dz   = 12z(1−z)²
//	d²p/dz² = 12(1−z)(1−3z)
//	∇b      = db/dp · 12(1−z)²/rc² · sep
//	Δb      = [d²b/dp²·(dp/dz)² + db/dp·(d²p/dz² + 24(1−z)²)] / rc²
type PolyPade struct {
	// Beta is the Padé curvature parameter β (> −1).
	Beta float64
	// RCut is the cutoff radius rc (> 0).
	RCut float64
}

// Value fills dst[i] = b(r[i]), exactly 0 beyond the cutoff.
func (p PolyPade) Value(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		z := r[i] / p.RCut
		if z > 1 {
			dst[i] = 0
			continue
		}
		pz := z * z * (6 - 8*z + 3*z*z)
		dst[i] = (1 - pz) / (1 + p.Beta*pz)
	}

	return dst
}

// Gradient fills dst[i] = ∇b at sep[i], exactly zero beyond the cutoff.
func (p PolyPade) Gradient(dst []r3.Vec, sep []r3.Vec, r []float64) []r3.Vec {
	dst = vecDst(dst, len(sep))
	for i, v := range sep {
		z := r[i] / p.RCut
		if z > 1 {
			dst[i] = r3.Vec{}
			continue
		}
		pz := z * z * (6 - 8*z + 3*z*z)
		den := 1 + p.Beta*pz
		dbdp := -(1 + p.Beta) / (den * den)
		omz := 1 - z
		dst[i] = r3.Scale(dbdp*12*omz*omz/(p.RCut*p.RCut), v)
	}

	return dst
}

// Laplacian fills dst[i] = Δb at sep[i], exactly zero beyond the cutoff.
func (p PolyPade) Laplacian(dst []float64, sep []r3.Vec, r []float64) []float64 {
	dst = scalarDst(dst, len(sep))
	for i := range sep {
		z := r[i] / p.RCut
		if z > 1 {
			dst[i] = 0
			continue
		}
		dst[i] = p.lap(z)
	}

	return dst
}

// GradientLaplacian fills both derivative batches in one pass.
func (p PolyPade) GradientLaplacian(grad []r3.Vec, lap []float64, sep []r3.Vec, r []float64) ([]r3.Vec, []float64) {
	grad = vecDst(grad, len(sep))
	lap = scalarDst(lap, len(sep))
	for i, v := range sep {
		z := r[i] / p.RCut
		if z > 1 {
			grad[i] = r3.Vec{}
			lap[i] = 0
			continue
		}
		pz := z * z * (6 - 8*z + 3*z*z)
		den := 1 + p.Beta*pz
		dbdp := -(1 + p.Beta) / (den * den)
		omz := 1 - z
		grad[i] = r3.Scale(dbdp*12*omz*omz/(p.RCut*p.RCut), v)
		lap[i] = p.lap(z)
	}

	return grad, lap
}

// lap evaluates Δb at reduced radius z ≤ 1.
func (p PolyPade) lap(z float64) float64 {
	pz := z * z * (6 - 8*z + 3*z*z)
	den := 1 + p.Beta*pz
	dbdp := -(1 + p.Beta) / (den * den)
	d2bdp2 := 2 * p.Beta * (1 + p.Beta) / (den * den * den)
	omz := 1 - z
	dpdz := 12 * z * omz * omz
	d2pdz2 := 12 * omz * (1 - 3*z)

	return (d2bdp2*dpdz*dpdz + dbdp*(d2pdz2+24*omz*omz)) / (p.RCut * p.RCut)
}
