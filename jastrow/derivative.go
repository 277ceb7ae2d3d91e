// SPDX-License-Identifier: MIT

package jastrow

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
)

// Gradient returns ∇U with respect to particle e's position, one vector per
// walker, evaluated with e at pos[w] and every other particle at its bound
// position. One-body terms weight basis gradients by ACoeff[s(e)]; two-body
// terms weight by BCoeff[l, s(e)+s(j)] over all j ≠ e. Drift-diffusion
// samplers call this with trial positions, so pos need not match the bound
// snapshot.
func (f *Factor) Gradient(e int, pos []r3.Vec) ([]r3.Vec, error) {
	if err := f.checkMove(e, pos, nil); err != nil {
		return nil, err
	}
	if err := f.validateCoeffs(); err != nil {
		return nil, err
	}
	st := f.state
	sc := &st.scratch
	w := st.walkers
	n := f.nUp + f.nDown
	se := f.spin(e)

	grad := make([]r3.Vec, w)
	if st.na > 0 {
		acoeff := f.ACoeff[se]
		sc.sepIonNew = st.ens.IonSeparations(sc.sepIonNew, pos, f.ions)
		sc.rIonNew = basis.Norms(sc.rIonNew, sc.sepIonNew)
		for k, fn := range f.aBasis {
			g := fn.Gradient(sc.gradIon, sc.sepIonNew, sc.rIonNew)
			for wi := 0; wi < w; wi++ {
				for ion := 0; ion < st.nIon; ion++ {
					grad[wi] = r3.Add(grad[wi], r3.Scale(acoeff.At(ion, k), g[wi*st.nIon+ion]))
				}
			}
		}
	}
	if n > 1 {
		sc.sepNew = st.ens.SeparationsFrom(sc.sepNew, e, pos)
		sc.rNew = basis.Norms(sc.rNew, sc.sepNew)
		for l, fn := range f.bBasis {
			g := fn.Gradient(sc.grad, sc.sepNew, sc.rNew)
			for wi := 0; wi < w; wi++ {
				for jj := 0; jj < n-1; jj++ {
					j := jj
					if jj >= e {
						j = jj + 1
					}
					weight := f.BCoeff.At(l, se+f.spin(j))
					grad[wi] = r3.Add(grad[wi], r3.Scale(weight, g[wi*(n-1)+jj]))
				}
			}
		}
	}

	return grad, nil
}

// GradientLaplacian returns ∇U and the Laplacian of the full factor,
// Δ(e^U)/e^U = ΔU + |∇U|², per walker. Samplers dividing out the
// wavefunction rely on receiving the full-factor form, not ΔU alone.
func (f *Factor) GradientLaplacian(e int, pos []r3.Vec) ([]r3.Vec, []float64, error) {
	if err := f.checkMove(e, pos, nil); err != nil {
		return nil, nil, err
	}
	if err := f.validateCoeffs(); err != nil {
		return nil, nil, err
	}
	st := f.state
	sc := &st.scratch
	w := st.walkers
	n := f.nUp + f.nDown
	se := f.spin(e)

	grad := make([]r3.Vec, w)
	lap := make([]float64, w)
	if st.na > 0 {
		acoeff := f.ACoeff[se]
		sc.sepIonNew = st.ens.IonSeparations(sc.sepIonNew, pos, f.ions)
		sc.rIonNew = basis.Norms(sc.rIonNew, sc.sepIonNew)
		for k, fn := range f.aBasis {
			g, dl := fn.GradientLaplacian(sc.gradIon, sc.lapIon, sc.sepIonNew, sc.rIonNew)
			for wi := 0; wi < w; wi++ {
				for ion := 0; ion < st.nIon; ion++ {
					weight := acoeff.At(ion, k)
					grad[wi] = r3.Add(grad[wi], r3.Scale(weight, g[wi*st.nIon+ion]))
					lap[wi] += weight * dl[wi*st.nIon+ion]
				}
			}
		}
	}
	if n > 1 {
		sc.sepNew = st.ens.SeparationsFrom(sc.sepNew, e, pos)
		sc.rNew = basis.Norms(sc.rNew, sc.sepNew)
		for l, fn := range f.bBasis {
			g, dl := fn.GradientLaplacian(sc.grad, sc.lap, sc.sepNew, sc.rNew)
			for wi := 0; wi < w; wi++ {
				for jj := 0; jj < n-1; jj++ {
					j := jj
					if jj >= e {
						j = jj + 1
					}
					weight := f.BCoeff.At(l, se+f.spin(j))
					grad[wi] = r3.Add(grad[wi], r3.Scale(weight, g[wi*(n-1)+jj]))
					lap[wi] += weight * dl[wi*(n-1)+jj]
				}
			}
		}
	}

	for wi := 0; wi < w; wi++ {
		lap[wi] += r3.Norm2(grad[wi])
	}

	return grad, lap, nil
}

// Laplacian returns only the full-factor Laplacian ΔU + |∇U|² per walker.
// The gradient is computed anyway (its square enters the identity), so this
// is a convenience wrapper over GradientLaplacian.
func (f *Factor) Laplacian(e int, pos []r3.Vec) ([]float64, error) {
	_, lap, err := f.GradientLaplacian(e, pos)

	return lap, err
}
