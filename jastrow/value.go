// SPDX-License-Identifier: MIT

package jastrow

import (
	"gonum.org/v1/gonum/floats"
)

// Value returns (sign, U) for the bound configuration by contracting the
// cached aggregates with the CURRENT coefficient matrices. Coefficients
// mutated since the last Recompute are therefore reflected immediately, with
// no O(N²) work. The sign is always +1.
func (f *Factor) Value() (sign float64, logU []float64, err error) {
	if f.state == nil {
		return 0, nil, ErrNotBound
	}
	if err = f.validateCoeffs(); err != nil {
		return 0, nil, err
	}

	return 1.0, f.logValues(), nil
}

// logValues contracts aValues/bValues with the coefficient matrices.
// Callers have already validated shapes.
func (f *Factor) logValues() []float64 {
	st := f.state
	logU := make([]float64, st.walkers)

	if st.na > 0 {
		for wi := range logU {
			sum := 0.0
			for s := 0; s < 2; s++ {
				acoeff := f.ACoeff[s]
				for ion := 0; ion < st.nIon; ion++ {
					for k := 0; k < st.na; k++ {
						sum += acoeff.At(ion, k) * st.aValues[st.aIdx(wi, ion, k, s)]
					}
				}
			}
			logU[wi] = sum
		}
	}

	// bValues rows share BCoeff's row-major layout, so a contiguous BCoeff
	// contracts with one dot product per walker.
	stride := st.nb * 3
	raw := f.BCoeff.RawMatrix()
	if raw.Stride == raw.Cols {
		flat := raw.Data[:stride]
		for wi := range logU {
			logU[wi] += floats.Dot(st.bValues[wi*stride:(wi+1)*stride], flat)
		}

		return logU
	}
	for wi := range logU {
		for l := 0; l < st.nb; l++ {
			for c := 0; c < 3; c++ {
				logU[wi] += f.BCoeff.At(l, c) * st.bValues[st.bIdx(wi, l, c)]
			}
		}
	}

	return logU
}

// ParamGradient returns ∂U/∂coefficient for every coefficient tensor,
// evaluated at the bound configuration. U is linear in the coefficients, so
// the derivatives are exactly the cached aggregates:
//
//	"acoeff" → aValues with layout [w][I][k][s]
//	"bcoeff" → bValues with layout [w][l][c]
//
// The returned slices are fresh copies; mutating them never touches engine
// state.
func (f *Factor) ParamGradient() (map[string][]float64, error) {
	if f.state == nil {
		return nil, ErrNotBound
	}

	grads := make(map[string][]float64, 2)
	grads["bcoeff"] = append([]float64(nil), f.state.bValues...)
	if f.state.na > 0 {
		grads["acoeff"] = append([]float64(nil), f.state.aValues...)
	}

	return grads, nil
}
