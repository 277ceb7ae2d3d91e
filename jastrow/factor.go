// SPDX-License-Identifier: MIT

package jastrow

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
)

// Spin channels for single particles and the derived pair channels.
// A pair of particles i, j falls in channel Spin(i)+Spin(j).
const (
	SpinUp   = 0
	SpinDown = 1

	ChanUpUp     = 0
	ChanUpDown   = 1
	ChanDownDown = 2
)

// Factor is a two-spin Jastrow correlation factor exp(U) over an ensemble of
// walkers.
//
// ACoeff and BCoeff are deliberately exported and externally mutable: an
// optimizer owns them between evaluations. Every evaluation reads them in
// place (never caches a copy) and re-validates their shapes. All other
// configuration is fixed at construction.
//
// A Factor is single-writer: all operations, including read-only ones, use
// engine-owned scratch buffers, so concurrent calls on one instance must be
// serialized by the caller.
type Factor struct {
	// ACoeff holds one-body coefficients per spin channel; each matrix is
	// nion × len(aBasis). Both entries are nil when the one-body basis is
	// empty.
	ACoeff [2]*mat.Dense
	// BCoeff holds two-body coefficients, len(bBasis) × 3 pair channels.
	BCoeff *mat.Dense

	ions    []r3.Vec
	nUp     int
	nDown   int
	aBasis  []basis.Func
	bBasis  []basis.Func
	workers int

	// state is the bound snapshot, nil before the first Recompute.
	state *State
}

// New builds a factor for the given ion geometry, spin partition and ordered
// one-/two-body bases. Coefficients default to zero matrices (U ≡ 0) unless
// seeded via WithACoeff/WithBCoeff.
func New(ions []r3.Vec, nUp, nDown int, aBasis, bBasis []basis.Func, opts ...Option) (*Factor, error) {
	f := &Factor{
		ions:    append([]r3.Vec(nil), ions...),
		nUp:     nUp,
		nDown:   nDown,
		aBasis:  append([]basis.Func(nil), aBasis...),
		bBasis:  append([]basis.Func(nil), bBasis...),
		workers: 1,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.validateConfig(); err != nil {
		return nil, err
	}
	if f.ACoeff == [2]*mat.Dense{} && len(f.aBasis) > 0 {
		f.ACoeff = [2]*mat.Dense{
			mat.NewDense(len(f.ions), len(f.aBasis), nil),
			mat.NewDense(len(f.ions), len(f.aBasis), nil),
		}
	}
	if f.BCoeff == nil {
		f.BCoeff = mat.NewDense(len(f.bBasis), 3, nil)
	}
	if err := f.validateCoeffs(); err != nil {
		return nil, err
	}

	return f, nil
}

// Default builds the qwalk-style default factor: four PolyPade one-body
// functions (β expanded from 0.2), a CutoffCusp plus three PolyPade two-body
// functions (β expanded from 0.5), all with cutoff 7.5 bohr, and the
// two-body cusp row pinned to (−0.25, −0.50, −0.25). Additional options are
// applied after the built-in coefficient setup.
func Default(ions []r3.Vec, nUp, nDown int, opts ...Option) (*Factor, error) {
	aBasis := make([]basis.Func, 0, 4)
	for _, beta := range expandBeta(0.2, 4) {
		aBasis = append(aBasis, basis.PolyPade{Beta: beta, RCut: 7.5})
	}
	bBasis := make([]basis.Func, 0, 4)
	bBasis = append(bBasis, basis.CutoffCusp{Gamma: 24, RCut: 7.5})
	for _, beta := range expandBeta(0.5, 3) {
		bBasis = append(bBasis, basis.PolyPade{Beta: beta, RCut: 7.5})
	}

	bCoeff := mat.NewDense(len(bBasis), 3, nil)
	bCoeff.SetRow(0, []float64{-0.25, -0.50, -0.25})

	return New(ions, nUp, nDown, aBasis, bBasis, append([]Option{WithBCoeff(bCoeff)}, opts...)...)
}

// expandBeta produces the qwalk PolyPade curvature ladder: β₀, then
// exp(ln(β₀+1.00001) + 1.6·i) − 1 for i ≥ 1.
func expandBeta(beta0 float64, n int) []float64 {
	beta := make([]float64, n)
	beta[0] = beta0
	beta1 := math.Log(beta0 + 1.00001)
	for i := 1; i < n; i++ {
		beta[i] = math.Exp(beta1+1.6*float64(i)) - 1
	}

	return beta
}

// validateConfig checks everything except coefficient shapes.
func (f *Factor) validateConfig() error {
	if f.nUp < 0 || f.nDown < 0 || f.nUp+f.nDown == 0 {
		return ErrSpinCount
	}
	if len(f.bBasis) == 0 {
		return ErrNoBasis
	}
	for _, fn := range f.bBasis {
		if fn == nil {
			return ErrNilBasis
		}
	}
	for _, fn := range f.aBasis {
		if fn == nil {
			return ErrNilBasis
		}
	}
	if len(f.aBasis) > 0 && len(f.ions) == 0 {
		return ErrNoIons
	}
	if f.workers < 1 {
		return ErrWorkers
	}

	return nil
}

// validateCoeffs re-checks the externally mutable coefficient matrices
// against the configured shapes. Called at construction and again by every
// operation that reads coefficients.
func (f *Factor) validateCoeffs() error {
	if len(f.aBasis) == 0 {
		if f.ACoeff[0] != nil || f.ACoeff[1] != nil {
			return ErrCoeffShape
		}
	} else {
		for _, a := range f.ACoeff {
			if a == nil {
				return ErrCoeffShape
			}
			if r, c := a.Dims(); r != len(f.ions) || c != len(f.aBasis) {
				return ErrCoeffShape
			}
		}
	}
	if f.BCoeff == nil {
		return ErrCoeffShape
	}
	if r, c := f.BCoeff.Dims(); r != len(f.bBasis) || c != 3 {
		return ErrCoeffShape
	}

	return nil
}

// NumUp returns the spin-up particle count.
func (f *Factor) NumUp() int { return f.nUp }

// NumDown returns the spin-down particle count.
func (f *Factor) NumDown() int { return f.nDown }

// Particles returns the total particle count.
func (f *Factor) Particles() int { return f.nUp + f.nDown }

// Ions returns a copy of the ion positions.
func (f *Factor) Ions() []r3.Vec { return append([]r3.Vec(nil), f.ions...) }

// spin returns the spin channel of particle e.
func (f *Factor) spin(e int) int {
	if e < f.nUp {
		return SpinUp
	}

	return SpinDown
}

// checkMove validates the shared (e, pos, mask) argument contract.
func (f *Factor) checkMove(e int, pos []r3.Vec, mask []bool) error {
	if f.state == nil {
		return ErrNotBound
	}
	if e < 0 || e >= f.nUp+f.nDown {
		return ErrParticleIndex
	}
	if len(pos) != f.state.ens.Walkers() {
		return ErrPosLength
	}
	if mask != nil && len(mask) != f.state.ens.Walkers() {
		return ErrMaskLength
	}

	return nil
}
