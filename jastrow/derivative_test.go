// SPDX-License-Identifier: MIT

package jastrow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/qmc/jastrow"
)

// boundBatch copies the bound positions of particle e across all walkers.
func boundBatch(f *jastrow.Factor, walkers, e int) []r3.Vec {
	pos := make([]r3.Vec, walkers)
	for w := range pos {
		p := f.BoundPosition(w, e)
		pos[w] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}

	return pos
}

// shifted returns a copy of pos with off added to one axis of every walker.
func shifted(pos []r3.Vec, axis int, off float64) []r3.Vec {
	out := append([]r3.Vec(nil), pos...)
	for w := range out {
		switch axis {
		case 0:
			out[w].X += off
		case 1:
			out[w].Y += off
		case 2:
			out[w].Z += off
		}
	}

	return out
}

// fdStencil applies the order-n binomial central-difference formula with grid
// spacing h to the batched function f:
//
//	sum_i (-1)^i * C(n,i) * f((n-2i)*h) / (2h)^n
//
// evaluated per walker.
func fdStencil(n int, h float64, walkers int, f func(off float64) []float64) []float64 {
	out := make([]float64, walkers)
	sign := 1.0
	for i := 0; i <= n; i++ {
		coeff := sign * float64(combin.Binomial(n, i))
		vals := f(float64(n-2*i) * h)
		for w := range out {
			out[w] += coeff * vals[w]
		}
		sign = -sign
	}
	den := math.Pow(2*h, float64(n))
	for w := range out {
		out[w] /= den
	}

	return out
}

// closeEnough asserts agreement within tol scaled by max(1, |want|).
func closeEnough(t *testing.T, want, got, tol float64, msg string, args ...any) {
	t.Helper()
	scale := math.Abs(want)
	if scale < 1 {
		scale = 1
	}
	assert.InDelta(t, want, got, tol*scale, append([]any{msg}, args...)...)
}

// TestGradient_MatchesFiniteDifference checks the analytic gradient of the
// log factor at a displaced proposal against a first-order stencil of log
// acceptance ratios. The cached baseline cancels in the difference, so the
// stencil isolates the derivative at the proposal point.
func TestGradient_MatchesFiniteDifference(t *testing.T) {
	f := newTestFactor(t)
	ens := newTestEnsemble(t, 17)
	_, _, err := f.Recompute(ens)
	require.NoError(t, err)

	const h = 1e-4
	for e := 0; e < ens.Particles(); e++ {
		base := shifted(boundBatch(f, ens.Walkers(), e), 0, 0.15)
		grad, gerr := f.Gradient(e, base)
		require.NoError(t, gerr)

		for axis := 0; axis < 3; axis++ {
			want := fdStencil(1, h, ens.Walkers(), func(off float64) []float64 {
				ratio, rerr := f.Ratio(e, shifted(base, axis, off), nil)
				require.NoError(t, rerr)
				logs := make([]float64, len(ratio))
				for w := range ratio {
					logs[w] = math.Log(ratio[w])
				}
				return logs
			})
			for w := range want {
				got := [3]float64{grad[w].X, grad[w].Y, grad[w].Z}[axis]
				closeEnough(t, want[w], got, 1e-5, "particle %d axis %d walker %d", e, axis, w)
			}
		}
	}
}

// TestLaplacian_MatchesFiniteDifference checks the full-factor Laplacian,
// lap(e^U)/e^U evaluated per walker, against the axis-summed second-order
// ratio stencil centered on the cached positions.
func TestLaplacian_MatchesFiniteDifference(t *testing.T) {
	f := newTestFactor(t)
	ens := newTestEnsemble(t, 17)
	_, _, err := f.Recompute(ens)
	require.NoError(t, err)

	const h = 1e-4
	for e := 0; e < ens.Particles(); e++ {
		base := boundBatch(f, ens.Walkers(), e)
		lap, lerr := f.Laplacian(e, base)
		require.NoError(t, lerr)

		want := make([]float64, ens.Walkers())
		for axis := 0; axis < 3; axis++ {
			part := fdStencil(2, h, ens.Walkers(), func(off float64) []float64 {
				ratio, rerr := f.Ratio(e, shifted(base, axis, off), nil)
				require.NoError(t, rerr)
				return ratio
			})
			floats.Add(want, part)
		}
		for w := range want {
			closeEnough(t, want[w], lap[w], 1e-4, "particle %d walker %d", e, w)
		}
	}
}

// TestGradientLaplacian_ConsistentWithSeparate requires the fused evaluation
// to reproduce the standalone Gradient and Laplacian results bit for bit.
func TestGradientLaplacian_ConsistentWithSeparate(t *testing.T) {
	f := newTestFactor(t)
	ens := newTestEnsemble(t, 5)
	_, _, err := f.Recompute(ens)
	require.NoError(t, err)

	for e := 0; e < ens.Particles(); e++ {
		pos := shifted(boundBatch(f, ens.Walkers(), e), 1, -0.2)
		grad, gerr := f.Gradient(e, pos)
		require.NoError(t, gerr)
		lap, lerr := f.Laplacian(e, pos)
		require.NoError(t, lerr)
		gradFused, lapFused, cerr := f.GradientLaplacian(e, pos)
		require.NoError(t, cerr)

		assert.Equal(t, grad, gradFused, "particle %d gradient", e)
		assert.Equal(t, lap, lapFused, "particle %d laplacian", e)
	}
}

// TestDerivative_Validation exercises the argument checks shared by the
// derivative evaluations.
func TestDerivative_Validation(t *testing.T) {
	f := newTestFactor(t)

	_, err := f.Gradient(0, make([]r3.Vec, 3))
	assert.ErrorIs(t, err, jastrow.ErrNotBound)

	ens := newTestEnsemble(t, 3)
	_, _, err = f.Recompute(ens)
	require.NoError(t, err)

	_, err = f.Gradient(-1, make([]r3.Vec, 3))
	assert.ErrorIs(t, err, jastrow.ErrParticleIndex)
	_, err = f.Laplacian(0, make([]r3.Vec, 1))
	assert.ErrorIs(t, err, jastrow.ErrPosLength)
	_, _, err = f.GradientLaplacian(7, make([]r3.Vec, 3))
	assert.ErrorIs(t, err, jastrow.ErrParticleIndex)
}
