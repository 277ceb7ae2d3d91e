// SPDX-License-Identifier: MIT
// Package jastrow: sentinel error set.
// All public operations return these sentinels on contract violations and
// tests match them via errors.Is. Nothing is silently truncated or
// broadcast: a failed call leaves the factor exactly as it was.

package jastrow

import "errors"

var (
	// ErrNoBasis is returned when the two-body basis is empty; a factor
	// without pair correlation is meaningless.
	ErrNoBasis = errors.New("jastrow: empty two-body basis")

	// ErrNilBasis is returned when a basis slice contains a nil entry.
	ErrNilBasis = errors.New("jastrow: nil basis function")

	// ErrNoIons is returned when a one-body basis is supplied without ion
	// positions. An empty one-body basis needs no ions and is legal.
	ErrNoIons = errors.New("jastrow: one-body basis requires ion positions")

	// ErrSpinCount is returned when a spin count is negative or both are
	// zero.
	ErrSpinCount = errors.New("jastrow: invalid spin counts")

	// ErrWorkers is returned by WithWorkers for a worker count below 1.
	ErrWorkers = errors.New("jastrow: worker count must be at least 1")

	// ErrCoeffShape is returned when a coefficient matrix does not match the
	// configured (nion × len(aBasis)) or (len(bBasis) × 3) shape. Checked at
	// construction for seeded coefficients and again at every evaluation,
	// since coefficients are externally mutable.
	ErrCoeffShape = errors.New("jastrow: coefficient shape mismatch")

	// ErrNotBound is returned by operations that need cached state before
	// the first Recompute.
	ErrNotBound = errors.New("jastrow: no ensemble bound, call Recompute first")

	// ErrEnsembleShape is returned by Recompute when the ensemble is nil or
	// its spin partition differs from the factor's.
	ErrEnsembleShape = errors.New("jastrow: ensemble shape mismatch")

	// ErrParticleIndex is returned when a particle index is outside
	// [0, nUp+nDown).
	ErrParticleIndex = errors.New("jastrow: particle index out of range")

	// ErrPosLength is returned when a position batch does not hold exactly
	// one entry per walker.
	ErrPosLength = errors.New("jastrow: position batch length mismatch")

	// ErrMaskLength is returned when a non-nil mask does not hold exactly
	// one entry per walker.
	ErrMaskLength = errors.New("jastrow: mask length mismatch")
)
