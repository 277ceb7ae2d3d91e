// SPDX-License-Identifier: MIT
// Package jastrow: functional construction options.
// Options only record settings; New validates the assembled factor and
// returns the matching sentinel, so a misconfigured option surfaces at
// construction, not at first use.

package jastrow

import "gonum.org/v1/gonum/mat"

// Option configures a Factor during New.
type Option func(*Factor)

// WithWorkers sets the goroutine fan-out for Recompute's walker axis.
// The default of 1 keeps Recompute fully serial. Any n < 1 makes New fail
// with ErrWorkers.
func WithWorkers(n int) Option {
	return func(f *Factor) { f.workers = n }
}

// WithACoeff seeds the one-body coefficient matrices, one per spin channel,
// each shaped nion × len(aBasis). New fails with ErrCoeffShape when the
// shape disagrees with the configured basis and ions.
func WithACoeff(a [2]*mat.Dense) Option {
	return func(f *Factor) { f.ACoeff = a }
}

// WithBCoeff seeds the two-body coefficient matrix, shaped len(bBasis) × 3
// pair channels. New fails with ErrCoeffShape on a shape mismatch.
func WithBCoeff(b *mat.Dense) Option {
	return func(f *Factor) { f.BCoeff = b }
}
