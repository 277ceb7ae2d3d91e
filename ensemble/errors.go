// Package ensemble: sentinel error set.
// Constructors and Move return these sentinels; tests match them via
// errors.Is. Accessors panic instead (see doc.go error policy).

package ensemble

import "errors"

var (
	// ErrWalkerCount is returned when a constructor is asked for fewer than
	// one walker.
	ErrWalkerCount = errors.New("ensemble: walker count must be at least 1")

	// ErrParticleCount is returned when the spin counts are negative or sum
	// to zero.
	ErrParticleCount = errors.New("ensemble: invalid particle counts")

	// ErrParticleIndex is returned by Move when the particle index is outside
	// [0, Particles).
	ErrParticleIndex = errors.New("ensemble: particle index out of range")

	// ErrPosLength is returned by Move when the proposed position batch does
	// not have one entry per walker.
	ErrPosLength = errors.New("ensemble: position batch length mismatch")

	// ErrMaskLength is returned by Move when a non-nil mask does not have one
	// entry per walker.
	ErrMaskLength = errors.New("ensemble: mask length mismatch")

	// ErrShape is returned by FromPositions when walker rows have unequal
	// particle counts.
	ErrShape = errors.New("ensemble: ragged position input")

	// ErrNilRand is returned by InitialGuess when no random source is given.
	ErrNilRand = errors.New("ensemble: nil random source")
)
