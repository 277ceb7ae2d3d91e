package wavefunction

import "errors"

var (
	// ErrNoComponents reports a Product built from an empty component list.
	ErrNoComponents = errors.New("wavefunction: product needs at least one component")

	// ErrNilComponent reports a nil entry in the component list.
	ErrNilComponent = errors.New("wavefunction: nil component")

	// ErrComponentMismatch reports components whose per-walker results
	// disagree in length, typically because they were bound to different
	// ensembles.
	ErrComponentMismatch = errors.New("wavefunction: components disagree on walker count")
)
