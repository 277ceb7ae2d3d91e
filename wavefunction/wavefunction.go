package wavefunction

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/ensemble"
)

// Component is the evaluation surface a wavefunction factor presents to a
// sampling driver. Implementations keep their own incremental caches; the
// driver owns the move loop and calls Ratio before Update.
//
// All slice results are freshly allocated per call. A Component must be
// bound with Recompute before any other method is used.
type Component interface {
	// Recompute binds the component to a snapshot of ens and rebuilds its
	// caches from scratch, returning the overall sign and per-walker log
	// magnitude.
	Recompute(ens *ensemble.Ensemble) (sign float64, logU []float64, err error)

	// Value returns the sign and per-walker log magnitude of the bound
	// configuration.
	Value() (sign float64, logU []float64, err error)

	// Update commits a single-particle move for the masked walkers.
	Update(e int, pos []r3.Vec, mask []bool) error

	// Ratio prices the same move without committing it. Walkers excluded by
	// mask report exactly 1.
	Ratio(e int, pos []r3.Vec, mask []bool) ([]float64, error)

	// Gradient returns ∇_e ln|Ψ| per walker, evaluated with particle e at
	// pos and all other particles at their bound positions.
	Gradient(e int, pos []r3.Vec) ([]r3.Vec, error)

	// GradientLaplacian returns the gradient together with ∇²_e Ψ / Ψ per
	// walker at the same displaced configuration.
	GradientLaplacian(e int, pos []r3.Vec) ([]r3.Vec, []float64, error)

	// Laplacian returns only the ∇²_e Ψ / Ψ term of GradientLaplacian.
	Laplacian(e int, pos []r3.Vec) ([]float64, error)

	// ParamGradient returns ∂ ln Ψ / ∂θ per named parameter tensor,
	// flattened per walker.
	ParamGradient() (map[string][]float64, error)
}
