package wavefunction

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/ensemble"
)

// Product composes components by multiplication: Ψ = Π Ψᵢ. It implements
// Component, so products nest.
type Product struct {
	components []Component
}

var _ Component = (*Product)(nil)

// NewProduct builds a product wavefunction over the given components. The
// component list is copied.
//
// Returns ErrNoComponents for an empty list and ErrNilComponent for a nil
// entry.
func NewProduct(components ...Component) (*Product, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	for _, c := range components {
		if c == nil {
			return nil, ErrNilComponent
		}
	}

	return &Product{components: append([]Component(nil), components...)}, nil
}

// Components returns the number of composed components.
func (p *Product) Components() int { return len(p.components) }

// Recompute rebinds every component to ens. Signs multiply and per-walker
// log magnitudes add.
func (p *Product) Recompute(ens *ensemble.Ensemble) (float64, []float64, error) {
	sign := 1.0
	var logU []float64
	for _, c := range p.components {
		s, lg, err := c.Recompute(ens)
		if err != nil {
			return 0, nil, err
		}
		sign *= s
		if logU == nil {
			logU = append([]float64(nil), lg...)
			continue
		}
		if len(lg) != len(logU) {
			return 0, nil, ErrComponentMismatch
		}
		floats.Add(logU, lg)
	}

	return sign, logU, nil
}

// Value combines the bound values of all components.
func (p *Product) Value() (float64, []float64, error) {
	sign := 1.0
	var logU []float64
	for _, c := range p.components {
		s, lg, err := c.Value()
		if err != nil {
			return 0, nil, err
		}
		sign *= s
		if logU == nil {
			logU = append([]float64(nil), lg...)
			continue
		}
		if len(lg) != len(logU) {
			return 0, nil, ErrComponentMismatch
		}
		floats.Add(logU, lg)
	}

	return sign, logU, nil
}

// Update fans the committed move out to every component. On error the
// components may disagree about the bound configuration; the caller should
// Recompute before continuing.
func (p *Product) Update(e int, pos []r3.Vec, mask []bool) error {
	for _, c := range p.components {
		if err := c.Update(e, pos, mask); err != nil {
			return err
		}
	}

	return nil
}

// Ratio multiplies the per-walker acceptance ratios of all components.
func (p *Product) Ratio(e int, pos []r3.Vec, mask []bool) ([]float64, error) {
	var out []float64
	for _, c := range p.components {
		ratio, err := c.Ratio(e, pos, mask)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = append([]float64(nil), ratio...)
			continue
		}
		if len(ratio) != len(out) {
			return nil, ErrComponentMismatch
		}
		floats.Mul(out, ratio)
	}

	return out, nil
}

// Gradient adds the per-walker log gradients of all components.
func (p *Product) Gradient(e int, pos []r3.Vec) ([]r3.Vec, error) {
	var grad []r3.Vec
	for _, c := range p.components {
		g, err := c.Gradient(e, pos)
		if err != nil {
			return nil, err
		}
		if grad == nil {
			grad = append([]r3.Vec(nil), g...)
			continue
		}
		if len(g) != len(grad) {
			return nil, ErrComponentMismatch
		}
		for w := range g {
			grad[w] = r3.Add(grad[w], g[w])
		}
	}

	return grad, nil
}

// GradientLaplacian combines the component results. Each component reports
// the full-factor term ∇²Ψᵢ/Ψᵢ = Lᵢ, so the product's term is recovered
// from the log pieces: Σ(Lᵢ − |gᵢ|²) + |Σgᵢ|².
func (p *Product) GradientLaplacian(e int, pos []r3.Vec) ([]r3.Vec, []float64, error) {
	var (
		grad []r3.Vec
		lap  []float64
	)
	for _, c := range p.components {
		g, l, err := c.GradientLaplacian(e, pos)
		if err != nil {
			return nil, nil, err
		}
		if grad == nil {
			grad = append([]r3.Vec(nil), g...)
			lap = append([]float64(nil), l...)
			for w := range lap {
				lap[w] -= r3.Norm2(g[w])
			}
			continue
		}
		if len(g) != len(grad) || len(l) != len(lap) {
			return nil, nil, ErrComponentMismatch
		}
		for w := range g {
			grad[w] = r3.Add(grad[w], g[w])
			lap[w] += l[w] - r3.Norm2(g[w])
		}
	}
	for w := range lap {
		lap[w] += r3.Norm2(grad[w])
	}

	return grad, lap, nil
}

// Laplacian returns only the Laplacian term of GradientLaplacian.
func (p *Product) Laplacian(e int, pos []r3.Vec) ([]float64, error) {
	_, lap, err := p.GradientLaplacian(e, pos)

	return lap, err
}

// ParamGradient merges the component parameter gradients under 1-based
// "wf<i>" prefixed keys, so two components with an "acoeff" tensor surface
// as "wf1acoeff" and "wf2acoeff".
func (p *Product) ParamGradient() (map[string][]float64, error) {
	out := make(map[string][]float64)
	for i, c := range p.components {
		grads, err := c.ParamGradient()
		if err != nil {
			return nil, err
		}
		for name, g := range grads {
			out[fmt.Sprintf("wf%d%s", i+1, name)] = g
		}
	}

	return out, nil
}
