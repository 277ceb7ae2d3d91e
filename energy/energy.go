package energy

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/ensemble"
	"github.com/katalvlaran/qmc/wavefunction"
)

var (
	// ErrChargeCount reports a charge list whose length differs from the
	// ion list.
	ErrChargeCount = errors.New("energy: charge count does not match ion count")

	// ErrNilWavefunction reports a nil wavefunction component.
	ErrNilWavefunction = errors.New("energy: nil wavefunction")

	// ErrNilEnsemble reports a nil ensemble.
	ErrNilEnsemble = errors.New("energy: nil ensemble")
)

// Accumulator evaluates local energies for a fixed molecular frame. Ions
// are assumed distinct; the ion-ion repulsion is computed once.
type Accumulator struct {
	ions    []r3.Vec
	charges []float64
	ionIon  float64
}

// Breakdown holds the per-walker local-energy terms in hartree. IonIon is
// shared by all walkers; Total includes it.
type Breakdown struct {
	Kinetic  []float64
	ElecElec []float64
	ElecIon  []float64
	Total    []float64
	IonIon   float64
}

// New builds an accumulator for ions with the given point charges. Both
// slices are copied. An empty frame is allowed and contributes no ion terms.
func New(ions []r3.Vec, charges []float64) (*Accumulator, error) {
	if len(charges) != len(ions) {
		return nil, ErrChargeCount
	}
	a := &Accumulator{
		ions:    append([]r3.Vec(nil), ions...),
		charges: append([]float64(nil), charges...),
	}
	for i := range a.ions {
		for j := i + 1; j < len(a.ions); j++ {
			a.ionIon += a.charges[i] * a.charges[j] / r3.Norm(r3.Sub(a.ions[i], a.ions[j]))
		}
	}

	return a, nil
}

// IonIon returns the constant ion-ion repulsion energy.
func (a *Accumulator) IonIon() float64 { return a.ionIon }

// Evaluate computes the local-energy breakdown of wf over every walker of
// ens. The wavefunction must already be bound to the same configuration ens
// describes; its Laplacian supplies the kinetic term while the Coulomb sums
// are taken directly from the ensemble geometry.
func (a *Accumulator) Evaluate(wf wavefunction.Component, ens *ensemble.Ensemble) (*Breakdown, error) {
	if wf == nil {
		return nil, ErrNilWavefunction
	}
	if ens == nil {
		return nil, ErrNilEnsemble
	}
	var (
		walkers = ens.Walkers()
		n       = ens.Particles()
		bd      = &Breakdown{
			Kinetic:  make([]float64, walkers),
			ElecElec: make([]float64, walkers),
			ElecIon:  make([]float64, walkers),
			Total:    make([]float64, walkers),
			IonIon:   a.ionIon,
		}
		epos []r3.Vec
	)

	// Kinetic: −½ Σ_e ∇²Ψ/Ψ at the current positions.
	for e := 0; e < n; e++ {
		epos = ens.PositionsOf(epos, e)
		lap, err := wf.Laplacian(e, epos)
		if err != nil {
			return nil, err
		}
		for w := range lap {
			bd.Kinetic[w] -= 0.5 * lap[w]
		}
	}

	// Electron-electron repulsion over the unique pair set.
	if pairs := ensemble.Pairs(0, n); len(pairs) > 0 {
		sep := ens.PairSeparations(nil, pairs)
		for w := 0; w < walkers; w++ {
			row := sep[w*len(pairs):]
			for p := range pairs {
				bd.ElecElec[w] += 1 / r3.Norm(row[p])
			}
		}
	}

	// Electron-ion attraction.
	if len(a.ions) > 0 {
		var sep []r3.Vec
		for e := 0; e < n; e++ {
			epos = ens.PositionsOf(epos, e)
			sep = ens.IonSeparations(sep, epos, a.ions)
			for w := 0; w < walkers; w++ {
				row := sep[w*len(a.ions):]
				for i := range a.ions {
					bd.ElecIon[w] -= a.charges[i] / r3.Norm(row[i])
				}
			}
		}
	}

	for w := 0; w < walkers; w++ {
		bd.Total[w] = bd.Kinetic[w] + bd.ElecElec[w] + bd.ElecIon[w] + a.ionIon
	}

	return bd, nil
}
