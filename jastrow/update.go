// SPDX-License-Identifier: MIT

package jastrow

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
)

// Update commits a single-particle move for every masked walker in O(N) per
// walker:
//
//  1. one-body: aValues[w,I,k,s(e)] += aNew − aPartial[e,w,I,k], then
//     aPartial[e] is overwritten with the new values;
//  2. two-body: bValues[w,l,s(e)+t] += Σ_{j∈t} bNew − bPartial[e,w,l,t] for
//     both other-spin groups t;
//  3. every other particle j sees e move: bPartial[j,w,l,s(e)] picks up the
//     per-pair difference b_l(new) − b_l(old);
//  4. the bound snapshot commits the move through ensemble.Move.
//
// A nil mask commits every walker. Unmasked walkers' caches and positions
// stay bitwise unchanged. Argument violations abort before any mutation.
// Update touches no coefficient, so externally mutated ACoeff/BCoeff never
// desynchronize the caches.
func (f *Factor) Update(e int, pos []r3.Vec, mask []bool) error {
	if err := f.checkMove(e, pos, mask); err != nil {
		return err
	}
	st := f.state
	sc := &st.scratch
	w := st.walkers
	n := f.nUp + f.nDown
	se := f.spin(e)

	if st.na > 0 {
		sc.sepIonNew = st.ens.IonSeparations(sc.sepIonNew, pos, f.ions)
		sc.rIonNew = basis.Norms(sc.rIonNew, sc.sepIonNew)
		for k, fn := range f.aBasis {
			vals := fn.Value(sc.fvIon, sc.sepIonNew, sc.rIonNew)
			for wi := 0; wi < w; wi++ {
				if mask != nil && !mask[wi] {
					continue
				}
				for ion := 0; ion < st.nIon; ion++ {
					v := vals[wi*st.nIon+ion]
					pi := st.apIdx(e, wi, ion, k)
					st.aValues[st.aIdx(wi, ion, k, se)] += v - st.aPartial[pi]
					st.aPartial[pi] = v
				}
			}
		}
	}

	if n > 1 {
		sc.epos = st.ens.PositionsOf(sc.epos, e)
		sc.sepNew = st.ens.SeparationsFrom(sc.sepNew, e, pos)
		sc.sepOld = st.ens.SeparationsFrom(sc.sepOld, e, sc.epos)
		sc.rNew = basis.Norms(sc.rNew, sc.sepNew)
		sc.rOld = basis.Norms(sc.rOld, sc.sepOld)

		for l, fn := range f.bBasis {
			valsNew := fn.Value(sc.fvNew, sc.sepNew, sc.rNew)
			valsOld := fn.Value(sc.fvOld, sc.sepOld, sc.rOld)
			for wi := 0; wi < w; wi++ {
				if mask != nil && !mask[wi] {
					continue
				}
				rowNew := valsNew[wi*(n-1) : (wi+1)*(n-1)]
				rowOld := valsOld[wi*(n-1) : (wi+1)*(n-1)]
				var sums [2]float64
				for jj := 0; jj < n-1; jj++ {
					j := jj
					if jj >= e {
						j = jj + 1
					}
					sums[f.spin(j)] += rowNew[jj]
					st.bPartial[st.bpIdx(j, wi, l, se)] += rowNew[jj] - rowOld[jj]
				}
				for t := 0; t < 2; t++ {
					pi := st.bpIdx(e, wi, l, t)
					st.bValues[st.bIdx(wi, l, se+t)] += sums[t] - st.bPartial[pi]
					st.bPartial[pi] = sums[t]
				}
			}
		}
	}

	// checkMove already validated every argument, so this cannot fail.
	return st.ens.Move(e, pos, mask)
}

// Ratio returns the wavefunction ratio exp(U_new − U_old) per walker for a
// proposed single-particle move, without mutating any state. Entries for
// unmasked walkers are exactly 1.0. The delta contracts freshly evaluated
// basis values against the stored partial sums, so the cost is O(N), not
// O(N²). Large positive deltas overflow to +Inf unguarded; Monte Carlo
// acceptance clamps such ratios at 1 anyway.
func (f *Factor) Ratio(e int, pos []r3.Vec, mask []bool) ([]float64, error) {
	if err := f.checkMove(e, pos, mask); err != nil {
		return nil, err
	}
	if err := f.validateCoeffs(); err != nil {
		return nil, err
	}
	st := f.state
	sc := &st.scratch
	w := st.walkers
	n := f.nUp + f.nDown
	se := f.spin(e)

	delta := make([]float64, w)

	if st.na > 0 {
		acoeff := f.ACoeff[se]
		sc.sepIonNew = st.ens.IonSeparations(sc.sepIonNew, pos, f.ions)
		sc.rIonNew = basis.Norms(sc.rIonNew, sc.sepIonNew)
		for k, fn := range f.aBasis {
			vals := fn.Value(sc.fvIon, sc.sepIonNew, sc.rIonNew)
			for wi := 0; wi < w; wi++ {
				if mask != nil && !mask[wi] {
					continue
				}
				for ion := 0; ion < st.nIon; ion++ {
					v := vals[wi*st.nIon+ion] - st.aPartial[st.apIdx(e, wi, ion, k)]
					delta[wi] += acoeff.At(ion, k) * v
				}
			}
		}
	}

	if n > 1 {
		sc.sepNew = st.ens.SeparationsFrom(sc.sepNew, e, pos)
		sc.rNew = basis.Norms(sc.rNew, sc.sepNew)
		for l, fn := range f.bBasis {
			vals := fn.Value(sc.fvNew, sc.sepNew, sc.rNew)
			for wi := 0; wi < w; wi++ {
				if mask != nil && !mask[wi] {
					continue
				}
				row := vals[wi*(n-1) : (wi+1)*(n-1)]
				var sums [2]float64
				for jj := 0; jj < n-1; jj++ {
					j := jj
					if jj >= e {
						j = jj + 1
					}
					sums[f.spin(j)] += row[jj]
				}
				for t := 0; t < 2; t++ {
					diff := sums[t] - st.bPartial[st.bpIdx(e, wi, l, t)]
					delta[wi] += f.BCoeff.At(l, se+t) * diff
				}
			}
		}
	}

	ratio := delta
	for wi := 0; wi < w; wi++ {
		if mask != nil && !mask[wi] {
			ratio[wi] = 1.0
			continue
		}
		ratio[wi] = math.Exp(delta[wi])
	}

	return ratio, nil
}
