// SPDX-License-Identifier: MIT

package jastrow

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/basis"
	"github.com/katalvlaran/qmc/ensemble"
)

// Recompute binds a deep snapshot of ens and rebuilds every cache with one
// O(N²) pair sweep per walker: triangular enumeration for the same-spin
// channels, full Cartesian for up-down, so each unordered pair contributes
// exactly once and never pairs a particle with itself. Each pair value feeds
// the channel aggregate and both partners' partial rows; the one-body pass
// fills aPartial and spin-aggregates into aValues.
//
// The walker axis fans out across WithWorkers goroutines; enumeration order
// per walker is fixed, so the caches are bit-identical regardless of worker
// count. The returned sign is always +1 (exp(U) > 0); the pairing exists to
// match the sign/log convention of determinant components.
func (f *Factor) Recompute(ens *ensemble.Ensemble) (sign float64, logU []float64, err error) {
	if err = f.validateCoeffs(); err != nil {
		return 0, nil, err
	}
	if ens == nil || ens.NumUp() != f.nUp || ens.NumDown() != f.nDown {
		return 0, nil, ErrEnsembleShape
	}

	st := newState(ens, len(f.ions), len(f.aBasis), len(f.bBasis))
	f.fillCaches(st)
	f.state = st

	return 1.0, f.logValues(), nil
}

// fillCaches computes all separations once through the ensemble's batched
// queries, then aggregates walker ranges in parallel. Workers write disjoint
// walker-major slices, so no synchronization beyond the final Wait is
// needed.
func (f *Factor) fillCaches(st *State) {
	w := st.walkers
	n := f.nUp + f.nDown

	pairs := [3][][2]int{
		ChanUpUp:     ensemble.Pairs(0, f.nUp),
		ChanUpDown:   ensemble.CrossPairs(0, f.nUp, f.nUp, n),
		ChanDownDown: ensemble.Pairs(f.nUp, n),
	}
	var sep [3][]r3.Vec
	var dist [3][]float64
	for c, p := range pairs {
		if len(p) == 0 {
			continue
		}
		sep[c] = st.ens.PairSeparations(nil, p)
		dist[c] = basis.Norms(nil, sep[c])
	}

	// One-body separations per particle, arena layout [e][w][I].
	var ionSep []r3.Vec
	var ionDist []float64
	if st.na > 0 {
		ionSep = make([]r3.Vec, n*w*st.nIon)
		epos := make([]r3.Vec, w)
		for e := 0; e < n; e++ {
			epos = st.ens.PositionsOf(epos, e)
			st.ens.IonSeparations(ionSep[e*w*st.nIon:(e+1)*w*st.nIon], epos, f.ions)
		}
		ionDist = basis.Norms(nil, ionSep)
	}

	workers := f.workers
	if workers > w {
		workers = w
	}
	if workers <= 1 {
		f.aggregateRange(st, pairs, sep, dist, ionSep, ionDist, 0, w)
		return
	}

	var wg sync.WaitGroup
	chunk := (w + workers - 1) / workers
	for lo := 0; lo < w; lo += chunk {
		hi := min(lo+chunk, w)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f.aggregateRange(st, pairs, sep, dist, ionSep, ionDist, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// aggregateRange evaluates every basis function over the precomputed
// separations of walkers [lo, hi) and accumulates the four caches for those
// walkers only.
func (f *Factor) aggregateRange(st *State, pairs [3][][2]int, sep [3][]r3.Vec, dist [3][]float64, ionSep []r3.Vec, ionDist []float64, lo, hi int) {
	w := st.walkers
	n := f.nUp + f.nDown
	nw := hi - lo

	maxBatch := st.nIon
	for _, p := range pairs {
		if len(p) > maxBatch {
			maxBatch = len(p)
		}
	}
	fv := make([]float64, nw*maxBatch)

	for c, chanPairs := range pairs {
		np := len(chanPairs)
		if np == 0 {
			continue
		}
		seg := sep[c][lo*np : hi*np]
		dseg := dist[c][lo*np : hi*np]
		for l, fn := range f.bBasis {
			vals := fn.Value(fv[:nw*np], seg, dseg)
			for wi := lo; wi < hi; wi++ {
				row := vals[(wi-lo)*np : (wi-lo+1)*np]
				for p, pair := range chanPairs {
					v := row[p]
					st.bValues[st.bIdx(wi, l, c)] += v
					st.bPartial[st.bpIdx(pair[0], wi, l, f.spin(pair[1]))] += v
					st.bPartial[st.bpIdx(pair[1], wi, l, f.spin(pair[0]))] += v
				}
			}
		}
	}

	if st.na == 0 {
		return
	}
	for e := 0; e < n; e++ {
		s := f.spin(e)
		seg := ionSep[(e*w+lo)*st.nIon : (e*w+hi)*st.nIon]
		dseg := ionDist[(e*w+lo)*st.nIon : (e*w+hi)*st.nIon]
		for k, fn := range f.aBasis {
			vals := fn.Value(fv[:nw*st.nIon], seg, dseg)
			for wi := lo; wi < hi; wi++ {
				row := vals[(wi-lo)*st.nIon : (wi-lo+1)*st.nIon]
				for ion, v := range row {
					st.aPartial[st.apIdx(e, wi, ion, k)] = v
					st.aValues[st.aIdx(wi, ion, k, s)] += v
				}
			}
		}
	}
}
