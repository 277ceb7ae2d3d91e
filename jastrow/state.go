// SPDX-License-Identifier: MIT

package jastrow

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/qmc/ensemble"
)

// State is the bound snapshot a factor evaluates against: a private deep
// copy of the ensemble plus the derived caches. It is created by Recompute,
// advanced only by Update, and replaced wholesale by the next Recompute.
//
// Cache arenas are flat row-major []float64 with these layouts:
//
//	aValues  [w][I][k][s]  len W·nion·na·2   spin-aggregated one-body sums
//	bValues  [w][l][c]     len W·nb·3        channel-aggregated pair sums
//	aPartial [e][w][I][k]  len N·W·nion·na   raw one-body values of particle e
//	bPartial [e][w][l][t]  len N·W·nb·2      pair sums of e against all
//	                                         particles of spin t, excluding e
//
// U[w] is recovered at any time by contracting aValues/bValues with the
// current coefficient matrices; the caches themselves are coefficient-free.
type State struct {
	ens *ensemble.Ensemble

	aValues  []float64
	bValues  []float64
	aPartial []float64
	bPartial []float64

	// Geometry constants frozen at bind time.
	walkers int
	nIon    int
	na      int
	nb      int

	scratch moveScratch
}

// moveScratch holds the per-move buffers shared by Update, Ratio and the
// derivative queries. Everything here is engine-owned and never escapes to
// callers.
type moveScratch struct {
	epos   []r3.Vec  // W          current positions of the moved particle
	sepNew []r3.Vec  // W·(N−1)    probe − others
	sepOld []r3.Vec  // W·(N−1)
	rNew   []float64 // W·(N−1)
	rOld   []float64 // W·(N−1)
	fvNew  []float64 // W·(N−1)    per-basis value batch
	fvOld  []float64 // W·(N−1)
	grad   []r3.Vec  // W·(N−1)    per-basis gradient batch
	lap    []float64 // W·(N−1)

	sepIonNew []r3.Vec  // W·nion
	rIonNew   []float64 // W·nion
	fvIon     []float64 // W·nion
	gradIon   []r3.Vec  // W·nion
	lapIon    []float64 // W·nion
}

// newState allocates zeroed caches for a deep copy of ens.
func newState(ens *ensemble.Ensemble, nIon, na, nb int) *State {
	w := ens.Walkers()
	n := ens.Particles()
	st := &State{
		ens:      ens.Clone(),
		aValues:  make([]float64, w*nIon*na*2),
		bValues:  make([]float64, w*nb*3),
		aPartial: make([]float64, n*w*nIon*na),
		bPartial: make([]float64, n*w*nb*2),
		walkers:  w,
		nIon:     nIon,
		na:       na,
		nb:       nb,
	}
	st.scratch = moveScratch{
		epos:      make([]r3.Vec, w),
		sepNew:    make([]r3.Vec, w*(n-1)),
		sepOld:    make([]r3.Vec, w*(n-1)),
		rNew:      make([]float64, w*(n-1)),
		rOld:      make([]float64, w*(n-1)),
		fvNew:     make([]float64, w*(n-1)),
		fvOld:     make([]float64, w*(n-1)),
		grad:      make([]r3.Vec, w*(n-1)),
		lap:       make([]float64, w*(n-1)),
		sepIonNew: make([]r3.Vec, w*nIon),
		rIonNew:   make([]float64, w*nIon),
		fvIon:     make([]float64, w*nIon),
		gradIon:   make([]r3.Vec, w*nIon),
		lapIon:    make([]float64, w*nIon),
	}

	return st
}

// aIdx addresses aValues[w][I][k][s].
func (st *State) aIdx(w, ion, k, s int) int {
	return ((w*st.nIon+ion)*st.na+k)*2 + s
}

// bIdx addresses bValues[w][l][c].
func (st *State) bIdx(w, l, c int) int {
	return (w*st.nb+l)*3 + c
}

// apIdx addresses aPartial[e][w][I][k].
func (st *State) apIdx(e, w, ion, k int) int {
	return ((e*st.walkers+w)*st.nIon+ion)*st.na + k
}

// bpIdx addresses bPartial[e][w][l][t].
func (st *State) bpIdx(e, w, l, t int) int {
	return ((e*st.walkers+w)*st.nb+l)*2 + t
}
