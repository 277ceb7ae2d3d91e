package ensemble

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Pairs enumerates the triangular pair set {(i,j) : lo ≤ i < j < hi} in
// deterministic i-major order. Same-spin channels consume these pairs: each
// unordered pair appears exactly once and never pairs a particle with itself.
// It panics when lo < 0 or hi < lo.
func Pairs(lo, hi int) [][2]int {
	if lo < 0 || hi < lo {
		panic("ensemble: invalid pair range")
	}
	n := hi - lo
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return pairs
}

// CrossPairs enumerates the full Cartesian product of two disjoint index
// ranges in a-major order; the opposite-spin channel consumes these pairs.
// It panics on a negative or inverted range.
func CrossPairs(aLo, aHi, bLo, bHi int) [][2]int {
	if aLo < 0 || aHi < aLo || bLo < 0 || bHi < bLo {
		panic("ensemble: invalid pair range")
	}
	pairs := make([][2]int, 0, (aHi-aLo)*(bHi-bLo))
	for i := aLo; i < aHi; i++ {
		for j := bLo; j < bHi; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return pairs
}

// PairSeparations fills dst[w*len(pairs)+p] = pos(w, pairs[p][0]) − pos(w, pairs[p][1])
// for every walker. It panics when a pair index is out of range.
func (s *Ensemble) PairSeparations(dst []r3.Vec, pairs [][2]int) []r3.Vec {
	n := s.nUp + s.nDown
	for _, p := range pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			panic("ensemble: pair index out of range")
		}
	}
	dst = vecDst(dst, s.walkers*len(pairs))
	for w := 0; w < s.walkers; w++ {
		base := w * n
		out := dst[w*len(pairs):]
		for p, pair := range pairs {
			out[p] = r3.Sub(s.pos[base+pair[0]], s.pos[base+pair[1]])
		}
	}

	return dst
}

// SeparationsFrom fills dst[w*(N−1)+jj] = epos[w] − pos(w, j) over all
// particles j ≠ e, where jj is j with the gap at e closed (j for j < e,
// j−1 for j > e). epos holds one probe position per walker, typically a
// moved or proposed position of particle e itself. It panics when e is out
// of range or len(epos) ≠ Walkers.
func (s *Ensemble) SeparationsFrom(dst []r3.Vec, e int, epos []r3.Vec) []r3.Vec {
	s.checkParticle(e)
	if len(epos) != s.walkers {
		panic("ensemble: epos length mismatch")
	}
	n := s.nUp + s.nDown
	dst = vecDst(dst, s.walkers*(n-1))
	for w := 0; w < s.walkers; w++ {
		base := w * n
		out := dst[w*(n-1):]
		jj := 0
		for j := 0; j < n; j++ {
			if j == e {
				continue
			}
			out[jj] = r3.Sub(epos[w], s.pos[base+j])
			jj++
		}
	}

	return dst
}

// IonSeparations fills dst[w*len(ions)+I] = epos[w] − ions[I]. It panics when
// len(epos) ≠ Walkers.
func (s *Ensemble) IonSeparations(dst []r3.Vec, epos []r3.Vec, ions []r3.Vec) []r3.Vec {
	if len(epos) != s.walkers {
		panic("ensemble: epos length mismatch")
	}
	dst = vecDst(dst, s.walkers*len(ions))
	for w := 0; w < s.walkers; w++ {
		out := dst[w*len(ions):]
		for i, ion := range ions {
			out[i] = r3.Sub(epos[w], ion)
		}
	}

	return dst
}
