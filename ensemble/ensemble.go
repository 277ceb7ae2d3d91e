package ensemble

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ensemble is a batch of W walkers over the same N = NumUp + NumDown particle
// system. The zero value is not usable; construct with New, FromPositions or
// InitialGuess.
type Ensemble struct {
	walkers int
	nUp     int
	nDown   int
	// pos is the walker-major position arena: pos[w*(nUp+nDown)+e].
	pos []r3.Vec
}

// New returns an ensemble of the given shape with every particle at the
// origin.
func New(walkers, nUp, nDown int) (*Ensemble, error) {
	if walkers < 1 {
		return nil, ErrWalkerCount
	}
	if nUp < 0 || nDown < 0 || nUp+nDown == 0 {
		return nil, ErrParticleCount
	}

	return &Ensemble{
		walkers: walkers,
		nUp:     nUp,
		nDown:   nDown,
		pos:     make([]r3.Vec, walkers*(nUp+nDown)),
	}, nil
}

// FromPositions deep-copies one position row per walker. Every row must hold
// the same particle count, with the first nUp entries spin-up.
func FromPositions(pos [][]r3.Vec, nUp int) (*Ensemble, error) {
	if len(pos) < 1 {
		return nil, ErrWalkerCount
	}
	n := len(pos[0])
	for _, row := range pos[1:] {
		if len(row) != n {
			return nil, ErrShape
		}
	}
	if nUp < 0 || nUp > n || n == 0 {
		return nil, ErrParticleCount
	}

	s := &Ensemble{
		walkers: len(pos),
		nUp:     nUp,
		nDown:   n - nUp,
		pos:     make([]r3.Vec, len(pos)*n),
	}
	for w, row := range pos {
		copy(s.pos[w*n:(w+1)*n], row)
	}

	return s, nil
}

// InitialGuess builds a starting ensemble for sampling: particles of each
// spin are dealt round-robin onto the ion sites, then jittered by an
// isotropic Gaussian of width spread. With no ions all particles start as
// jitter around the origin. The result is deterministic for a fixed rng
// state.
func InitialGuess(rng *rand.Rand, walkers, nUp, nDown int, ions []r3.Vec, spread float64) (*Ensemble, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	s, err := New(walkers, nUp, nDown)
	if err != nil {
		return nil, err
	}

	n := nUp + nDown
	for w := 0; w < walkers; w++ {
		for e := 0; e < n; e++ {
			at := r3.Vec{}
			if len(ions) > 0 {
				// Round-robin within each spin group so both spins cover
				// the sites evenly.
				es := e
				if e >= nUp {
					es = e - nUp
				}
				at = ions[es%len(ions)]
			}
			jitter := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
			s.pos[w*n+e] = r3.Add(at, r3.Scale(spread, jitter))
		}
	}

	return s, nil
}

// Walkers returns the walker count W.
func (s *Ensemble) Walkers() int { return s.walkers }

// NumUp returns the spin-up particle count.
func (s *Ensemble) NumUp() int { return s.nUp }

// NumDown returns the spin-down particle count.
func (s *Ensemble) NumDown() int { return s.nDown }

// Particles returns the total particle count N.
func (s *Ensemble) Particles() int { return s.nUp + s.nDown }

// Spin returns 0 for a spin-up particle index and 1 for spin-down.
// It panics when e is outside [0, Particles).
func (s *Ensemble) Spin(e int) int {
	s.checkParticle(e)
	if e < s.nUp {
		return 0
	}

	return 1
}

// Position returns the position of particle e in walker w.
// It panics when either index is out of range.
func (s *Ensemble) Position(w, e int) r3.Vec {
	s.checkWalker(w)
	s.checkParticle(e)

	return s.pos[w*(s.nUp+s.nDown)+e]
}

// PositionsOf fills dst[w] with the position of particle e in walker w.
// A nil dst allocates; a dst of any other length than Walkers panics.
func (s *Ensemble) PositionsOf(dst []r3.Vec, e int) []r3.Vec {
	s.checkParticle(e)
	dst = vecDst(dst, s.walkers)
	n := s.nUp + s.nDown
	for w := 0; w < s.walkers; w++ {
		dst[w] = s.pos[w*n+e]
	}

	return dst
}

// Clone returns a deep copy sharing no storage with the receiver.
func (s *Ensemble) Clone() *Ensemble {
	cp := *s
	cp.pos = make([]r3.Vec, len(s.pos))
	copy(cp.pos, s.pos)

	return &cp
}

// Move commits a proposed single-particle move: for every walker w with
// mask[w] true, particle e takes position pos[w]. A nil mask commits every
// walker. On any length or index violation no walker is modified.
func (s *Ensemble) Move(e int, pos []r3.Vec, mask []bool) error {
	if e < 0 || e >= s.nUp+s.nDown {
		return ErrParticleIndex
	}
	if len(pos) != s.walkers {
		return ErrPosLength
	}
	if mask != nil && len(mask) != s.walkers {
		return ErrMaskLength
	}

	n := s.nUp + s.nDown
	for w := 0; w < s.walkers; w++ {
		if mask == nil || mask[w] {
			s.pos[w*n+e] = pos[w]
		}
	}

	return nil
}

func (s *Ensemble) checkWalker(w int) {
	if w < 0 || w >= s.walkers {
		panic("ensemble: walker index out of range")
	}
}

func (s *Ensemble) checkParticle(e int) {
	if e < 0 || e >= s.nUp+s.nDown {
		panic("ensemble: particle index out of range")
	}
}

// vecDst applies the shared destination convention: nil allocates, the right
// length is reused, anything else panics.
func vecDst(dst []r3.Vec, n int) []r3.Vec {
	if dst == nil {
		return make([]r3.Vec, n)
	}
	if len(dst) != n {
		panic("ensemble: dst length mismatch")
	}

	return dst
}
