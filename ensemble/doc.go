// Package ensemble holds the particle configurations a Monte Carlo sampler
// walks through: W independent copies ("walkers") of the same N-particle
// system, batched so that every geometric query answers for all walkers at
// once.
//
// Layout and conventions:
//
//   - Particles are spin-ordered: indices [0, NumUp) are spin-up, indices
//     [NumUp, Particles) are spin-down. Spin(e) maps an index to its channel.
//   - Positions live in one flat walker-major arena of r3.Vec; Position(w,e)
//     addresses it without copying.
//   - Separation vectors follow the convention sep = r_particle − r_other,
//     so a gradient taken against sep is a gradient with respect to the
//     particle's own position.
//   - All batched queries return walker-major flat slices and accept an
//     optional destination: nil allocates, a correctly sized slice is filled
//     in place, anything else panics.
//
// Mutation goes through Move only: a single particle index, one proposed
// position per walker, and an acceptance mask selecting which walkers commit.
// Unmasked walkers keep their positions bitwise unchanged, which is what lets
// downstream incremental caches stay exactly consistent under partial
// acceptance.
//
// Error policy: constructors and Move validate caller data and return
// sentinel errors (ErrWalkerCount, ErrPosLength, ...). Indexing accessors and
// separation queries panic on out-of-range arguments, following the gonum
// convention for hot-path indexers.
package ensemble
