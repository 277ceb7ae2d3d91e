// Package basis provides scalar functions of a 3D separation vector with
// analytic value, gradient, and Laplacian evaluation, batched over slices.
//
// A basis function b(r) depends on a separation only through the vector and
// its Euclidean norm. An ordered set of Func values forms a basis; order is
// significant because coefficient tensors elsewhere in the module are indexed
// by position in that set.
//
// Sign convention (binding for the whole module): a separation vector is
//
//	sep = r_particle − r_other
//
// with the moved or queried particle first, so Gradient is directly the
// gradient with respect to the particle's own position.
//
// Batching: the Go rendering of "arbitrary leading array shapes" is a flat
// []r3.Vec of separations plus a parallel []float64 of norms, flattened by
// the caller. Every method accepts a dst slice to reuse (nil allocates) and
// returns it filled; a dst of the wrong length is a programmer error and
// panics.
//
// Concrete functions:
//
//   - Gaussian     — exp(−α·r²)
//   - Pade         — u/(1+u) with u=(α·r/2)²; saturating Padé form
//   - PolyPade     — (1−p)/(1+β·p) with a quartic switch p(r/rc); zero beyond rc
//   - CutoffCusp   — rc·(−p/(1+γ·p)+1/(3+γ)) with cubic p(r/rc); slope −1 at
//     the origin (cusp), zero beyond rc
//
// All derivatives are evaluated in division-free radial forms wherever the
// r→0 limit is finite. CutoffCusp has a genuine cusp: its Gradient and
// Laplacian require r > 0.
package basis
