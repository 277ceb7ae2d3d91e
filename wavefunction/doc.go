// Package wavefunction defines the component contract shared by all
// wavefunction factors and provides Product, which composes components by
// multiplication.
//
// A Component exposes the propose/accept evaluation cycle over a walker
// ensemble: Recompute binds and fills caches, Ratio prices a trial move,
// Update commits it, and the derivative methods feed drift and local-energy
// evaluation. Product is itself a Component, so composed wavefunctions nest:
//
//   - signs multiply and log magnitudes add,
//   - acceptance ratios multiply,
//   - gradients add,
//   - Laplacian terms combine via Σ(Lᵢ − |gᵢ|²) + |Σgᵢ|²,
//   - updates fan out to every component,
//   - parameter gradients merge under "wf1", "wf2", ... prefixed keys.
//
// All methods return freshly allocated results that the caller may retain.
package wavefunction
