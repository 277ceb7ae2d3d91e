// SPDX-License-Identifier: MIT
// Package jastrow evaluates and incrementally updates a two-spin Jastrow
// correlation factor exp(U) for batches of Monte Carlo walkers.
//
// 🚀 What is a Jastrow factor?
//
//	Real-space quantum Monte Carlo multiplies a mean-field trial
//	wavefunction by exp(U), where U collects explicit particle-particle
//	and particle-ion correlation:
//
//	  U[w] = Σ_{I,k,s} acoeff[I,k,s]·avalues[w,I,k,s]
//	       + Σ_{l,c}   bcoeff[l,c]·bvalues[w,l,c]
//
//	avalues aggregates one-body basis functions over particle-ion
//	separations (per spin channel s ∈ {up, down}); bvalues aggregates
//	two-body basis functions over particle pairs (per pair channel
//	c ∈ {up-up, up-down, down-down}, c = Spin(i)+Spin(j)).
//
// ✨ Key features:
//   - O(N) single-particle moves: Update and Ratio reuse per-particle
//     partial sums instead of redoing the O(N²) pair sweep
//   - masked commits: one batched call applies per-walker accept/reject
//     outcomes, rejected walkers stay bitwise untouched
//   - coefficients are read at evaluation time, never cached, so an
//     external optimizer may mutate ACoeff/BCoeff between calls
//   - analytic ∇U and ΔU + |∇U|² per walker for drift/diffusion samplers
//   - parameter gradients for free: U is linear in the coefficients, so
//     ∂U/∂coeff is exactly the cached aggregate
//
// ⚙️ Usage:
//
//	f, err := jastrow.Default(ions, nUp, nDown)   // qwalk-style defaults
//	_, logU, err := f.Recompute(ens)              // bind + O(N²) sweep
//	r, err := f.Ratio(e, proposed, nil)           // exp(ΔU) per walker
//	err = f.Update(e, proposed, acceptMask)       // commit accepted walkers
//
// Performance: Recompute is O(W·N²·nb) basis evaluations; Update, Ratio and
// the derivative queries are O(W·N·nb). Recompute fans out across the walker
// axis when WithWorkers(n>1) is set; results are bitwise identical to the
// serial pass.
//
// Concurrency: one Factor is single-writer. Every operation, including the
// read-only ones, shares engine-owned scratch buffers; callers must
// serialize all calls on one instance.
package jastrow
