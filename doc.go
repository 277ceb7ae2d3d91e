// Package qmc is a toolbox for real-space quantum Monte Carlo wavefunction
// kernels — from 3D basis functions to an incrementally updated spin-resolved
// Jastrow correlation factor.
//
// 🚀 What is qmc?
//
//	A pure-Go library for the inner loop of variational and diffusion Monte
//	Carlo samplers:
//		• Basis functions: Gaussian, Padé, polynomial-Padé and cutoff-cusp
//		  forms with analytic gradients and Laplacians
//		• Walker ensembles: batched particle configurations with spin
//		  partitions, masked single-particle moves and separation queries
//		• Jastrow engine: O(N) incremental cache updates per accepted move
//		  instead of O(N²) full recomputation
//		• Wavefunction products: compose correlation factors and query
//		  values, ratios, gradients and Laplacians through one interface
//		• Local energy: kinetic + Coulomb accumulator for energy estimates
//
// ✨ Why choose qmc?
//
//   - Exact bookkeeping — partial-sum caches mirror the pairwise sums
//     bit-for-bit after every masked update
//   - Analytic derivatives — gradient/Laplacian machinery matches the
//     incremental representation, ready for kinetic-energy estimators
//   - Batch-parallel — every operation is independent per walker; the
//     engine can fan walkers out across workers with no locks
//   - Built on gonum — r3 vectors, dense coefficient matrices, stats
//
// Under the hood, everything is organized under five subpackages:
//
//	basis/        — scalar functions of a 3D separation: value, ∇, Δ
//	ensemble/     — walker configurations, spin partitions, distances
//	jastrow/      — the incremental two-body + one-body Jastrow factor
//	wavefunction/ — the component interface and Product combinator
//	energy/       — per-walker local-energy breakdown
//
// Quick sketch:
//
//	ens, _ := ensemble.InitialGuess(rng, 512, 1, 1, ions, 1.0)
//	wf, _  := jastrow.Default(ions, 1, 1)
//	_, logU, _ := wf.Recompute(ens)        // O(N²), once
//	ratio, _   := wf.Ratio(0, trial, nil)  // O(N), per proposed move
//	wf.Update(0, trial, accepted)          // O(N), masked commit
//
// See examples/ for complete VMC-style drivers.
//
//	go get github.com/katalvlaran/qmc
package qmc
