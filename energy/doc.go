// Package energy evaluates the per-walker local energy of a wavefunction
// over an ensemble with fixed point-charge ions.
//
// The local energy splits into a kinetic term derived from the wavefunction
// Laplacian, the electron-electron and electron-ion Coulomb sums, and the
// constant ion-ion repulsion precomputed at construction:
//
//	E_L = −½ Σ_e ∇²Ψ/Ψ + Σ_{i<j} 1/r_ij − Σ_{e,I} Z_I/r_eI + Σ_{I<J} Z_I Z_J/R_IJ
//
// Evaluate reads positions from the ensemble it is handed; the caller keeps
// that ensemble in lockstep with the wavefunction's bound configuration.
// Distances are in bohr and energies in hartree.
package energy
