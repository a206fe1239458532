// Package diag provides convergence diagnostics for MCMC chains.
//
// Chains are plain [][]float64 slices, one inner slice per chain, all of
// equal length. The package reports autocorrelation structure, effective
// sample sizes, potential scale reduction factors and highest posterior
// density intervals:
//
//	ess := diag.EffectiveSampleSize(chains)
//	rhat := diag.SplitGelmanRubin(chains)
//	lo, hi := diag.HPDI(chains[0], 0.9)
//
// # Autocorrelation
//
//	acf := diag.Autocorrelation(chain, 20)
//
// Lag 0 is normalized to 1; degenerate input returns nil.
//
// Degenerate inputs to the scalar diagnostics (too few samples, zero
// variance) yield NaN; chains of unequal length panic.
package diag
