// Package adapt provides the warmup adaptation primitives of gradient-based
// MCMC samplers: a dual-averaging schedule for step-size search and Welford
// accumulators for streaming mass-matrix estimation.
//
// # Dual Averaging
//
// DualAveraging shrinks its iterate toward a prox center while averaging
// noisy gradients; for convex objectives the running average converges to
// the minimizer:
//
//	da := adapt.NewDualAveraging([]float64{0})
//	for i := 0; i < steps; i++ {
//	    da.Update(gradient(da.Current()))
//	}
//	x := da.Average()
//
// The schedule constants T0, Kappa and Gamma are exported fields with the
// usual warmup defaults; set them before the first Update to override.
//
// # Welford Accumulators
//
// Welford tracks mean and covariance in one pass, in full or diagonal form,
// with optional shrinkage regularization for early warmup windows:
//
//	w := adapt.NewWelford(3)
//	for _, s := range samples {
//	    w.Update(s)
//	}
//	cov := w.Covariance(true)
//
// Accumulators built from disjoint shards of a stream combine with Merge.
package adapt
