// Package gobayes provides conjugate count distributions, warmup adaptation
// and convergence diagnostics for Bayesian computation.
//
// GoBayes is a Go package for the numerical core of Bayesian workflows over
// count data. It implements the analytic marginals of the classic conjugate
// pairs (Beta-Binomial, Dirichlet-Multinomial, Gamma-Poisson), the streaming
// estimators and schedules used to adapt samplers during warmup, and the
// statistics used to judge whether a set of chains has converged. Everything
// is purely functional or explicitly stateful: no I/O, no globals, and
// sampling is driven by splittable keys so results are reproducible.
//
// # Features
//
//   - Beta-Binomial, Dirichlet-Multinomial and Gamma-Poisson marginals with
//     exact log pmf, moments and support enumeration
//   - Component families (Beta, Gamma, Dirichlet, Binomial, Multinomial,
//     Poisson) with broadcasting batch parameters
//   - Stabilized x*log(y) and x*log1p(y) products with gradients
//   - Nesterov dual averaging for step size adaptation
//   - Welford streaming mean and covariance, full or diagonal, with
//     shrinkage regularization and mergeable shards
//   - Effective sample size, Gelman-Rubin and split Gelman-Rubin statistics,
//     autocorrelation and highest posterior density intervals
//   - Splittable random keys for reproducible, parallel-safe sampling
//
// # Quick Start
//
// Score and sample a Beta-Binomial marginal:
//
//	bb, err := dist.NewBetaBinomial([]float64{2}, []float64{3}, []float64{10})
//	logProb, err := bb.LogProb([]float64{4})
//	draws := bb.SampleN(rng.NewKey(1), 1000)
//
// Adapt a mass matrix from warmup draws:
//
//	w := adapt.NewWelford(dim)
//	for _, sample := range warmup {
//		w.Update(sample)
//	}
//	cov := w.Covariance(true)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dist: Conjugate marginals and their component families
//   - special: Stabilized log products and their gradients
//   - adapt: Dual averaging and streaming moment estimation
//   - diag: Chain convergence diagnostics
//   - rng: Splittable random keys
//
// # References
//
//   - Hoffman, M. D., & Gelman, A. (2014). The No-U-Turn Sampler
//   - Gelman, A., et al. (2013). Bayesian Data Analysis, third edition
//   - Geyer, C. J. (1992). Practical Markov Chain Monte Carlo
package gobayes
