// Package dist provides probability distributions for conjugate Bayesian
// models: compound distributions whose log densities marginalize the prior
// analytically, the priors and likelihood families they are built from, and
// descriptors of their supports.
//
// # Compound Distributions
//
// BetaBinomial, DirichletMultinomial and GammaPoisson pair a conjugate
// prior with its likelihood. LogProb is the closed-form marginal, not a
// prior plus likelihood sum, so it is exact for any value in the support:
//
//	bb, _ := dist.NewBetaBinomial([]float64{2}, []float64{3}, []float64{10})
//	lp, _ := bb.LogProb([]float64{4})
//
// Sampling is ancestral and takes a key, split into one stream for the
// prior draw and one for the observation draw:
//
//	key := rng.NewKey(1)
//	counts := bb.Sample(key)
//	draws := bb.SampleN(key, 1000)
//
// # Batching
//
// Constructors broadcast parameter slices of length 1 against longer ones
// and store the expanded parameters; BatchLen reports the common length.
// LogProb broadcasts the value against the batch the same way:
//
//	// three experiments sharing one prior
//	bb, _ := dist.NewBetaBinomial([]float64{2}, []float64{3}, []float64{10, 20, 30})
//	// bb.BatchLen() == 3
//
// Invalid parameters (nonpositive concentrations, fractional counts,
// ragged concentration matrices) fail at construction; out-of-support
// values fail at LogProb. Neither is ever reported as a NaN result.
//
// # Supports
//
// Each discrete family reports its support as a descriptor used during
// value validation: IntegerInterval, NonnegativeIntegers or
// MultinomialSupport. IntegerInterval also enumerates its values, so a
// BetaBinomial can be marginalized exactly:
//
//	vals, _ := bb.EnumerateSupport() // 0, 1, ..., 10
//
// # Component Families
//
// Beta, Gamma and Dirichlet priors and Binomial, Multinomial and Poisson
// likelihoods are exported as full distributions with Sample, LogProb,
// Mean and Variance. Sampling is backed by gonum's distuv and distmv.
package dist
