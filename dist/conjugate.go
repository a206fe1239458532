package dist

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"

	"github.com/sartorproj/gobayes/rng"
)

// logBetaCount returns lgamma(1+v) + lgamma(alpha) - lgamma(v+alpha), the
// count normalizer shared by the conjugate marginals below.
func logBetaCount(alpha, v float64) float64 {
	return lgamma(1+v) + lgamma(alpha) - lgamma(v+alpha)
}

// BetaBinomial is a Binomial count whose success probability is
// marginalized over a Beta prior. LogProb is the analytic marginal, so the
// latent probability never appears.
type BetaBinomial struct {
	Concentration1 []float64
	Concentration0 []float64
	TotalCount     []float64
	prior          *Beta
	batch          int
}

// NewBetaBinomial validates the Beta shape pair and the trial count and
// broadcasts all three to a common batch length.
func NewBetaBinomial(concentration1, concentration0, totalCount []float64) (*BetaBinomial, error) {
	if err := checkCount("totalCount", totalCount); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(concentration1), len(concentration0), len(totalCount))
	if err != nil {
		return nil, err
	}
	c1 := expand(concentration1, n)
	c0 := expand(concentration0, n)
	prior, err := NewBeta(c1, c0)
	if err != nil {
		return nil, err
	}
	return &BetaBinomial{
		Concentration1: c1,
		Concentration0: c0,
		TotalCount:     expand(totalCount, n),
		prior:          prior,
		batch:          n,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *BetaBinomial) BatchLen() int { return d.batch }

// Sample draws one count per batch element: a success probability from the
// Beta prior, then the Binomial count. The key is split once; the first
// child drives the prior draw and the second the count draw.
func (d *BetaBinomial) Sample(key rng.Key) []float64 {
	priorKey, countKey := key.Split()
	probs := d.prior.Sample(priorKey)
	src := countKey.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = binomialRand(src, d.TotalCount[i], probs[i])
	}
	return out
}

// SampleN draws n replicates of the batch, one row per replicate, keeping
// the prior and count streams separate.
func (d *BetaBinomial) SampleN(key rng.Key, n int) [][]float64 {
	priorKey, countKey := key.Split()
	priorKeys := priorKey.SplitN(n)
	src := countKey.Source()
	out := make([][]float64, n)
	for r := range out {
		probs := d.prior.Sample(priorKeys[r])
		row := make([]float64, d.batch)
		for i := range row {
			row[i] = binomialRand(src, d.TotalCount[i], probs[i])
		}
		out[r] = row
	}
	return out
}

// LogProb returns the marginal log pmf
//
//	lbeta(v+c1, n-v+c0) - lbeta(c0, c1) - logBetaCount(n-v+1, v)
//
// per broadcast element. Out-of-support values are an error.
func (d *BetaBinomial) LogProb(value []float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := at(value, i)
		tc := at(d.TotalCount, i)
		if v != math.Trunc(v) || v < 0 || v > tc {
			return nil, fmt.Errorf("value %v at index %d outside the integer interval [0, %v]", v, i, tc)
		}
		c1 := at(d.Concentration1, i)
		c0 := at(d.Concentration0, i)
		out[i] = mathext.Lbeta(v+c1, tc-v+c0) - mathext.Lbeta(c0, c1) - logBetaCount(tc-v+1, v)
	}
	return out, nil
}

// Mean returns n*c1/(c1+c0) per batch element.
func (d *BetaBinomial) Mean() []float64 {
	out := d.prior.Mean()
	for i := range out {
		out[i] *= d.TotalCount[i]
	}
	return out
}

// Variance returns the Beta variance scaled by n*(c1+c0+n): the Binomial
// variance inflated by the prior's overdispersion.
func (d *BetaBinomial) Variance() []float64 {
	out := d.prior.Variance()
	for i := range out {
		out[i] *= d.TotalCount[i] * (d.Concentration1[i] + d.Concentration0[i] + d.TotalCount[i])
	}
	return out
}

// Support returns the integer interval [0, TotalCount].
func (d *BetaBinomial) Support() IntegerInterval {
	return IntegerInterval{
		Lower: make([]float64, d.batch),
		Upper: append([]float64(nil), d.TotalCount...),
	}
}

// EnumerateSupport lists 0..TotalCount when the total count is shared
// across the batch, enabling exact discrete marginalization downstream.
func (d *BetaBinomial) EnumerateSupport() ([]float64, error) {
	return d.Support().Enumerate()
}

// DirichletMultinomial is a Multinomial count vector whose category
// probabilities are marginalized over a Dirichlet prior.
type DirichletMultinomial struct {
	Concentration [][]float64
	TotalCount    []float64
	prior         *Dirichlet
	batch         int
	k             int
}

// NewDirichletMultinomial validates the concentration rows and the trial
// count and broadcasts them to a common batch length. The concentration
// must be a non-empty rectangular matrix of positive entries.
func NewDirichletMultinomial(concentration [][]float64, totalCount []float64) (*DirichletMultinomial, error) {
	if len(concentration) == 0 {
		return nil, errors.New("concentration must have at least one row")
	}
	if err := checkCount("totalCount", totalCount); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(concentration), len(totalCount))
	if err != nil {
		return nil, err
	}
	conc := expandRows(concentration, n)
	prior, err := NewDirichlet(conc)
	if err != nil {
		return nil, err
	}
	return &DirichletMultinomial{
		Concentration: conc,
		TotalCount:    expand(totalCount, n),
		prior:         prior,
		batch:         n,
		k:             prior.NumCategories(),
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *DirichletMultinomial) BatchLen() int { return d.batch }

// NumCategories returns the length of each count vector.
func (d *DirichletMultinomial) NumCategories() int { return d.k }

// Sample draws one count vector per batch element: category probabilities
// from the Dirichlet prior, then the Multinomial counts, on split streams.
func (d *DirichletMultinomial) Sample(key rng.Key) [][]float64 {
	priorKey, countKey := key.Split()
	probs := d.prior.Sample(priorKey)
	src := countKey.Source()
	out := make([][]float64, d.batch)
	for i := range out {
		out[i] = multinomialRand(src, d.TotalCount[i], probs[i])
	}
	return out
}

// SampleN draws n replicates of the batch.
func (d *DirichletMultinomial) SampleN(key rng.Key, n int) [][][]float64 {
	priorKey, countKey := key.Split()
	priorKeys := priorKey.SplitN(n)
	src := countKey.Source()
	out := make([][][]float64, n)
	for r := range out {
		probs := d.prior.Sample(priorKeys[r])
		rows := make([][]float64, d.batch)
		for i := range rows {
			rows[i] = multinomialRand(src, d.TotalCount[i], probs[i])
		}
		out[r] = rows
	}
	return out
}

// LogProb returns the marginal log pmf
//
//	logBetaCount(sum(alpha), sum(v)) - sum_j logBetaCount(alpha_j, v_j)
//
// per broadcast element. Rows must be count vectors summing to the total.
func (d *DirichletMultinomial) LogProb(value [][]float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := atRow(value, i)
		tc := at(d.TotalCount, i)
		if err := checkCountVector(v, d.k, tc); err != nil {
			return nil, fmt.Errorf("value row %d: %w", i, err)
		}
		alpha := atRow(d.Concentration, i)
		lp := 0.0
		sumAlpha, sumV := 0.0, 0.0
		for j := range alpha {
			sumAlpha += alpha[j]
			sumV += v[j]
			lp -= logBetaCount(alpha[j], v[j])
		}
		out[i] = lp + logBetaCount(sumAlpha, sumV)
	}
	return out, nil
}

// Mean returns n*alpha_j/sum(alpha) per batch element.
func (d *DirichletMultinomial) Mean() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		alpha := d.Concentration[i]
		sum := floats.Sum(alpha)
		row := make([]float64, d.k)
		for j := range row {
			row[j] = d.TotalCount[i] * alpha[j] / sum
		}
		out[i] = row
	}
	return out
}

// Variance returns n*r_j*(1-r_j)*(n+sum(alpha))/(1+sum(alpha)) with
// r_j = alpha_j/sum(alpha), per batch element.
func (d *DirichletMultinomial) Variance() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		alpha := d.Concentration[i]
		sum := floats.Sum(alpha)
		scale := d.TotalCount[i] * (d.TotalCount[i] + sum) / (1 + sum)
		row := make([]float64, d.k)
		for j := range row {
			r := alpha[j] / sum
			row[j] = r * (1 - r) * scale
		}
		out[i] = row
	}
	return out
}

// Support describes count vectors summing to TotalCount.
func (d *DirichletMultinomial) Support() MultinomialSupport {
	return MultinomialSupport{
		TotalCount:    append([]float64(nil), d.TotalCount...),
		NumCategories: d.k,
	}
}

// GammaPoisson is a Poisson count whose rate is marginalized over a Gamma
// prior, the negative binomial family in shape/rate form.
type GammaPoisson struct {
	Concentration []float64
	Rate          []float64
	prior         *Gamma
	batch         int
}

// NewGammaPoisson validates the Gamma shape and rate and broadcasts them to
// a common batch length.
func NewGammaPoisson(concentration, rate []float64) (*GammaPoisson, error) {
	n, err := broadcastLen(len(concentration), len(rate))
	if err != nil {
		return nil, err
	}
	conc := expand(concentration, n)
	rt := expand(rate, n)
	prior, err := NewGamma(conc, rt)
	if err != nil {
		return nil, err
	}
	return &GammaPoisson{
		Concentration: conc,
		Rate:          rt,
		prior:         prior,
		batch:         n,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *GammaPoisson) BatchLen() int { return d.batch }

// Sample draws one count per batch element: a rate from the Gamma prior,
// then the Poisson count, on split streams.
func (d *GammaPoisson) Sample(key rng.Key) []float64 {
	priorKey, countKey := key.Split()
	rates := d.prior.Sample(priorKey)
	src := countKey.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = poissonRand(src, rates[i])
	}
	return out
}

// SampleN draws n replicates of the batch.
func (d *GammaPoisson) SampleN(key rng.Key, n int) [][]float64 {
	priorKey, countKey := key.Split()
	priorKeys := priorKey.SplitN(n)
	src := countKey.Source()
	out := make([][]float64, n)
	for r := range out {
		rates := d.prior.Sample(priorKeys[r])
		row := make([]float64, d.batch)
		for i := range row {
			row[i] = poissonRand(src, rates[i])
		}
		out[r] = row
	}
	return out
}

// LogProb returns the marginal log pmf
//
//	-lbeta(alpha, v+1) - log(alpha+v) + alpha*log(rate) - (alpha+v)*log1p(rate)
//
// per broadcast element. Values must be nonnegative integers.
func (d *GammaPoisson) LogProb(value []float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := at(value, i)
		if !isCount(v) {
			return nil, fmt.Errorf("value %v at index %d is not a nonnegative integer", v, i)
		}
		alpha := at(d.Concentration, i)
		rate := at(d.Rate, i)
		out[i] = -mathext.Lbeta(alpha, v+1) - math.Log(alpha+v) +
			alpha*math.Log(rate) - (alpha+v)*math.Log1p(rate)
	}
	return out, nil
}

// CDF returns P(X <= value) per broadcast element, the regularized
// incomplete Beta closed form of the negative binomial.
func (d *GammaPoisson) CDF(value []float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := at(value, i)
		if !isCount(v) {
			return nil, fmt.Errorf("value %v at index %d is not a nonnegative integer", v, i)
		}
		alpha := at(d.Concentration, i)
		rate := at(d.Rate, i)
		out[i] = mathext.RegIncBeta(alpha, v+1, rate/(1+rate))
	}
	return out, nil
}

// Mean returns alpha/rate per batch element.
func (d *GammaPoisson) Mean() []float64 {
	return d.prior.Mean()
}

// Variance returns alpha/rate^2*(1+rate): the Gamma variance plus the
// Poisson noise of the mean.
func (d *GammaPoisson) Variance() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.Concentration[i] / (d.Rate[i] * d.Rate[i]) * (1 + d.Rate[i])
	}
	return out
}

// Support returns the nonnegative integers.
func (d *GammaPoisson) Support() NonnegativeIntegers { return NonnegativeIntegers{} }
