package dist

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aclements/go-moremath/mathx"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gobayes/rng"
	"github.com/sartorproj/gobayes/special"
)

// Binomial counts successes in TotalCount independent trials with per-trial
// success probability Probs.
type Binomial struct {
	TotalCount []float64
	Probs      []float64
	batch      int
}

// NewBinomial validates the trial count and success probability and
// broadcasts them to a common batch length.
func NewBinomial(totalCount, probs []float64) (*Binomial, error) {
	if err := checkCount("totalCount", totalCount); err != nil {
		return nil, err
	}
	if err := checkUnit("probs", probs); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(totalCount), len(probs))
	if err != nil {
		return nil, err
	}
	return &Binomial{
		TotalCount: expand(totalCount, n),
		Probs:      expand(probs, n),
		batch:      n,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *Binomial) BatchLen() int { return d.batch }

// Sample draws one count per batch element.
func (d *Binomial) Sample(key rng.Key) []float64 {
	src := key.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = binomialRand(src, d.TotalCount[i], d.Probs[i])
	}
	return out
}

// LogProb returns log C(n,v) + v*log(p) + (n-v)*log(1-p) per broadcast
// element, with the guarded products handling p = 0 and p = 1.
func (d *Binomial) LogProb(value []float64) ([]float64, error) {
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
		p := at(d.Probs, i)
		out[i] = mathx.Lchoose(int(tc), int(v)) + special.XLogY(v, p) + special.XLog1pY(tc-v, -p)
	}
	return out, nil
}

// Mean returns n*p per batch element.
func (d *Binomial) Mean() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.TotalCount[i] * d.Probs[i]
	}
	return out
}

// Variance returns n*p*(1-p) per batch element.
func (d *Binomial) Variance() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.TotalCount[i] * d.Probs[i] * (1 - d.Probs[i])
	}
	return out
}

// Support returns the integer interval [0, TotalCount].
func (d *Binomial) Support() IntegerInterval {
	return IntegerInterval{
		Lower: make([]float64, d.batch),
		Upper: append([]float64(nil), d.TotalCount...),
	}
}

// EnumerateSupport lists 0..TotalCount when the total count is shared
// across the batch.
func (d *Binomial) EnumerateSupport() ([]float64, error) {
	return d.Support().Enumerate()
}

// Multinomial distributes TotalCount trials across categories with one
// probability row per batch element.
type Multinomial struct {
	TotalCount []float64
	Probs      [][]float64
	batch      int
	k          int
}

// NewMultinomial validates the trial count and probability rows and
// broadcasts them to a common batch length. Rows must share one nonzero
// length and each must sum to 1.
func NewMultinomial(totalCount []float64, probs [][]float64) (*Multinomial, error) {
	if err := checkCount("totalCount", totalCount); err != nil {
		return nil, err
	}
	if len(probs) == 0 {
		return nil, errors.New("probs must have at least one row")
	}
	k := len(probs[0])
	if k == 0 {
		return nil, errors.New("probs rows must not be empty")
	}
	for r, row := range probs {
		if err := checkSimplex(row, k); err != nil {
			return nil, fmt.Errorf("probs row %d: %w", r, err)
		}
	}
	n, err := broadcastLen(len(totalCount), len(probs))
	if err != nil {
		return nil, err
	}
	return &Multinomial{
		TotalCount: expand(totalCount, n),
		Probs:      expandRows(probs, n),
		batch:      n,
		k:          k,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *Multinomial) BatchLen() int { return d.batch }

// NumCategories returns the length of each count vector.
func (d *Multinomial) NumCategories() int { return d.k }

// Sample draws one count vector per batch element.
func (d *Multinomial) Sample(key rng.Key) [][]float64 {
	src := key.Source()
	out := make([][]float64, d.batch)
	for i := range out {
		out[i] = multinomialRand(src, d.TotalCount[i], d.Probs[i])
	}
	return out
}

// LogProb returns the multinomial log pmf per broadcast element:
//
//	lgamma(n+1) - sum_j lgamma(v_j+1) + sum_j v_j*log(p_j)
func (d *Multinomial) LogProb(value [][]float64) ([]float64, error) {
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
		probs := atRow(d.Probs, i)
		lp := lgamma(tc + 1)
		for j, c := range v {
			lp += special.XLogY(c, probs[j]) - lgamma(c+1)
		}
		out[i] = lp
	}
	return out, nil
}

// Mean returns n*p_j per batch element.
func (d *Multinomial) Mean() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		row := make([]float64, d.k)
		for j := range row {
			row[j] = d.TotalCount[i] * d.Probs[i][j]
		}
		out[i] = row
	}
	return out
}

// Variance returns n*p_j*(1-p_j) per batch element.
func (d *Multinomial) Variance() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		row := make([]float64, d.k)
		for j := range row {
			p := d.Probs[i][j]
			row[j] = d.TotalCount[i] * p * (1 - p)
		}
		out[i] = row
	}
	return out
}

// Support describes count vectors summing to TotalCount.
func (d *Multinomial) Support() MultinomialSupport {
	return MultinomialSupport{
		TotalCount:    append([]float64(nil), d.TotalCount...),
		NumCategories: d.k,
	}
}

// Poisson counts events arriving at the given positive rate.
type Poisson struct {
	Rate  []float64
	batch int
}

// NewPoisson validates the rate.
func NewPoisson(rate []float64) (*Poisson, error) {
	if err := checkPositive("rate", rate); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(rate))
	if err != nil {
		return nil, err
	}
	return &Poisson{Rate: expand(rate, n), batch: n}, nil
}

// BatchLen returns the batch length.
func (d *Poisson) BatchLen() int { return d.batch }

// Sample draws one count per batch element.
func (d *Poisson) Sample(key rng.Key) []float64 {
	src := key.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = poissonRand(src, d.Rate[i])
	}
	return out
}

// LogProb returns v*log(rate) - rate - lgamma(v+1) per broadcast element.
func (d *Poisson) LogProb(value []float64) ([]float64, error) {
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
		rate := at(d.Rate, i)
		out[i] = special.XLogY(v, rate) - rate - lgamma(v+1)
	}
	return out, nil
}

// Mean returns the rate per batch element.
func (d *Poisson) Mean() []float64 {
	return append([]float64(nil), d.Rate...)
}

// Variance returns the rate per batch element.
func (d *Poisson) Variance() []float64 {
	return append([]float64(nil), d.Rate...)
}

// Support returns the nonnegative integers.
func (d *Poisson) Support() NonnegativeIntegers { return NonnegativeIntegers{} }

// binomialRand draws from Binomial(n, p), short-circuiting the degenerate
// endpoints.
func binomialRand(src rand.Source, n, p float64) float64 {
	switch {
	case n == 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}
	return distuv.Binomial{N: n, P: p, Src: src}.Rand()
}

// poissonRand draws from Poisson(lambda), treating a zero rate as the point
// mass at zero.
func poissonRand(src rand.Source, lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}
	return distuv.Poisson{Lambda: lambda, Src: src}.Rand()
}

// multinomialRand distributes n trials across probs by drawing successive
// conditional binomials from src.
func multinomialRand(src rand.Source, n float64, probs []float64) []float64 {
	counts := make([]float64, len(probs))
	remaining := n
	rest := 1.0
	for j := 0; j < len(probs)-1; j++ {
		if remaining == 0 {
			break
		}
		p := 1.0
		if rest > probs[j] {
			p = probs[j] / rest
		}
		x := binomialRand(src, remaining, p)
		counts[j] = x
		remaining -= x
		rest -= probs[j]
	}
	counts[len(probs)-1] = remaining
	return counts
}
