package dist

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gobayes/rng"
)

// Beta is the Beta distribution on (0, 1), parameterized by the positive
// shape pair (Concentration1, Concentration0).
type Beta struct {
	Concentration1 []float64
	Concentration0 []float64
	batch          int
}

// NewBeta validates the shape parameters and broadcasts them to a common
// batch length.
func NewBeta(concentration1, concentration0 []float64) (*Beta, error) {
	if err := checkPositive("concentration1", concentration1); err != nil {
		return nil, err
	}
	if err := checkPositive("concentration0", concentration0); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(concentration1), len(concentration0))
	if err != nil {
		return nil, err
	}
	return &Beta{
		Concentration1: expand(concentration1, n),
		Concentration0: expand(concentration0, n),
		batch:          n,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *Beta) BatchLen() int { return d.batch }

// Sample draws one value per batch element.
func (d *Beta) Sample(key rng.Key) []float64 {
	src := key.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = distuv.Beta{Alpha: d.Concentration1[i], Beta: d.Concentration0[i], Src: src}.Rand()
	}
	return out
}

// LogProb returns the log density at value, broadcast against the batch.
// Values outside (0, 1) are an error.
func (d *Beta) LogProb(value []float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := at(value, i)
		if !(v > 0 && v < 1) {
			return nil, fmt.Errorf("value %v at index %d outside the unit interval", v, i)
		}
		out[i] = distuv.Beta{Alpha: at(d.Concentration1, i), Beta: at(d.Concentration0, i)}.LogProb(v)
	}
	return out, nil
}

// Mean returns c1/(c1+c0) per batch element.
func (d *Beta) Mean() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.Concentration1[i] / (d.Concentration1[i] + d.Concentration0[i])
	}
	return out
}

// Variance returns c1*c0 / ((c1+c0)^2 * (c1+c0+1)) per batch element.
func (d *Beta) Variance() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		s := d.Concentration1[i] + d.Concentration0[i]
		out[i] = d.Concentration1[i] * d.Concentration0[i] / (s * s * (s + 1))
	}
	return out
}

// Gamma is the Gamma distribution on (0, inf) in shape/rate form.
type Gamma struct {
	Concentration []float64
	Rate          []float64
	batch         int
}

// NewGamma validates the shape and rate and broadcasts them to a common
// batch length.
func NewGamma(concentration, rate []float64) (*Gamma, error) {
	if err := checkPositive("concentration", concentration); err != nil {
		return nil, err
	}
	if err := checkPositive("rate", rate); err != nil {
		return nil, err
	}
	n, err := broadcastLen(len(concentration), len(rate))
	if err != nil {
		return nil, err
	}
	return &Gamma{
		Concentration: expand(concentration, n),
		Rate:          expand(rate, n),
		batch:         n,
	}, nil
}

// BatchLen returns the broadcast batch length.
func (d *Gamma) BatchLen() int { return d.batch }

// Sample draws one value per batch element.
func (d *Gamma) Sample(key rng.Key) []float64 {
	src := key.Source()
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = distuv.Gamma{Alpha: d.Concentration[i], Beta: d.Rate[i], Src: src}.Rand()
	}
	return out
}

// LogProb returns the log density at value, broadcast against the batch.
// Nonpositive values are an error.
func (d *Gamma) LogProb(value []float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := at(value, i)
		if !(v > 0) {
			return nil, fmt.Errorf("value %v at index %d is not positive", v, i)
		}
		out[i] = distuv.Gamma{Alpha: at(d.Concentration, i), Beta: at(d.Rate, i)}.LogProb(v)
	}
	return out, nil
}

// Mean returns concentration/rate per batch element.
func (d *Gamma) Mean() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.Concentration[i] / d.Rate[i]
	}
	return out
}

// Variance returns concentration/rate^2 per batch element.
func (d *Gamma) Variance() []float64 {
	out := make([]float64, d.batch)
	for i := range out {
		out[i] = d.Concentration[i] / (d.Rate[i] * d.Rate[i])
	}
	return out
}

// Dirichlet is the Dirichlet distribution over probability vectors, with
// one row of positive concentrations per batch element.
type Dirichlet struct {
	Concentration [][]float64
	batch         int
	k             int
}

// NewDirichlet validates the concentration rows. All rows must share one
// nonzero length.
func NewDirichlet(concentration [][]float64) (*Dirichlet, error) {
	if len(concentration) == 0 {
		return nil, errors.New("concentration must have at least one row")
	}
	k := len(concentration[0])
	if k == 0 {
		return nil, errors.New("concentration rows must not be empty")
	}
	rows := make([][]float64, len(concentration))
	for r, row := range concentration {
		if len(row) != k {
			return nil, fmt.Errorf("concentration row %d has length %d, expected %d", r, len(row), k)
		}
		if err := checkPositive("concentration", row); err != nil {
			return nil, err
		}
		rows[r] = append([]float64(nil), row...)
	}
	return &Dirichlet{Concentration: rows, batch: len(rows), k: k}, nil
}

// BatchLen returns the batch length.
func (d *Dirichlet) BatchLen() int { return d.batch }

// NumCategories returns the length of each probability vector.
func (d *Dirichlet) NumCategories() int { return d.k }

// Sample draws one probability vector per batch element.
func (d *Dirichlet) Sample(key rng.Key) [][]float64 {
	src := key.Source()
	out := make([][]float64, d.batch)
	for i := range out {
		out[i] = distmv.NewDirichlet(d.Concentration[i], src).Rand(nil)
	}
	return out
}

// LogProb returns the log density of each probability vector, broadcast
// against the batch. Rows must be valid probability vectors.
func (d *Dirichlet) LogProb(value [][]float64) ([]float64, error) {
	n, err := broadcastLen(len(value), d.batch)
	if err != nil {
		return nil, errValueBroadcast(len(value), d.batch)
	}
	out := make([]float64, n)
	for i := range out {
		v := atRow(value, i)
		if err := checkSimplex(v, d.k); err != nil {
			return nil, fmt.Errorf("value row %d: %w", i, err)
		}
		out[i] = distmv.NewDirichlet(atRow(d.Concentration, i), nil).LogProb(v)
	}
	return out, nil
}

// Mean returns the expected probability vector per batch element.
func (d *Dirichlet) Mean() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		alpha := d.Concentration[i]
		sum := floats.Sum(alpha)
		row := make([]float64, d.k)
		for j := range row {
			row[j] = alpha[j] / sum
		}
		out[i] = row
	}
	return out
}

// Variance returns the per-category variances per batch element.
func (d *Dirichlet) Variance() [][]float64 {
	out := make([][]float64, d.batch)
	for i := range out {
		alpha := d.Concentration[i]
		sum := floats.Sum(alpha)
		row := make([]float64, d.k)
		for j := range row {
			row[j] = alpha[j] * (sum - alpha[j]) / (sum * sum * (sum + 1))
		}
		out[i] = row
	}
	return out
}
