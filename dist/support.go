package dist

import (
	"errors"
	"math"
)

// IntegerInterval describes a support of consecutive integers, with bounds
// per batch element.
type IntegerInterval struct {
	Lower []float64
	Upper []float64
}

// Contains reports whether v is a valid value for batch element i.
func (s IntegerInterval) Contains(i int, v float64) bool {
	return v == math.Trunc(v) && v >= s.Lower[i] && v <= s.Upper[i]
}

// Enumerate lists every value in the support, from the lower to the upper
// bound. It fails when the bounds differ across the batch.
func (s IntegerInterval) Enumerate() ([]float64, error) {
	lo, hi := s.Lower[0], s.Upper[0]
	for i := range s.Lower {
		if s.Lower[i] != lo || s.Upper[i] != hi {
			return nil, errors.New("support bounds differ across the batch")
		}
	}
	vals := make([]float64, 0, int(hi-lo)+1)
	for v := lo; v <= hi; v++ {
		vals = append(vals, v)
	}
	return vals, nil
}

// NonnegativeIntegers describes the unbounded support {0, 1, 2, ...}.
type NonnegativeIntegers struct{}

// Contains reports whether v is a nonnegative integer value.
func (NonnegativeIntegers) Contains(v float64) bool {
	return isCount(v)
}

// MultinomialSupport describes vectors of nonnegative integer counts
// summing to the total count of a batch element.
type MultinomialSupport struct {
	TotalCount    []float64
	NumCategories int
}

// Contains reports whether v is a valid count vector for batch element i.
func (s MultinomialSupport) Contains(i int, v []float64) bool {
	if len(v) != s.NumCategories {
		return false
	}
	sum := 0.0
	for _, c := range v {
		if !isCount(c) {
			return false
		}
		sum += c
	}
	return sum == s.TotalCount[i]
}
