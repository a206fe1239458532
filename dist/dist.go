package dist

import (
	"errors"
	"fmt"
	"math"
)

// broadcastLen returns the common batch length of the given parameter
// lengths. A length of 1 broadcasts against any other length; otherwise all
// lengths must agree.
func broadcastLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		switch {
		case l == 0:
			return 0, errors.New("empty parameter slice")
		case l == 1 || l == n:
		case n == 1:
			n = l
		default:
			return 0, fmt.Errorf("cannot broadcast parameter lengths %v", lens)
		}
	}
	return n, nil
}

// expand returns p broadcast to length n. Length-1 slices are repeated;
// full-length slices are copied so the distribution owns its parameters.
func expand(p []float64, n int) []float64 {
	out := make([]float64, n)
	if len(p) == 1 {
		for i := range out {
			out[i] = p[0]
		}
		return out
	}
	copy(out, p)
	return out
}

// expandRows broadcasts a slice of rows to n rows, copying each.
func expandRows(p [][]float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = append([]float64(nil), atRow(p, i)...)
	}
	return out
}

// at indexes a broadcast slice: length-1 slices repeat their single entry.
func at(p []float64, i int) float64 {
	if len(p) == 1 {
		return p[0]
	}
	return p[i]
}

// atRow indexes a broadcast slice of rows.
func atRow(p [][]float64, i int) []float64 {
	if len(p) == 1 {
		return p[0]
	}
	return p[i]
}

// checkPositive verifies every entry is finite and strictly positive.
func checkPositive(name string, p []float64) error {
	for i, v := range p {
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("%s must be positive and finite, got %v at index %d", name, v, i)
		}
	}
	return nil
}

// checkCount verifies every entry is a nonnegative integer value.
func checkCount(name string, p []float64) error {
	for i, v := range p {
		if !isCount(v) {
			return fmt.Errorf("%s must be a nonnegative integer, got %v at index %d", name, v, i)
		}
	}
	return nil
}

// checkUnit verifies every entry lies in [0, 1].
func checkUnit(name string, p []float64) error {
	for i, v := range p {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%s must lie in [0, 1], got %v at index %d", name, v, i)
		}
	}
	return nil
}

// checkSimplex verifies v is a length-k probability vector.
func checkSimplex(v []float64, k int) error {
	if len(v) != k {
		return fmt.Errorf("length %d, expected %d", len(v), k)
	}
	sum := 0.0
	for _, p := range v {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("entry %v outside [0, 1]", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("entries sum to %v, expected 1", sum)
	}
	return nil
}

// checkCountVector verifies v is a length-k vector of nonnegative integers
// summing to total.
func checkCountVector(v []float64, k int, total float64) error {
	if len(v) != k {
		return fmt.Errorf("length %d, expected %d", len(v), k)
	}
	sum := 0.0
	for _, c := range v {
		if !isCount(c) {
			return fmt.Errorf("count %v is not a nonnegative integer", c)
		}
		sum += c
	}
	if sum != total {
		return fmt.Errorf("counts sum to %v, expected %v", sum, total)
	}
	return nil
}

// isCount reports whether v is a finite nonnegative integer value.
func isCount(v float64) bool {
	return v >= 0 && v == math.Trunc(v) && !math.IsInf(v, 1)
}

// lgamma returns log Gamma(x) for positive x, dropping the sign that
// math.Lgamma reports.
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// errValueBroadcast builds the shared error for value slices that do not
// broadcast against the batch.
func errValueBroadcast(valueLen, batch int) error {
	return fmt.Errorf("value length %d does not broadcast against batch length %d", valueLen, batch)
}
