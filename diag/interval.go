package diag

import (
	"math"
	"sort"
)

// HPDI returns the narrowest window of order statistics covering prob of
// the samples: the highest posterior density interval for unimodal draws.
// Degenerate input yields NaN bounds.
func HPDI(samples []float64, prob float64) (lo, hi float64) {
	n := len(samples)
	if n == 0 || !(prob > 0 && prob < 1) {
		return math.NaN(), math.NaN()
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	window := int(math.Floor(prob * float64(n)))
	if window < 1 {
		window = 1
	}
	if window >= n {
		return sorted[0], sorted[n-1]
	}

	best := 0
	bestWidth := math.Inf(1)
	for i := 0; i+window < n; i++ {
		width := sorted[i+window] - sorted[i]
		if width < bestWidth {
			bestWidth = width
			best = i
		}
	}
	return sorted[best], sorted[best+window]
}
