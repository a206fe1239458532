package diag

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// chainShape verifies the chains share one length and returns it.
func chainShape(chains [][]float64) int {
	n := len(chains[0])
	for _, ch := range chains {
		if len(ch) != n {
			panic("diag: chains of unequal length")
		}
	}
	return n
}

// chainStats returns the within-chain variance W and the pooled variance
// estimate (n-1)/n*W + B/n used by the Gelman-Rubin family.
func chainStats(chains [][]float64) (w, pooled float64) {
	m := len(chains)
	n := len(chains[0])
	means := make([]float64, m)
	vars := make([]float64, m)
	for c, ch := range chains {
		means[c] = stat.Mean(ch, nil)
		vars[c] = stat.Variance(ch, nil)
	}
	w = stat.Mean(vars, nil)
	pooled = float64(n-1) / float64(n) * w
	if m > 1 {
		pooled += stat.Variance(means, nil)
	}
	return w, pooled
}

// EffectiveSampleSize estimates how many independent draws the chains are
// worth: m*n / tau, where tau sums the pooled autocorrelations over the
// initial monotone sequence of positive lag pairs. Chains must share one
// length of at least four; degenerate input yields NaN. Strongly
// anticorrelated chains can legitimately exceed m*n.
func EffectiveSampleSize(chains [][]float64) float64 {
	if len(chains) == 0 {
		return math.NaN()
	}
	m := len(chains)
	n := chainShape(chains)
	if n < 4 {
		return math.NaN()
	}

	w, pooled := chainStats(chains)
	if !(pooled > 0) {
		return math.NaN()
	}

	acovs := make([][]float64, m)
	for c, ch := range chains {
		acovs[c] = Autocovariance(ch, n-1)
		if acovs[c] == nil {
			return math.NaN()
		}
	}

	// rho_k = 1 - (W - pooled autocovariance at lag k) / pooled variance,
	// pinned to 1 at lag zero.
	rho := func(k int) float64 {
		if k == 0 {
			return 1
		}
		acov := 0.0
		for c := range acovs {
			acov += acovs[c][k]
		}
		acov /= float64(m)
		return 1 - (w-acov)/pooled
	}

	tau := 0.0
	prev := math.Inf(1)
	for k := 0; k+1 < n; k += 2 {
		pair := rho(k) + rho(k+1)
		if pair <= 0 {
			break
		}
		if pair > prev {
			pair = prev
		}
		tau += pair
		prev = pair
	}
	tau = 2*tau - 1

	return float64(m) * float64(n) / tau
}

// GelmanRubin returns the potential scale reduction factor of two or more
// equal-length chains. Values near 1 indicate the chains agree; degenerate
// input yields NaN.
func GelmanRubin(chains [][]float64) float64 {
	if len(chains) < 2 {
		return math.NaN()
	}
	n := chainShape(chains)
	if n < 2 {
		return math.NaN()
	}
	w, pooled := chainStats(chains)
	if !(w > 0) {
		return math.NaN()
	}
	return math.Sqrt(pooled / w)
}

// SplitGelmanRubin halves every chain before computing GelmanRubin, so a
// trend inside a single chain also raises the factor.
func SplitGelmanRubin(chains [][]float64) float64 {
	split := make([][]float64, 0, 2*len(chains))
	for _, ch := range chains {
		half := len(ch) / 2
		if half == 0 {
			return math.NaN()
		}
		split = append(split, ch[:half], ch[half:2*half])
	}
	return GelmanRubin(split)
}
