package diag

// Autocovariance calculates the sample autocovariance of x for lags 0 to
// maxLag, normalized by the series length.
// Returns nil when fewer than two points are available.
func Autocovariance(x []float64, maxLag int) []float64 {
	n := len(x)
	if n < 2 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	acov := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (x[i] - mean) * (x[i-k] - mean)
		}
		acov[k] = sum / float64(n)
	}

	return acov
}

// Autocorrelation calculates the autocorrelation of x for lags 0 to maxLag,
// normalized so lag 0 is 1.
// Returns nil for constant or degenerate input.
func Autocorrelation(x []float64, maxLag int) []float64 {
	acov := Autocovariance(x, maxLag)
	if acov == nil || acov[0] == 0 {
		return nil
	}

	acf := make([]float64, len(acov))
	for k, v := range acov {
		acf[k] = v / acov[0]
	}

	return acf
}
