package adapt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gobayes/rng"
)

func TestWelfordExact(t *testing.T) {
	w := NewWelford(2)
	w.Update([]float64{1, 2})
	w.Update([]float64{3, 4})

	if w.Count() != 2 {
		t.Fatalf("Expected count 2, got %d", w.Count())
	}
	mean := w.Mean()
	if mean[0] != 2 || mean[1] != 3 {
		t.Errorf("Expected mean [2 3], got %v", mean)
	}

	cov := w.Covariance(false)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(cov.At(i, j)-2) > 1e-12 {
				t.Errorf("Expected covariance 2 at (%d,%d), got %v", i, j, cov.At(i, j))
			}
		}
	}

	// Shrinkage at n = 2 blends with weight 2/7 and adds 1e-3*5/7 on the
	// diagonal.
	reg := w.Covariance(true)
	wantOff := 2 * 2.0 / 7
	wantDiag := wantOff + 1e-3*5.0/7
	if math.Abs(reg.At(0, 1)-wantOff) > 1e-12 {
		t.Errorf("Expected regularized off-diagonal %v, got %v", wantOff, reg.At(0, 1))
	}
	if math.Abs(reg.At(0, 0)-wantDiag) > 1e-12 {
		t.Errorf("Expected regularized diagonal %v, got %v", wantDiag, reg.At(0, 0))
	}

	v := w.Variances(true)
	if math.Abs(v[0]-wantDiag) > 1e-12 {
		t.Errorf("Expected Variances to match the covariance diagonal, got %v", v[0])
	}
}

func TestWelfordRecoversCovariance(t *testing.T) {
	// Correlated Gaussian draws with covariance A*A^T and a shifted mean.
	a := [][]float64{
		{1.0, 0, 0},
		{0.6, 0.8, 0},
		{0.4, 0.3, 0.9},
	}
	loc := []float64{-1, 0.5, 2}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng.NewKey(10).Source()}
	w := NewWelford(3)
	const n = 8000
	for it := 0; it < n; it++ {
		z := []float64{normal.Rand(), normal.Rand(), normal.Rand()}
		s := make([]float64, 3)
		for r := range a {
			for c := range a[r] {
				s[r] += a[r][c] * z[c]
			}
			s[r] += loc[r]
		}
		w.Update(s)
	}

	mean := w.Mean()
	for i := range loc {
		if math.Abs(mean[i]-loc[i]) > 0.1 {
			t.Errorf("Mean %d: expected %v, got %v", i, loc[i], mean[i])
		}
	}

	cov := w.Covariance(false)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			for k := 0; k < 3; k++ {
				want += a[i][k] * a[j][k]
			}
			if math.Abs(cov.At(i, j)-want) > 0.15*want {
				t.Errorf("Covariance (%d,%d): expected %v, got %v", i, j, want, cov.At(i, j))
			}
		}
	}
}

func TestWelfordDiagonalMatchesFull(t *testing.T) {
	full := NewWelford(3)
	diagonal := NewDiagonalWelford(3)

	r := rng.NewKey(9).Rand()
	for i := 0; i < 500; i++ {
		s := []float64{r.Float64(), 2 * r.Float64(), r.Float64() - 1}
		full.Update(s)
		diagonal.Update(s)
	}

	fv := full.Variances(true)
	dv := diagonal.Variances(true)
	for i := range fv {
		if fv[i] != dv[i] {
			t.Errorf("Diagonal form diverged at coordinate %d: %v vs %v", i, fv[i], dv[i])
		}
	}
	if diagonal.Count() != full.Count() {
		t.Errorf("Expected matching counts, got %d and %d", diagonal.Count(), full.Count())
	}
}

func TestWelfordMerge(t *testing.T) {
	samples := make([][]float64, 300)
	for i := range samples {
		samples[i] = []float64{
			float64(i%7-3) / 3,
			float64(i%5-2)/2 + float64(i%7-3)/9,
		}
	}

	single := NewWelford(2)
	for _, s := range samples {
		single.Update(s)
	}

	left := NewWelford(2)
	right := NewWelford(2)
	for _, s := range samples[:100] {
		left.Update(s)
	}
	for _, s := range samples[100:] {
		right.Update(s)
	}
	left.Merge(right)

	if left.Count() != single.Count() {
		t.Fatalf("Expected merged count %d, got %d", single.Count(), left.Count())
	}
	wantMean, gotMean := single.Mean(), left.Mean()
	for i := range wantMean {
		if math.Abs(gotMean[i]-wantMean[i]) > 1e-9 {
			t.Errorf("Merged mean %d: expected %v, got %v", i, wantMean[i], gotMean[i])
		}
	}
	want, got := single.Covariance(false), left.Covariance(false)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(got.At(i, j)-want.At(i, j)) > 1e-9 {
				t.Errorf("Merged covariance (%d,%d): expected %v, got %v", i, j, want.At(i, j), got.At(i, j))
			}
		}
	}

	// Merging into an empty accumulator copies the donor outright.
	empty := NewWelford(2)
	empty.Merge(single)
	if empty.Count() != single.Count() || empty.Mean()[0] != single.Mean()[0] {
		t.Error("Expected merging into an empty accumulator to copy the donor")
	}
}

func TestWelfordDegenerate(t *testing.T) {
	w := NewWelford(2)
	if w.Count() != 0 {
		t.Fatalf("Expected count 0, got %d", w.Count())
	}

	w.Update([]float64{1, 2})
	v := w.Variances(false)
	if !math.IsNaN(v[0]) {
		t.Errorf("Expected NaN variance after one sample, got %v", v[0])
	}
	cov := w.Covariance(true)
	if !math.IsNaN(cov.At(0, 0)) {
		t.Errorf("Expected NaN covariance after one sample, got %v", cov.At(0, 0))
	}
}

func TestWelfordReset(t *testing.T) {
	w := NewDiagonalWelford(1)
	w.Update([]float64{5})
	w.Update([]float64{7})
	w.Reset()

	if w.Count() != 0 {
		t.Errorf("Expected count 0 after Reset, got %d", w.Count())
	}
	if w.Mean()[0] != 0 {
		t.Errorf("Expected zero mean after Reset, got %v", w.Mean()[0])
	}

	w.Update([]float64{1})
	w.Update([]float64{3})
	v := w.Variances(false)
	if math.Abs(v[0]-2) > 1e-12 {
		t.Errorf("Expected variance 2 after refilling, got %v", v[0])
	}
}
