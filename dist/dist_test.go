package dist

import (
	"math"
	"testing"
)

func TestBroadcastLen(t *testing.T) {
	tests := []struct {
		name    string
		lens    []int
		want    int
		wantErr bool
	}{
		{"scalar against vector", []int{1, 3}, 3, false},
		{"matching vectors", []int{3, 3}, 3, false},
		{"all scalar", []int{1, 1, 1}, 1, false},
		{"vector first", []int{3, 1, 3}, 3, false},
		{"mismatched vectors", []int{2, 3}, 0, true},
		{"empty slice", []int{0, 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := broadcastLen(tt.lens...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected an error for lengths %v", tt.lens)
				}
				return
			}
			if err != nil {
				t.Fatalf("broadcastLen(%v) failed: %v", tt.lens, err)
			}
			if got != tt.want {
				t.Errorf("Expected length %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	got := expand([]float64{2}, 3)
	if len(got) != 3 || got[0] != 2 || got[2] != 2 {
		t.Errorf("Expected [2 2 2], got %v", got)
	}

	src := []float64{1, 2, 3}
	got = expand(src, 3)
	src[0] = 99
	if got[0] != 1 {
		t.Error("Expected expand to copy full-length input")
	}
}

func TestCheckSimplex(t *testing.T) {
	if err := checkSimplex([]float64{0.2, 0.3, 0.5}, 3); err != nil {
		t.Errorf("Expected a valid simplex, got %v", err)
	}
	if err := checkSimplex([]float64{0.2, 0.3}, 3); err == nil {
		t.Error("Expected an error for a wrong-length vector")
	}
	if err := checkSimplex([]float64{0.5, 0.6}, 2); err == nil {
		t.Error("Expected an error for entries summing past 1")
	}
	if err := checkSimplex([]float64{1.2, -0.2}, 2); err == nil {
		t.Error("Expected an error for entries outside [0, 1]")
	}
}

func TestIsCount(t *testing.T) {
	for _, v := range []float64{0, 1, 42} {
		if !isCount(v) {
			t.Errorf("Expected %v to be a count", v)
		}
	}
	for _, v := range []float64{-1, 0.5, math.NaN(), math.Inf(1)} {
		if isCount(v) {
			t.Errorf("Expected %v not to be a count", v)
		}
	}
}

func TestIntegerIntervalEnumerate(t *testing.T) {
	s := IntegerInterval{Lower: []float64{0, 0}, Upper: []float64{3, 3}}
	vals, err := s.Enumerate()
	if err != nil {
		t.Fatalf("Enumerate failed: %v", err)
	}
	if len(vals) != 4 || vals[0] != 0 || vals[3] != 3 {
		t.Errorf("Expected [0 1 2 3], got %v", vals)
	}

	hetero := IntegerInterval{Lower: []float64{0, 0}, Upper: []float64{3, 5}}
	if _, err := hetero.Enumerate(); err == nil {
		t.Error("Expected an error for bounds that differ across the batch")
	}
}

func TestIntegerIntervalContains(t *testing.T) {
	s := IntegerInterval{Lower: []float64{0}, Upper: []float64{5}}
	if !s.Contains(0, 3) {
		t.Error("Expected 3 to be in [0, 5]")
	}
	for _, v := range []float64{-1, 6, 2.5} {
		if s.Contains(0, v) {
			t.Errorf("Expected %v to be outside [0, 5]", v)
		}
	}
}

func TestNonnegativeIntegersContains(t *testing.T) {
	var s NonnegativeIntegers
	if !s.Contains(3) {
		t.Error("Expected 3 to be in the support")
	}
	for _, v := range []float64{-1, 2.5, math.Inf(1)} {
		if s.Contains(v) {
			t.Errorf("Expected %v to be outside the support", v)
		}
	}
}

func TestMultinomialSupportContains(t *testing.T) {
	s := MultinomialSupport{TotalCount: []float64{5}, NumCategories: 3}
	if !s.Contains(0, []float64{2, 2, 1}) {
		t.Error("Expected [2 2 1] to be in the support")
	}
	bad := [][]float64{
		{2, 2},       // wrong length
		{2, 2, 2},    // wrong sum
		{2.5, 2, .5}, // fractional
		{-1, 3, 3},   // negative
	}
	for _, v := range bad {
		if s.Contains(0, v) {
			t.Errorf("Expected %v to be outside the support", v)
		}
	}
}
