package special

import (
	"math"
	"testing"
)

func TestXLogY(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, 1, 0},
		{1, 2, math.Log(2)},
		{2, 3, 2 * math.Log(3)},
		{0.5, 0.25, 0.5 * math.Log(0.25)},
		{3, 0, math.Inf(-1)},
		{0, 0, 0},
		{0, 1, 0},
		{0, -5, 0},
		{0, math.Inf(1), 0},
		{0, math.NaN(), 0},
	}

	for _, tt := range tests {
		got := XLogY(tt.x, tt.y)
		if got != tt.want && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("XLogY(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestXLog1pY(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, -1, math.Inf(-1)},
		{1, 0, 0},
		{1, 1, math.Log(2)},
		{2, 2, 2 * math.Log(3)},
		{0, -1, 0},
		{0, 0, 0},
		{0, math.NaN(), 0},
	}

	for _, tt := range tests {
		got := XLog1pY(tt.x, tt.y)
		if got != tt.want && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("XLog1pY(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestXLogYGrad(t *testing.T) {
	// At x = 0 the value is clamped but the x slope stays log(y).
	dx, dy := XLogYGrad(0, 0)
	if !math.IsInf(dx, -1) {
		t.Errorf("Expected dx = -Inf at (0, 0), got %v", dx)
	}
	if dy != 0 {
		t.Errorf("Expected dy = 0 at (0, 0), got %v", dy)
	}

	dx, dy = XLogYGrad(0, 2)
	if math.Abs(dx-math.Log(2)) > 1e-12 {
		t.Errorf("Expected dx = log(2) at (0, 2), got %v", dx)
	}
	if dy != 0 {
		t.Errorf("Expected dy = 0 at (0, 2), got %v", dy)
	}

	for _, y := range []float64{1, 2, 3} {
		dx, dy = XLogYGrad(1, y)
		if math.Abs(dx-math.Log(y)) > 1e-12 {
			t.Errorf("Expected dx = log(%v), got %v", y, dx)
		}
		if math.Abs(dy-1/y) > 1e-12 {
			t.Errorf("Expected dy = %v at y = %v, got %v", 1/y, y, dy)
		}
	}
}

func TestXLog1pYGrad(t *testing.T) {
	wantDy := []float64{math.Inf(1), 1, 0.5}
	for i, y := range []float64{-1, 0, 1} {
		dx, dy := XLog1pYGrad(1, y)
		if dx != math.Log1p(y) && math.Abs(dx-math.Log1p(y)) > 1e-12 {
			t.Errorf("Expected dx = log1p(%v), got %v", y, dx)
		}
		if dy != wantDy[i] && math.Abs(dy-wantDy[i]) > 1e-12 {
			t.Errorf("Expected dy = %v at y = %v, got %v", wantDy[i], y, dy)
		}
	}

	// x = 0 clamps the y slope but not the x slope.
	dx, dy := XLog1pYGrad(0, -1)
	if !math.IsInf(dx, -1) {
		t.Errorf("Expected dx = -Inf at (0, -1), got %v", dx)
	}
	if dy != 0 {
		t.Errorf("Expected dy = 0 at (0, -1), got %v", dy)
	}
}

func TestXLogYGradFiniteDifference(t *testing.T) {
	const h = 1e-6
	x, y := 2.0, 3.0

	dx, dy := XLogYGrad(x, y)
	numDx := (XLogY(x+h, y) - XLogY(x-h, y)) / (2 * h)
	numDy := (XLogY(x, y+h) - XLogY(x, y-h)) / (2 * h)

	if math.Abs(dx-numDx) > 1e-6 {
		t.Errorf("dx = %v disagrees with finite difference %v", dx, numDx)
	}
	if math.Abs(dy-numDy) > 1e-6 {
		t.Errorf("dy = %v disagrees with finite difference %v", dy, numDy)
	}
}
