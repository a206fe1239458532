package adapt

import (
	"math"
	"testing"
)

func TestDualAveragingDefaults(t *testing.T) {
	da := NewDualAveraging([]float64{0})
	if da.T0 != 10 || da.Kappa != 0.75 || da.Gamma != 0.05 {
		t.Errorf("Expected constants 10/0.75/0.05, got %v/%v/%v", da.T0, da.Kappa, da.Gamma)
	}
	if da.Steps() != 0 {
		t.Errorf("Expected 0 steps before the first update, got %d", da.Steps())
	}
}

func TestDualAveragingQuadratic(t *testing.T) {
	// Minimize (x+1)^2 from a standing start; the averaged iterate settles
	// at the minimizer within a few steps.
	da := NewDualAveraging([]float64{0})
	da.Gamma = 0.5
	for i := 0; i < 10; i++ {
		x := da.Current()[0]
		da.Update([]float64{2 * (x + 1)})
	}
	if da.Steps() != 10 {
		t.Fatalf("Expected 10 steps, got %d", da.Steps())
	}
	got := da.Average()[0]
	if math.Abs(got+1) > 1e-3 {
		t.Errorf("Expected average near -1 after 10 steps, got %v", got)
	}
}

func TestDualAveragingVector(t *testing.T) {
	da := NewDualAveraging([]float64{0, 0})
	da.Gamma = 0.5
	target := []float64{-1, -0.5}
	for i := 0; i < 10; i++ {
		x := da.Current()
		g := []float64{2 * (x[0] - target[0]), 2 * (x[1] - target[1])}
		da.Update(g)
	}
	avg := da.Average()
	for j, want := range target {
		if math.Abs(avg[j]-want) > 1e-3 {
			t.Errorf("Coordinate %d: expected average near %v, got %v", j, want, avg[j])
		}
	}
}

func TestDualAveragingReset(t *testing.T) {
	da := NewDualAveraging([]float64{0})
	da.Gamma = 0.5
	da.Update([]float64{1})
	if da.Steps() != 1 {
		t.Fatalf("Expected 1 step, got %d", da.Steps())
	}

	da.Reset([]float64{2})
	if da.Steps() != 0 {
		t.Errorf("Expected Reset to clear the step count, got %d", da.Steps())
	}
	if da.Average()[0] != 0 {
		t.Errorf("Expected Reset to clear the average, got %v", da.Average()[0])
	}

	// A zero gradient pins the iterate to the new prox center.
	da.Update([]float64{0})
	if math.Abs(da.Current()[0]-2) > 1e-12 {
		t.Errorf("Expected the iterate at the prox center 2, got %v", da.Current()[0])
	}
}

func TestDualAveragingCopies(t *testing.T) {
	da := NewDualAveraging([]float64{0})
	da.Update([]float64{1})
	cur := da.Current()
	cur[0] = 99
	if da.Current()[0] == 99 {
		t.Error("Expected Current to return a copy")
	}
}
