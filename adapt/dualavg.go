package adapt

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DualAveraging accumulates gradients into a proximal iterate and the
// step-weighted running average of that iterate. Updating never branches on
// the data, so a fixed number of steps costs the same regardless of input.
type DualAveraging struct {
	// T0 softens the gradient average during the first iterations.
	T0 float64
	// Kappa is the decay exponent of the iterate-average weights.
	Kappa float64
	// Gamma scales the shrinkage toward the prox center.
	Gamma float64

	prox []float64
	x    []float64
	xAvg []float64
	gAvg []float64
	step int
}

// NewDualAveraging starts a schedule shrinking toward proxCenter, with the
// constants T0 = 10, Kappa = 0.75 and Gamma = 0.05.
func NewDualAveraging(proxCenter []float64) *DualAveraging {
	d := &DualAveraging{T0: 10, Kappa: 0.75, Gamma: 0.05}
	d.Reset(proxCenter)
	return d
}

// Reset restarts the schedule at a new prox center, keeping the constants.
func (d *DualAveraging) Reset(proxCenter []float64) {
	n := len(proxCenter)
	d.prox = append(d.prox[:0], proxCenter...)
	d.x = make([]float64, n)
	d.xAvg = make([]float64, n)
	d.gAvg = make([]float64, n)
	d.step = 0
}

// Update folds one gradient into the schedule:
//
//	t     <- t+1
//	gAvg  <- (1 - 1/(t+T0))*gAvg + g/(t+T0)
//	x     <- prox - sqrt(t)/Gamma * gAvg
//	xAvg  <- (1 - t^-Kappa)*xAvg + t^-Kappa * x
func (d *DualAveraging) Update(grad []float64) {
	if len(grad) != len(d.prox) {
		panic("adapt: gradient length mismatch")
	}
	d.step++
	t := float64(d.step)
	gw := 1 / (t + d.T0)
	w := math.Pow(t, -d.Kappa)

	floats.Scale(1-gw, d.gAvg)
	floats.AddScaled(d.gAvg, gw, grad)

	copy(d.x, d.prox)
	floats.AddScaled(d.x, -math.Sqrt(t)/d.Gamma, d.gAvg)

	floats.Scale(1-w, d.xAvg)
	floats.AddScaled(d.xAvg, w, d.x)
}

// Current returns the raw iterate after the last update.
func (d *DualAveraging) Current() []float64 {
	return append([]float64(nil), d.x...)
}

// Average returns the step-weighted average of the iterates, the quantity a
// warmup schedule reads off when it ends.
func (d *DualAveraging) Average() []float64 {
	return append([]float64(nil), d.xAvg...)
}

// Steps returns the number of updates folded in so far.
func (d *DualAveraging) Steps() int { return d.step }
