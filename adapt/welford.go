package adapt

import "gonum.org/v1/gonum/mat"

// Welford accumulates a streaming mean and covariance estimate in a single
// pass. The full form keeps a symmetric accumulator; the diagonal form
// keeps only per-coordinate sums.
type Welford struct {
	dim      int
	diagonal bool
	n        float64
	mean     []float64
	m2       *mat.SymDense // full form
	m2Diag   []float64     // diagonal form

	deltaPre  []float64
	deltaPost []float64
}

// NewWelford returns a full-covariance accumulator for dim-dimensional
// samples.
func NewWelford(dim int) *Welford {
	return &Welford{
		dim:       dim,
		mean:      make([]float64, dim),
		m2:        mat.NewSymDense(dim, nil),
		deltaPre:  make([]float64, dim),
		deltaPost: make([]float64, dim),
	}
}

// NewDiagonalWelford returns an accumulator that tracks only per-coordinate
// variances.
func NewDiagonalWelford(dim int) *Welford {
	return &Welford{
		dim:       dim,
		diagonal:  true,
		mean:      make([]float64, dim),
		m2Diag:    make([]float64, dim),
		deltaPre:  make([]float64, dim),
		deltaPost: make([]float64, dim),
	}
}

// Dim returns the sample dimension.
func (w *Welford) Dim() int { return w.dim }

// Count returns the number of samples folded in.
func (w *Welford) Count() int { return int(w.n) }

// Update folds one sample into the estimate. The pre-update delta pairs
// with the post-update delta, so the accumulator stays unbiased after the
// final 1/(n-1) scaling.
func (w *Welford) Update(sample []float64) {
	if len(sample) != w.dim {
		panic("adapt: sample length mismatch")
	}
	w.n++
	for i, x := range sample {
		w.deltaPre[i] = x - w.mean[i]
		w.mean[i] += w.deltaPre[i] / w.n
		w.deltaPost[i] = x - w.mean[i]
	}
	if w.diagonal {
		for i := range sample {
			w.m2Diag[i] += w.deltaPre[i] * w.deltaPost[i]
		}
		return
	}
	for i := 0; i < w.dim; i++ {
		for j := i; j < w.dim; j++ {
			w.m2.SetSym(i, j, w.m2.At(i, j)+w.deltaPre[i]*w.deltaPost[j])
		}
	}
}

// Mean returns a copy of the streaming mean.
func (w *Welford) Mean() []float64 {
	return append([]float64(nil), w.mean...)
}

// Covariance returns the sample covariance estimate. With regularize set,
// the estimate is shrunk toward the identity:
//
//	cov * n/(n+5) + 1e-3 * 5/(n+5) * I
//
// Fewer than two samples yield NaN entries rather than a failure.
// Covariance panics on a diagonal accumulator; use Variances there.
func (w *Welford) Covariance(regularize bool) *mat.SymDense {
	if w.diagonal {
		panic("adapt: Covariance on a diagonal accumulator")
	}
	scale, shrink := w.finalizeFactors(regularize)
	out := mat.NewSymDense(w.dim, nil)
	for i := 0; i < w.dim; i++ {
		for j := i; j < w.dim; j++ {
			v := w.m2.At(i, j) * scale
			if i == j {
				v += shrink
			}
			out.SetSym(i, j, v)
		}
	}
	return out
}

// Variances returns the per-coordinate variance estimate, the diagonal of
// Covariance, applying the same shrinkage when regularize is set. It works
// in both forms.
func (w *Welford) Variances(regularize bool) []float64 {
	scale, shrink := w.finalizeFactors(regularize)
	out := make([]float64, w.dim)
	for i := range out {
		if w.diagonal {
			out[i] = w.m2Diag[i]*scale + shrink
		} else {
			out[i] = w.m2.At(i, i)*scale + shrink
		}
	}
	return out
}

func (w *Welford) finalizeFactors(regularize bool) (scale, shrink float64) {
	scale = 1 / (w.n - 1)
	if !regularize {
		return scale, 0
	}
	scale *= w.n / (w.n + 5)
	shrink = 1e-3 * (5 / (w.n + 5))
	return scale, shrink
}

// Merge folds another accumulator into w, as if w had also seen every
// sample other saw. Both accumulators must share dimension and form.
func (w *Welford) Merge(other *Welford) {
	if other.dim != w.dim || other.diagonal != w.diagonal {
		panic("adapt: merging incompatible accumulators")
	}
	if other.n == 0 {
		return
	}
	if w.n == 0 {
		w.n = other.n
		copy(w.mean, other.mean)
		if w.diagonal {
			copy(w.m2Diag, other.m2Diag)
		} else {
			w.m2.CopySym(other.m2)
		}
		return
	}

	nTot := w.n + other.n
	corr := w.n * other.n / nTot
	for i := range w.deltaPre {
		w.deltaPre[i] = other.mean[i] - w.mean[i]
	}
	if w.diagonal {
		for i := range w.m2Diag {
			w.m2Diag[i] += other.m2Diag[i] + w.deltaPre[i]*w.deltaPre[i]*corr
		}
	} else {
		for i := 0; i < w.dim; i++ {
			for j := i; j < w.dim; j++ {
				w.m2.SetSym(i, j, w.m2.At(i, j)+other.m2.At(i, j)+w.deltaPre[i]*w.deltaPre[j]*corr)
			}
		}
	}
	for i := range w.mean {
		w.mean[i] += w.deltaPre[i] * other.n / nTot
	}
	w.n = nTot
}

// Reset clears the accumulator for reuse.
func (w *Welford) Reset() {
	w.n = 0
	for i := range w.mean {
		w.mean[i] = 0
	}
	if w.diagonal {
		for i := range w.m2Diag {
			w.m2Diag[i] = 0
		}
		return
	}
	w.m2.Zero()
}
