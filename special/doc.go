// Package special provides numerically guarded special functions for
// log-density computations.
//
// XLogY and XLog1pY evaluate x*log(y) and x*log1p(y) with the convention
// that the product is exactly zero when x is zero, so vanishing terms never
// poison a density sum with NaN from 0 * -Inf:
//
//	special.XLogY(0, 0)    // 0, not NaN
//	special.XLogY(3, 0)    // -Inf
//	special.XLog1pY(2, -1) // -Inf
//
// The Grad companions expose the partial derivatives under the same
// convention; the x derivative is never clamped:
//
//	dx, dy := special.XLogYGrad(0, 0) // -Inf, 0
//
// The log Beta and regularized incomplete Beta functions used alongside
// these come from gonum's mathext.
package special
