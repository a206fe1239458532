package special

import "math"

// XLogY returns x * log(y), defined as exactly 0 when x == 0 regardless of
// y, including y = 0, y < 0 and NaN.
func XLogY(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// XLog1pY returns x * log(1+y), defined as exactly 0 when x == 0 regardless
// of y. The log1p form keeps precision for small y.
func XLog1pY(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log1p(y)
}

// XLogYGrad returns the partial derivatives of XLogY at (x, y). The x
// derivative is log(y) even where the value is clamped to zero; the y
// derivative x/y carries the clamp, so it is 0 whenever x == 0.
func XLogYGrad(x, y float64) (dx, dy float64) {
	dx = math.Log(y)
	if x == 0 {
		return dx, 0
	}
	return dx, x / y
}

// XLog1pYGrad returns the partial derivatives of XLog1pY at (x, y), with
// the same clamp convention as XLogYGrad.
func XLog1pYGrad(x, y float64) (dx, dy float64) {
	dx = math.Log1p(y)
	if x == 0 {
		return dx, 0
	}
	return dx, x / (1 + y)
}
