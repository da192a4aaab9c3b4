package numeric

import "math"

// Tolerance is the absolute tolerance used by the safe trig functions and
// the comparison helpers. Coordinates computed through a chain of rotations
// accumulate epsilon-level error; without a tolerance, values like an
// exactly-polar latitude or a longitude of exactly 360° would fail range
// checks or produce NaN from the inverse trig functions.
const Tolerance = 1e-12

// SafeAtan2 returns atan2(n, d), or def when both |n| and |d| are below the
// tolerance and the angle is therefore undefined (e.g. longitude at a pole).
func SafeAtan2(n, d, def float64) float64 {
	if math.Abs(n) < Tolerance && math.Abs(d) < Tolerance {
		return def
	}
	return math.Atan2(n, d)
}

// SafeAsin returns asin(v) with v clamped into [-1, 1], so that unit-vector
// components that drift marginally out of range through rounding yield ±π/2
// instead of NaN.
func SafeAsin(v float64) float64 {
	if v > 1 {
		return math.Pi / 2
	}
	if v < -1 {
		return -math.Pi / 2
	}
	return math.Asin(v)
}

// SafeAcos returns acos(v) with v clamped into [-1, 1]: 0 for v > 1 and π
// for v < -1.
func SafeAcos(v float64) float64 {
	if v > 1 {
		return 0
	}
	if v < -1 {
		return math.Pi
	}
	return math.Acos(v)
}

// Equal reports whether a and b agree within tol.
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// InInterval reports whether x lies in [min, max], widened by tol on both
// sides.
func InInterval(x, min, max, tol float64) bool {
	return x >= min-tol && x <= max+tol
}
