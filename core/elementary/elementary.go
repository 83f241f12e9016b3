// Package elementary provides the square root and natural logarithm used by
// the rational approximations.
//
// The implementation is chosen at compile time. The default build uses the
// standard library; building with the lambertw_softfloat tag swaps in pure
// software routines for targets without a usable floating-point unit. The
// tag is the only switch: backend_math.go builds without it and
// backend_soft.go builds with it, so every build has exactly one backend.
//
// Both backends return correct logarithms for subnormal arguments, which the
// secondary branch evaluates for z in (-2.2e-308, 0).
package elementary

// Float is the set of floating-point types accepted by Sqrt and Ln.
type Float interface {
	~float32 | ~float64
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T Float](x T) T {
	return T(sqrt64(float64(x)))
}

// Ln returns the natural logarithm of x.
//
// Special cases are:
//
//	Ln(+Inf) = +Inf
//	Ln(0) = -Inf
//	Ln(x < 0) = NaN
//	Ln(NaN) = NaN
func Ln[T Float](x T) T {
	return T(log64(float64(x)))
}
