// Package rational evaluates polynomials and ratios of polynomials whose
// coefficients are stored in ascending order of degree.
package rational

// Float is the set of floating-point types the evaluators accept.
type Float interface {
	~float32 | ~float64
}

// Horner evaluates c[0] + c[1]*x + ... + c[n]*x^n.
// An empty coefficient slice evaluates to zero.
//
// Each product is converted back to T before the addition so the compiler
// cannot fuse the pair into an FMA; the result is then identical on every
// architecture.
func Horner[T Float](x T, c []T) T {
	if len(c) == 0 {
		return 0
	}
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = T(acc*x) + c[i]
	}
	return acc
}

// Eval returns P(x)/Q(x) where P has coefficients num and Q has coefficients den.
// The quotient follows IEEE-754 semantics, so a vanishing denominator yields
// ±Inf or NaN instead of a panic.
func Eval[T Float](x T, num, den []T) T {
	return Horner(x, num) / Horner(x, den)
}
