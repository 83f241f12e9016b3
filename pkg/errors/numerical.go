package errors

import (
	"math"
	"math/cmplx"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckComplex checks both components of a complex iterate.
func CheckComplex(operation string, value complex128, iteration int) error {
	if cmplx.IsNaN(value) || cmplx.IsInf(value) {
		return NewNumericalInstabilityError(operation, []float64{real(value), imag(value)}, iteration)
	}
	return nil
}
