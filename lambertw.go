package lambertw

import (
	"github.com/YuminosukeSato/lambertw/complexw"
	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

const (
	// NegInvE is -1/e, the branch point of W0 and W-1.
	NegInvE = fukushima.NegInvE

	// Omega is the omega constant, the solution of Ω·e^Ω = 1.
	Omega = fukushima.Omega
)

var (
	// ErrArgumentOutOfRange matches domain errors for arguments below -1/e.
	ErrArgumentOutOfRange = errors.ErrArgumentOutOfRange

	// ErrPositiveArgument matches domain errors for positive arguments to W-1.
	ErrPositiveArgument = errors.ErrPositiveArgument
)

// DomainError is returned for finite arguments outside a real branch.
type DomainError = errors.DomainError

// Result is the outcome of Solve.
type Result = complexw.Result

// W0 returns the principal branch of the Lambert W function to 50 bits.
func W0(z float64) (float64, error) {
	return fukushima.W0(z)
}

// W0Shifted returns W0(zc - 1/e) for a caller that already holds z + 1/e.
func W0Shifted(zc float64) (float64, error) {
	return fukushima.W0Shifted(zc)
}

// Wm1 returns the secondary branch W-1 to 50 bits.
func Wm1(z float64) (float64, error) {
	return fukushima.Wm1(z)
}

// FastW0 returns the principal branch to 24 bits.
func FastW0(z float64) (float64, error) {
	return fukushima.FastW0(z)
}

// FastWm1 returns the secondary branch to 24 bits.
func FastWm1(z float64) (float64, error) {
	return fukushima.FastWm1(z)
}

// W0Float32 returns the principal branch in single precision.
func W0Float32(z float32) (float32, error) {
	return fukushima.W0Float32(z)
}

// Wm1Float32 returns the secondary branch in single precision.
func Wm1Float32(z float32) (float32, error) {
	return fukushima.Wm1Float32(z)
}

// W returns branch k of the Lambert W function at z. It never fails: NaN or
// infinite arguments give NaN components, W(0, 0) is 0 and W(k, 0) is -Inf
// for every other k. The result is the last Halley iterate after at most
// complexw.DefaultMaxIterations steps.
func W(k int32, z complex128) complex128 {
	return complexw.W(k, z)
}

// Solve is W with solver diagnostics and options.
func Solve(k int32, z complex128, opts ...complexw.Option) Result {
	return complexw.Solve(k, z, opts...)
}
