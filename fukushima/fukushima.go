// Package fukushima implements the real branches of the Lambert W function
// with Fukushima's piecewise minimax rational approximations.
//
// Each branch is available in three tiers: 50-bit accuracy on float64, 24-bit
// accuracy on float64 and 24-bit accuracy on float32. The selectors handle
// NaN, the domain check and the exact special points before delegating to a
// coefficient table; the tables themselves never see an argument outside
// their domain.
//
// Reference: T. Fukushima, "Precise and fast computation of Lambert
// W function by piecewise minimax rational function approximation with
// variable transformation" (2020).
package fukushima

import (
	"math"

	"github.com/YuminosukeSato/lambertw/core/piecewise"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

const (
	// NegInvE is -1/e, the branch point shared by W0 and W-1.
	NegInvE = -0.36787944117144233

	// Omega is the omega constant W0(1).
	Omega = 0.5671432904097838

	negInvE32 = float32(NegInvE)
)

var (
	inf64 = math.Inf(1)
	inf32 = float32(math.Inf(1))
	nan64 = math.NaN()
	nan32 = float32(math.NaN())
)

// W0 returns the principal branch W0(z) to 50 bits of accuracy.
//
// Special cases are:
//
//	W0(-1/e) = -1
//	W0(0) = 0
//	W0(1) = Omega
//	W0(e) = 1
//	W0(+Inf) = +Inf
//	W0(NaN) = NaN
//	W0(-Inf) = NaN
//
// Finite z < -1/e returns NaN with an ArgumentOutOfRange DomainError.
func W0(z float64) (float64, error) {
	switch {
	case math.IsNaN(z) || math.IsInf(z, -1):
		return nan64, nil
	case z < NegInvE:
		return nan64, errors.NewDomainError("W0", errors.ReasonArgumentOutOfRange, z)
	case z == NegInvE:
		return -1, nil
	case z == 0:
		return 0, nil
	case z == 1:
		return Omega, nil
	case z == math.E:
		return 1, nil
	case math.IsInf(z, 1):
		return inf64, nil
	}
	return w0Accurate.Eval(z, z-NegInvE), nil
}

// W0Shifted returns W0(zc - 1/e) to 50 bits of accuracy, taking the shifted
// argument zc = z + 1/e directly. Callers that already hold zc avoid the
// cancellation of forming it from z near the branch point.
func W0Shifted(zc float64) (float64, error) {
	switch {
	case math.IsNaN(zc) || math.IsInf(zc, -1):
		return nan64, nil
	case zc < 0:
		return nan64, errors.NewDomainError("W0Shifted", errors.ReasonArgumentOutOfRange, zc)
	case zc == 0:
		return -1, nil
	case math.IsInf(zc, 1):
		return inf64, nil
	}
	return w0Accurate.Eval(zc+NegInvE, zc), nil
}

// Wm1 returns the secondary branch W-1(z) to 50 bits of accuracy.
//
// Special cases are:
//
//	Wm1(-1/e) = -1
//	Wm1(0) = NaN
//	Wm1(NaN) = NaN
//	Wm1(±Inf) = NaN
//
// z > 0 returns NaN with a PositiveArgument DomainError and z < -1/e returns
// NaN with an ArgumentOutOfRange DomainError.
func Wm1(z float64) (float64, error) {
	switch {
	case math.IsNaN(z) || math.IsInf(z, 0):
		return nan64, nil
	case z > 0:
		return nan64, errors.NewDomainError("Wm1", errors.ReasonPositiveArgument, z)
	case z < NegInvE:
		return nan64, errors.NewDomainError("Wm1", errors.ReasonArgumentOutOfRange, z)
	case z == NegInvE:
		return -1, nil
	case z == 0:
		return nan64, nil
	}
	return wm1Accurate.Eval(z, z-NegInvE), nil
}

// FastW0 returns W0(z) to 24 bits of accuracy. Special cases match W0
// except that only -1/e, 0 and +Inf are exact.
func FastW0(z float64) (float64, error) {
	switch {
	case math.IsNaN(z) || math.IsInf(z, -1):
		return nan64, nil
	case z < NegInvE:
		return nan64, errors.NewDomainError("FastW0", errors.ReasonArgumentOutOfRange, z)
	case z == NegInvE:
		return -1, nil
	case z == 0:
		return 0, nil
	case math.IsInf(z, 1):
		return inf64, nil
	}
	return w0Fast.Eval(z, z-NegInvE), nil
}

// FastWm1 returns W-1(z) to 24 bits of accuracy. Special cases match Wm1.
func FastWm1(z float64) (float64, error) {
	switch {
	case math.IsNaN(z) || math.IsInf(z, 0):
		return nan64, nil
	case z > 0:
		return nan64, errors.NewDomainError("FastWm1", errors.ReasonPositiveArgument, z)
	case z < NegInvE:
		return nan64, errors.NewDomainError("FastWm1", errors.ReasonArgumentOutOfRange, z)
	case z == NegInvE:
		return -1, nil
	case z == 0:
		return nan64, nil
	}
	return wm1Fast.Eval(z, z-NegInvE), nil
}

// W0Float32 returns W0(z) to 24 bits of accuracy in single precision.
func W0Float32(z float32) (float32, error) {
	switch {
	case z != z || math.IsInf(float64(z), -1):
		return nan32, nil
	case z < negInvE32:
		return nan32, errors.NewDomainError("W0Float32", errors.ReasonArgumentOutOfRange, float64(z))
	case z == negInvE32:
		return -1, nil
	case z == 0:
		return 0, nil
	case math.IsInf(float64(z), 1):
		return inf32, nil
	}
	return w0Float32.Eval(z, z-negInvE32), nil
}

// Wm1Float32 returns W-1(z) to 24 bits of accuracy in single precision.
func Wm1Float32(z float32) (float32, error) {
	switch {
	case z != z || math.IsInf(float64(z), 0):
		return nan32, nil
	case z > 0:
		return nan32, errors.NewDomainError("Wm1Float32", errors.ReasonPositiveArgument, float64(z))
	case z < negInvE32:
		return nan32, errors.NewDomainError("Wm1Float32", errors.ReasonArgumentOutOfRange, float64(z))
	case z == negInvE32:
		return -1, nil
	case z == 0:
		return nan32, nil
	}
	return wm1Float32.Eval(z, z-negInvE32), nil
}

// TableInfo describes one coefficient table for audits and tooling.
type TableInfo struct {
	Name      string
	Branch    int // 0 for W0, -1 for W-1
	Bits      int
	Float32   bool
	Variable  piecewise.Variable
	Intervals int
	// Labels holds the interval labels from the paper in evaluation order.
	Labels []string
	// Bounds holds the upper bound of each interval widened to float64.
	Bounds []float64

	validate func() error
}

// Validate checks the structural invariants of the underlying table.
func (ti TableInfo) Validate() error {
	return ti.validate()
}

func describe[T piecewise.Float](t *piecewise.Table[T], branch int, single bool) TableInfo {
	info := TableInfo{
		Name:      t.Name,
		Branch:    branch,
		Bits:      t.Bits,
		Float32:   single,
		Variable:  t.Variable,
		Intervals: len(t.Intervals),
		validate:  t.Validate,
	}
	for _, iv := range t.Intervals {
		info.Labels = append(info.Labels, iv.Label)
		info.Bounds = append(info.Bounds, float64(iv.Bound))
	}
	return info
}

// Tables lists every coefficient table in the package.
func Tables() []TableInfo {
	return []TableInfo{
		describe(&w0Accurate, 0, false),
		describe(&wm1Accurate, -1, false),
		describe(&w0Fast, 0, false),
		describe(&wm1Fast, -1, false),
		describe(&w0Float32, 0, true),
		describe(&wm1Float32, -1, true),
	}
}
