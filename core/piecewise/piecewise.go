// Package piecewise evaluates piecewise rational approximations: an ordered
// list of intervals, each pairing a variable transform with a rational
// function of the transformed argument.
package piecewise

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/lambertw/core/elementary"
	"github.com/YuminosukeSato/lambertw/core/rational"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// Float is the set of floating-point types a Table can be instantiated with.
type Float interface {
	~float32 | ~float64
}

// InvSqrtE is 1/sqrt(e), the additive constant of the ScaledSqrt transform.
const InvSqrtE = 0.6065306597126334

// Transform selects the change of variable applied before the rational
// function is evaluated. zc denotes the shifted argument z + 1/e.
type Transform int

const (
	// SqrtShifted maps to sqrt(zc).
	SqrtShifted Transform = iota
	// ScaledSqrt maps to -z / (1/sqrt(e) + sqrt(zc)).
	ScaledSqrt
	// LogShifted maps to ln(zc).
	LogShifted
	// Log maps to ln(z).
	Log
	// LogNeg maps to ln(-z).
	LogNeg
)

// String returns the transform written as an expression.
func (t Transform) String() string {
	switch t {
	case SqrtShifted:
		return "sqrt(z+1/e)"
	case ScaledSqrt:
		return "-z/(1/sqrt(e)+sqrt(z+1/e))"
	case LogShifted:
		return "ln(z+1/e)"
	case Log:
		return "ln(z)"
	case LogNeg:
		return "ln(-z)"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// Apply computes the transformed argument.
func Apply[T Float](t Transform, z, zc T) T {
	switch t {
	case SqrtShifted:
		return elementary.Sqrt(zc)
	case ScaledSqrt:
		return -z / (T(InvSqrtE) + elementary.Sqrt(zc))
	case LogShifted:
		return elementary.Ln(zc)
	case Log:
		return elementary.Ln(z)
	case LogNeg:
		return elementary.Ln(-z)
	default:
		return T(math.NaN())
	}
}

// Variable selects which argument the interval bounds are compared against.
type Variable int

const (
	// Plain compares bounds against z.
	Plain Variable = iota
	// Shifted compares bounds against zc = z + 1/e.
	Shifted
)

// Interval is one piece of a Table. It applies to arguments v with
// previous.Bound < v <= Bound.
type Interval[T Float] struct {
	Label     string
	Bound     T
	Transform Transform
	Num       []T
	Den       []T
}

// Eval applies the interval's transform and evaluates its rational function.
func (iv *Interval[T]) Eval(z, zc T) T {
	return rational.Eval(Apply(iv.Transform, z, zc), iv.Num, iv.Den)
}

// Table is an ordered piecewise approximation. Bounds strictly increase and
// the final interval is unbounded, so every non-NaN argument selects exactly
// one interval.
type Table[T Float] struct {
	Name      string
	Bits      int
	Variable  Variable
	Intervals []Interval[T]
}

// Select returns the index of the first interval whose bound is not exceeded
// by v, or -1 when no interval applies (v is NaN).
func (t *Table[T]) Select(v T) int {
	for i := range t.Intervals {
		if v <= t.Intervals[i].Bound {
			return i
		}
	}
	return -1
}

// Eval evaluates the table at z. zc must equal z + 1/e computed by the caller;
// it is passed separately so that arguments close to the branch point keep
// their precision. NaN is returned when no interval applies.
func (t *Table[T]) Eval(z, zc T) T {
	v := z
	if t.Variable == Shifted {
		v = zc
	}
	i := t.Select(v)
	if i < 0 {
		return T(math.NaN())
	}
	return t.Intervals[i].Eval(z, zc)
}

// Validate checks the structural invariants of the table: it is non-empty,
// bounds strictly increase, the last interval is unbounded and every
// interval has coefficients with a unit leading denominator term.
func (t *Table[T]) Validate() error {
	if len(t.Intervals) == 0 {
		return errors.Newf("table %q has no intervals", t.Name)
	}
	for i := range t.Intervals {
		iv := &t.Intervals[i]
		if len(iv.Num) == 0 || len(iv.Den) == 0 {
			return errors.Newf("table %q interval %s has empty coefficients", t.Name, iv.Label)
		}
		if iv.Den[0] != 1 {
			return errors.Newf("table %q interval %s: denominator must start with 1, got %v", t.Name, iv.Label, iv.Den[0])
		}
		if i > 0 && !(t.Intervals[i-1].Bound < iv.Bound) {
			return errors.Newf("table %q interval %s: bound %v does not exceed %v",
				t.Name, iv.Label, iv.Bound, t.Intervals[i-1].Bound)
		}
	}
	if last := t.Intervals[len(t.Intervals)-1].Bound; !math.IsInf(float64(last), 1) {
		return errors.Newf("table %q: final bound %v is not +Inf", t.Name, last)
	}
	return nil
}
