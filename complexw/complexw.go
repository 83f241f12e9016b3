// Package complexw evaluates any branch W_k of the Lambert W function at a
// complex argument using Halley's method.
//
// Real arguments on the principal branch (z >= -1/e) and on the secondary
// branch (-1/e <= z < 0) are delegated to the fukushima selectors. Everything
// else is iterated from a seed chosen by the region z falls in.
//
// Accuracy is reduced close to the branch cut along the negative real axis,
// where consecutive branches meet and Halley's method may settle on a
// neighbouring branch or oscillate between two iterates.
package complexw

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

const (
	// DefaultMaxIterations is the iteration cap used by W and Solve.
	DefaultMaxIterations = 30

	// DefaultTolerance is the step size below which Halley's method stops.
	DefaultTolerance = 1e-30
)

// Seed identifies how the starting point of the iteration was chosen.
type Seed int

const (
	// SeedExact means the result is a special value and no iteration ran.
	SeedExact Seed = iota
	// SeedReal means the argument was delegated to a real-branch selector.
	SeedReal
	// SeedAsymptotic is ln z + 2πik - ln(ln z + 2πik).
	SeedAsymptotic
	// SeedBranchPoint is the series in p = sqrt(2(ez+1)) around -1/e.
	SeedBranchPoint
	// SeedPadeW0 is the (1,1) Padé approximant of W0 on |z-1/2| <= 1/2.
	SeedPadeW0
	// SeedPadeWm1 is the (1,1) Padé approximant of W-1 on |z-1/2| <= 1/2.
	SeedPadeWm1
)

func (s Seed) String() string {
	switch s {
	case SeedExact:
		return "exact"
	case SeedReal:
		return "real"
	case SeedAsymptotic:
		return "asymptotic"
	case SeedBranchPoint:
		return "branch-point"
	case SeedPadeW0:
		return "pade-w0"
	case SeedPadeWm1:
		return "pade-wm1"
	default:
		return "unknown"
	}
}

// Result carries W_k(z) together with solver diagnostics.
type Result struct {
	W complex128
	// Iterations is the number of Halley steps taken.
	Iterations int
	// Converged reports whether the last step was within the tolerance.
	// Exact and delegated results are always converged.
	Converged bool
	// Cycled reports that cycle detection stopped the iteration.
	Cycled bool
	// Step is the magnitude of the last Halley correction.
	Step float64
	Seed Seed
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		s.maxIter = n
	}
}

// WithTolerance sets the step size at which the iteration stops.
func WithTolerance(tol float64) Option {
	return func(s *Solver) {
		s.tol = tol
	}
}

// WithCycleDetection stops the iteration when an iterate equals the one two
// steps earlier and returns the iterate in between.
func WithCycleDetection(enabled bool) Option {
	return func(s *Solver) {
		s.detectCycles = enabled
	}
}

// WithConvergenceWarning emits an errors.ConvergenceWarning through
// errors.Warn whenever the iteration cap is reached without convergence.
func WithConvergenceWarning(enabled bool) Option {
	return func(s *Solver) {
		s.warn = enabled
	}
}

// Solver runs Halley's method with a fixed configuration. The zero value is
// not usable; construct one with New.
type Solver struct {
	maxIter      int
	tol          float64
	detectCycles bool
	warn         bool
}

var defaultSolver = &Solver{maxIter: DefaultMaxIterations, tol: DefaultTolerance}

func configure(opts []Option) *Solver {
	s := &Solver{maxIter: DefaultMaxIterations, tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New returns a Solver configured by opts. It returns a ValidationError if
// the iteration cap is below one or the tolerance is negative or NaN.
func New(opts ...Option) (*Solver, error) {
	s := configure(opts)
	if s.maxIter < 1 {
		return nil, errors.NewValidationError("max_iterations", "must be at least 1", s.maxIter)
	}
	if math.IsNaN(s.tol) || s.tol < 0 {
		return nil, errors.NewValidationError("tolerance", "must be a non-negative number", s.tol)
	}
	return s, nil
}

// W returns W_k(z) with the default configuration. It never fails; invalid
// or non-finite arguments produce NaN components.
func W(k int32, z complex128) complex128 {
	return defaultSolver.Solve(k, z).W
}

// Solve is like W but also reports diagnostics. Option values that New
// would reject fall back to their defaults.
func Solve(k int32, z complex128, opts ...Option) Result {
	if len(opts) == 0 {
		return defaultSolver.Solve(k, z)
	}
	s := configure(opts)
	if s.maxIter < 1 {
		s.maxIter = DefaultMaxIterations
	}
	if math.IsNaN(s.tol) || s.tol < 0 {
		s.tol = DefaultTolerance
	}
	return s.Solve(k, z)
}

// Solve returns W_k(z) and the diagnostics of the iteration.
func (s *Solver) Solve(k int32, z complex128) Result {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return Result{W: cmplx.NaN(), Seed: SeedExact, Converged: true}
	}
	if z == 0 {
		if k == 0 {
			return Result{W: 0, Seed: SeedExact, Converged: true}
		}
		return Result{W: complex(math.Inf(-1), 0), Seed: SeedExact, Converged: true}
	}
	if r, ok := delegate(k, z); ok {
		return r
	}

	w, seed := start(k, z)
	res := Result{Seed: seed}

	var prev2 complex128
	havePrev2 := false
	for res.Iterations < s.maxIter {
		prev := w
		w = halley(w, z)
		res.Iterations++

		if cmplx.IsNaN(w) || cmplx.IsInf(w) {
			break
		}
		if s.detectCycles && havePrev2 && w == prev2 {
			w = prev
			res.Cycled = true
			break
		}
		res.Step = cmplx.Abs(w - prev)
		if res.Step <= s.tol {
			res.Converged = true
			break
		}
		prev2, havePrev2 = prev, true
	}
	res.W = w

	if s.warn && !res.Converged && !res.Cycled {
		errors.Warn(errors.NewConvergenceWarning("Halley", res.Iterations,
			fmt.Sprintf("step %g above tolerance %g", res.Step, s.tol)))
	}
	return res
}

// delegate hands arguments on the real axis that a real selector covers.
func delegate(k int32, z complex128) (Result, bool) {
	if imag(z) != 0 {
		return Result{}, false
	}
	x := real(z)
	switch {
	case k == 0 && x >= fukushima.NegInvE:
		w, _ := fukushima.W0(x)
		return Result{W: complex(w, 0), Seed: SeedReal, Converged: true}, true
	case k == -1 && x >= fukushima.NegInvE && x < 0:
		w, _ := fukushima.Wm1(x)
		return Result{W: complex(w, 0), Seed: SeedReal, Converged: true}, true
	}
	return Result{}, false
}

// halley performs one step of Halley's method on f(w) = w*e^w - z.
func halley(w, z complex128) complex128 {
	ew := cmplx.Exp(w)
	num := 2 * (w + 1) * (w*ew - z)
	den := ew*(w*w+2*w+2) + (w+2)*z
	return w - num/den
}

const (
	e     = math.E
	twoPi = 2 * math.Pi
)

// start picks the initial point of the iteration. Later regions override
// earlier ones.
func start(k int32, z complex128) (complex128, Seed) {
	l := cmplx.Log(z) + complex(0, twoPi*float64(k))
	w, seed := l-cmplx.Log(l), SeedAsymptotic

	if cmplx.Abs(z-complex(fukushima.NegInvE, 0)) <= 1 {
		p := cmplx.Sqrt(2 * (e*z + 1))
		p2 := p * p / 3
		p3 := 11.0 / 72.0 * p * p * p
		switch {
		case k == 0:
			w, seed = -1+p-p2+p3, SeedBranchPoint
		case (k == 1 && imag(z) < 0) || (k == -1 && imag(z) > 0):
			w, seed = -1-p-p2-p3, SeedBranchPoint
		}
	}

	if cmplx.Abs(z-0.5) <= 0.5 {
		switch k {
		case 0:
			w = (0.35173371 * (0.1237166 + 7.061302897*z)) / (2 + 0.827184*(1+2*z))
			seed = SeedPadeW0
		case -1:
			w = -(((2.2591588985 + 4.22096i) * ((-14.073271-33.767687754i)*z - (12.7127-19.071643i)*(1+2*z))) /
				(2 - (17.23103-10.629721i)*(1+2*z)))
			seed = SeedPadeWm1
		}
	}
	return w, seed
}
