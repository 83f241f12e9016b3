// Package lambertw computes the Lambert W function, the inverse of
// f(w) = w·e^w.
//
// The two real branches are evaluated with Fukushima's piecewise minimax
// rational approximations, which need no iteration and only a square root or
// logarithm per call. Every other branch, and every complex argument, goes
// through a Halley iteration seeded close to the root.
//
// # Features
//
//   - W0 and W-1 to 50 bits of accuracy (within 2 ulp of a float64)
//   - Fast 24-bit variants on float64 and float32
//   - W_k(z) for any integer branch k and complex z
//   - Batch evaluation over slices with automatic parallelisation
//   - Structured domain errors compatible with errors.Is / errors.As
//   - A pure Go build of sqrt and ln behind the lambertw_softfloat tag
//
// # Installation
//
//	go get github.com/YuminosukeSato/lambertw
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/lambertw"
//	)
//
//	func main() {
//	    w, err := lambertw.W0(1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(w) // 0.5671432904097838
//
//	    fmt.Println(lambertw.W(2, 1+2i))
//	}
//
// # Domain
//
// W0 is defined for z >= -1/e and W-1 for -1/e <= z < 0. Arguments outside
// these ranges return NaN together with a *errors.DomainError whose Reason
// tells the two failures apart:
//
//	_, err := lambertw.Wm1(1)
//	errors.Is(err, lambertw.ErrPositiveArgument)   // true
//	_, err = lambertw.W0(-1)
//	errors.Is(err, lambertw.ErrArgumentOutOfRange) // true
//
// NaN is never an error: it is returned as NaN with a nil error. W0(+Inf) is
// +Inf and Wm1(0) is NaN.
//
// # Packages
//
//   - fukushima: the real-branch selectors and their coefficient tables
//   - complexw: Halley's method for arbitrary branches
//   - accuracy: round-trip residuals and random sweeps for auditing tiers
//   - core/piecewise: interval tables and variable transformations
//   - core/rational: Horner evaluation of rational functions
//   - core/elementary: sqrt and ln with a build-time backend
//   - core/parallel: parallel processing utilities
//   - pkg/errors: domain errors, warnings and panic recovery
//   - pkg/log: slog setup and the zerolog warning bridge
//
// # Performance
//
// A real-branch evaluation is a linear scan over at most 19 intervals
// followed by one rational function of degree at most 8. W0Slice and
// Wm1Slice parallelise across GOMAXPROCS goroutines once a batch exceeds
// parallel.DefaultThreshold elements.
//
// # Accuracy
//
// The complex solver is least reliable next to the branch cut on the
// negative real axis. There consecutive branches meet and the iteration may
// land on a neighbouring branch; use Solve and inspect the Result when that
// region matters.
//
// # License
//
// lambertw is released under the MIT License.
package lambertw
