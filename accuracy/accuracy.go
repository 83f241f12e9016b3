// Package accuracy audits the Lambert W evaluators.
//
// RoundTrip measures how well w·e^w reproduces z, Compare measures the
// agreement of two evaluators, and Sweep runs a seeded uniform random round
// trip over a branch's domain. Boundaries builds argument grids around every
// interval threshold of the coefficient tables, where approximation pieces
// meet and errors are most likely to show.
package accuracy

import (
	"math"
	"sync/atomic"

	"github.com/YuminosukeSato/lambertw/core/parallel"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// Func is a real-branch evaluator such as fukushima.W0.
type Func func(z float64) (float64, error)

// Residual returns |w·e^w - z| / |z|, or the absolute residual when z is 0.
func Residual(z, w float64) float64 {
	return relErr(z, w*math.Exp(w))
}

type state uint8

const (
	stateOK state = iota
	stateDomain
	stateNonFinite
	statePanic
)

// sample evaluates f at every z in parallel and scores each finite result
// with metric. A NaN score marks the sample non-finite. Panicking ranges are
// recovered and marked.
func sample(op string, zs []float64, f Func, metric func(i int, z, w float64) float64) Report {
	n := len(zs)
	rel := make([]float64, n)
	states := make([]state, n)
	var panics atomic.Int64

	parallel.ParallelizeWithThreshold(n, parallel.DefaultThreshold, func(start, end int) {
		err := errors.SafeExecute(op, func() error {
			for i := start; i < end; i++ {
				w, err := f(zs[i])
				switch {
				case err != nil:
					states[i] = stateDomain
				case errors.CheckScalar(op, w, i) != nil:
					states[i] = stateNonFinite
				default:
					rel[i] = metric(i, zs[i], w)
					if math.IsNaN(rel[i]) {
						states[i] = stateNonFinite
					}
				}
			}
			return nil
		})
		if err != nil {
			panics.Add(1)
			for i := start; i < end; i++ {
				states[i] = statePanic
			}
		}
	})

	r := Report{Name: op, Samples: n, Panics: int(panics.Load())}
	okRel := make([]float64, 0, n)
	okZ := make([]float64, 0, n)
	for i, s := range states {
		switch s {
		case stateOK:
			okRel = append(okRel, rel[i])
			okZ = append(okZ, zs[i])
		case stateDomain:
			r.DomainErrors++
		case stateNonFinite:
			r.NonFinite++
		}
	}
	r.summarize(okRel, okZ)
	return r
}

// RoundTrip evaluates f at every z and reports the relative residual of
// w·e^w against z.
func RoundTrip(name string, f Func, zs []float64) (Report, error) {
	if len(zs) == 0 {
		return Report{}, errors.Wrap(errors.ErrEmptyData, "RoundTrip")
	}
	return sample(name, zs, f, func(_ int, z, w float64) float64 {
		return Residual(z, w)
	}), nil
}

// Compare evaluates reference and candidate at every z and reports the
// relative difference of candidate from reference together with the
// largest ulp distance. Arguments the reference rejects or maps to a
// non-finite value are counted as non-finite.
func Compare(name string, reference, candidate Func, zs []float64) (Report, error) {
	if len(zs) == 0 {
		return Report{}, errors.Wrap(errors.ErrEmptyData, "Compare")
	}
	want := make([]float64, len(zs))
	for i, z := range zs {
		w, err := reference(z)
		if err != nil {
			w = math.NaN()
		}
		want[i] = w
	}

	ulps := make([]uint64, len(zs))
	r := sample(name, zs, candidate, func(i int, _, w float64) float64 {
		if math.IsNaN(want[i]) {
			return math.NaN()
		}
		ulps[i] = ULP(want[i], w)
		return relErr(want[i], w)
	})
	for _, u := range ulps {
		r.MaxULP = max(r.MaxULP, u)
	}
	return r, nil
}
