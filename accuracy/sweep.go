package accuracy

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/lambertw/core/elementary"
	"github.com/YuminosukeSato/lambertw/core/parallel"
	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
	"github.com/YuminosukeSato/lambertw/pkg/log"
)

// DefaultSamples is the sample count of a full sweep.
const DefaultSamples = 1_000_000

// Target is an evaluator together with the argument range a sweep samples.
// Samples lie in [Lo, Hi).
type Target struct {
	Name   string
	Tier   string
	Branch int
	Lo, Hi float64
	// Float32 rounds every sample to single precision before evaluation so
	// the residual is measured against the argument actually used.
	Float32 bool
	Eval    Func
}

func single(f func(float32) (float32, error)) Func {
	return func(z float64) (float64, error) {
		w, err := f(float32(z))
		return float64(w), err
	}
}

// Targets returns every real-branch evaluator with its default range. W0 is
// swept over [-1/e, 1000) and W-1 over [-1/e, 0).
func Targets() []Target {
	const hi0 = 1e3
	return []Target{
		{Name: "W0", Tier: log.TierAccurate, Branch: 0, Lo: fukushima.NegInvE, Hi: hi0, Eval: fukushima.W0},
		{Name: "Wm1", Tier: log.TierAccurate, Branch: -1, Lo: fukushima.NegInvE, Hi: 0, Eval: fukushima.Wm1},
		{Name: "FastW0", Tier: log.TierFast, Branch: 0, Lo: fukushima.NegInvE, Hi: hi0, Eval: fukushima.FastW0},
		{Name: "FastWm1", Tier: log.TierFast, Branch: -1, Lo: fukushima.NegInvE, Hi: 0, Eval: fukushima.FastWm1},
		{Name: "W0Float32", Tier: log.TierFloat32, Branch: 0, Lo: fukushima.NegInvE, Hi: hi0, Float32: true, Eval: single(fukushima.W0Float32)},
		{Name: "Wm1Float32", Tier: log.TierFloat32, Branch: -1, Lo: fukushima.NegInvE, Hi: 0, Float32: true, Eval: single(fukushima.Wm1Float32)},
	}
}

// SweepConfig controls Sweep.
type SweepConfig struct {
	// Samples defaults to DefaultSamples when zero.
	Samples int
	Seed    uint64
	// Logger receives a summary record. Nil disables logging.
	Logger log.Logger
}

// Draw returns n arguments drawn uniformly from [lo, hi) with a PCG source
// seeded by seed. The same inputs always give the same arguments.
func Draw(n int, lo, hi float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	zs := make([]float64, n)
	for i := range zs {
		z := lo + (hi-lo)*rng.Float64()
		for z >= hi {
			z = lo + (hi-lo)*rng.Float64()
		}
		zs[i] = z
	}
	return zs
}

// Sweep draws cfg.Samples arguments from the target's range and reports the
// round-trip residuals.
func Sweep(t Target, cfg SweepConfig) (Report, error) {
	n := cfg.Samples
	if n == 0 {
		n = DefaultSamples
	}
	if n < 0 {
		return Report{}, errors.NewValidationError("samples", "must be positive", n)
	}
	if math.IsNaN(t.Lo) || math.IsNaN(t.Hi) || math.IsInf(t.Lo, 0) || math.IsInf(t.Hi, 0) || t.Lo >= t.Hi {
		return Report{}, errors.NewValidationError("range", "must be a finite interval with lo < hi", [2]float64{t.Lo, t.Hi})
	}

	start := time.Now()
	zs := Draw(n, t.Lo, t.Hi, cfg.Seed)
	if t.Float32 {
		for i, z := range zs {
			zs[i] = float64(float32(z))
		}
	}

	r, err := RoundTrip(t.Name, t.Eval, zs)
	if err != nil {
		return Report{}, err
	}

	if cfg.Logger != nil {
		fields := append([]any{
			log.TierKey, t.Tier,
			log.BranchKey, t.Branch,
			log.BackendKey, elementary.Backend,
			log.WorkersKey, parallel.Workers(n),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		}, r.Fields()...)
		if r.Clean() {
			cfg.Logger.Info("sweep finished", fields...)
		} else {
			cfg.Logger.Warn("sweep found non-finite results", fields...)
		}
	}
	return r, nil
}
