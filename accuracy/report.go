package accuracy

import (
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/lambertw/pkg/log"
)

// Report summarises the relative errors of one audit.
type Report struct {
	Name    string
	Samples int

	// DomainErrors counts arguments the evaluator rejected.
	DomainErrors int
	// NonFinite counts accepted arguments that produced NaN or ±Inf.
	NonFinite int
	// Panics counts evaluation ranges that panicked and were recovered.
	Panics int

	MaxRelError  float64
	MeanRelError float64
	RMSRelError  float64
	P99RelError  float64
	// WorstZ is the argument at which MaxRelError occurred.
	WorstZ float64
	// MaxULP is the largest ulp distance between two evaluators. Only
	// Compare fills it in.
	MaxULP uint64
}

// Clean reports whether every sample produced a finite value without panics.
func (r Report) Clean() bool {
	return r.NonFinite == 0 && r.Panics == 0
}

func (r Report) String() string {
	return fmt.Sprintf("%s: n=%d max=%.3g mean=%.3g rms=%.3g p99=%.3g worst_z=%v nonfinite=%d domain=%d",
		r.Name, r.Samples, r.MaxRelError, r.MeanRelError, r.RMSRelError, r.P99RelError,
		r.WorstZ, r.NonFinite, r.DomainErrors)
}

// Fields returns the report as alternating key/value pairs for a log.Logger.
func (r Report) Fields() []any {
	fields := []any{
		"audit.name", r.Name,
		log.SamplesKey, r.Samples,
		log.MaxRelErrorKey, r.MaxRelError,
		log.RMSErrorKey, r.RMSRelError,
		"audit.p99_rel_error", r.P99RelError,
		"audit.worst_z", r.WorstZ,
		"audit.non_finite", r.NonFinite,
		"audit.domain_errors", r.DomainErrors,
	}
	if r.MaxULP > 0 {
		fields = append(fields, log.ULPKey, r.MaxULP)
	}
	return fields
}

// MarshalZerologObject adds the report to a zerolog event.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", r.Name).
		Int("samples", r.Samples).
		Float64("max_rel_error", r.MaxRelError).
		Float64("mean_rel_error", r.MeanRelError).
		Float64("rms_rel_error", r.RMSRelError).
		Float64("p99_rel_error", r.P99RelError).
		Float64("worst_z", r.WorstZ).
		Int("non_finite", r.NonFinite).
		Int("domain_errors", r.DomainErrors).
		Uint64("max_ulp", r.MaxULP)
}

// summarize fills the error statistics from rel, the relative errors of the
// finite samples, and zs, their arguments.
func (r *Report) summarize(rel, zs []float64) {
	if len(rel) == 0 {
		return
	}
	i := floats.MaxIdx(rel)
	r.MaxRelError = rel[i]
	r.WorstZ = zs[i]
	r.MeanRelError = stat.Mean(rel, nil)
	r.RMSRelError = math.Sqrt(floats.Dot(rel, rel) / float64(len(rel)))

	sorted := slices.Clone(rel)
	slices.Sort(sorted)
	r.P99RelError = stat.Quantile(0.99, stat.Empirical, sorted, nil)
}
