package log

// Evaluation context.
const (
	// BranchKey is the branch index k (0 for W0, -1 for W-1).
	BranchKey = "lambertw.branch"

	// TierKey names the approximation tier: "accurate", "fast" or "float32".
	TierKey = "lambertw.tier"

	ArgumentKey = "lambertw.z"
	ResultKey   = "lambertw.w"
	BackendKey  = "lambertw.backend"
)

// Iterative solver.
const (
	IterationsKey = "solver.iterations"
	ToleranceKey  = "solver.tolerance"
	ConvergedKey  = "solver.converged"
	SeedKey       = "solver.seed"
)

// Accuracy audits.
const (
	SamplesKey     = "audit.samples"
	MaxRelErrorKey = "audit.max_rel_error"
	RMSErrorKey    = "audit.rms_rel_error"
	ULPKey         = "audit.max_ulp"
	DurationMsKey  = "perf.duration_ms"
	WorkersKey     = "perf.workers"
)

// Standard tier values.
const (
	TierAccurate = "accurate"
	TierFast     = "fast"
	TierFloat32  = "float32"
)
