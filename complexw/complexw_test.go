package complexw

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

func residual(w, z complex128) float64 {
	return cmplx.Abs(w*cmplx.Exp(w)-z) / cmplx.Abs(z)
}

func TestReferenceValue(t *testing.T) {
	w := W(2, 1+2i)
	assert.InDelta(t, -1.6869138779375397, real(w), 1e-9)
	assert.InDelta(t, 11.962631435322813, imag(w), 1e-9)
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		k    int32
		z    complex128
		want complex128
	}{
		{"W0(-1)", 0, -1, complex(-0.3181315052047641, 1.3372357014306895)},
		{"W0(1+2i)", 0, 1 + 2i, complex(0.8237712167092305, 0.5329289867954417)},
		{"W0(-0.5)", 0, -0.5, complex(-0.7940236323446894, 0.7701117505103791)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := W(tt.k, tt.z)
			assert.InDelta(t, real(tt.want), real(got), 1e-12)
			assert.InDelta(t, imag(tt.want), imag(got), 1e-12)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	points := []complex128{1 + 2i, -2 + 0.5i, 3 - 4i, 10 + 10i, -5 - 5i, 0.5 + 0.1i}
	for k := int32(-2); k <= 2; k++ {
		for _, z := range points {
			w := W(k, z)
			require.False(t, cmplx.IsNaN(w), "k=%d z=%v", k, z)
			assert.Less(t, residual(w, z), 1e-10, "k=%d z=%v w=%v", k, z, w)
		}
	}
}

func TestHigherBranchesImaginaryRange(t *testing.T) {
	points := []complex128{1 + 2i, -2 + 0.5i, 3 - 4i, 10 + 10i, -5 - 5i}
	for _, z := range points {
		up := W(2, z)
		assert.Greater(t, imag(up), 2*math.Pi, "z=%v", z)
		assert.Less(t, imag(up), 5*math.Pi, "z=%v", z)

		down := W(-2, z)
		assert.Less(t, imag(down), -2*math.Pi, "z=%v", z)
		assert.Greater(t, imag(down), -5*math.Pi, "z=%v", z)
	}
}

func TestConjugateSymmetry(t *testing.T) {
	for _, z := range []complex128{1 + 2i, 3 - 4i, -5 - 5i} {
		a := W(1, z)
		b := W(-1, cmplx.Conj(z))
		assert.InDelta(t, real(a), real(b), 1e-12, "z=%v", z)
		assert.InDelta(t, imag(a), -imag(b), 1e-12, "z=%v", z)
	}
}

func TestSpecialCases(t *testing.T) {
	assert.Equal(t, complex128(0), W(0, 0))
	for _, k := range []int32{-3, -1, 1, 7} {
		w := W(k, 0)
		assert.True(t, math.IsInf(real(w), -1), "k=%d", k)
	}

	assert.Equal(t, complex(-1, 0), W(0, complex(fukushima.NegInvE, 0)))
	assert.Equal(t, complex(-1, 0), W(-1, complex(fukushima.NegInvE, 0)))
	assert.Equal(t, complex(1, 0), W(0, complex(math.E, 0)))

	for _, z := range []complex128{cmplx.NaN(), cmplx.Inf(), complex(math.NaN(), 1), complex(1, math.Inf(-1))} {
		for _, k := range []int32{-1, 0, 3} {
			r := Solve(k, z)
			assert.True(t, math.IsNaN(real(r.W)) && math.IsNaN(imag(r.W)), "k=%d z=%v", k, z)
			assert.Zero(t, r.Iterations)
		}
	}
}

func TestDelegatesRealBranches(t *testing.T) {
	for _, x := range []float64{-0.3, -0.1, 0.25, 1, 5, 1e6} {
		want, err := fukushima.W0(x)
		require.NoError(t, err)
		r := Solve(0, complex(x, 0))
		assert.Equal(t, SeedReal, r.Seed)
		assert.Equal(t, complex(want, 0), r.W, "x=%v", x)
	}
	for _, x := range []float64{-0.36, -0.2, -1e-3, -1e-12, -1e-310, -math.SmallestNonzeroFloat64} {
		want, err := fukushima.Wm1(x)
		require.NoError(t, err)
		r := Solve(-1, complex(x, 0))
		assert.Equal(t, SeedReal, r.Seed)
		assert.Equal(t, complex(want, 0), r.W, "x=%v", x)
	}
	assert.InDelta(t, -720.3811592879879, real(W(-1, complex(-1e-310, 0))), 1e-12)
}

func TestRealArgumentsOutsideRealBranches(t *testing.T) {
	// Real arguments the real selectors reject are iterated instead.
	tests := []struct {
		k int32
		z complex128
	}{
		{0, -1},
		{-1, 2},
		{1, -0.2},
	}
	for _, tt := range tests {
		r := Solve(tt.k, tt.z)
		assert.NotEqual(t, SeedReal, r.Seed)
		assert.NotZero(t, imag(r.W))
		assert.Less(t, residual(r.W, tt.z), 1e-12, "k=%d z=%v", tt.k, tt.z)
	}
}

func TestSeedSelection(t *testing.T) {
	tests := []struct {
		k    int32
		z    complex128
		want Seed
	}{
		{2, 1 + 2i, SeedAsymptotic},
		{0, -0.3 + 0.1i, SeedBranchPoint},
		{-1, -0.3 + 0.1i, SeedBranchPoint},
		{1, -0.3 - 0.1i, SeedBranchPoint},
		{1, -0.3 + 0.1i, SeedAsymptotic},
		{0, 0.5 + 0.1i, SeedPadeW0},
		{-1, 0.5 + 0.1i, SeedPadeWm1},
		{1, 0.5 + 0.1i, SeedAsymptotic},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			_, got := start(tt.k, tt.z)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIterationCap(t *testing.T) {
	r := Solve(2, 1+2i)
	assert.LessOrEqual(t, r.Iterations, DefaultMaxIterations)
	assert.Equal(t, SeedAsymptotic, r.Seed)

	one := Solve(2, 1+2i, WithMaxIterations(1))
	assert.Equal(t, 1, one.Iterations)
	assert.False(t, one.Converged)
	assert.Greater(t, one.Step, 1e-6)
}

func TestTolerance(t *testing.T) {
	r := Solve(2, 1+2i, WithTolerance(1e-12))
	assert.True(t, r.Converged)
	assert.Less(t, r.Iterations, DefaultMaxIterations)
	assert.LessOrEqual(t, r.Step, 1e-12)
	assert.True(t, scalar.EqualWithinAbs(real(r.W), -1.6869138779375397, 1e-9))
}

func TestCycleDetection(t *testing.T) {
	r := Solve(2, 1+2i, WithCycleDetection(true))
	assert.LessOrEqual(t, r.Iterations, DefaultMaxIterations)
	if r.Cycled {
		assert.False(t, r.Converged)
	}
	assert.Less(t, residual(r.W, 1+2i), 1e-12)
}

func TestNewValidation(t *testing.T) {
	_, err := New(WithMaxIterations(0))
	require.Error(t, err)
	var verr *errors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "max_iterations", verr.ParamName)

	_, err = New(WithTolerance(math.NaN()))
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "tolerance", verr.ParamName)

	s, err := New(WithMaxIterations(50), WithTolerance(0))
	require.NoError(t, err)
	assert.Less(t, residual(s.Solve(3, 2-1i).W, 2-1i), 1e-12)
}

func TestSolveFallsBackOnInvalidOptions(t *testing.T) {
	r := Solve(2, 1+2i, WithMaxIterations(-4), WithTolerance(-1))
	assert.Equal(t, W(2, 1+2i), r.W)
}

func TestConvergenceWarning(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.ResetWarningHandler()

	Solve(2, 1+2i, WithMaxIterations(1), WithConvergenceWarning(true))
	require.Len(t, warnings, 1)
	var cw *errors.ConvergenceWarning
	require.True(t, errors.As(warnings[0], &cw))
	assert.Equal(t, "Halley", cw.Algorithm)
	assert.Equal(t, 1, cw.Iterations)

	Solve(2, 1+2i, WithMaxIterations(1))
	assert.Len(t, warnings, 1)
}

func TestSeedString(t *testing.T) {
	assert.Equal(t, "asymptotic", SeedAsymptotic.String())
	assert.Equal(t, "unknown", Seed(42).String())
}

func FuzzW(f *testing.F) {
	f.Add(int32(0), 1.0, 2.0)
	f.Add(int32(-1), -0.2, 0.0)
	f.Add(int32(5), -1e3, -1e-3)
	f.Fuzz(func(t *testing.T, k int32, re, im float64) {
		_ = W(k, complex(re, im))
	})
}

func BenchmarkW(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = W(2, 1+2i)
	}
}

func BenchmarkWDelegated(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = W(0, 2.5)
	}
}
