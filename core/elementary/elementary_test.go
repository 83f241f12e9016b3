package elementary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBackendIsSelected(t *testing.T) {
	assert.Contains(t, []string{"math", "soft"}, Backend)
}

func TestSqrtSpecialCases(t *testing.T) {
	assert.Equal(t, 0.0, Sqrt(0.0))
	assert.True(t, math.Signbit(Sqrt(math.Copysign(0, -1))))
	assert.True(t, math.IsInf(Sqrt(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(Sqrt(-1.0)))
	assert.True(t, math.IsNaN(Sqrt(math.NaN())))
	assert.Equal(t, float32(3), Sqrt(float32(9)))
}

func TestLnSpecialCases(t *testing.T) {
	assert.True(t, math.IsInf(Ln(0.0), -1))
	assert.True(t, math.IsInf(Ln(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(Ln(-1.0)))
	assert.True(t, math.IsNaN(Ln(math.NaN())))
	assert.Equal(t, 0.0, Ln(1.0))
	assert.InDelta(t, 1.0, Ln(math.E), 1e-15)
	assert.InDelta(t, float32(1), Ln(float32(math.E)), 1e-6)
}

var softInputs = []float64{
	5e-324, 1e-310, 2.2250738585072014e-308, 1e-300, 1e-20, 0.1, 0.36787944117144233,
	0.5, 0.7071, 1, 1.5, 2, math.E, 3, 10, 1234.5678, 1e20, 1e200, math.MaxFloat64,
}

func TestSoftSqrtMatchesMath(t *testing.T) {
	for _, x := range softInputs {
		assert.Equal(t, math.Sqrt(x), softSqrt(x), "x=%g", x)
	}
	assert.True(t, math.IsNaN(softSqrt(-2)))
	assert.True(t, math.IsInf(softSqrt(math.Inf(1)), 1))
	assert.Equal(t, 0.0, softSqrt(0))
}

// refLog computes ln(x) for subnormal x from its exact binary exponent, so
// the comparison does not depend on how math.Log treats subnormals.
func refLog(x float64) float64 {
	if x > 0 && x < 0x1p-1022 {
		frac, exp := math.Frexp(x)
		return math.Log(frac) + float64(exp)*math.Ln2
	}
	return math.Log(x)
}

func TestLnSubnormal(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{math.SmallestNonzeroFloat64, -744.4400719213812},
		{4e-320, -735.440946529854},
		{1e-310, -713.8013788281542},
		{0x1p-1030, -713.9415959767437},
		{math.Nextafter(0x1p-1022, 0), -708.3964185322641},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Ln(tt.x), 1e-12, "x=%g", tt.x)
		assert.InDelta(t, tt.want, refLog(tt.x), 1e-12, "x=%g", tt.x)
	}
}

func TestSoftLogMatchesMath(t *testing.T) {
	for _, x := range softInputs {
		want := refLog(x)
		got := softLog(x)
		assert.True(t, scalar.EqualWithinAbsOrRel(want, got, 1e-300, 1e-15), "x=%g want=%v got=%v", x, want, got)
	}
	assert.True(t, math.IsInf(softLog(0), -1))
	assert.True(t, math.IsNaN(softLog(-1)))
	assert.True(t, math.IsInf(softLog(math.Inf(1)), 1))
}

func TestFrexp(t *testing.T) {
	for _, x := range softInputs {
		wantFrac, wantExp := math.Frexp(x)
		frac, exp := frexp(x)
		require.Equal(t, wantFrac, frac, "x=%g", x)
		require.Equal(t, wantExp, exp, "x=%g", x)
	}
}

func FuzzSoftSqrt(f *testing.F) {
	for _, x := range softInputs {
		f.Add(x)
	}
	f.Fuzz(func(t *testing.T, x float64) {
		want, got := math.Sqrt(x), softSqrt(x)
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Fatalf("softSqrt(%g) = %g, want NaN", x, got)
			}
			return
		}
		if want != got {
			t.Fatalf("softSqrt(%g) = %g, want %g", x, got, want)
		}
	})
}

func BenchmarkSqrt(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Sqrt(float64(i) + 0.5)
	}
	_ = sink
}

func BenchmarkSoftSqrt(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += softSqrt(float64(i) + 0.5)
	}
	_ = sink
}
