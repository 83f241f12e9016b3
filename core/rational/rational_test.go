package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorner(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		coef     []float64
		expected float64
	}{
		{"empty", 3, nil, 0},
		{"constant", 3, []float64{7}, 7},
		{"linear", 2, []float64{1, 3}, 7},
		{"quadratic", -1, []float64{1, 2, 3}, 2},
		{"cubic at zero", 0, []float64{-4, 9, 9, 9}, -4},
		{"cubic", 0.5, []float64{1, 1, 1, 1}, 1.875},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Horner(tt.x, tt.coef))
		})
	}
}

func TestHornerFloat32(t *testing.T) {
	got := Horner(float32(2), []float32{1, 0.5, 0.25})
	assert.Equal(t, float32(3), got)
}

func TestEval(t *testing.T) {
	// (1 + x) / (1 - x) at x = 0.5
	assert.InDelta(t, 3.0, Eval(0.5, []float64{1, 1}, []float64{1, -1}), 1e-15)

	// Numerator of degree one higher than the denominator.
	assert.InDelta(t, 7.0/3, Eval(2.0, []float64{1, 1, 1}, []float64{1, 1}), 1e-15)
}

func TestEvalZeroDenominator(t *testing.T) {
	assert.True(t, math.IsInf(Eval(1.0, []float64{1}, []float64{1, -1}), 1))
	assert.True(t, math.IsNaN(Eval(1.0, []float64{1, -1}, []float64{1, -1})))
}

func TestEvalNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Eval(math.NaN(), []float64{1, 2}, []float64{1, 3})))
}

func BenchmarkEval(b *testing.B) {
	num := []float64{-0.99, 0.59, 1.42, 0.44, 0.044, 0.0015, 1.6e-5, 3.3e-8}
	den := []float64{1, 1.69, 0.80, 0.14, 0.0093, 0.00023, 1.8e-6, 2.5e-9}
	x := 3.7
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Eval(x, num, den)
	}
	_ = sink
}
