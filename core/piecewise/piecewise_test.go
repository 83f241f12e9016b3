package piecewise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const negInvE = -0.36787944117144233

func identityTable() *Table[float64] {
	return &Table[float64]{
		Name:     "test",
		Variable: Plain,
		Intervals: []Interval[float64]{
			{Label: "a", Bound: 0, Transform: Log, Num: []float64{1}, Den: []float64{1}},
			{Label: "b", Bound: 10, Transform: Log, Num: []float64{0, 1}, Den: []float64{1}},
			{Label: "c", Bound: math.Inf(1), Transform: Log, Num: []float64{0, 2}, Den: []float64{1}},
		},
	}
}

func TestApply(t *testing.T) {
	z := -0.2
	zc := z - negInvE

	tests := []struct {
		name     string
		tr       Transform
		z, zc    float64
		expected float64
	}{
		{"sqrt shifted", SqrtShifted, z, zc, math.Sqrt(zc)},
		{"scaled sqrt", ScaledSqrt, z, zc, -z / (InvSqrtE + math.Sqrt(zc))},
		{"log shifted", LogShifted, z, zc, math.Log(zc)},
		{"log", Log, 5, 5 - negInvE, math.Log(5)},
		{"log neg", LogNeg, z, zc, math.Log(-z)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Apply(tt.tr, tt.z, tt.zc), 1e-15)
		})
	}

	assert.True(t, math.IsNaN(Apply(Transform(99), 1.0, 1.0)))
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "ln(-z)", LogNeg.String())
	assert.Equal(t, "Transform(42)", Transform(42).String())
}

func TestTableSelect(t *testing.T) {
	tbl := identityTable()

	assert.Equal(t, 0, tbl.Select(-5))
	assert.Equal(t, 0, tbl.Select(0), "bounds are inclusive")
	assert.Equal(t, 1, tbl.Select(math.Nextafter(0, 1)))
	assert.Equal(t, 1, tbl.Select(10))
	assert.Equal(t, 2, tbl.Select(11))
	assert.Equal(t, 2, tbl.Select(math.Inf(1)))
	assert.Equal(t, -1, tbl.Select(math.NaN()))
}

func TestTableEval(t *testing.T) {
	tbl := identityTable()

	assert.Equal(t, 1.0, tbl.Eval(-3, 0))
	assert.InDelta(t, math.Log(5), tbl.Eval(5, 0), 1e-15)
	assert.InDelta(t, 2*math.Log(100), tbl.Eval(100, 0), 1e-14)
	assert.True(t, math.IsNaN(tbl.Eval(math.NaN(), 0)))
}

func TestTableEvalShiftedVariable(t *testing.T) {
	tbl := &Table[float64]{
		Name:     "shifted",
		Variable: Shifted,
		Intervals: []Interval[float64]{
			{Label: "lo", Bound: 1, Transform: SqrtShifted, Num: []float64{0, 1}, Den: []float64{1}},
			{Label: "hi", Bound: math.Inf(1), Transform: LogShifted, Num: []float64{0, 1}, Den: []float64{1}},
		},
	}

	// z is far above the bound but zc decides.
	assert.InDelta(t, 0.5, tbl.Eval(100, 0.25), 1e-15)
	assert.InDelta(t, math.Log(4), tbl.Eval(-100, 4), 1e-15)
}

func TestTableEvalFloat32(t *testing.T) {
	tbl := &Table[float32]{
		Name:     "f32",
		Variable: Plain,
		Intervals: []Interval[float32]{
			{Label: "only", Bound: float32(math.Inf(1)), Transform: LogNeg, Num: []float32{1, 1}, Den: []float32{1}},
		},
	}
	require.NoError(t, tbl.Validate())
	assert.InDelta(t, 1+math.Log(2), float64(tbl.Eval(-2, 0)), 1e-6)
}

func TestValidate(t *testing.T) {
	require.NoError(t, identityTable().Validate())

	empty := &Table[float64]{Name: "empty"}
	assert.Error(t, empty.Validate())

	unordered := identityTable()
	unordered.Intervals[1].Bound = -1
	assert.ErrorContains(t, unordered.Validate(), "does not exceed")

	bounded := identityTable()
	bounded.Intervals[2].Bound = 1e300
	assert.ErrorContains(t, bounded.Validate(), "not +Inf")

	badDen := identityTable()
	badDen.Intervals[1].Den = []float64{2}
	assert.ErrorContains(t, badDen.Validate(), "denominator")

	noCoef := identityTable()
	noCoef.Intervals[0].Num = nil
	assert.ErrorContains(t, noCoef.Validate(), "empty coefficients")
}
