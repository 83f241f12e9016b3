package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		reason   Reason
		value    float64
		wantMsg  string
		sentinel error
		other    error
	}{
		{
			name:     "below branch point",
			op:       "W0",
			reason:   ReasonArgumentOutOfRange,
			value:    -1,
			wantMsg:  "lambertw: W0: argument below -1/e (got: -1)",
			sentinel: ErrArgumentOutOfRange,
			other:    ErrPositiveArgument,
		},
		{
			name:     "positive argument",
			op:       "Wm1",
			reason:   ReasonPositiveArgument,
			value:    0.5,
			wantMsg:  "lambertw: Wm1: positive argument (got: 0.5)",
			sentinel: ErrPositiveArgument,
			other:    ErrArgumentOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDomainError(tt.op, tt.reason, tt.value)

			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, Is(err, tt.sentinel))
			assert.False(t, Is(err, tt.other))

			var domErr *DomainError
			require.True(t, As(err, &domErr))
			assert.Equal(t, tt.op, domErr.Op)
			assert.Equal(t, tt.reason, domErr.Reason)
			assert.Equal(t, tt.value, domErr.Value)

			// スタックトレースの存在確認
			assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
		})
	}
}

func TestDomainErrorWrapped(t *testing.T) {
	err := Wrap(NewDomainError("W0", ReasonArgumentOutOfRange, math.Inf(-1)), "evaluating batch")

	assert.True(t, Is(err, ErrArgumentOutOfRange))
	assert.True(t, strings.HasPrefix(err.Error(), "evaluating batch: "))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "argument below -1/e", ReasonArgumentOutOfRange.String())
	assert.Equal(t, "positive argument", ReasonPositiveArgument.String())
	assert.Equal(t, "Reason(0)", Reason(0).String())
}

func TestDomainErrorMarshalZerolog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Warn().EmbedObject(&DomainError{Op: "Wm1", Reason: ReasonPositiveArgument, Value: 2}).Msg("domain")

	out := buf.String()
	assert.Contains(t, out, `"operation":"Wm1"`)
	assert.Contains(t, out, `"reason":"positive argument"`)
	assert.Contains(t, out, `"value":2`)
	assert.Contains(t, out, `"type":"DomainError"`)
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("W0Slice", 10, 7)

	assert.Equal(t, "lambertw: W0Slice: length mismatch. Expected 10, got 7", err.Error())

	var dimErr *DimensionError
	assert.True(t, As(err, &dimErr))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("max_iterations", "must be positive", 0)

	assert.Equal(t, "lambertw: validation failed for parameter 'max_iterations': must be positive (got: 0)", err.Error())

	var valErr *ValidationError
	assert.True(t, As(err, &valErr))
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Compare", "no samples")

	assert.Equal(t, "lambertw: Compare: no samples", err.Error())

	var valErr *ValueError
	assert.True(t, As(err, &valErr))
}

func TestNewConvergenceWarning(t *testing.T) {
	warn := NewConvergenceWarning("Halley", 30, "step 1e-16 above tolerance 1e-30")

	assert.Equal(t, "Halley failed to converge after 30 iterations: step 1e-16 above tolerance 1e-30", warn.Error())
	assert.Contains(t, NewConvergenceWarning("Halley", 5, "").Error(), "Consider increasing")
}

func TestWarnUsesZerologWhenSet(t *testing.T) {
	var got []error
	SetZerologWarnFunc(func(w error) { got = append(got, w) })
	defer SetZerologWarnFunc(nil)

	var fallback []error
	defer ResetWarningHandler()
	SetWarningHandler(func(w error) { fallback = append(fallback, w) })

	Warn(NewConvergenceWarning("Halley", 30, ""))

	assert.Len(t, got, 1)
	assert.Empty(t, fallback)

	SetZerologWarnFunc(nil)
	Warn(NewUndefinedMetricWarning("relative_error", "zero expected value", 0))
	assert.Len(t, fallback, 1)
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d samples", "Sweep", 10)

	assert.True(t, Is(wrapped, ErrEmptyData))
	assert.Contains(t, wrapped.Error(), "in Sweep: expected 10 samples")
}

func TestCheckScalar(t *testing.T) {
	assert.NoError(t, CheckScalar("halley", 1.5, 3))
	assert.Error(t, CheckScalar("halley", math.NaN(), 3))
	assert.Error(t, CheckScalar("halley", math.Inf(-1), 3))

	err := CheckNumericalStability("sweep", []float64{1, 2, math.Inf(1)}, 0)
	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Equal(t, "sweep", numErr.Operation)
}

func TestCheckComplex(t *testing.T) {
	assert.NoError(t, CheckComplex("halley", complex(1, -2), 1))

	err := CheckComplex("halley", complex(math.NaN(), 0), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at iteration 7")
}
