package lambertw

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lambertw/complexw"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, -1/math.E, NegInvE)
	assert.InDelta(t, 1.0, Omega*math.Exp(Omega), 1e-15)
}

func TestSpecialPoints(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (float64, error)
		z    float64
		want float64
	}{
		{"W0 branch point", W0, NegInvE, -1},
		{"W0 zero", W0, 0, 0},
		{"W0 one", W0, 1, Omega},
		{"W0 e", W0, math.E, 1},
		{"Wm1 branch point", Wm1, NegInvE, -1},
		{"FastW0 branch point", FastW0, NegInvE, -1},
		{"FastWm1 branch point", FastWm1, NegInvE, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.z)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDomainErrors(t *testing.T) {
	_, err := W0(-1)
	assert.True(t, errors.Is(err, ErrArgumentOutOfRange))
	assert.False(t, errors.Is(err, ErrPositiveArgument))

	w, err := Wm1(1)
	assert.True(t, math.IsNaN(w))
	assert.True(t, errors.Is(err, ErrPositiveArgument))

	_, err = Wm1(-1)
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, errors.ReasonArgumentOutOfRange, de.Reason)
	assert.Equal(t, "Wm1", de.Op)
	assert.Equal(t, -1.0, de.Value)

	_, err = W0Float32(-1)
	assert.True(t, errors.Is(err, ErrArgumentOutOfRange))
	_, err = Wm1Float32(0.5)
	assert.True(t, errors.Is(err, ErrPositiveArgument))
}

func TestNaNIsNotAnError(t *testing.T) {
	for name, fn := range map[string]func(float64) (float64, error){
		"W0": W0, "Wm1": Wm1, "FastW0": FastW0, "FastWm1": FastWm1, "W0Shifted": W0Shifted,
	} {
		w, err := fn(math.NaN())
		assert.NoError(t, err, name)
		assert.True(t, math.IsNaN(w), name)
	}
	w, err := W0Float32(float32(math.NaN()))
	assert.NoError(t, err)
	assert.True(t, w != w)

	assert.True(t, cmplx.IsNaN(W(0, cmplx.NaN())))
}

func TestTiersAgree(t *testing.T) {
	for _, z := range []float64{-0.3, -0.1, 0.5, 2, 10, 1e3, 1e8} {
		acc, err := W0(z)
		require.NoError(t, err)
		fast, err := FastW0(z)
		require.NoError(t, err)
		single, err := W0Float32(float32(z))
		require.NoError(t, err)
		assert.InEpsilon(t, acc, fast, 1e-7, "z=%v", z)
		assert.InEpsilon(t, acc, float64(single), 1e-6, "z=%v", z)
	}
	for _, z := range []float64{-0.3, -0.1, -1e-3, -1e-8} {
		acc, err := Wm1(z)
		require.NoError(t, err)
		fast, err := FastWm1(z)
		require.NoError(t, err)
		assert.InEpsilon(t, acc, fast, 1e-7, "z=%v", z)
	}
}

func TestW0ShiftedMatchesW0(t *testing.T) {
	for _, z := range []float64{-0.3, 0.25, 4} {
		a, err := W0(z)
		require.NoError(t, err)
		b, err := W0Shifted(z - NegInvE)
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-14)
	}
}

func TestWMatchesRealBranches(t *testing.T) {
	w0, err := W0(2.5)
	require.NoError(t, err)
	assert.Equal(t, complex(w0, 0), W(0, 2.5))

	wm1, err := Wm1(-0.2)
	require.NoError(t, err)
	assert.Equal(t, complex(wm1, 0), W(-1, -0.2))
}

func TestSolve(t *testing.T) {
	r := Solve(2, 1+2i, complexw.WithTolerance(1e-12))
	assert.True(t, r.Converged)
	assert.InDelta(t, -1.6869138779375397, real(r.W), 1e-9)
	assert.InDelta(t, 11.962631435322813, imag(r.W), 1e-9)
	assert.Equal(t, W(2, 1+2i), Solve(2, 1+2i).W)
}
