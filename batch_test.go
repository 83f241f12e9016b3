package lambertw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lambertw/core/parallel"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

func grid(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func TestW0SliceMatchesScalar(t *testing.T) {
	for _, n := range []int{10, parallel.DefaultThreshold*3 + 7} {
		src := grid(n, NegInvE, 50)
		dst := make([]float64, n)
		require.NoError(t, W0Slice(dst, src))
		for i, z := range src {
			want, err := W0(z)
			require.NoError(t, err)
			require.Equal(t, want, dst[i], "i=%d z=%v", i, z)
		}
	}
}

func TestWm1SliceInPlace(t *testing.T) {
	xs := grid(parallel.DefaultThreshold*2, NegInvE, -1e-6)
	orig := append([]float64(nil), xs...)
	require.NoError(t, Wm1Slice(xs, xs))
	for i, z := range orig {
		want, err := Wm1(z)
		require.NoError(t, err)
		require.Equal(t, want, xs[i])
	}
}

func TestSliceReportsLowestDomainError(t *testing.T) {
	n := parallel.DefaultThreshold * 4
	src := grid(n, -0.3, -0.01)
	src[n/4] = 2
	src[n-1] = -5
	dst := make([]float64, n)

	err := Wm1Slice(dst, src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPositiveArgument))

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2.0, de.Value)

	assert.True(t, math.IsNaN(dst[n/4]))
	assert.True(t, math.IsNaN(dst[n-1]))
	assert.False(t, math.IsNaN(dst[0]))
}

func TestSliceLengthMismatch(t *testing.T) {
	err := FastW0Slice(make([]float64, 3), make([]float64, 4))
	var de *errors.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "FastW0Slice", de.Op)
	assert.Equal(t, 4, de.Expected)
	assert.Equal(t, 3, de.Got)
}

func TestFloat32Slices(t *testing.T) {
	src := []float32{-0.3, 0, 1, 10}
	dst := make([]float32, len(src))
	require.NoError(t, W0Float32Slice(dst, src))
	assert.Equal(t, float32(0), dst[1])

	neg := []float32{-0.3, -0.1, -0.01}
	require.NoError(t, Wm1Float32Slice(neg, neg))
	for _, w := range neg {
		assert.Less(t, w, float32(-1))
	}

	assert.NoError(t, FastWm1Slice(nil, nil))
}

func BenchmarkW0Slice(b *testing.B) {
	src := grid(1<<16, NegInvE, 1e3)
	dst := make([]float64, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = W0Slice(dst, src)
	}
}
