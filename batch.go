package lambertw

import (
	"github.com/YuminosukeSato/lambertw/core/parallel"
	"github.com/YuminosukeSato/lambertw/fukushima"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// W0Slice sets dst[i] = W0(src[i]) for every i. Out-of-domain entries are
// set to NaN and the domain error of the lowest such index is returned after
// the whole slice has been processed. dst and src must have equal length and
// may be the same slice.
func W0Slice(dst, src []float64) error {
	return apply("W0Slice", dst, src, fukushima.W0)
}

// Wm1Slice is the W-1 counterpart of W0Slice.
func Wm1Slice(dst, src []float64) error {
	return apply("Wm1Slice", dst, src, fukushima.Wm1)
}

// FastW0Slice is the 24-bit counterpart of W0Slice.
func FastW0Slice(dst, src []float64) error {
	return apply("FastW0Slice", dst, src, fukushima.FastW0)
}

// FastWm1Slice is the 24-bit counterpart of Wm1Slice.
func FastWm1Slice(dst, src []float64) error {
	return apply("FastWm1Slice", dst, src, fukushima.FastWm1)
}

// W0Float32Slice is the single precision counterpart of W0Slice.
func W0Float32Slice(dst, src []float32) error {
	return apply("W0Float32Slice", dst, src, fukushima.W0Float32)
}

// Wm1Float32Slice is the single precision counterpart of Wm1Slice.
func Wm1Float32Slice(dst, src []float32) error {
	return apply("Wm1Float32Slice", dst, src, fukushima.Wm1Float32)
}

func apply[T float32 | float64](op string, dst, src []T, f func(T) (T, error)) error {
	if len(dst) != len(src) {
		return errors.NewDimensionError(op, len(src), len(dst))
	}
	err := parallel.ParallelizeErr(len(src), parallel.DefaultThreshold, func(start, end int) error {
		var first error
		for i := start; i < end; i++ {
			w, err := f(src[i])
			dst[i] = w
			if err != nil && first == nil {
				first = err
			}
		}
		return first
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}
