package accuracy

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// checkPair は2つのベクトルが空でなく同じ長さであることを検証する
func checkPair(op string, want, got *mat.VecDense) (int, error) {
	n := want.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if got.Len() != n {
		return 0, errors.NewDimensionError(op, n, got.Len())
	}
	return n, nil
}

// diff は want - got を計算する
func diff(want, got *mat.VecDense) *mat.VecDense {
	d := mat.NewVecDense(want.Len(), nil)
	d.SubVec(want, got)
	return d
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(want, got *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", want, got)
	if err != nil {
		return 0, err
	}
	d := diff(want, got)
	return mat.Dot(d, d) / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(want, got *mat.VecDense) (float64, error) {
	mse, err := MSE(want, got)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(want, got *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", want, got)
	if err != nil {
		return 0, err
	}
	return mat.Norm(diff(want, got), 1) / float64(n), nil
}

// MaxAbsError は最大絶対誤差とその位置を返す
func MaxAbsError(want, got *mat.VecDense) (float64, int, error) {
	if _, err := checkPair("MaxAbsError", want, got); err != nil {
		return 0, -1, err
	}
	abs := absValues(diff(want, got))
	i := floats.MaxIdx(abs)
	return abs[i], i, nil
}

// RelativeErrors は要素ごとの相対誤差 |want - got| / |want| を返す。
// want が0の要素は絶対誤差で代用する。
func RelativeErrors(want, got *mat.VecDense) (*mat.VecDense, error) {
	n, err := checkPair("RelativeErrors", want, got)
	if err != nil {
		return nil, err
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, relErr(want.AtVec(i), got.AtVec(i)))
	}
	return out, nil
}

// MeanRelError は平均相対誤差を計算する（MAPEを100倍しない形）。
// want がすべて0の場合は未定義となり、UndefinedMetricWarningを発生させて0を返す。
func MeanRelError(want, got *mat.VecDense) (float64, error) {
	n, err := checkPair("MeanRelError", want, got)
	if err != nil {
		return 0, err
	}

	var sum float64
	valid := 0
	for i := 0; i < n; i++ {
		w := want.AtVec(i)
		if w != 0 {
			sum += math.Abs(w-got.AtVec(i)) / math.Abs(w)
			valid++
		}
	}
	if valid == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("MeanRelError", "all expected values are zero", 0))
		return 0, nil
	}
	return sum / float64(valid), nil
}

// ULP は2つのfloat64の間にある表現可能な値の数を返す。
// どちらかがNaNの場合は math.MaxUint64 を返す。
func ULP(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.MaxUint64
	}
	ia, ib := ordered(a), ordered(b)
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

// ordered はビット表現を符号付き整数の順序に写す（-0 と +0 は同じ値になる）
func ordered(x float64) int64 {
	i := int64(math.Float64bits(x))
	if i < 0 {
		return math.MinInt64 - i
	}
	return i
}

func relErr(want, got float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(want-got) / math.Abs(want)
}

func absValues(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = math.Abs(v.AtVec(i))
	}
	return out
}
