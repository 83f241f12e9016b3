// Package errors はlambertw全体のエラーハンドリングと警告システムを提供します。
// 定義域エラーは構造化された値として返され、収束に関する問題は警告として通知されます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = defaultWarningHandler
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、ConvergenceWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// ResetWarningHandler は警告ハンドラをデフォルト（標準エラー出力へのログ）に戻します。
func ResetWarningHandler() {
	SetWarningHandler(defaultWarningHandler)
}

// デフォルトのハンドラは標準エラー出力にログを出す
func defaultWarningHandler(w error) {
	log.Printf("lambertw-Warning: %v\n", w)
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ConvergenceWarning は反復法が許容誤差に到達しなかった場合に発生する警告です。
// 結果は最後の反復値として返されるため、エラーではなく警告として扱います。
type ConvergenceWarning struct {
	Algorithm  string
	Iterations int
	Message    string
}

func (w *ConvergenceWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("%s failed to converge after %d iterations: %s", w.Algorithm, w.Iterations, w.Message)
	}
	return fmt.Sprintf("%s failed to converge after %d iterations. Consider increasing the iteration limit or the tolerance.", w.Algorithm, w.Iterations)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ConvergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("iterations", w.Iterations).
		Str("message", w.Message).
		Str("type", "ConvergenceWarning")
}

// NewConvergenceWarning は新しいConvergenceWarningを作成します。
func NewConvergenceWarning(algorithm string, iterations int, message string) *ConvergenceWarning {
	return &ConvergenceWarning{Algorithm: algorithm, Iterations: iterations, Message: message}
}

// UndefinedMetricWarning は評価指標が計算できない場合に発生する警告です。
// 例えば、期待値が0のサンプルに対して相対誤差を求める場合など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %g due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	定義域エラー
//
// ===========================================================================

// Reason は定義域エラーの原因を表します。
type Reason int

const (
	// ReasonArgumentOutOfRange は引数が分岐点 -1/e より小さいことを示します。
	ReasonArgumentOutOfRange Reason = iota + 1
	// ReasonPositiveArgument は副分岐 W-1 に正の引数が渡されたことを示します。
	ReasonPositiveArgument
)

func (r Reason) String() string {
	switch r {
	case ReasonArgumentOutOfRange:
		return "argument below -1/e"
	case ReasonPositiveArgument:
		return "positive argument"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

var (
	// ErrArgumentOutOfRange は errors.Is で ReasonArgumentOutOfRange の DomainError に一致します。
	ErrArgumentOutOfRange = New("argument out of range")

	// ErrPositiveArgument は errors.Is で ReasonPositiveArgument の DomainError に一致します。
	ErrPositiveArgument = New("positive argument")
)

// DomainError は実数分岐の定義域外の引数が渡された場合のエラーです。
// NaNや無限大の入力はエラーにならず、値として伝播します。
type DomainError struct {
	Op     string  // 呼び出された関数（例: "W0", "Wm1"）
	Reason Reason  // 原因
	Value  float64 // 渡された引数
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("lambertw: %s: %s (got: %v)", e.Op, e.Reason, e.Value)
}

// Is は原因に対応する番兵エラーとの比較を可能にします。
func (e *DomainError) Is(target error) bool {
	switch e.Reason {
	case ReasonArgumentOutOfRange:
		return target == ErrArgumentOutOfRange
	case ReasonPositiveArgument:
		return target == ErrPositiveArgument
	default:
		return false
	}
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason.String()).
		Float64("value", e.Value).
		Str("type", "DomainError")
}

// NewDomainError は新しいDomainErrorを作成し、スタックトレースを付与します。
func NewDomainError(op string, reason Reason, value float64) error {
	err := &DomainError{Op: op, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError はスライスの長さが期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("lambertw: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// `ValueError`よりも具体的なバリデーションロジックの失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lambertw: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("lambertw: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	数値計算のエラー型
//
// ===========================================================================

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// 反復中のNaNや無限大を検出します。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "halley", "sweep"）
	Values    []float64 // 問題のある値
	Iteration int       // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("lambertw: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
