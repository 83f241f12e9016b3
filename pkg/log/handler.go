package log

import (
	"context"
	"log/slog"

	crdb "github.com/cockroachdb/errors"

	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// ErrFmtHandler is a slog handler that expands errors logged under
// ErrAttrKey: the cockroachdb stack trace becomes a stacktrace attribute and
// a DomainError contributes its operation and argument.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps handler with an ErrFmtHandler.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var logged error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				logged = err
			}
			return false
		}
		return true
	})
	if logged == nil {
		return eh.handler.Handle(ctx, r)
	}
	if stacktrace := extractStacktrace(logged); stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	var domErr *errors.DomainError
	if errors.As(logged, &domErr) {
		r.AddAttrs(
			slog.String("error.op", domErr.Op),
			slog.Float64(ArgumentKey, domErr.Value),
		)
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := crdb.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
