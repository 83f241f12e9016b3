package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/lambertw/pkg/errors"
)

// EnableZerologWarnings routes errors.Warn through a zerolog logger writing
// JSON lines to w. Warnings that implement zerolog.LogObjectMarshaler are
// embedded field by field. It returns a function restoring the previous
// fallback handler.
func EnableZerologWarnings(w io.Writer) (restore func()) {
	logger := zerolog.New(w).With().Timestamp().Str("component", "lambertw").Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
	return func() { errors.SetZerologWarnFunc(nil) }
}
