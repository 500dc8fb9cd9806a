package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ZerologLogger writes one JSON line per entry with the component as a field.
type ZerologLogger struct{ log zerolog.Logger }

func NewZerologLogger(w io.Writer) ZerologLogger {
	return ZerologLogger{log: zerolog.New(w).With().Timestamp().Logger()}
}

func (l ZerologLogger) Infof(component string, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

func (l ZerologLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msg(fmt.Sprintf(format, args...))
}
