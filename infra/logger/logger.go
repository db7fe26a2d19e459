package logger

import (
	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/superheroes/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component. The output format is
// selected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// SetLevel sets the minimum level for every logger of the process.
func SetLevel(l corelogger.Level) {
	switch l {
	case corelogger.LevelDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case corelogger.LevelWarn:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case corelogger.LevelError:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
