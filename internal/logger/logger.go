package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
)

// Logger adapts zerolog to the auth core's logging contract.
type Logger struct {
	zl zerolog.Logger
}

var _ auth.Logger = (*Logger)(nil)

// New creates a logger writing JSON lines at the given level.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a logger against an explicit writer.
func NewWithWriter(level string, w io.Writer) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func (l *Logger) Debug(msg string, args ...any) { emit(l.zl.Debug(), msg, args) }
func (l *Logger) Info(msg string, args ...any)  { emit(l.zl.Info(), msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { emit(l.zl.Warn(), msg, args) }
func (l *Logger) Error(msg string, args ...any) { emit(l.zl.Error(), msg, args) }

// emit folds alternating key/value pairs into the event. Keys that are
// not strings are skipped rather than panicking mid-request.
func emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}
