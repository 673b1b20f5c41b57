package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Logger is what a Connection logs through. Pass one in Config.Logger; nil
// means Nop.
type Logger interface {
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
}

type logger struct {
	zl zerolog.Logger
}

// NewZerolog adapts an existing zerolog.Logger.
func NewZerolog(zl zerolog.Logger) Logger {
	return &logger{zl: zl}
}

// NewStdLogger output log to command line
func NewStdLogger() Logger {
	return NewWriterLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// NewWriterLogger writes JSON lines to w.
func NewWriterLogger(w io.Writer) Logger {
	return &logger{zl: zerolog.New(w).With().Timestamp().Str("component", "hbasemap").Logger()}
}

// NewFileLogger appends JSON lines to the file at filePath.
func NewFileLogger(filePath string) (Logger, error) {
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", filePath)
	}
	return NewWriterLogger(f), nil
}

// Nop discards everything.
func Nop() Logger {
	return &logger{zl: zerolog.Nop()}
}

func (l *logger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *logger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *logger) Warnf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *logger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}
