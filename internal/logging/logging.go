// Package logging adapts zerolog to the calculation.Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes calculator diagnostics through a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New returns a logger writing to w at the given level. Human-readable
// console output is used unless jsonOutput is set.
func New(w io.Writer, level string, jsonOutput bool) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

// NewStderr returns a console logger on stderr, for tools whose stdout
// carries data.
func NewStderr(level string) (*Logger, error) {
	return New(os.Stderr, level, false)
}

// ParseLevel maps a configuration level name to a zerolog level. An empty
// name means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
}

// Zerolog exposes the underlying logger for structured fields.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

func (l *Logger) Debugf(format string, args ...any) { l.zl.Debug().Msgf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.zl.Info().Msgf(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.zl.Warn().Msgf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.zl.Error().Msgf(format, args...) }
