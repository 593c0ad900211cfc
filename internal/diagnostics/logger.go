/*
Diagnostics Module - Subsystem-Tagged Logging
================================================

SPEC_FULL §6 requires one stderr line per error, prefixed with a subsystem
tag (e.g. "ExpParser: invalid operator sequence"). This package renders that
line through a small leveled logger instead of a bare fmt.Fprintln, built
the way joblet's hand-rolled logger is: a level filter, a subsystem tag
passed with every call, and an io.Writer sink so tests can capture output
without touching the real stderr.
*/

package diagnostics

import (
	"fmt"
	"io"
	"log"
)

// Level is the severity of a logged line.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func parseLevel(s string) Level {
	switch s {
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Logger renders subsystem-tagged diagnostics to an io.Writer sink.
type Logger struct {
	level  Level
	format string
	sink   *log.Logger
}

// New builds a Logger at Info level, text format, writing to w.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, "info", "text")
}

// NewWithLevel builds a Logger filtering below levelName, rendering in
// either "text" or "json" format.
func NewWithLevel(w io.Writer, levelName, format string) *Logger {
	return &Logger{
		level:  parseLevel(levelName),
		format: format,
		sink:   log.New(w, "", 0),
	}
}

// Errorf logs a subsystem-tagged error line, e.g. tag="ExpParser".
func (lg *Logger) Errorf(tag, format string, args ...any) {
	lg.logf(Error, tag, format, args...)
}

// Warnf logs a subsystem-tagged warning line.
func (lg *Logger) Warnf(tag, format string, args ...any) {
	lg.logf(Warn, tag, format, args...)
}

// Infof logs a subsystem-tagged informational line.
func (lg *Logger) Infof(tag, format string, args ...any) {
	lg.logf(Info, tag, format, args...)
}

func (lg *Logger) logf(level Level, tag, format string, args ...any) {
	if level < lg.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if lg.format == "json" {
		lg.sink.Printf(`{"level":%q,"tag":%q,"msg":%q}`, level.String(), tag, msg)
		return
	}
	lg.sink.Printf("%s: %s", tag, msg)
}
