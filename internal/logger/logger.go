// Package logger provides the leveled logger used across the service.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger logs a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// StdLogger writes key=value lines through a standard log.Logger.
type StdLogger struct {
	std   *log.Logger
	debug bool
}

var _ Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, debug bool) *StdLogger {
	if std == nil {
		std = log.New(os.Stdout, "", log.LstdFlags)
	}
	return &StdLogger{std: std, debug: debug}
}

func (l *StdLogger) print(level, msg string, args []any) {
	l.std.Printf("%s %s%s", level, msg, format(args))
}

func (l *StdLogger) Debug(msg string, args ...any) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l *StdLogger) Info(msg string, args ...any)  { l.print("INFO", msg, args) }
func (l *StdLogger) Warn(msg string, args ...any)  { l.print("WARN", msg, args) }
func (l *StdLogger) Error(msg string, args ...any) { l.print("ERROR", msg, args) }

// format renders args as " k=v k=v". A trailing key without value is
// printed as "!MISSING".
func format(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(args); i += 2 {
		val := any("!MISSING")
		if i+1 < len(args) {
			val = args[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", args[i], val)
	}
	return b.String()
}

// fields turns key/value args into a map, used for structured reporters.
func fields(args []any) map[string]interface{} {
	out := make(map[string]interface{}, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		out[fmt.Sprint(args[i])] = args[i+1]
	}
	return out
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
