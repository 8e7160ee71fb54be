package logger

import (
	"errors"

	"github.com/rollbar/rollbar-go"
)

// RollbarLogger reports warnings and errors to Rollbar and prints every
// line through the wrapped StdLogger.
type RollbarLogger struct {
	std *StdLogger
}

var _ Logger = (*RollbarLogger)(nil)

// RollbarOptions configures the process-wide rollbar client.
type RollbarOptions struct {
	Token       string
	Environment string
	ServerHost  string
	CodeVersion string
}

func NewRollbarLogger(std *StdLogger, opts RollbarOptions) *RollbarLogger {
	rollbar.SetToken(opts.Token)
	rollbar.SetEnvironment(opts.Environment)
	rollbar.SetServerHost(opts.ServerHost)
	rollbar.SetCodeVersion(opts.CodeVersion)
	return &RollbarLogger{std: std}
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// report sends an error value when one is among args so Rollbar groups by
// it; otherwise the message itself.
func (l *RollbarLogger) report(level, msg string, args []any) {
	extras := fields(args)
	for _, a := range args {
		if err, ok := a.(error); ok {
			rollbar.Log(level, errors.New(msg+": "+err.Error()), extras)
			return
		}
	}
	rollbar.Log(level, msg, extras)
}

func (l *RollbarLogger) Debug(msg string, args ...any) { l.std.Debug(msg, args...) }
func (l *RollbarLogger) Info(msg string, args ...any)  { l.std.Info(msg, args...) }

func (l *RollbarLogger) Warn(msg string, args ...any) {
	l.report(rollbar.WARN, msg, args)
	l.std.Warn(msg, args...)
}

func (l *RollbarLogger) Error(msg string, args ...any) {
	l.report(rollbar.ERR, msg, args)
	l.std.Error(msg, args...)
}

// Close flushes queued reports.
func (l *RollbarLogger) Close() {
	rollbar.Close()
}

// New returns a RollbarLogger when token is set, a StdLogger otherwise.
func New(debug bool, opts RollbarOptions) Logger {
	std := NewStdLogger(nil, debug)
	if opts.Token == "" {
		return std
	}
	return NewRollbarLogger(std, opts)
}
