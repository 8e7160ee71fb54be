package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStdLoggerFormatsPairs(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(log.New(&buf, "", 0), false)

	l.Info("call finished", "method", "/campus.v1.CampusService/SignIn", "code", "OK")
	l.Debug("hidden")
	l.Warn("odd", "key")

	out := buf.String()
	if !strings.Contains(out, "INFO call finished method=/campus.v1.CampusService/SignIn code=OK") {
		t.Fatalf("unexpected info line: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line printed while debug is off")
	}
	if !strings.Contains(out, "key=!MISSING") {
		t.Fatalf("dangling key not reported: %q", out)
	}
}

func TestNewWithoutTokenIsStd(t *testing.T) {
	if _, ok := New(false, RollbarOptions{}).(*StdLogger); !ok {
		t.Fatalf("expected StdLogger when no rollbar token is configured")
	}
}
