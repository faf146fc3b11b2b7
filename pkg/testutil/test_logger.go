package testutil

import (
	"strings"
	"testing"
)

// TestLogger is a wrapper around testing.T that forwards log output to
// t.Log.  It implements io.Writer so it can serve as a zerolog sink, and
// Printf so it can serve as a print reporter.
type TestLogger struct {
	t *testing.T
}

// NewTestLogger creates a new TestLogger that writes to the provided
// testing.T
func NewTestLogger(t *testing.T) *TestLogger {
	return &TestLogger{t: t}
}

// Write implements io.Writer by forwarding to the test log.
func (l *TestLogger) Write(p []byte) (int, error) {
	l.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// Printf formats the log message and writes it to the test log
func (l *TestLogger) Printf(format string, v ...any) {
	l.t.Logf(format, v...)
}
