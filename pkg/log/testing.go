package log

import (
	"bytes"
	"log/slog"
	"strings"
)

// TestLogger captures JSON log output so tests can assert on emitted
// records without touching the process-wide default logger.
type TestLogger struct {
	*slog.Logger
	buf *bytes.Buffer
}

// NewTestLogger creates a debug-level JSON logger writing to an in-memory
// buffer.
func NewTestLogger() *TestLogger {
	buf := &bytes.Buffer{}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return &TestLogger{Logger: slog.New(handler), buf: buf}
}

// Output returns everything logged so far.
func (t *TestLogger) Output() string {
	return t.buf.String()
}

// Contains reports whether the captured output contains the substring.
func (t *TestLogger) Contains(s string) bool {
	return strings.Contains(t.buf.String(), s)
}
