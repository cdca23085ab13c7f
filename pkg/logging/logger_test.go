package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Enabled(slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if !Enabled(slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
	Logger().Debug("frame", "n", 3)
	if !strings.Contains(buf.String(), "n=3") {
		t.Errorf("log output = %q, want n=3", buf.String())
	}
}
