package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"tutorlog/internal/config"
)

func TestSetupLoggerLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&config.Config{LogLevel: "warn"}, &buf)

	logger.Info("hidden")
	slog.Warn("shown", "k", "v")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
	if strings.Contains(out, "component=cli") {
		t.Fatalf("default logger should not carry the cli component:\n%s", out)
	}

	buf.Reset()
	logger.Warn("tagged")
	if !strings.Contains(buf.String(), "component=cli") {
		t.Fatalf("cli logger lost its component:\n%s", buf.String())
	}
}
