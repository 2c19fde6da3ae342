package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"sagelink/internal/services"
)

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.With(String(FieldComponent, "reconciler")).Info("processed record",
		String("title", "Some Show"),
		Int("season", 2),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO reconciler: processed record") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, `title="Some Show"`) {
		t.Fatalf("expected quoted title attr: %q", line)
	}
	if !strings.Contains(line, "season=2") {
		t.Fatalf("expected season attr: %q", line)
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestWithContextAddsRunAndMediaIDs(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithMediaID(ctx, "42")
	WithContext(ctx, logger).Info("check")

	line := buf.String()
	if !strings.Contains(line, "run_id=run-1") || !strings.Contains(line, "media_id=42") {
		t.Fatalf("context fields missing: %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
