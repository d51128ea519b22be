package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"textclean/internal/config"
	"textclean/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "textclean.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("file message", logging.String("k", "v"))

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"file message"`) {
		t.Fatalf("expected JSON record in log file, got %q", content)
	}
}

func TestNewFromConfigNil(t *testing.T) {
	logger, err := logging.NewFromConfig(nil)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
}

func TestOpenClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textclean.log")
	var buf bytes.Buffer
	logger, closeLog, err := logging.Open(logging.Options{Format: "json", Writer: &buf, File: path})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("before close")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	logger.Info("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "before close") {
		t.Fatalf("log file missing record: %q", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Fatalf("record written after close: %q", data)
	}
	if !strings.Contains(buf.String(), "after close") {
		t.Fatalf("writer should keep logging after the file closes, got %q", buf.String())
	}
}

func TestOpenWithoutFile(t *testing.T) {
	_, closeLog, err := logging.Open(logging.Options{Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close without file: %v", err)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "perf").Info("batch cleaned", logging.Int("texts", 3))

	out := buf.String()
	if !strings.Contains(out, "INFO [perf] - batch cleaned") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "    - texts: 3") {
		t.Fatalf("expected field line, got %q", out)
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info level filtering, got %q", buf.String())
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithBatchID(context.Background(), "3f2c9a10-0000-4000-8000-000000000000")
	ctx = logging.WithOperation(ctx, "clean_batch")
	logging.WithContext(ctx, logger).Info("contextual log")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record[logging.FieldBatchID] != "3f2c9a10-0000-4000-8000-000000000000" {
		t.Fatalf("batch_id = %v", record[logging.FieldBatchID])
	}
	if record[logging.FieldOperation] != "clean_batch" {
		t.Fatalf("operation = %v", record[logging.FieldOperation])
	}
	if record["level"] != "info" {
		t.Fatalf("level = %v", record["level"])
	}
}

func TestWithContextWithoutFieldsReturnsLogger(t *testing.T) {
	logger := logging.NewNop()
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected same logger when context carries no fields")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logging.WarnWithContext(logger, "cache unavailable", "cache_fallback", logging.Error(errors.New("dial tcp: refused")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	for _, key := range []string{logging.FieldEventType, logging.FieldErrorHint, logging.FieldImpact} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected %s in record %v", key, record)
		}
	}
	if record[logging.FieldEventType] != "cache_fallback" {
		t.Fatalf("event_type = %v", record[logging.FieldEventType])
	}
}

func TestTeeHandler(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	infoHandler := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	debugHandler := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := slog.New(logging.TeeHandler(nil, infoHandler, debugHandler)).With("attr", "value")
	logger.Debug("debug only")
	logger.Info("both")

	if strings.Contains(infoBuf.String(), "debug only") {
		t.Error("info handler should not receive debug records")
	}
	if !strings.Contains(debugBuf.String(), "debug only") {
		t.Error("debug handler should receive debug records")
	}
	for _, out := range []string{infoBuf.String(), debugBuf.String()} {
		if !strings.Contains(out, `"attr":"value"`) || !strings.Contains(out, "both") {
			t.Errorf("expected shared attrs and info record, got %q", out)
		}
	}
}

func TestTeeHandlerSingleAndEmpty(t *testing.T) {
	inner := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	if h := logging.TeeHandler(nil, inner); h != inner {
		t.Error("expected single handler to be returned unwrapped")
	}
	if _, ok := logging.TeeHandler(nil, nil).(logging.NoopHandler); !ok {
		t.Error("expected NoopHandler when no handlers are given")
	}
}

func TestLogPerformanceLevels(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		level   string
	}{
		{"fast", 20 * time.Millisecond, "DEBUG"},
		{"slow", 2 * time.Second, "WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logging.LogPerformance(context.Background(), logger, "clean_batch", tt.elapsed, logging.Int("texts", 3))

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("decode record: %v", err)
			}
			if record["level"] != tt.level {
				t.Fatalf("level = %v, want %s", record["level"], tt.level)
			}
			if record[logging.FieldDurationMS] != float64(tt.elapsed.Milliseconds()) {
				t.Fatalf("duration_ms = %v", record[logging.FieldDurationMS])
			}
			if record["texts"] != float64(3) {
				t.Fatalf("texts = %v", record["texts"])
			}
		})
	}
}

func TestLogOperationRatio(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logging.LogOperation(context.Background(), logger, "clean_large_text", 200, 50)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["reduction_ratio"] != 0.25 {
		t.Fatalf("reduction_ratio = %v", record["reduction_ratio"])
	}
	if record[logging.FieldOperation] != "clean_large_text" {
		t.Fatalf("operation = %v", record[logging.FieldOperation])
	}
}
