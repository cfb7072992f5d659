package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("prediction completed",
		OperationKey, "predict",
		RowsKey, 100,
		FeaturesKey, 8,
	)

	if !logger.ContainsMessage("prediction completed") {
		t.Error("Expected captured message")
	}
	if !logger.ContainsField(OperationKey, "predict") {
		t.Error("Expected operation field")
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Error("visible")

	if logger.ContainsMessage("hidden") {
		t.Error("Debug/Info should be filtered at warn level")
	}
	if !logger.ContainsMessage("visible") {
		t.Error("Error should pass at warn level")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	modelLogger := logger.With(ModelPathKey, "model.json")
	modelLogger.Info("loaded")

	if !logger.ContainsField(ModelPathKey, "model.json") {
		t.Error("With fields should appear on subsequent records")
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.New("native call failed")
	logger.Error("prediction failed", ErrAttr(err))

	var entry map[string]interface{}
	line := strings.TrimSpace(buf.String())
	if jsonErr := json.Unmarshal([]byte(line), &entry); jsonErr != nil {
		t.Fatalf("Log output is not JSON: %v", jsonErr)
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Error("Expected stacktrace attribute for cockroachdb error")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String(): expected %q, got %q", level, want, got)
		}
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("Debug should be disabled at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("Error should be enabled at info level")
	}
}
