package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "gopea.xyz/smart-house-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestCopyStringMap(t *testing.T) {
	original := map[string]string{"state": "on"}
	copied := CopyStringMap(original)

	copied["state"] = "off"
	if original["state"] != "on" {
		t.Errorf("expected original to be untouched, got: %s", original["state"])
	}

	if CopyStringMap(nil) == nil {
		t.Error("expected non-nil map for nil input")
	}
}
