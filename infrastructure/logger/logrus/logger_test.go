package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogrusLogger(t *testing.T) {
	logger := NewLogrusLogger("debug")

	if logger == nil {
		t.Fatal("NewLogrusLogger returned nil")
	}
}

func TestNewLogrusLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogrusLogger("nonsense")

	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Error("debug output should be suppressed at info level")
	}

	logger.Info("visible", nil)
	if !strings.Contains(buf.String(), "visible") {
		t.Error("info output should be written at info level")
	}
}

func TestLogrusLogger_Fields(t *testing.T) {
	logger := NewLogrusLogger("info")

	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Warn("Image probe failed", map[string]interface{}{
		"url": "https://x.test/a.png",
	})

	out := buf.String()
	if !strings.Contains(out, "Image probe failed") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "https://x.test/a.png") {
		t.Errorf("output %q missing field value", out)
	}
}
