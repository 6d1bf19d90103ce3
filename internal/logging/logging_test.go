package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/classgrid/internal/config"
)

func TestNew_Disabled(t *testing.T) {
	logger, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("expected no-op logger")
	}
}

func TestNew_DebugWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, err := New(config.LogConfig{Debug: true, File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("moved entry")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"moved entry"`) {
		t.Errorf("expected log line, got %q", data)
	}
}
