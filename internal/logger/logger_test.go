package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWithFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	InitWithFileConfig("debug", DefaultFileConfig(logFile), false)
	if Log == nil {
		t.Fatal("Log should be initialized")
	}

	Log.Info("hello from the test")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Error("log file should contain the written message")
	}
}

func TestInitWithoutFile(t *testing.T) {
	InitWithFileConfig("info", FileConfig{}, false)

	if Log == nil {
		t.Fatal("Log should be initialized even with no outputs")
	}
	// must not panic
	Log.Info("discarded")
	Sync()
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("viewer.log")

	if cfg.Path != "viewer.log" {
		t.Errorf("expected path 'viewer.log', got %s", cfg.Path)
	}
	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		t.Error("rotation limits should be positive")
	}
}
