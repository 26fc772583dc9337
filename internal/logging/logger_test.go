package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledModeIsNoOp(t *testing.T) {
	defer CloseAll()
	if err := Initialize("", false, "info"); err != nil {
		t.Fatalf("Initialize with debug off should not fail: %v", err)
	}

	// Must not panic or create files.
	Boot("hello")
	Get(CategoryWorkflow).Error("still a no-op")

	if IsDebugMode() {
		t.Error("debug mode should be off")
	}
}

func TestDebugModeWritesCategoryFile(t *testing.T) {
	defer CloseAll()
	dir := t.TempDir()

	if err := Initialize(dir, true, "debug"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Workflow("advance action=%s section=%d", "write", 1)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}

	found := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "workflow") {
			found = true
			data, err := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
			if err != nil {
				t.Fatalf("read log file: %v", err)
			}
			if !strings.Contains(string(data), "advance action=write section=1") {
				t.Errorf("log line not written, got: %s", data)
			}
		}
	}
	if !found {
		t.Error("expected a workflow category log file")
	}

	// Reset globals for other tests.
	debugMode = false
	logsDir = ""
}

func TestParseLevel(t *testing.T) {
	cases := map[string]int{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"":        LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}
