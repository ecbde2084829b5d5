package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetState() {
	CloseAll()
	logsDir = ""
	opts = Options{}
}

func TestInitialize_ProductionModeIsNoop(t *testing.T) {
	defer resetState()
	tmp := t.TempDir()

	if err := Initialize(tmp, Options{DebugMode: false}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "logs")); !os.IsNotExist(err) {
		t.Error("logs directory should not exist in production mode")
	}

	// Writing through a no-op logger must not panic.
	API("request to %s", "/farms")
}

func TestInitialize_DebugModeWritesFiles(t *testing.T) {
	defer resetState()
	tmp := t.TempDir()

	if err := Initialize(tmp, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Session("login attempt for %s", "demo")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(tmp, "logs"))
	if err != nil {
		t.Fatalf("reading logs dir: %v", err)
	}

	found := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "session") {
			found = true
			data, err := os.ReadFile(filepath.Join(tmp, "logs", e.Name()))
			if err != nil {
				t.Fatalf("reading log file: %v", err)
			}
			if !strings.Contains(string(data), "login attempt for demo") {
				t.Errorf("log file missing expected message, got: %s", data)
			}
		}
	}
	if !found {
		t.Error("no session log file created")
	}
}

func TestCategoryFilter(t *testing.T) {
	defer resetState()
	tmp := t.TempDir()

	err := Initialize(tmp, Options{
		DebugMode:  true,
		Categories: map[string]bool{"api": false},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryAPI) {
		t.Error("api category should be disabled")
	}
	if !IsCategoryEnabled(CategorySession) {
		t.Error("session category should default to enabled")
	}
}
