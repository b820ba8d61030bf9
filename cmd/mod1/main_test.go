package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("expected logs directory to be created")
	}
}

func TestRunRequiresAtLeastOneMap(t *testing.T) {
	if code := run(nil); code == 0 {
		t.Error("expected nonzero exit code with no map arguments")
	}
}

func TestRunUsageFlag(t *testing.T) {
	if code := run([]string{"-u"}); code == 0 {
		t.Error("expected nonzero exit code for -u")
	}
}

func TestRunMissingMapFile(t *testing.T) {
	if code := run([]string{"does-not-exist.mod1"}); code == 0 {
		t.Error("expected nonzero exit code for a missing map file")
	}
}

func TestRunMapEndToEnd(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "sample.mod1")
	raw := []byte(`{"map":[{"x":32,"y":10,"z":32}]}`)
	if err := os.WriteFile(mapPath, raw, 0644); err != nil {
		t.Fatalf("failed to write sample map: %v", err)
	}

	if code := run([]string{mapPath}); code != 0 {
		t.Fatalf("expected exit code 0 for a valid map, got %d", code)
	}
}
