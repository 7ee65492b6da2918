package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	closeLog, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer configure(os.Stderr, true)

	log.WithField("level_index", 2).Info("level loaded")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level loaded") || !strings.Contains(string(data), "level_index=2") {
		t.Errorf("log file missing entry: %q", data)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
}

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	if _, err := Setup("", "loud"); err == nil {
		t.Error("Setup with unknown level returned nil error")
	}
}
