package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knightnemo/vid2world/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "vid2world.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Warn("also to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("WARN")) {
		t.Errorf("missing WARN line: %s", string(b))
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "quiet.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("hidden")
	l.Close()
	b, _ := os.ReadFile(cfg.LogFile)
	if bytes.Contains(b, []byte("hidden")) {
		t.Errorf("debug line emitted without verbose: %s", string(b))
	}

	cfg.Verbose = true
	cfg.LogFile = filepath.Join(dir, "verbose.log")
	l, err = NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("shown")
	l.Close()
	b, _ = os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("shown")) {
		t.Errorf("debug line missing with verbose: %s", string(b))
	}
}
