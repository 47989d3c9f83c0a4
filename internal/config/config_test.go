package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	config := Default()
	finishLoad(&config)

	if config.LogLevel != "info" {
		t.Errorf("log level = %q, want info", config.LogLevel)
	}
	if config.TickInterval() != time.Second {
		t.Errorf("tick interval = %v, want 1s", config.TickInterval())
	}
	if config.DataDir == "" {
		t.Error("data dir should be resolved")
	}
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "data_dir: /tmp/pomodoro\nlog_level: debug\ntick_interval_millis: 500\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config := Default()
	if err := applyFile(&config, path); err != nil {
		t.Fatalf("apply file: %v", err)
	}
	if config.DataDir != "/tmp/pomodoro" {
		t.Errorf("data dir = %q, want /tmp/pomodoro", config.DataDir)
	}
	if config.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", config.LogLevel)
	}
	if config.TickIntervalMillis != 500 {
		t.Errorf("tick millis = %d, want 500", config.TickIntervalMillis)
	}
}

func TestApplyFileMissing(t *testing.T) {
	config := Default()
	if err := applyFile(&config, filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if config != Default() {
		t.Errorf("config = %+v, want untouched defaults", config)
	}
}

func TestApplyFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config := Default()
	if err := applyFile(&config, path); err == nil {
		t.Fatal("malformed yaml should surface an error")
	}
}

func TestFinishLoadClampsTick(t *testing.T) {
	config := Config{TickIntervalMillis: 5, DataDir: "/tmp/x"}
	finishLoad(&config)
	if config.TickIntervalMillis != 1000 {
		t.Errorf("tick millis = %d, want clamped to 1000", config.TickIntervalMillis)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("POMODORO_LOG_LEVEL", "warn")
	t.Setenv("POMODORO_DATA_DIR", t.TempDir())
	t.Setenv("POMODORO_TICK_INTERVAL_MILLIS", "250")

	config, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if config.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", config.LogLevel)
	}
	if config.TickIntervalMillis != 250 {
		t.Errorf("tick millis = %d, want 250", config.TickIntervalMillis)
	}
	if config.DataFile() != filepath.Join(config.DataDir, "pomodoro.db") {
		t.Errorf("data file = %q, want under data dir", config.DataFile())
	}
}
