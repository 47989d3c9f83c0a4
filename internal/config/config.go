// Package config loads application-level options: defaults, then the
// config.yaml file under the user config dir, then POMODORO_* environment
// overrides. Timer durations are not configured here; they live in the
// key-value store and are edited through the preferences window.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "Pomodoro"
	configFileName = "config.yaml"
	dataFileName   = "pomodoro.db"
)

// Config holds application options.
type Config struct {
	DataDir            string `yaml:"data_dir" env:"POMODORO_DATA_DIR"`
	LogLevel           string `yaml:"log_level" env:"POMODORO_LOG_LEVEL"`
	TickIntervalMillis int    `yaml:"tick_interval_millis" env:"POMODORO_TICK_INTERVAL_MILLIS"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:           "info",
		TickIntervalMillis: 1000,
	}
}

// Load resolves the effective configuration. A missing file is not an
// error; a malformed file or environment is reported alongside usable
// defaults.
func Load() (Config, error) {
	config := Default()

	configPath, pathErr := resolveConfigPath()
	if pathErr == nil {
		if err := applyFile(&config, configPath); err != nil {
			finishLoad(&config)
			return config, err
		}
	}

	if err := env.Parse(&config); err != nil {
		finishLoad(&config)
		return config, fmt.Errorf("parse env: %w", err)
	}

	finishLoad(&config)
	return config, pathErr
}

// DataFile returns the bolt database path.
func (config Config) DataFile() string {
	return filepath.Join(config.DataDir, dataFileName)
}

// TickInterval returns the countdown granularity.
func (config Config) TickInterval() time.Duration {
	return time.Duration(config.TickIntervalMillis) * time.Millisecond
}

func applyFile(config *Config, path string) error {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fileData Config
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if fileData.DataDir != "" {
		config.DataDir = fileData.DataDir
	}
	if fileData.LogLevel != "" {
		config.LogLevel = fileData.LogLevel
	}
	if fileData.TickIntervalMillis > 0 {
		config.TickIntervalMillis = fileData.TickIntervalMillis
	}
	return nil
}

// finishLoad fills derived defaults and clamps values that would break the
// tick loop.
func finishLoad(config *Config) {
	if config.TickIntervalMillis < 100 {
		config.TickIntervalMillis = 1000
	}
	if config.DataDir == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			config.DataDir = filepath.Join(configDir, appDirName)
		} else {
			config.DataDir = "."
		}
	}
}

func resolveConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appDirName, configFileName), nil
}
