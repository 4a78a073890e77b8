// Package config loads server configuration from an optional YAML file with
// environment variable overrides, so main stays lean.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string `yaml:"addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// MaxBodyBytes caps uploaded document size.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// DefaultProfile is used when a validate request names no profile.
	DefaultProfile string `yaml:"default_profile"`
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Server {
	return Server{
		Addr:           ":8080",
		LogLevel:       "info",
		MaxBodyBytes:   2 << 20, // 2 MiB, far beyond any sane pain.001 upload
		DefaultProfile: "base",
	}
}

// Load builds the config: defaults, then the YAML file at path (skipped when
// path is empty), then environment variables.
func Load(path string) (Server, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Server{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if addr := os.Getenv("SEPALINT_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if level := os.Getenv("SEPALINT_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if raw := os.Getenv("SEPALINT_MAX_BODY_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("invalid SEPALINT_MAX_BODY_BYTES: %q", raw)
		}
		cfg.MaxBodyBytes = n
	}
	if prof := os.Getenv("SEPALINT_DEFAULT_PROFILE"); prof != "" {
		cfg.DefaultProfile = prof
	}

	return cfg, nil
}
