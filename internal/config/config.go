// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

// Package config loads traccarctl configuration with Koanf v2 from layered
// sources (highest priority wins):
//
//  1. Environment variables with the TRACCAR_ prefix
//  2. Config file (traccarctl.yaml)
//  3. Built-in defaults
//
// Environment variable names map onto config paths by lowercasing and
// splitting on the first underscore: TRACCAR_SERVER_URL -> server.url,
// TRACCAR_LOG_LEVEL -> log.level.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where a config file is searched, in order.
var DefaultConfigPaths = []string{
	"traccarctl.yaml",
	"traccarctl.yml",
	"/etc/traccarctl/config.yaml",
	"/etc/traccarctl/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "TRACCAR_CONFIG"

// envPrefix selects which environment variables participate in config.
const envPrefix = "TRACCAR_"

// Config is the full traccarctl configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	HTTP   HTTPConfig   `koanf:"http"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig identifies the Traccar server and how to authenticate.
// Token takes precedence over email/password when both are configured.
type ServerConfig struct {
	URL      string `koanf:"url"`
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
	Token    string `koanf:"token"`
}

// HTTPConfig tunes the client transport.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, an optional config file and
// TRACCAR_* environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransform maps TRACCAR_SERVER_URL onto server.url: strip the prefix,
// lowercase, and turn the first underscore into the section delimiter.
func envTransform(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	return strings.Replace(name, "_", ".", 1)
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url is required (set TRACCAR_SERVER_URL or server.url in traccarctl.yaml)")
	}
	if !strings.HasPrefix(c.Server.URL, "http://") && !strings.HasPrefix(c.Server.URL, "https://") {
		return fmt.Errorf("server.url must start with http:// or https://, got %q", c.Server.URL)
	}
	if c.Server.Token == "" {
		if (c.Server.Email == "") != (c.Server.Password == "") {
			return fmt.Errorf("server.email and server.password must be set together")
		}
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}
