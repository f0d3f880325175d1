// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsAndEnvOverrides(t *testing.T) {
	// Env vars make this unsafe for t.Parallel.
	t.Setenv("TRACCAR_SERVER_URL", "https://traccar.example.com")
	t.Setenv("TRACCAR_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.URL != "https://traccar.example.com" {
		t.Errorf("Server.URL = %q, want env value", cfg.Server.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug from env", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want default console", cfg.Log.Format)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("HTTP.Timeout = %v, want default 30s", cfg.HTTP.Timeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traccarctl.yaml")
	content := []byte("server:\n  url: https://file.example.com\n  token: tok-from-file\nlog:\n  format: json\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("TRACCAR_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.URL != "https://file.example.com" {
		t.Errorf("Server.URL = %q, want file value", cfg.Server.URL)
	}
	if cfg.Server.Token != "tok-from-file" {
		t.Errorf("Server.Token = %q, want file value", cfg.Server.Token)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json from file", cfg.Log.Format)
	}
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "traccarctl.yaml")
	if err := os.WriteFile(path, []byte("server:\n  url: https://file.example.com\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("TRACCAR_CONFIG", path)
	t.Setenv("TRACCAR_SERVER_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.URL != "https://env.example.com" {
		t.Errorf("Server.URL = %q, want env to win over file", cfg.Server.URL)
	}
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"TRACCAR_SERVER_URL", "server.url"},
		{"TRACCAR_SERVER_PASSWORD", "server.password"},
		{"TRACCAR_HTTP_TIMEOUT", "http.timeout"},
		{"TRACCAR_LOG_LEVEL", "log.level"},
	}

	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Server.URL = "https://traccar.example.com"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid with no auth", func(c *Config) {}, false},
		{"valid with token", func(c *Config) { c.Server.Token = "tok" }, false},
		{"valid with credentials", func(c *Config) { c.Server.Email = "a@b.c"; c.Server.Password = "p" }, false},
		{"missing url", func(c *Config) { c.Server.URL = "" }, true},
		{"url without scheme", func(c *Config) { c.Server.URL = "traccar.example.com" }, true},
		{"email without password", func(c *Config) { c.Server.Email = "a@b.c" }, true},
		{"password without email", func(c *Config) { c.Server.Password = "p" }, true},
		{"negative timeout", func(c *Config) { c.HTTP.Timeout = -time.Second }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
