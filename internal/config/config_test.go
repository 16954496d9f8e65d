// ABOUTME: Tests for configuration loading.
// ABOUTME: Covers YAML parsing, environment overrides, and validation.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demoseed.yaml")
	body := "db_path: /tmp/practice.db\nbatch_size: 250\nrandom_seed: 42\ntimeout: 90s\nport: \"8088\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"DEMOSEED_DB_PATH", "DEMOSEED_BATCH_SIZE", "DEMOSEED_RANDOM_SEED", "DEMOSEED_TIMEOUT", "DEMOSEED_PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/practice.db" || cfg.BatchSize != 250 || cfg.RandomSeed != 42 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 90*time.Second || cfg.Port != "8088" {
		t.Errorf("timeout %s port %q", cfg.Timeout, cfg.Port)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envFrom(map[string]string{
		"DATABASE_URL":         "postgres://localhost/practice",
		"DEMOSEED_BATCH_SIZE":  "100",
		"DEMOSEED_RANDOM_SEED": "7",
		"DEMOSEED_TIMEOUT":     "2m",
		"SEED_SECRET":          "  s3cret  ",
	}))
	if err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if !cfg.UsesPostgres() || cfg.BatchSize != 100 || cfg.RandomSeed != 7 || cfg.Timeout != 2*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SeedSecret != "s3cret" {
		t.Errorf("secret = %q, want it trimmed", cfg.SeedSecret)
	}
}

func TestApplyEnv_RejectsMalformedNumbers(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DEMOSEED_BATCH_SIZE", "lots"},
		{"DEMOSEED_RANDOM_SEED", "-3"},
		{"DEMOSEED_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(envFrom(map[string]string{tt.key: tt.value}))
			if !seederrors.IsValidation(err) {
				t.Errorf("applyEnv(%s=%q) error = %v, want ValidationError", tt.key, tt.value, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"no port", func(c *Config) { c.Port = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
