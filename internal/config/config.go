// ABOUTME: Runtime configuration for the seeder.
// ABOUTME: Layers defaults, an optional YAML file, .env files, and environment variables.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	seederrors "github.com/2389/demoseed/internal/errors"
)

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "demoseed.yaml"

// Config holds every setting the CLI and HTTP server need.
type Config struct {
	DBPath      string        `yaml:"db_path"`
	DatabaseURL string        `yaml:"database_url"`
	BatchSize   int           `yaml:"batch_size"`
	RandomSeed  uint64        `yaml:"random_seed"`
	Timeout     time.Duration `yaml:"timeout"`
	Port        string        `yaml:"port"`
	SeedSecret  string        `yaml:"seed_secret"`
	OpenAIKey   string        `yaml:"openai_api_key"`
	OpenAIModel string        `yaml:"openai_model"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BatchSize: 500,
		Timeout:   10 * time.Minute,
		Port:      "9100",
	}
}

// Load builds a Config. path names a YAML file; when empty, DEMOSEED_CONFIG
// is used, then ./demoseed.yaml if it exists. Values from .env files and the
// environment override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("DEMOSEED_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, err
		}
	}

	loadDotEnv()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// loadDotEnv reads the first .env found in the working directory or its
// parents, then ~/.env. Existing environment variables always win.
func loadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		godotenv.Load(filepath.Join(home, ".env"))
	}
}

// applyEnv overrides fields from environment variables looked up through env.
func (c *Config) applyEnv(env func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := env(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("DEMOSEED_DB_PATH", &c.DBPath)
	str("DATABASE_URL", &c.DatabaseURL)
	str("DEMOSEED_PORT", &c.Port)
	str("SEED_SECRET", &c.SeedSecret)
	str("OPENAI_API_KEY", &c.OpenAIKey)
	str("OPENAI_MODEL", &c.OpenAIModel)

	if v, ok := env("DEMOSEED_BATCH_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return seederrors.Invalid("DEMOSEED_BATCH_SIZE", "not an integer: %q", v)
		}
		c.BatchSize = n
	}
	if v, ok := env("DEMOSEED_RANDOM_SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return seederrors.Invalid("DEMOSEED_RANDOM_SEED", "not an unsigned integer: %q", v)
		}
		c.RandomSeed = n
	}
	if v, ok := env("DEMOSEED_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return seederrors.Invalid("DEMOSEED_TIMEOUT", "not a duration: %q", v)
		}
		c.Timeout = d
	}
	return nil
}

// Validate rejects settings the seeder cannot run with.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return seederrors.Invalid("batch_size", "must be positive, got %d", c.BatchSize)
	}
	if c.Timeout < 0 {
		return seederrors.Invalid("timeout", "must not be negative, got %s", c.Timeout)
	}
	if c.Port == "" {
		return seederrors.Invalid("port", "required")
	}
	return nil
}

// UsesPostgres reports whether a Postgres URL is configured.
func (c Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}
