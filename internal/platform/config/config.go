package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "PRODCHECK_CONFIG"

type Config struct {
	HTTPAddr      string
	Env           string
	LogLevel      string
	PGDSN         string
	SessionSecret string
	SessionTTL    time.Duration

	Codes             CodesConfig
	VerificationDelay time.Duration
	EntryPageURL      string
	ResultPageURL     string
}

// CodesConfig holds the code lists and the accepted length range.
type CodesConfig struct {
	Fresh     []string `yaml:"fresh"`
	Expired   []string `yaml:"expired"`
	MinLength int      `yaml:"minLength"`
	MaxLength int      `yaml:"maxLength"`
}

// fileConfig is the YAML shape of PRODCHECK_CONFIG.
type fileConfig struct {
	Codes               CodesConfig `yaml:"codes"`
	VerificationDelayMs *int        `yaml:"verificationDelayMs"`
	EntryPageURL        string      `yaml:"entryPageUrl"`
	ResultPageURL       string      `yaml:"resultPageUrl"`
	SessionTTL          string      `yaml:"sessionTtl"`
}

// Load builds the config from defaults, the optional YAML file and the
// environment, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if err := cfg.merge(fc); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		SessionSecret: "dev-session-secret",
		SessionTTL:    30 * time.Minute,
		Codes: CodesConfig{
			Fresh:     []string{"abc123", "valid456", "fresh789", "new2024", "authentic1", "verified2025"},
			Expired:   []string{"4526580", "exp123", "old456", "invalid1", "bad999", "expired2024"},
			MinLength: 6,
			MaxLength: 20,
		},
		VerificationDelay: 2000 * time.Millisecond,
		EntryPageURL:      "/",
		ResultPageURL:     "/result",
	}
}

func (c Config) Validate() error {
	if c.Codes.MinLength < 1 {
		return fmt.Errorf("config: code min length must be positive, got %d", c.Codes.MinLength)
	}
	if c.Codes.MaxLength < c.Codes.MinLength {
		return fmt.Errorf("config: code max length %d below min length %d", c.Codes.MaxLength, c.Codes.MinLength)
	}
	if c.VerificationDelay < 0 {
		return fmt.Errorf("config: negative verification delay %s", c.VerificationDelay)
	}
	if c.EntryPageURL == "" || c.ResultPageURL == "" {
		return fmt.Errorf("config: entry and result page urls are required")
	}
	if c.EntryPageURL == c.ResultPageURL {
		return fmt.Errorf("config: entry and result page share the url %q", c.EntryPageURL)
	}
	return nil
}

func (c *Config) merge(fc fileConfig) error {
	if len(fc.Codes.Fresh) > 0 {
		c.Codes.Fresh = fc.Codes.Fresh
	}
	if len(fc.Codes.Expired) > 0 {
		c.Codes.Expired = fc.Codes.Expired
	}
	if fc.Codes.MinLength != 0 {
		c.Codes.MinLength = fc.Codes.MinLength
	}
	if fc.Codes.MaxLength != 0 {
		c.Codes.MaxLength = fc.Codes.MaxLength
	}
	if fc.VerificationDelayMs != nil {
		c.VerificationDelay = time.Duration(*fc.VerificationDelayMs) * time.Millisecond
	}
	if fc.EntryPageURL != "" {
		c.EntryPageURL = fc.EntryPageURL
	}
	if fc.ResultPageURL != "" {
		c.ResultPageURL = fc.ResultPageURL
	}
	if fc.SessionTTL != "" {
		d, err := time.ParseDuration(fc.SessionTTL)
		if err != nil {
			return fmt.Errorf("sessionTtl: %w", err)
		}
		c.SessionTTL = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.Env = getenv("APP_ENV", c.Env)
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.PGDSN = getenv("PG_DSN", c.PGDSN)
	c.SessionSecret = getenv("SESSION_SECRET", c.SessionSecret)
	c.EntryPageURL = getenv("ENTRY_PAGE_URL", c.EntryPageURL)
	c.ResultPageURL = getenv("RESULT_PAGE_URL", c.ResultPageURL)

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	if err := envInt("CODE_MIN_LENGTH", &c.Codes.MinLength); err != nil {
		return err
	}
	if err := envInt("CODE_MAX_LENGTH", &c.Codes.MaxLength); err != nil {
		return err
	}
	var delayMs int
	if v := os.Getenv("VERIFICATION_DELAY_MS"); v != "" {
		if err := envInt("VERIFICATION_DELAY_MS", &delayMs); err != nil {
			return err
		}
		c.VerificationDelay = time.Duration(delayMs) * time.Millisecond
	}
	return nil
}

func envInt(k string, dst *int) error {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", k, err)
	}
	*dst = n
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
