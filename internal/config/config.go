package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultSessionSecret is the development fallback for cookie signing. It is
// public knowledge, so main logs a warning whenever it is still in use.
const DefaultSessionSecret = "dev-secret-key-change-in-production"

type Config struct {
	Port      int
	LeadsPath string
	LogLevel  string
	// Admin gate
	AdminUsername   string
	AdminPassword   string
	SessionSecret   string
	SessionTTLHours int
}

// fileConfig mirrors the optional YAML config file. Zero values mean "not
// set" and leave the default in place.
type fileConfig struct {
	Port            int    `yaml:"port"`
	LeadsPath       string `yaml:"leads_path"`
	LogLevel        string `yaml:"log_level"`
	AdminUsername   string `yaml:"admin_username"`
	AdminPassword   string `yaml:"admin_password"`
	SessionSecret   string `yaml:"session_secret"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables. Environment wins.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		LeadsPath:       "data/messages.json",
		LogLevel:        "info",
		AdminUsername:   "admin_sehaj",
		AdminPassword:   "artisian",
		SessionSecret:   DefaultSessionSecret,
		SessionTTLHours: 24,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.LeadsPath = envStr("LEADS_PATH", cfg.LeadsPath)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.AdminUsername = envStr("ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = envStr("ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.SessionSecret = envStr("SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionTTLHours = envInt("SESSION_TTL_HOURS", cfg.SessionTTLHours)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// InsecureSecret reports whether the signing secret is still the development
// default.
func (c *Config) InsecureSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if fc.Port != 0 {
		c.Port = fc.Port
	}
	if fc.LeadsPath != "" {
		c.LeadsPath = fc.LeadsPath
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.AdminUsername != "" {
		c.AdminUsername = fc.AdminUsername
	}
	if fc.AdminPassword != "" {
		c.AdminPassword = fc.AdminPassword
	}
	if fc.SessionSecret != "" {
		c.SessionSecret = fc.SessionSecret
	}
	if fc.SessionTTLHours != 0 {
		c.SessionTTLHours = fc.SessionTTLHours
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.LeadsPath == "" {
		return fmt.Errorf("LEADS_PATH must not be empty")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
