// Package config loads picker settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string   `yaml:"port"`
	QuestionsDir   string   `yaml:"questions_dir"`
	BankPath       string   `yaml:"bank_path"`
	IndexURL       string   `yaml:"index_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	TLSCert        string   `yaml:"tls_cert"`
	TLSKey         string   `yaml:"tls_key"`
	LogLevel       string   `yaml:"log_level"`
	SessionTTLMins int      `yaml:"session_ttl_minutes"`
	FetchTimeout   int      `yaml:"fetch_timeout_seconds"`
	ShowAuthors    bool     `yaml:"show_authors"`
}

// Source names where questions are loaded from.
type Source string

const (
	SourceIndex Source = "index"
	SourceBank  Source = "bank"
	SourceDir   Source = "dir"
)

// Path returns the config file path from PICKER_CONFIG or the default.
func Path() string {
	if p := os.Getenv("PICKER_CONFIG"); p != "" {
		return p
	}
	return "./config.yaml"
}

// Load reads path if it exists, applies env overrides and defaults, and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Source reports which question source is used: INDEX_URL, then BANK_PATH,
// then QUESTIONS_DIR.
func (c Config) Source() Source {
	switch {
	case c.IndexURL != "":
		return SourceIndex
	case c.BankPath != "":
		return SourceBank
	default:
		return SourceDir
	}
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMins) * time.Minute
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// SlogLevel maps LogLevel onto slog levels.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyEnv(cfg *Config) error {
	envOverride(&cfg.Port, "PORT")
	envOverride(&cfg.QuestionsDir, "QUESTIONS_DIR")
	envOverride(&cfg.BankPath, "BANK_PATH")
	envOverride(&cfg.IndexURL, "INDEX_URL")
	envOverride(&cfg.TLSCert, "TLS_CERT")
	envOverride(&cfg.TLSKey, "TLS_KEY")
	envOverride(&cfg.LogLevel, "LOG_LEVEL")
	if err := envOverrideInt(&cfg.SessionTTLMins, "SESSION_TTL_MINUTES"); err != nil {
		return err
	}
	if err := envOverrideInt(&cfg.FetchTimeout, "FETCH_TIMEOUT_SECONDS"); err != nil {
		return err
	}
	if v := os.Getenv("SHOW_AUTHORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SHOW_AUTHORS: %w", err)
		}
		cfg.ShowAuthors = b
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.QuestionsDir == "" {
		cfg.QuestionsDir = "./questions"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173", "https://localhost:5173"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SessionTTLMins == 0 {
		cfg.SessionTTLMins = 180
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 8
	}
}

func validate(cfg Config) error {
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", cfg.Port)
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return errors.New("tls_cert and tls_key must be set together")
	}
	if cfg.SessionTTLMins < 1 {
		return fmt.Errorf("session_ttl_minutes must be >= 1, got %d", cfg.SessionTTLMins)
	}
	if cfg.FetchTimeout < 1 {
		return fmt.Errorf("fetch_timeout_seconds must be >= 1, got %d", cfg.FetchTimeout)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return nil
}

func envOverride(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}

func envOverrideInt(field *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*field = n
	return nil
}
