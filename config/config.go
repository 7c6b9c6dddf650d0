// Package config loads service configuration from three layers, highest
// precedence last: an optional .env file, an optional YAML file, and
// CONTACTFORM_-prefixed environment variables where "__" maps to "." (e.g.
// CONTACTFORM_SERVER__ADDR sets server.addr).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	"github.com/launchpadhq/contactform/pkg/validator"
)

// envPrefix namespaces the environment overrides.
const envPrefix = "CONTACTFORM_"

var (
	// ErrLoadFailed indicates a config source could not be read or parsed.
	ErrLoadFailed = errors.New("failed to load config")

	// ErrInvalidConfig indicates the merged config failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the merged service configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Form   FormConfig   `koanf:"form"`
	Mail   MailConfig   `koanf:"mail"`
	Sentry SentryConfig `koanf:"sentry"`
}

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// FormConfig holds contact-form behavior tunables.
type FormConfig struct {
	Title            string                  `koanf:"title"`
	SubmitDelay      time.Duration           `koanf:"submit_delay"`
	SuccessHideAfter time.Duration           `koanf:"success_hide_after"`
	Rules            map[string]RuleOverride `koanf:"rules"`
}

// RuleOverride tweaks a single field's validation rule. Zero values leave
// the standard rule untouched.
type RuleOverride struct {
	MinLength       int    `koanf:"min_length"`
	RequiredMessage string `koanf:"required_message"`
	InvalidMessage  string `koanf:"invalid_message"`
}

// ValidationRules returns the standard rule set with any configured
// overrides applied. Unknown field names are ignored.
func (f FormConfig) ValidationRules() validator.Rules {
	rules := validator.DefaultRules()
	for name, override := range f.Rules {
		field := validator.Field(name)
		rule, ok := rules[field]
		if !ok {
			continue
		}
		if override.MinLength > 0 {
			rule.MinLength = override.MinLength
		}
		if override.RequiredMessage != "" {
			rule.RequiredMessage = override.RequiredMessage
		}
		if override.InvalidMessage != "" {
			rule.InvalidMessage = override.InvalidMessage
		}
		rules[field] = rule
	}
	return rules
}

// MailConfig holds email delivery settings. With an empty APIKey the
// service logs submissions instead of emailing them.
type MailConfig struct {
	To       string        `koanf:"to"`
	From     string        `koanf:"from"`
	FromName string        `koanf:"from_name"`
	APIKey   string        `koanf:"api_key"`
	Timeout  time.Duration `koanf:"timeout"`
}

// SentryConfig holds error-reporting settings. An empty DSN disables Sentry.
type SentryConfig struct {
	DSN         string `koanf:"dsn"`
	Environment string `koanf:"environment"`
}

// Enabled reports whether real email delivery is configured.
func (m MailConfig) Enabled() bool {
	return m.APIKey != ""
}

// Default returns the configuration used when no sources are present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Form: FormConfig{
			Title:            "Contact",
			SubmitDelay:      1500 * time.Millisecond,
			SuccessHideAfter: 5 * time.Second,
		},
		Mail: MailConfig{
			Timeout: 10 * time.Second,
		},
		Sentry: SentryConfig{
			Environment: "development",
		},
	}
}

// Load builds the configuration from the optional YAML file at path plus
// environment overrides. An empty path or a missing file skips the YAML
// layer; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	// Optional .env, no error if missing.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
			}
		}
	}

	// CONTACTFORM_SERVER__ADDR -> server.addr
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("%w: env overlay: %v", ErrLoadFailed, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalidConfig)
	}
	if c.Form.SubmitDelay < 0 {
		return fmt.Errorf("%w: form.submit_delay must not be negative", ErrInvalidConfig)
	}
	if c.Form.SuccessHideAfter < 0 {
		return fmt.Errorf("%w: form.success_hide_after must not be negative", ErrInvalidConfig)
	}
	if c.Mail.Enabled() {
		if c.Mail.To == "" {
			return fmt.Errorf("%w: mail.to is required when mail.api_key is set", ErrInvalidConfig)
		}
		if c.Mail.From == "" {
			return fmt.Errorf("%w: mail.from is required when mail.api_key is set", ErrInvalidConfig)
		}
	}
	return nil
}
