package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port            int           `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     string        `mapstructure:"cors_allowed_origins"`

	AIUseMock  bool          `mapstructure:"ai_use_mock"`
	AIProvider string        `mapstructure:"ai_provider"`
	AITimeout  time.Duration `mapstructure:"ai_timeout"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`

	GeminiAPIKey  string `mapstructure:"gemini_api_key"`
	GeminiModel   string `mapstructure:"gemini_model"`
	GeminiBaseURL string `mapstructure:"gemini_base_url"`
}

var defaults = map[string]any{
	"port":                 8000,
	"log_level":            "info",
	"log_format":           "json",
	"shutdown_timeout":     "10s",
	"cors_allowed_origins": "*",
	"ai_use_mock":          true,
	"ai_provider":          "openai",
	"ai_timeout":           "30s",
	"openai_api_key":       "",
	"openai_model":         "gpt-3.5-turbo",
	"openai_base_url":      "",
	"gemini_api_key":       "",
	"gemini_model":         "gemini-2.5-flash-lite",
	"gemini_base_url":      "",
}

// Load reads .env files (if any) and the process environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be in 1..65535, got %d", c.Port))
	}
	if c.AITimeout <= 0 {
		errs = append(errs, fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.AIProvider != "openai" && c.AIProvider != "gemini" {
		errs = append(errs, fmt.Errorf("AI_PROVIDER must be openai or gemini, got %q", c.AIProvider))
	}

	return errors.Join(errs...)
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.AIProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Model returns the model name of the selected provider.
func (c *Config) Model() string {
	if c.AIProvider == "gemini" {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

// BaseURL returns the endpoint override of the selected provider.
func (c *Config) BaseURL() string {
	if c.AIProvider == "gemini" {
		return c.GeminiBaseURL
	}
	return c.OpenAIBaseURL
}

// MockMode is true when no remote call may ever happen.
func (c *Config) MockMode() bool {
	return c.AIUseMock || c.APIKey() == ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
