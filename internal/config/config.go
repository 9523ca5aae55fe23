// Package config loads HeartSync settings from flags, the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/heartsync/internal/i18n"
	"github.com/csheth/heartsync/internal/llm"
)

// EnvPrefix namespaces every environment variable the app reads.
const EnvPrefix = "HEARTSYNC"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the resolved settings. A missing API key is valid; the UI
// reports it when the user tries to generate.
type Config struct {
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	Model          string        `mapstructure:"model" validate:"required"`
	Endpoint       string        `mapstructure:"endpoint" validate:"omitempty,url"`
	APIVersion     string        `mapstructure:"api_version" validate:"required"`
	Language       string        `mapstructure:"language"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	LogFile        string        `mapstructure:"log_file" validate:"required"`
	LogLevel       string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"lang":      "language",
	"model":     "model",
	"log-file":  "log_file",
	"log-level": "log_level",
}

// Load resolves the configuration. Precedence, highest first: changed flags,
// environment, config file, defaults. configFile may be empty; flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gemini_api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY", "VITE_GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Lang resolves the configured language, falling back to the default.
func (c *Config) Lang() i18n.Language {
	lang, _ := i18n.Parse(c.Language)
	return lang
}

// HasAPIKey reports whether a credential was found.
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// LLM returns the generation client settings.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		APIKey:     c.GeminiAPIKey,
		Model:      c.Model,
		Endpoint:   c.Endpoint,
		APIVersion: c.APIVersion,
		Timeout:    c.RequestTimeout,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func setDefaults(v *viper.Viper) {
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("model", llm.DefaultModel)
	v.SetDefault("endpoint", "")
	v.SetDefault("api_version", llm.DefaultAPIVersion)
	v.SetDefault("language", string(i18n.Default))
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("log_file", DefaultLogFile())
	v.SetDefault("log_level", "info")
}

// DefaultLogFile is heartsync.log under the user cache directory.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "heartsync", "heartsync.log")
}
