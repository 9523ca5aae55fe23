package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/heartsync/internal/i18n"
	"github.com/csheth/heartsync/internal/llm"
)

var configEnv = []string{
	"HEARTSYNC_GEMINI_API_KEY",
	"GEMINI_API_KEY",
	"VITE_GEMINI_API_KEY",
	"HEARTSYNC_MODEL",
	"HEARTSYNC_ENDPOINT",
	"HEARTSYNC_API_VERSION",
	"HEARTSYNC_LANGUAGE",
	"HEARTSYNC_REQUEST_TIMEOUT",
	"HEARTSYNC_LOG_FILE",
	"HEARTSYNC_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnv {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.False(t, cfg.HasAPIKey())
	assert.Equal(t, llm.DefaultModel, cfg.Model)
	assert.Equal(t, llm.DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, i18n.Chinese, cfg.Lang())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "heartsync.log", filepath.Base(cfg.LogFile))
}

func TestAPIKeyFallbacks(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "prefixed", env: map[string]string{"HEARTSYNC_GEMINI_API_KEY": "a"}, want: "a"},
		{name: "plain", env: map[string]string{"GEMINI_API_KEY": "b"}, want: "b"},
		{name: "vite", env: map[string]string{"VITE_GEMINI_API_KEY": " c "}, want: "c"},
		{name: "prefixed wins", env: map[string]string{"HEARTSYNC_GEMINI_API_KEY": "a", "GEMINI_API_KEY": "b", "VITE_GEMINI_API_KEY": "c"}, want: "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := Load("", nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.GeminiAPIKey)
			assert.Equal(t, tc.want, cfg.LLM().APIKey)
		})
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "heartsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: from-file\nlanguage: en\nrequest_timeout: 45s\nlog_level: debug\n"), 0o600))
	t.Setenv("HEARTSYNC_MODEL", "from-env")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, i18n.English, cfg.Lang())
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.LLM().Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HEARTSYNC_LANGUAGE", "en")
	t.Setenv("HEARTSYNC_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("heartsync", pflag.ContinueOnError)
	flags.String("lang", "", "")
	flags.String("model", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--lang", "zh", "--model", "flag-model"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, i18n.Chinese, cfg.Lang())
	assert.Equal(t, "flag-model", cfg.Model)
	assert.Equal(t, "warn", cfg.LogLevel, "unchanged flags leave the environment in charge")
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HEARTSYNC_LANGUAGE", "klingon")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, i18n.Default, cfg.Lang())
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]map[string]string{
		"log level": {"HEARTSYNC_LOG_LEVEL": "verbose"},
		"timeout":   {"HEARTSYNC_REQUEST_TIMEOUT": "0s"},
		"endpoint":  {"HEARTSYNC_ENDPOINT": "not a url"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("", nil)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
