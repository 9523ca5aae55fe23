// Package llm talks to the hosted language model that writes the cards.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csheth/heartsync/internal/deck"
)

const (
	// DefaultModel is the Gemini model used when none is configured.
	DefaultModel      = "gemini-2.5-flash-preview-09-2025"
	DefaultAPIVersion = "v1beta"
	defaultTimeout    = 30 * time.Second
)

var (
	// ErrConfiguration means no credential is available. No request is made.
	ErrConfiguration = errors.New("llm: api credential not configured")
	// ErrGeneration covers transport failures, non-success statuses,
	// timeouts and any response that does not match the card schema.
	ErrGeneration = errors.New("llm: generation failed")
)

// Config describes how to build a Generator.
type Config struct {
	APIKey     string
	Model      string
	Endpoint   string
	APIVersion string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Generator turns a prompt into a complete set of cards. Implementations
// issue exactly one request per call and never return a partial deck.
type Generator interface {
	Generate(ctx context.Context, promptText string) ([]deck.Card, error)
	Name() string
}

// NewFromConfig builds the Gemini generator. Without an API key it returns a
// generator that fails every call with ErrConfiguration, so a missing key is
// surfaced to the user instead of aborting startup.
func NewFromConfig(ctx context.Context, cfg Config, logger *zap.Logger) (Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = withDefaults(cfg)
	if cfg.APIKey == "" {
		logger.Warn("gemini api key missing; generation disabled")
		return unconfigured{model: cfg.Model}, nil
	}
	return newGeminiClient(ctx, cfg, logger)
}

// Configured reports whether g can reach the model at all.
func Configured(g Generator) bool {
	if g == nil {
		return false
	}
	_, missing := g.(unconfigured)
	return !missing
}

func withDefaults(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.HTTPClient = pickHTTPClient(cfg.HTTPClient, cfg.Timeout)
	return cfg
}

func pickHTTPClient(custom *http.Client, timeout time.Duration) *http.Client {
	if custom != nil {
		return custom
	}
	// The per-call context carries the real deadline; this is a backstop.
	return &http.Client{Timeout: timeout + 5*time.Second}
}

type unconfigured struct {
	model string
}

func (u unconfigured) Generate(context.Context, string) ([]deck.Card, error) {
	return nil, ErrConfiguration
}

func (u unconfigured) Name() string {
	return fmt.Sprintf("Gemini (%s, no key)", u.model)
}
