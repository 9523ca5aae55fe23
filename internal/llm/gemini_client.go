package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/csheth/heartsync/internal/deck"
)

type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func newGeminiClient(ctx context.Context, cfg Config, logger *zap.Logger) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.Endpoint,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.With(zap.String("model", cfg.Model)),
	}, nil
}

func (c *geminiClient) Name() string {
	return fmt.Sprintf("Gemini (%s)", c.model)
}

func (c *geminiClient) Generate(ctx context.Context, promptText string) ([]deck.Card, error) {
	if strings.TrimSpace(promptText) == "" {
		return nil, fmt.Errorf("%w: prompt is empty", ErrGeneration)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	started := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(promptText), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("gemini request timed out", zap.Duration("timeout", c.timeout))
			return nil, fmt.Errorf("%w: timed out after %s", ErrGeneration, c.timeout)
		}
		c.logger.Warn("gemini request failed", zap.Error(err), zap.Duration("duration", time.Since(started)))
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	text, err := responseText(resp)
	if err != nil {
		c.logger.Warn("gemini response unusable", zap.Error(err))
		return nil, err
	}
	cards, err := parseCards(text)
	if err != nil {
		c.logger.Warn("gemini response rejected", zap.Error(err), zap.Int("text_len", len(text)))
		return nil, err
	}
	c.logger.Info("gemini generation succeeded",
		zap.Int("cards", len(cards)),
		zap.Duration("duration", time.Since(started)))
	return cards, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrGeneration)
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", fmt.Errorf("%w: empty candidate", ErrGeneration)
	}
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: blocked by safety filters", ErrGeneration)
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w: candidate has no text", ErrGeneration)
	}
	return b.String(), nil
}
