// Package generator relays prompts to a text-generation provider.
package generator

import (
	"context"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultTimeout bounds a single provider round trip.
const DefaultTimeout = 30 * time.Second

// Generator turns one prompt into one complete text response.
// Implementations return *GenerationError on failure.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type routeKey struct{}

// WithRoute tags ctx with the endpoint that requested the generation.
// Metrics and audit logs read it back with RouteFrom.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

func RouteFrom(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if r, ok := ctx.Value(routeKey{}).(string); ok && r != "" {
		return r
	}
	return "unknown"
}

// GeminiConfig holds what NewGemini needs to build a genai client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the provider endpoint; empty uses genai's default.
	BaseURL string
	// HTTPClient is passed to genai; nil uses genai's default client.
	HTTPClient *http.Client
}

// GeminiGenerator sends single-turn user prompts to a Gemini model.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, err
	}
	return NewGeminiFromClient(client, cfg.Model, cfg.Timeout), nil
}

func NewGeminiFromClient(c *genai.Client, model string, timeout time.Duration) *GeminiGenerator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiGenerator{client: c, model: model, timeout: timeout}
}

func (g *GeminiGenerator) Model() string { return g.model }

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrInvalidPrompt
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), nil)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return "", &GenerationError{Kind: KindTimeout, Message: ErrTimeout.Message, Cause: err}
		}
		return "", Classify(err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
