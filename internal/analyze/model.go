package analyze

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wichananm65/outfit-finder-backend/internal/config"
)

// NewVisionModel builds the adapter selected by cfg.VisionProvider. It returns
// a nil model and no error when the provider's credential is missing, so the
// server still starts and reports the problem per request.
func NewVisionModel(ctx context.Context, cfg config.Config, httpClient *http.Client) (VisionModel, error) {
	if cfg.VisionAPIKey == "" {
		return nil, nil
	}

	opts := ModelOptions{
		APIKey:     cfg.VisionAPIKey,
		Model:      cfg.VisionModel,
		HTTPClient: httpClient,
	}

	switch cfg.VisionProvider {
	case config.ProviderAnthropic:
		return NewAnthropicModel(opts), nil
	case config.ProviderOpenAI:
		return NewOpenAIModel(opts), nil
	case config.ProviderGemini:
		return NewGeminiModel(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown vision provider %q", cfg.VisionProvider)
	}
}
