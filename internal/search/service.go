package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
)

type Service struct {
	provider ShoppingProvider
	apiKey   string
}

func NewService(cfg config.Config, provider ShoppingProvider) *Service {
	return &Service{provider: provider, apiKey: cfg.SerpAPIKey}
}

// Configured returns an error when the shopping credential is missing.
func (s *Service) Configured() error {
	if s.apiKey == "" || s.provider == nil {
		return apperr.NotConfigured(config.SerpAPIKeyName)
	}
	return nil
}

// Search finds items matching f, at most MaxResults of them, in provider order.
func (s *Service) Search(ctx context.Context, f clothing.Features) ([]Result, error) {
	if err := s.Configured(); err != nil {
		return nil, err
	}

	query := clothing.BuildQuery(f)
	start := time.Now()
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	if results == nil {
		results = []Result{}
	}

	slog.Info("searched products", "provider", s.provider.Name(), "query", query, "results", len(results), "elapsed", time.Since(start))
	return results, nil
}
