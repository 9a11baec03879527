package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
)

type Service struct {
	model   VisionModel
	keyName string
	apiKey  string
}

// NewService returns a Service using model. model may be nil when the vision
// credential is missing; every call then fails with apperr.ErrNotConfigured.
func NewService(cfg config.Config, model VisionModel) *Service {
	return &Service{
		model:   model,
		keyName: cfg.VisionKeyName(),
		apiKey:  cfg.VisionAPIKey,
	}
}

// Configured returns an error when the vision credential is missing.
func (s *Service) Configured() error {
	if s.apiKey == "" || s.model == nil {
		return apperr.NotConfigured(s.keyName)
	}
	return nil
}

// Analyze extracts clothing features from a data URL or raw base64 image.
func (s *Service) Analyze(ctx context.Context, payload string) (clothing.Features, error) {
	if err := s.Configured(); err != nil {
		return clothing.Features{}, err
	}

	img := clothing.ParseImage(payload)
	start := time.Now()
	reply, err := s.model.Describe(ctx, img, Prompt)
	if err != nil {
		return clothing.Features{}, err
	}
	slog.Debug("vision reply", "provider", s.model.Name(), "mediaType", img.MediaType, "elapsed", time.Since(start), "reply", reply)

	features, err := ParseFeatures(reply)
	if err != nil {
		slog.Warn("could not parse vision reply", "provider", s.model.Name(), "error", err, "reply", reply)
		return clothing.Features{}, err
	}

	slog.Info("analyzed image", "provider", s.model.Name(), "type", features.Type, "branded", features.HasBrand(), "elapsed", time.Since(start))
	return features, nil
}
