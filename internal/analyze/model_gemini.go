package analyze

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

type geminiModel struct {
	genAIClient *genai.Client
	model       string
}

var _ VisionModel = (*geminiModel)(nil)

// NewGeminiModel returns a VisionModel backed by the Gemini API.
func NewGeminiModel(ctx context.Context, opts ModelOptions) (VisionModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &geminiModel{
		genAIClient: client,
		model:       opts.Model,
	}, nil
}

func (s *geminiModel) Name() string { return "Gemini" }

func (s *geminiModel) Describe(ctx context.Context, img clothing.Image, prompt string) (string, error) {
	data, err := img.Bytes()
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, img.MediaType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := s.genAIClient.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens:  maxTokens,
		ResponseMIMEType: "application/json",
		// thinking tokens count against MaxOutputTokens
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	})
	if err != nil {
		return "", apperr.Provider(s.Name(), err)
	}

	text := resp.Text()
	if text == "" {
		return "", errNoText
	}
	return text, nil
}
