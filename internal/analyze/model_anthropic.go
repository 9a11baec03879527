package analyze

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

var errNoText = errors.New("vision reply contained no text")

type anthropicModel struct {
	client anthropic.Client
	model  string
}

var _ VisionModel = (*anthropicModel)(nil)

// NewAnthropicModel returns a VisionModel backed by the Claude Messages API.
func NewAnthropicModel(opts ModelOptions) VisionModel {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &anthropicModel{
		client: anthropic.NewClient(reqOpts...),
		model:  opts.Model,
	}
}

func (m *anthropicModel) Name() string { return "Anthropic" }

func (m *anthropicModel) Describe(ctx context.Context, img clothing.Image, prompt string) (string, error) {
	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(img.MediaType, img.Data),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", apperr.Provider(m.Name(), err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errNoText
}
