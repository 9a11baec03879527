package analyze

import (
	"context"

	oagc "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

type openaiModel struct {
	oac   *oagc.Client
	model string
}

var _ VisionModel = (*openaiModel)(nil)

// NewOpenAIModel returns a VisionModel backed by the Chat Completions API.
// The image is sent inline as a data URL.
func NewOpenAIModel(opts ModelOptions) VisionModel {
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

	return &openaiModel{
		oac:   oagc.NewClient(reqOpts...),
		model: opts.Model,
	}
}

func (o *openaiModel) Name() string { return "OpenAI" }

func (o *openaiModel) Describe(ctx context.Context, img clothing.Image, prompt string) (string, error) {
	params := oagc.ChatCompletionNewParams{
		Messages: oagc.F([]oagc.ChatCompletionMessageParamUnion{
			oagc.UserMessageParts(
				oagc.ImagePart(img.DataURL()),
				oagc.TextPart(prompt),
			),
		}),
		Model:     oagc.F(oagc.ChatModel(o.model)),
		MaxTokens: oagc.Int(maxTokens),
	}
	resp, err := o.oac.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", apperr.Provider(o.Name(), err)
	}
	if len(resp.Choices) == 0 {
		return "", errNoText
	}
	return resp.Choices[0].Message.Content, nil
}
