package analyze

import (
	"context"
	"net/http"

	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

// maxTokens bounds the reply length requested from every vision provider.
const maxTokens = 1024

// Prompt is the fixed instruction sent alongside every image.
const Prompt = `Analyze this clothing item in detail. Extract the following information:

1. Type of clothing (e.g., t-shirt, jeans, dress, jacket, etc.)
2. Main colors (list up to 3)
3. Style keywords (e.g., casual, formal, vintage, modern, sporty, etc.)
4. Pattern (e.g., solid, striped, floral, plaid, etc.)
5. Material/fabric (e.g., cotton, denim, leather, silk, etc.)
6. Brand (if visible in the image)
7. A brief description of the item

Return the response in the following JSON format:
{
    "type": "clothing type",
    "color": ["color1", "color2"],
    "style": ["style1", "style2", "style3"],
    "pattern": "pattern description",
    "material": "material type",
    "brand": "brand name or null",
    "description": "Brief description of the clothing item"
}

Only return the JSON, no additional text.`

// VisionModel sends one image and an instruction to a vision-capable LLM and
// returns its raw text reply.
type VisionModel interface {
	// Name is the provider name used in error messages, e.g. "Anthropic".
	Name() string

	// Describe performs a single request with no retries. Failures reported
	// by the provider are returned as *apperr.ProviderError.
	Describe(ctx context.Context, img clothing.Image, prompt string) (string, error)
}

// ModelOptions configure a VisionModel adapter.
type ModelOptions struct {
	APIKey string
	Model  string
	// BaseURL overrides the provider endpoint. Empty uses the SDK default.
	BaseURL string
	// HTTPClient is used for all provider calls. Nil uses the SDK default.
	HTTPClient *http.Client
}
