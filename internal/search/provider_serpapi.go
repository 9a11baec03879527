package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
)

const (
	serpEngine  = "google_shopping"
	serpResults = 20
)

// SerpAPI queries the SerpApi Google Shopping engine.
type SerpAPI struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
}

var _ ShoppingProvider = (*SerpAPI)(nil)

// NewSerpAPI returns a provider calling endpoint with apiKey. A zero timeout
// leaves the request unbounded.
func NewSerpAPI(endpoint, apiKey string, timeout time.Duration) *SerpAPI {
	return &SerpAPI{endpoint: endpoint, apiKey: apiKey, timeout: timeout}
}

func (p *SerpAPI) Name() string { return "SerpApi" }

// serpStatusSuccess marks a search that ran. SerpApi still sets Error on such
// a response when the engine found nothing.
const serpStatusSuccess = "Success"

type serpResponse struct {
	SearchMetadata struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
	Error           string     `json:"error"`
	ShoppingResults []serpItem `json:"shopping_results"`
}

type serpItem struct {
	Title     *string `json:"title"`
	Price     *string `json:"price"`
	Link      *string `json:"link"`
	Thumbnail *string `json:"thumbnail"`
	Source    *string `json:"source"`
	Snippet   *string `json:"snippet"`
}

func (it serpItem) result() Result {
	return Result{
		Title:   valueOr(it.Title, ""),
		Price:   valueOr(it.Price, "N/A"),
		Link:    valueOr(it.Link, ""),
		Image:   valueOr(it.Thumbnail, ""),
		Source:  valueOr(it.Source, "Unknown"),
		Snippet: it.Snippet,
	}
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// Search issues one GET per query. The Fiber agent has no context support, so
// ctx is only checked before the request goes out.
func (p *SerpAPI) Search(ctx context.Context, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("engine", serpEngine)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(serpResults))
	params.Set("api_key", p.apiKey)

	agent := fiber.Get(p.endpoint)
	agent.QueryString(params.Encode())
	if p.timeout > 0 {
		agent.Timeout(p.timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, fmt.Errorf("build shopping request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, apperr.Provider(p.Name(), errors.Join(errs...))
	}

	var resp serpResponse
	jsonErr := json.Unmarshal(body, &resp)
	ok := code >= 200 && code <= 299
	searched := ok && jsonErr == nil && resp.SearchMetadata.Status == serpStatusSuccess
	if resp.Error != "" && !searched {
		return nil, apperr.Provider(p.Name(), errors.New(resp.Error))
	}
	if !ok {
		return nil, apperr.Provider(p.Name(), fmt.Errorf("unexpected status %d", code))
	}
	if jsonErr != nil {
		return nil, apperr.Provider(p.Name(), fmt.Errorf("decode response: %w", jsonErr))
	}

	results := make([]Result, 0, len(resp.ShoppingResults))
	for _, it := range resp.ShoppingResults {
		results = append(results, it.result())
	}
	return results, nil
}
