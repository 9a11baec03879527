package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
)

type fakeProvider struct {
	results []Result
	err     error

	calls    int
	gotQuery string
}

func (p *fakeProvider) Name() string { return "Fake" }

func (p *fakeProvider) Search(ctx context.Context, query string) ([]Result, error) {
	p.calls++
	p.gotQuery = query
	return p.results, p.err
}

func makeApp(cfg config.Config, provider ShoppingProvider) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	NewHandler(NewService(cfg, provider)).RegisterRoutes(app)
	return app
}

const featuresBody = `{"features": {
	"type": "jacket",
	"color": ["black", "red"],
	"style": ["vintage"],
	"pattern": "plaid",
	"material": "wool",
	"description": "A plaid jacket"
}}`

func postSearch(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func manyResults(n int) []Result {
	out := make([]Result, n)
	for i := range out {
		out[i] = Result{Title: fmt.Sprintf("item %d", i), Price: "N/A", Source: "Unknown"}
	}
	return out
}

func TestSearch_TruncatesInOrder(t *testing.T) {
	provider := &fakeProvider{results: manyResults(15)}
	app := makeApp(config.Config{SerpAPIKey: "k"}, provider)

	status, body := postSearch(t, app, featuresBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var out struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(out.Results))
	}
	for i, r := range out.Results {
		if r.Title != fmt.Sprintf("item %d", i) {
			t.Fatalf("result %d out of order: %q", i, r.Title)
		}
	}
	if provider.gotQuery != "jacket black plaid vintage" {
		t.Fatalf("query = %q", provider.gotQuery)
	}
	if strings.Contains(string(body), "snippet") {
		t.Fatalf("absent snippet should be omitted: %s", body)
	}
}

func TestSearch_EmptyResultsIsAnArray(t *testing.T) {
	app := makeApp(config.Config{SerpAPIKey: "k"}, &fakeProvider{})

	status, body := postSearch(t, app, featuresBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if string(body) != `{"results":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestSearch_MissingCredentialMakesNoCall(t *testing.T) {
	provider := &fakeProvider{results: manyResults(1)}
	app := makeApp(config.Config{}, provider)

	status, body := postSearch(t, app, featuresBody)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if string(body) != `{"detail":"SERPAPI_KEY not configured"}` {
		t.Fatalf("body = %s", body)
	}
	if provider.calls != 0 {
		t.Fatalf("provider should not be called")
	}
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"provider error", apperr.Provider("SerpApi", errors.New("Invalid API key.")), "Error searching: SerpApi API error: Invalid API key."},
		{"unexpected error", errors.New("boom"), "Error searching: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := makeApp(config.Config{SerpAPIKey: "k"}, &fakeProvider{err: tt.err})
			status, body := postSearch(t, app, featuresBody)
			if status != fiber.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", status)
			}
			var d apperr.Detail
			if err := json.Unmarshal(body, &d); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if d.Detail != tt.detail {
				t.Fatalf("detail = %q, want %q", d.Detail, tt.detail)
			}
		})
	}
}

func TestSearch_BadRequests(t *testing.T) {
	for _, body := range []string{`{}`, `{"features": null}`, `[1, 2`} {
		provider := &fakeProvider{}
		status, _ := postSearch(t, makeApp(config.Config{SerpAPIKey: "k"}, provider), body)
		if status != fiber.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, status)
		}
		if provider.calls != 0 {
			t.Fatalf("body %q: provider should not be called", body)
		}
	}
}

func TestSearch_AgainstSerpAPI(t *testing.T) {
	var items []string
	for i := 0; i < 15; i++ {
		items = append(items, fmt.Sprintf(`{"title": "item %d", "link": "https://shop.example/%d"}`, i, i))
	}
	srv, query := serpServer(t, 200, `{"shopping_results": [`+strings.Join(items, ",")+`]}`)

	cfg := config.Config{SerpAPIKey: "k", SerpAPIURL: srv.URL}
	app := makeApp(cfg, NewSerpAPI(cfg.SerpAPIURL, cfg.SerpAPIKey, cfg.UpstreamTimeout))

	status, body := postSearch(t, app, `{"features": {"type": "dress", "color": [], "style": [], "pattern": "Solid", "material": "silk", "description": "d"}}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if q := query.Get("q"); q != "dress" {
		t.Fatalf("q = %q", q)
	}

	var out struct {
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != MaxResults || out.Results[11].Title != "item 11" {
		t.Fatalf("unexpected results %+v", out.Results)
	}
	if out.Results[0].Price != "N/A" || out.Results[0].Source != "Unknown" {
		t.Fatalf("defaults not applied: %+v", out.Results[0])
	}
}

func TestSearch_NoMatchesIsEmpty(t *testing.T) {
	srv, _ := serpServer(t, 200, `{"search_metadata": {"status": "Success"}, "error": "Google Shopping hasn't returned any results for this query."}`)

	cfg := config.Config{SerpAPIKey: "k", SerpAPIURL: srv.URL}
	app := makeApp(cfg, NewSerpAPI(cfg.SerpAPIURL, cfg.SerpAPIKey, 0))

	status, body := postSearch(t, app, featuresBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if string(body) != `{"results":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestSearch_ProviderRejectionIsPrefixed(t *testing.T) {
	srv, _ := serpServer(t, 401, `{"error": "Invalid API key. Your API key should be here: https://serpapi.com/manage-api-key"}`)

	cfg := config.Config{SerpAPIKey: "bad", SerpAPIURL: srv.URL}
	app := makeApp(cfg, NewSerpAPI(cfg.SerpAPIURL, cfg.SerpAPIKey, 0))

	status, body := postSearch(t, app, featuresBody)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	var d apperr.Detail
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(d.Detail, "Error searching: SerpApi API error: Invalid API key.") {
		t.Fatalf("detail = %q", d.Detail)
	}
}
