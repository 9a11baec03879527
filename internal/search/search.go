package search

import "context"

// MaxResults caps every result list returned to callers.
const MaxResults = 12

// Result is one purchasable item.
type Result struct {
	Title   string  `json:"title"`
	Price   string  `json:"price"`
	Link    string  `json:"link"`
	Image   string  `json:"image"`
	Source  string  `json:"source"`
	Snippet *string `json:"snippet,omitempty"`
}

// ShoppingProvider runs a text query against a product search backend and
// returns results in the provider's ranking order.
type ShoppingProvider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}
