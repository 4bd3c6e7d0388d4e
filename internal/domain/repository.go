package domain

import (
	"context"
	"time"
)

// FetchResult is the raw outcome of a single HTTP GET
type FetchResult struct {
	StatusCode int
	Body       []byte
}

// StorefrontFetcher performs single-attempt GETs against a storefront.
// A transport failure is returned as an error; any HTTP status is returned as a result.
type StorefrontFetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (*FetchResult, error)
}

// InsightsAnalyzer produces StoreInsights for a storefront URL
type InsightsAnalyzer interface {
	AnalyzeStore(ctx context.Context, websiteURL string) (*StoreInsights, error)
}
