package storefront

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/storeinsights/backend/internal/domain"
)

// DefaultUserAgent identifies requests as a desktop browser
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultMaxBodyBytes caps how much of a response body is read
const DefaultMaxBodyBytes = 10 << 20

// Client performs single-attempt GET requests against storefronts.
// It borrows a shared transport for connection reuse and never retries.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	debug        bool
}

// NewTransport creates the process-wide connection pool handed to every Client
func NewTransport(maxIdleConns, maxIdleConnsPerHost int) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = maxIdleConns
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
	transport.IdleConnTimeout = 90 * time.Second
	return transport
}

// NewClient creates a new storefront client on top of the given transport
func NewClient(transport http.RoundTripper, userAgent string, maxBodyBytes int64) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	return &Client{
		// Timeouts are applied per call through the request context
		httpClient: &http.Client{
			Transport: transport,
		},
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
	}
}

// SetDebug enables or disables per-request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Fetch issues one GET with the given timeout.
// Any HTTP status is returned as a result; only transport failures are errors.
func (c *Client) Fetch(ctx context.Context, url string, timeout time.Duration) (*domain.FetchResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			log.Printf("[Fetch] GET %s failed after %s: %v", url, time.Since(start), err)
		}
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}

	if c.debug {
		log.Printf("[Fetch] GET %s -> %d (%d bytes, %s)", url, resp.StatusCode, len(body), time.Since(start))
	}

	return &domain.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// IsSuccess reports whether a fetch result carries a 2xx status
func IsSuccess(result *domain.FetchResult) bool {
	return result != nil && result.StatusCode >= 200 && result.StatusCode < 300
}
