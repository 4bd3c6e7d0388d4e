package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
	"github.com/stretchr/testify/require"
)

type fakeResponse struct {
	status int
	body   string
	err    error
}

// fakeFetcher is a mock implementation of domain.StorefrontFetcher.
// Unknown URLs answer 404.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     map[string]int
	timeouts  map[string]time.Duration
	ctxErrs   []error
	panicOn   string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string]fakeResponse),
		calls:     make(map[string]int),
		timeouts:  make(map[string]time.Duration),
	}
}

func (f *fakeFetcher) on(url string, status int, body string) *fakeFetcher {
	f.responses[url] = fakeResponse{status: status, body: body}
	return f
}

func (f *fakeFetcher) fail(url string, err error) *fakeFetcher {
	f.responses[url] = fakeResponse{err: err}
	return f
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (*domain.FetchResult, error) {
	f.mu.Lock()
	f.calls[url]++
	f.timeouts[url] = timeout
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	resp, ok := f.responses[url]
	f.mu.Unlock()

	if url == f.panicOn {
		panic("unexpected feed shape")
	}
	if !ok {
		return &domain.FetchResult{StatusCode: 404}, nil
	}
	if resp.err != nil {
		return nil, resp.err
	}
	return &domain.FetchResult{StatusCode: resp.status, Body: []byte(resp.body)}, nil
}

func (f *fakeFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := markup.ParseHTML([]byte(html))
	require.NoError(t, err)
	return doc
}
