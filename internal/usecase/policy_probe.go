package usecase

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
)

// MaxPolicyChars bounds the policy text kept per page
const MaxPolicyChars = 500

// Policies holds the text of each store policy
type Policies struct {
	Privacy string
	Return  string
	Refund  string
}

// PolicyProbe fetches the well-known policy pages of a storefront
type PolicyProbe struct {
	fetcher domain.StorefrontFetcher
	timeout time.Duration
}

// NewPolicyProbe creates a probe issuing one fetch per path with the given timeout
func NewPolicyProbe(fetcher domain.StorefrontFetcher, timeout time.Duration) *PolicyProbe {
	return &PolicyProbe{
		fetcher: fetcher,
		timeout: timeout,
	}
}

// Probe tries every policy path once, in declaration order. Only 200 responses count;
// failures are skipped and kinds with no content get the default text.
func (p *PolicyProbe) Probe(ctx context.Context, baseURL string) Policies {
	found := make(map[PolicyKind]string, len(defaultPolicies))

	for _, candidate := range policyPaths {
		content, ok := p.fetchPolicy(ctx, joinPath(baseURL, candidate.path))
		if !ok {
			continue
		}
		found[candidate.kind] = content
	}

	return Policies{
		Privacy: policyOrDefault(found, PolicyPrivacy),
		Return:  policyOrDefault(found, PolicyReturn),
		Refund:  policyOrDefault(found, PolicyRefund),
	}
}

func (p *PolicyProbe) fetchPolicy(ctx context.Context, url string) (string, bool) {
	result, err := p.fetcher.Fetch(ctx, url, p.timeout)
	if err != nil || result.StatusCode != http.StatusOK {
		return "", false
	}

	doc, err := markup.ParseHTML(result.Body)
	if err != nil {
		log.Printf("[Policy] could not parse %s: %v", url, err)
		return "", false
	}

	return markup.Truncate(markup.StrippedText(doc.Selection), MaxPolicyChars), true
}

func policyOrDefault(found map[PolicyKind]string, kind PolicyKind) string {
	if content := found[kind]; content != "" {
		return content
	}
	return defaultPolicies[kind]
}

// joinPath appends a root-relative path to the storefront URL
func joinPath(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
