package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
	"github.com/storeinsights/backend/internal/infrastructure/storefront"
)

// InsightsServiceConfig holds the fixed per-call budgets of the pipeline
type InsightsServiceConfig struct {
	RootTimeout   time.Duration
	FeedTimeout   time.Duration
	PolicyTimeout time.Duration
	PhoneRegion   string
}

// InsightsService assembles StoreInsights from a storefront's root page, feed and policy pages
type InsightsService struct {
	fetcher     domain.StorefrontFetcher
	policyProbe *PolicyProbe
	contacts    *ContactExtractor
	rootTimeout time.Duration
	feedTimeout time.Duration

	now   func() time.Time
	newID func() string
}

// NewInsightsService creates a new insights service with dependencies
func NewInsightsService(fetcher domain.StorefrontFetcher, config InsightsServiceConfig) *InsightsService {
	rootTimeout := config.RootTimeout
	if rootTimeout == 0 {
		rootTimeout = 15 * time.Second
	}
	feedTimeout := config.FeedTimeout
	if feedTimeout == 0 {
		feedTimeout = 10 * time.Second
	}
	policyTimeout := config.PolicyTimeout
	if policyTimeout == 0 {
		policyTimeout = 5 * time.Second
	}

	return &InsightsService{
		fetcher:     fetcher,
		policyProbe: NewPolicyProbe(fetcher, policyTimeout),
		contacts:    NewContactExtractor(config.PhoneRegion),
		rootTimeout: rootTimeout,
		feedTimeout: feedTimeout,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// AnalyzeStore runs the full pipeline for one storefront.
// Flow: fetch root -> fetch feed -> normalize catalog -> run extractors -> assemble.
// Only a failed root fetch (ErrStoreUnreachable) or an unexpected fault (ErrInternal) is an error.
func (s *InsightsService) AnalyzeStore(ctx context.Context, websiteURL string) (insights *domain.StoreInsights, err error) {
	websiteURL = strings.TrimSpace(websiteURL)
	if err := validateStoreURL(websiteURL); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Insights] unexpected failure analyzing %s: %v", websiteURL, r)
			insights = nil
			err = fmt.Errorf("%w: %v", domain.ErrInternal, r)
		}
	}()

	// In-flight fetches run to completion or timeout even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	root, err := s.fetcher.Fetch(ctx, websiteURL, s.rootTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnreachable, err)
	}
	if !storefront.IsSuccess(root) {
		return nil, fmt.Errorf("%w: %w %d", domain.ErrStoreUnreachable, domain.ErrUnexpectedStatus, root.StatusCode)
	}

	doc, err := markup.ParseHTML(root.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	catalog := s.loadCatalog(ctx, websiteURL)
	policies := s.policyProbe.Probe(ctx, websiteURL)

	insights = &domain.StoreInsights{
		AnalysisID:     s.newID(),
		URL:            websiteURL,
		ProductCatalog: catalog,
		HeroProducts:   HeroProducts(catalog),
		PrivacyPolicy:  policies.Privacy,
		ReturnPolicy:   policies.Return,
		RefundPolicy:   policies.Refund,
		FAQs:           ExtractFAQs(doc),
		SocialHandles:  ExtractSocialHandles(doc),
		ContactDetails: s.contacts.Extract(doc),
		BrandContext:   ExtractBrandContext(doc),
		ImportantLinks: ExtractImportantLinks(doc, websiteURL),
		AnalysisDate:   s.now(),
	}

	log.Printf("[Insights] analyzed %s: %d products, %d faqs, %d links",
		websiteURL, catalog.TotalProducts, len(insights.FAQs), len(insights.ImportantLinks))

	return insights, nil
}

// loadCatalog fetches and normalizes the product feed.
// An unreachable or malformed feed yields an empty catalog, never an error.
func (s *InsightsService) loadCatalog(ctx context.Context, websiteURL string) domain.ProductCatalog {
	feedURL := joinPath(websiteURL, storefront.FeedPath)

	result, err := s.fetcher.Fetch(ctx, feedURL, s.feedTimeout)
	if err != nil {
		log.Printf("[Catalog] feed unavailable at %s: %v", feedURL, err)
		return EmptyCatalog()
	}
	if !storefront.IsSuccess(result) {
		log.Printf("[Catalog] feed unavailable at %s: status %d", feedURL, result.StatusCode)
		return EmptyCatalog()
	}

	raw, err := storefront.ParseFeed(result.Body)
	if err != nil {
		log.Printf("[Catalog] %v", err)
		return EmptyCatalog()
	}

	return NormalizeCatalog(raw)
}

// validateStoreURL accepts absolute http(s) URLs with a host
func validateStoreURL(websiteURL string) error {
	if websiteURL == "" {
		return fmt.Errorf("%w: website_url is required", domain.ErrInvalidRequest)
	}
	parsed, err := url.Parse(websiteURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: website_url must be an http(s) URL", domain.ErrInvalidRequest)
	}
	return nil
}
