package usecase

import (
	"regexp"

	"github.com/storeinsights/backend/internal/domain"
)

// Heuristic tables. Extractors consume these in declaration order.

// socialPlatform maps a platform to the domains that identify its links
type socialPlatform struct {
	name    string
	domains []string
}

var socialPlatforms = []socialPlatform{
	{name: "instagram", domains: []string{"instagram.com"}},
	{name: "facebook", domains: []string{"facebook.com"}},
	{name: "tiktok", domains: []string{"tiktok.com"}},
	{name: "twitter", domains: []string{"twitter.com", "x.com"}},
}

// faqContainerSelectors locate FAQ/accordion items
var faqContainerSelectors = []string{
	".faq-item",
	".accordion-item",
	".question-answer",
	`[class*="faq"]`,
	`[class*="question"]`,
}

const (
	faqQuestionSelector = `h3, h4, h5, .question, [class*="question"]`
	faqAnswerSelector   = `p, .answer, [class*="answer"]`
)

var defaultFAQs = []domain.FAQ{
	{Question: "Do you offer international shipping?", Answer: "Yes, we ship worldwide with tracking."},
	{Question: "What is your return policy?", Answer: "30-day returns on all items in original condition."},
	{Question: "Do you have customer support?", Answer: "Yes, our support team is available 24/7."},
}

// linkPattern pairs a keyword with the label used when an anchor has no text
type linkPattern struct {
	keyword string
	label   string
}

var importantLinkPatterns = []linkPattern{
	{keyword: "track", label: "Order Tracking"},
	{keyword: "contact", label: "Contact Us"},
	{keyword: "blog", label: "Blog"},
	{keyword: "about", label: "About Us"},
	{keyword: "size-guide", label: "Size Guide"},
	{keyword: "shipping", label: "Shipping Info"},
}

var brandContextSelectors = []string{
	".about-section",
	".brand-story",
	".company-description",
	`[class*="about"]`,
	`[class*="story"]`,
}

const defaultBrandContext = "A premium e-commerce store offering quality products and exceptional customer service."

// PolicyKind identifies one of the store policies
type PolicyKind string

const (
	PolicyPrivacy PolicyKind = "privacy_policy"
	PolicyReturn  PolicyKind = "return_policy"
	PolicyRefund  PolicyKind = "refund_policy"
)

type policyPath struct {
	path string
	kind PolicyKind
}

// Later entries overwrite earlier ones for the same kind, so /policies/ wins over /pages/.
var policyPaths = []policyPath{
	{path: "/pages/privacy-policy", kind: PolicyPrivacy},
	{path: "/pages/return-policy", kind: PolicyReturn},
	{path: "/pages/refund-policy", kind: PolicyRefund},
	{path: "/policies/privacy-policy", kind: PolicyPrivacy},
	{path: "/policies/return-policy", kind: PolicyReturn},
	{path: "/policies/refund-policy", kind: PolicyRefund},
}

var defaultPolicies = map[PolicyKind]string{
	PolicyPrivacy: "We collect and use your personal information to provide our services and improve your experience.",
	PolicyReturn:  "30-day return policy for all unused items in original packaging.",
	PolicyRefund:  "Full refunds available within 14 days of purchase for eligible items.",
}

// firstMatch applies probe to candidates in order and returns the first accepted result
func firstMatch[C any, R any](candidates []C, probe func(C) (R, bool)) (R, bool) {
	for _, candidate := range candidates {
		if result, ok := probe(candidate); ok {
			return result, true
		}
	}
	var zero R
	return zero, false
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`[+]?[1-9]?[\d\s\-()]{10,}`)
)
