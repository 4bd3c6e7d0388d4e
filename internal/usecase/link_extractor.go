package usecase

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
)

// MaxImportantLinks bounds the important links list
const MaxImportantLinks = 6

// ExtractImportantLinks matches anchors against the keyword table, first pattern per link.
// Relative hrefs are resolved against baseURL.
func ExtractImportantLinks(doc *goquery.Document, baseURL string) []domain.ImportantLink {
	links := make([]domain.ImportantLink, 0, MaxImportantLinks)

	for _, anchor := range markup.Anchors(doc) {
		if len(links) >= MaxImportantLinks {
			break
		}
		hrefLower := strings.ToLower(anchor.Href)
		textLower := strings.ToLower(anchor.Text)

		pattern, ok := firstMatch(importantLinkPatterns, func(p linkPattern) (linkPattern, bool) {
			return p, strings.Contains(hrefLower, p.keyword) || strings.Contains(textLower, p.keyword)
		})
		if !ok {
			continue
		}

		name := anchor.Text
		if name == "" {
			name = pattern.label
		}
		links = append(links, domain.ImportantLink{
			Name: name,
			URL:  markup.ResolveURL(baseURL, anchor.Href),
		})
	}

	return links
}

// ExtractBrandContext returns the joined text of the first brand selector with non-empty content
func ExtractBrandContext(doc *goquery.Document) string {
	text, ok := firstMatch(brandContextSelectors, func(selector string) (string, bool) {
		var parts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if t := markup.StrippedText(s); t != "" {
				parts = append(parts, t)
			}
		})
		joined := strings.Join(parts, " ")
		return joined, joined != ""
	})
	if !ok {
		return defaultBrandContext
	}
	return text
}
