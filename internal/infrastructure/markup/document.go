// Package markup wraps goquery as the HTML parsing collaborator used by the extractors.
package markup

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Anchor is an <a href> element as seen by the extractors
type Anchor struct {
	Href string
	Text string // stripped visible text
}

// non-visible elements skipped when flattening text
var hiddenTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// ParseHTML parses raw bytes into a queryable document
func ParseHTML(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Text flattens a selection into plain text, concatenating text nodes as-is.
// Script and style contents are skipped. The document is never modified.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		walkText(s, func(text string) {
			sb.WriteString(text)
		})
	})
	return sb.String()
}

// StrippedText flattens a selection with every text node trimmed and joined by single spaces
func StrippedText(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		walkText(s, func(text string) {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				parts = append(parts, trimmed)
			}
		})
	})
	return strings.Join(parts, " ")
}

func walkText(sel *goquery.Selection, emit func(string)) {
	switch name := goquery.NodeName(sel); {
	case name == "#text":
		emit(sel.Text())
		return
	case hiddenTags[name], name == "#comment":
		return
	}

	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		walkText(child, emit)
	})
}

// Anchors lists every anchor carrying an href, in document order
func Anchors(doc *goquery.Document) []Anchor {
	var anchors []Anchor
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		anchors = append(anchors, Anchor{
			Href: strings.TrimSpace(href),
			Text: StrippedText(s),
		})
	})
	return anchors
}

// ResolveURL resolves href against base. Unresolvable input is returned unchanged.
func ResolveURL(base, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return ref.String()
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
