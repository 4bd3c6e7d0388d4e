package usecase

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
)

// ExtractSocialHandles classifies every anchor by platform domain.
// When several links match one platform the last one in document order wins.
func ExtractSocialHandles(doc *goquery.Document) domain.SocialHandles {
	var handles domain.SocialHandles

	for _, anchor := range markup.Anchors(doc) {
		hrefLower := strings.ToLower(anchor.Href)
		platform, ok := firstMatch(socialPlatforms, func(p socialPlatform) (string, bool) {
			for _, d := range p.domains {
				if strings.Contains(hrefLower, d) {
					return p.name, true
				}
			}
			return "", false
		})
		if !ok {
			continue
		}

		href := anchor.Href
		switch platform {
		case "instagram":
			handles.Instagram = &href
		case "facebook":
			handles.Facebook = &href
		case "tiktok":
			handles.TikTok = &href
		case "twitter":
			handles.Twitter = &href
		}
	}

	return handles
}
