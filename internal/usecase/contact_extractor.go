package usecase

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/nyaruka/phonenumbers"
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/markup"
)

const (
	MaxEmails = 5
	MaxPhones = 3

	// phone pattern matches are discarded below this many digits
	minPhoneDigits = 7

	defaultPhoneRegion = "US"
)

// ContactExtractor pulls emails and phone numbers out of page text
type ContactExtractor struct {
	region string
}

// NewContactExtractor creates an extractor normalizing phones against region
func NewContactExtractor(region string) *ContactExtractor {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactExtractor{region: region}
}

// Extract runs the email and phone passes over the flattened page text
func (e *ContactExtractor) Extract(doc *goquery.Document) domain.ContactDetails {
	text := markup.Text(doc.Selection)

	emails := uniqueOrdered(emailPattern.FindAllString(text, -1), MaxEmails, nil)
	phones := uniqueOrdered(phonePattern.FindAllString(text, -1), MaxPhones, cleanPhoneMatch)

	return domain.ContactDetails{
		Emails:     emails,
		Phones:     phones,
		PhonesE164: e.normalizePhones(phones),
	}
}

// normalizePhones keeps the phones that are valid numbers, formatted as E.164
func (e *ContactExtractor) normalizePhones(phones []string) []string {
	normalized := make([]string, 0, len(phones))
	for _, raw := range phones {
		number, err := phonenumbers.Parse(raw, e.region)
		if err != nil || !phonenumbers.IsValidNumber(number) {
			continue
		}
		normalized = append(normalized, phonenumbers.Format(number, phonenumbers.E164))
	}
	return uniqueOrdered(normalized, MaxPhones, nil)
}

// cleanPhoneMatch trims a raw match and rejects runs that are mostly separators
func cleanPhoneMatch(match string) (string, bool) {
	match = strings.TrimSpace(match)
	digits := 0
	for _, r := range match {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return match, digits >= minPhoneDigits
}

// uniqueOrdered de-duplicates values keeping first-seen order, then truncates to limit
func uniqueOrdered(values []string, limit int, clean func(string) (string, bool)) []string {
	result := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		if clean != nil {
			var ok bool
			if v, ok = clean(v); !ok {
				continue
			}
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
		if len(result) == limit {
			break
		}
	}
	return result
}
