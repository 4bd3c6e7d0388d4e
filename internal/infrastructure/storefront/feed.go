package storefront

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// FeedPath is where storefronts publish their product listing
const FeedPath = "/products.json"

// RawProduct is one product object from the feed. Every field is optional.
type RawProduct struct {
	ID          FlexString   `json:"id"`
	Title       FlexString   `json:"title"`
	BodyHTML    FlexString   `json:"body_html"`
	ProductType FlexString   `json:"product_type"`
	Variants    []RawVariant `json:"variants"`
	Images      []RawImage   `json:"images"`
}

// RawVariant is a pricing variant of a product
type RawVariant struct {
	Price FlexString `json:"price"`
}

// RawImage is a product image
type RawImage struct {
	Src FlexString `json:"src"`
}

type rawFeed struct {
	Products []RawProduct `json:"products"`
}

// FlexString accepts a JSON string, number or boolean and keeps its text.
// Exponent-form numbers are rewritten in plain decimal notation.
// Null, objects and arrays decode to an invalid (absent) value.
type FlexString struct {
	Value string
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*f = FlexString{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString{Value: s, Valid: true}
	case 'n', '{', '[':
		*f = FlexString{}
	case 't', 'f':
		*f = FlexString{Value: string(trimmed), Valid: true}
	default:
		var number json.Number
		if err := json.Unmarshal(trimmed, &number); err != nil {
			return err
		}
		*f = FlexString{Value: plainNumber(number), Valid: true}
	}
	return nil
}

// plainNumber renders a JSON number without an exponent
func plainNumber(number json.Number) string {
	text := number.String()
	if !strings.ContainsAny(text, "eE") {
		return text
	}
	value, _, err := big.ParseFloat(text, 10, 256, big.ToNearestEven)
	if err != nil {
		return text
	}
	return value.Text('f', -1)
}

// String returns the value, or "" when absent
func (f FlexString) String() string {
	return f.Value
}

// ParseFeed decodes a products.json payload
func ParseFeed(body []byte) ([]RawProduct, error) {
	var feed rawFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode product feed: %w", err)
	}
	return feed.Products, nil
}
