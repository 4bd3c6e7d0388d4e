package storefront

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/storeinsights/backend/internal/domain"
)

// CurrencySymbol prefixes every formatted price regardless of the store's currency
const CurrencySymbol = "$"

// MapToProduct converts a raw feed product to our domain Product
func MapToProduct(raw RawProduct) domain.Product {
	product := domain.Product{
		ID:          raw.ID.String(),
		Name:        raw.Title.String(),
		Price:       FormatPrice(firstVariantPrice(raw.Variants)),
		Description: raw.BodyHTML.String(),
	}

	if len(raw.Images) > 0 && raw.Images[0].Src.Valid {
		src := raw.Images[0].Src.Value
		product.Image = &src
	}

	if raw.ProductType.Valid && raw.ProductType.Value != "" {
		category := raw.ProductType.Value
		product.Category = &category
	}

	return product
}

// firstVariantPrice returns the first variant's price, or 0 when missing or unparseable
func firstVariantPrice(variants []RawVariant) float64 {
	if len(variants) == 0 || !variants[0].Price.Valid {
		return 0
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(variants[0].Price.Value), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

// FormatPrice renders a price as "$X.YY"
func FormatPrice(price float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, price)
}

// ParsePrice reverses FormatPrice, tolerating thousands separators
func ParsePrice(formatted string) (float64, bool) {
	cleaned := strings.ReplaceAll(formatted, CurrencySymbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
