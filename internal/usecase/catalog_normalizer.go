package usecase

import (
	"github.com/storeinsights/backend/internal/domain"
	"github.com/storeinsights/backend/internal/infrastructure/storefront"
)

// MaxHeroProducts is the size of the featured-products prefix
const MaxHeroProducts = 6

// NormalizeCatalog converts raw feed products into a ProductCatalog.
// Products keep feed order; categories are de-duplicated in first-seen order.
func NormalizeCatalog(raw []storefront.RawProduct) domain.ProductCatalog {
	products := make([]domain.Product, 0, len(raw))
	for _, item := range raw {
		products = append(products, storefront.MapToProduct(item))
	}

	return domain.ProductCatalog{
		TotalProducts: len(products),
		Categories:    collectCategories(products),
		PriceRange:    computePriceRange(products),
		Products:      products,
	}
}

// EmptyCatalog is substituted when the feed is unreachable or malformed
func EmptyCatalog() domain.ProductCatalog {
	return domain.ProductCatalog{
		TotalProducts: 0,
		Categories:    []string{},
		PriceRange:    domain.PriceRange{},
		Products:      []domain.Product{},
	}
}

// HeroProducts returns the first MaxHeroProducts entries of the catalog
func HeroProducts(catalog domain.ProductCatalog) []domain.Product {
	n := len(catalog.Products)
	if n > MaxHeroProducts {
		n = MaxHeroProducts
	}
	hero := make([]domain.Product, n)
	copy(hero, catalog.Products[:n])
	return hero
}

func collectCategories(products []domain.Product) []string {
	categories := make([]string, 0)
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Category == nil || *p.Category == "" {
			continue
		}
		if _, dup := seen[*p.Category]; dup {
			continue
		}
		seen[*p.Category] = struct{}{}
		categories = append(categories, *p.Category)
	}
	return categories
}

// computePriceRange parses formatted prices back to numbers, skipping any that fail
func computePriceRange(products []domain.Product) domain.PriceRange {
	var priceRange domain.PriceRange
	found := false

	for _, p := range products {
		price, ok := storefront.ParsePrice(p.Price)
		if !ok {
			continue
		}
		if !found {
			priceRange = domain.PriceRange{Min: price, Max: price}
			found = true
			continue
		}
		if price < priceRange.Min {
			priceRange.Min = price
		}
		if price > priceRange.Max {
			priceRange.Max = price
		}
	}

	return priceRange
}
