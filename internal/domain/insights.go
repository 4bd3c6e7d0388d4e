package domain

import "time"

// Product represents one normalized catalog item
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"` // always "$X.YY"
	Image       *string `json:"image"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
}

// PriceRange is the min/max over all parseable product prices
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductCatalog is the aggregate view of all products in the feed
type ProductCatalog struct {
	TotalProducts int        `json:"total_products"`
	Categories    []string   `json:"categories"`
	PriceRange    PriceRange `json:"price_range"`
	Products      []Product  `json:"products"`
}

// SocialHandles holds the last matching link per platform
type SocialHandles struct {
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	TikTok    *string `json:"tiktok"`
	Twitter   *string `json:"twitter"`
}

// ContactDetails holds bounded, duplicate-free contact lists
type ContactDetails struct {
	Emails     []string `json:"emails"`      // at most 5
	Phones     []string `json:"phones"`      // at most 3
	PhonesE164 []string `json:"phones_e164"` // subset of Phones that parse as valid numbers
}

// FAQ is one question/answer pair
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ImportantLink is one navigation shortcut found on the storefront
type ImportantLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StoreInsights is the complete analysis result for one storefront
type StoreInsights struct {
	AnalysisID     string          `json:"analysis_id"`
	URL            string          `json:"url"`
	ProductCatalog ProductCatalog  `json:"product_catalog"`
	HeroProducts   []Product       `json:"hero_products"`
	PrivacyPolicy  string          `json:"privacy_policy"`
	ReturnPolicy   string          `json:"return_policy"`
	RefundPolicy   string          `json:"refund_policy"`
	FAQs           []FAQ           `json:"faqs"`
	SocialHandles  SocialHandles   `json:"social_handles"`
	ContactDetails ContactDetails  `json:"contact_details"`
	BrandContext   string          `json:"brand_context"`
	ImportantLinks []ImportantLink `json:"important_links"`
	AnalysisDate   time.Time       `json:"analysis_date"`
}

// AnalyzeRequest is the body of an analyze-store request
type AnalyzeRequest struct {
	WebsiteURL string `json:"website_url" binding:"required"`
}
