package domain

import "time"

type AdType string

const (
	AdBanner    AdType = "banner"
	AdFeatured  AdType = "featured"
	AdSponsored AdType = "sponsored"
)

type AdPlacement string

const (
	PlacementHomepage      AdPlacement = "homepage"
	PlacementCategoryPage  AdPlacement = "category_page"
	PlacementSearchResults AdPlacement = "search_results"
	PlacementProductPage   AdPlacement = "product_page"
)

type Advertisement struct {
	AdID           string      `json:"id" dynamodbav:"ad_id"`
	AdvertiserID   string      `json:"advertiser_id" dynamodbav:"advertiser_id"`
	ProductID      string      `json:"product_id" dynamodbav:"product_id"`
	Type           AdType      `json:"ad_type" dynamodbav:"ad_type"`
	Placement      AdPlacement `json:"placement" dynamodbav:"placement"`
	AnnualFee      uint64      `json:"annual_fee" dynamodbav:"annual_fee"`
	Impressions    uint32      `json:"impressions" dynamodbav:"impressions"`
	Clicks         uint32      `json:"clicks" dynamodbav:"clicks"`
	Conversions    uint32      `json:"conversions" dynamodbav:"conversions"`
	CTR            float64     `json:"ctr" dynamodbav:"ctr"`
	ConversionRate float64     `json:"conversion_rate" dynamodbav:"conversion_rate"`
	Active         bool        `json:"active" dynamodbav:"active"`
	StartedAt      time.Time   `json:"started_at" dynamodbav:"started_at"`
	ExpiresAt      time.Time   `json:"expires_at" dynamodbav:"expires_at"`
}

type CreateAdvertisementRequest struct {
	AdvertiserID string `json:"advertiser_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	Type         string `json:"ad_type" validate:"required,oneof=banner featured sponsored"`
	Placement    string `json:"placement" validate:"required,oneof=homepage category_page search_results product_page"`
	DurationDays int    `json:"duration_days" validate:"gte=0"`
}
