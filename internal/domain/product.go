package domain

import "time"

// LongevityRating describes how long a fragrance lasts on skin.
type LongevityRating string

const (
	LongevityVeryWeak  LongevityRating = "very_weak" // 0-2 hours
	LongevityWeak      LongevityRating = "weak"      // 2-4 hours
	LongevityModerate  LongevityRating = "moderate"  // 4-6 hours
	LongevityGood      LongevityRating = "good"      // 6-8 hours
	LongevityVeryGood  LongevityRating = "very_good" // 8-12 hours
	LongevityExcellent LongevityRating = "excellent" // 12+ hours
)

type SillageRating string

const (
	SillageIntimate SillageRating = "intimate"
	SillageModerate SillageRating = "moderate"
	SillageHeavy    SillageRating = "heavy"
	SillageEnormous SillageRating = "enormous"
)

type ProjectionRating string

const (
	ProjectionSkin     ProjectionRating = "skin"
	ProjectionLight    ProjectionRating = "light"
	ProjectionModerate ProjectionRating = "moderate"
	ProjectionStrong   ProjectionRating = "strong"
)

type Product struct {
	ProductID          string             `json:"id" dynamodbav:"product_id"`
	SellerID           string             `json:"seller_id" dynamodbav:"seller_id"`
	SellerVerification VerificationStatus `json:"seller_verification" dynamodbav:"seller_verification"`
	Name               string             `json:"name" dynamodbav:"name"`
	Brand              string             `json:"brand" dynamodbav:"brand"`
	PriceIDR           uint64             `json:"price_idr" dynamodbav:"price_idr"`
	FragranceFamily    string             `json:"fragrance_family" dynamodbav:"fragrance_family"`
	TopNotes           []string           `json:"top_notes" dynamodbav:"top_notes"`
	MiddleNotes        []string           `json:"middle_notes" dynamodbav:"middle_notes"`
	BaseNotes          []string           `json:"base_notes" dynamodbav:"base_notes"`
	Occasion           []string           `json:"occasion" dynamodbav:"occasion"`
	Season             []string           `json:"season" dynamodbav:"season"`
	Longevity          LongevityRating    `json:"longevity" dynamodbav:"longevity"`
	Sillage            SillageRating      `json:"sillage" dynamodbav:"sillage"`
	Projection         ProjectionRating   `json:"projection" dynamodbav:"projection"`
	VersatilityScore   float64            `json:"versatility_score" dynamodbav:"versatility_score"`
	Description        string             `json:"description" dynamodbav:"description"`
	Ingredients        []string           `json:"ingredients" dynamodbav:"ingredients"`
	HalalCertified     bool               `json:"halal_certified" dynamodbav:"halal_certified"`
	ImageURLs          []string           `json:"image_urls" dynamodbav:"image_urls"`
	Stock              uint32             `json:"stock" dynamodbav:"stock"`
	Verified           bool               `json:"verified" dynamodbav:"verified"`
	AIAnalyzed         bool               `json:"ai_analyzed" dynamodbav:"ai_analyzed"`
	PersonalityMatches []string           `json:"personality_matches" dynamodbav:"personality_matches"`
	CreatedAt          time.Time          `json:"created" dynamodbav:"created_at"`
	UpdatedAt          time.Time          `json:"updated" dynamodbav:"updated_at"`
}

type CreateProductRequest struct {
	SellerID         string   `json:"seller_id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Brand            string   `json:"brand"`
	PriceIDR         uint64   `json:"price_idr" validate:"required,gt=0"`
	FragranceFamily  string   `json:"fragrance_family" validate:"required"`
	TopNotes         []string `json:"top_notes"`
	MiddleNotes      []string `json:"middle_notes"`
	BaseNotes        []string `json:"base_notes"`
	Occasion         []string `json:"occasion"`
	Season           []string `json:"season"`
	Longevity        string   `json:"longevity"`
	Sillage          string   `json:"sillage"`
	Projection       string   `json:"projection"`
	VersatilityScore float64  `json:"versatility_score" validate:"gte=0,lte=1"`
	Description      string   `json:"description"`
	Ingredients      []string `json:"ingredients"`
	HalalCertified   bool     `json:"halal_certified"`
	Stock            uint32   `json:"stock"`
}

// ProductSearchFilter narrows the catalog scan. Nil fields are ignored.
type ProductSearchFilter struct {
	FragranceFamily *string
	BudgetMin       *uint64
	BudgetMax       *uint64
	Occasion        *string
	Season          *string
	VerifiedOnly    bool
}
