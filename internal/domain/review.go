package domain

import "time"

// VerifiedReview is a product review backed by the reviewer's stake.
type VerifiedReview struct {
	ReviewID          string           `json:"id" dynamodbav:"review_id"`
	ReviewerID        string           `json:"reviewer_id" dynamodbav:"reviewer_id"`
	ReviewerStake     uint64           `json:"reviewer_stake" dynamodbav:"reviewer_stake"`
	ReviewerTier      VerificationTier `json:"reviewer_tier" dynamodbav:"reviewer_tier"`
	ProductID         string           `json:"product_id" dynamodbav:"product_id"`
	OverallRating     uint8            `json:"overall_rating" dynamodbav:"overall_rating"`
	LongevityRating   uint8            `json:"longevity_rating" dynamodbav:"longevity_rating"`
	SillageRating     uint8            `json:"sillage_rating" dynamodbav:"sillage_rating"`
	ProjectionRating  uint8            `json:"projection_rating" dynamodbav:"projection_rating"`
	VersatilityRating uint8            `json:"versatility_rating" dynamodbav:"versatility_rating"`
	ValueRating       uint8            `json:"value_rating" dynamodbav:"value_rating"`
	DetailedReview    string           `json:"detailed_review" dynamodbav:"detailed_review"`
	VerifiedPurchase  bool             `json:"verified_purchase" dynamodbav:"verified_purchase"`
	SkinType          string           `json:"skin_type" dynamodbav:"skin_type"`
	AgeGroup          string           `json:"age_group" dynamodbav:"age_group"`
	WearOccasion      string           `json:"wear_occasion" dynamodbav:"wear_occasion"`
	SeasonTested      string           `json:"season_tested" dynamodbav:"season_tested"`
	HelpfulVotes      uint32           `json:"helpful_votes" dynamodbav:"helpful_votes"`
	ReportedCount     uint32           `json:"reported_count" dynamodbav:"reported_count"`
	AIValidated       bool             `json:"ai_validated" dynamodbav:"ai_validated"`
	ReviewDate        time.Time        `json:"review_date" dynamodbav:"review_date"`
	LastUpdated       time.Time        `json:"last_updated" dynamodbav:"last_updated"`
}

type CreateReviewRequest struct {
	ReviewerID        string `json:"reviewer_id" validate:"required"`
	ProductID         string `json:"product_id" validate:"required"`
	OverallRating     uint8  `json:"overall_rating" validate:"required,gte=1,lte=5"`
	LongevityRating   uint8  `json:"longevity_rating" validate:"gte=0,lte=5"`
	SillageRating     uint8  `json:"sillage_rating" validate:"gte=0,lte=5"`
	ProjectionRating  uint8  `json:"projection_rating" validate:"gte=0,lte=5"`
	VersatilityRating uint8  `json:"versatility_rating" validate:"gte=0,lte=5"`
	ValueRating       uint8  `json:"value_rating" validate:"gte=0,lte=5"`
	DetailedReview    string `json:"detailed_review"`
	VerifiedPurchase  bool   `json:"verified_purchase"`
	SkinType          string `json:"skin_type"`
	AgeGroup          string `json:"age_group"`
	WearOccasion      string `json:"wear_occasion"`
	SeasonTested      string `json:"season_tested"`
}
