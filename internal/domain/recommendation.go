package domain

import "time"

// AIRecommendation is a derived, ephemeral match between a user's taste
// profile and a product. A user's list is recomputed wholesale on each
// generation pass; previous lists are replaced, never merged.
type AIRecommendation struct {
	RecommendationID     string    `json:"id" dynamodbav:"recommendation_id"`
	UserID               string    `json:"user_id" dynamodbav:"user_id"`
	ProductID            string    `json:"product_id" dynamodbav:"product_id"`
	MatchScore           float64   `json:"match_score" dynamodbav:"match_score"`
	PersonalityAlignment float64   `json:"personality_alignment" dynamodbav:"personality_alignment"`
	LifestyleFit         float64   `json:"lifestyle_fit" dynamodbav:"lifestyle_fit"`
	OccasionMatch        float64   `json:"occasion_match" dynamodbav:"occasion_match"`
	BudgetCompatibility  float64   `json:"budget_compatibility" dynamodbav:"budget_compatibility"`
	SeasonalRelevance    float64   `json:"seasonal_relevance" dynamodbav:"seasonal_relevance"`
	Reasoning            string    `json:"reasoning" dynamodbav:"reasoning"`
	ConfidenceLevel      float64   `json:"confidence_level" dynamodbav:"confidence_level"`
	TrendFactor          float64   `json:"trend_factor" dynamodbav:"trend_factor"`
	GeneratedAt          time.Time `json:"generated_at" dynamodbav:"generated_at"`
	UserFeedback         *float64  `json:"user_feedback,omitempty" dynamodbav:"user_feedback"`
}
