package domain

import "time"

type AnalyticsTier string

const (
	AnalyticsBasic      AnalyticsTier = "basic"      // 1.2M IDR/month
	AnalyticsPremium    AnalyticsTier = "premium"    // 2.8M IDR/month
	AnalyticsEnterprise AnalyticsTier = "enterprise" // 4.5M IDR/month
)

type AnalyticsSubscription struct {
	SubscriptionID    string        `json:"id" dynamodbav:"subscription_id"`
	SellerID          string        `json:"seller_id" dynamodbav:"seller_id"`
	Tier              AnalyticsTier `json:"tier" dynamodbav:"tier"`
	MonthlyFee        uint64        `json:"monthly_fee" dynamodbav:"monthly_fee"`
	FeaturesIncluded  []string      `json:"features_included" dynamodbav:"features_included"`
	DataRetentionDays uint32        `json:"data_retention_days" dynamodbav:"data_retention_days"`
	APICallsLimit     uint32        `json:"api_calls_limit" dynamodbav:"api_calls_limit"`
	StartedAt         time.Time     `json:"started_at" dynamodbav:"started_at"`
	ExpiresAt         time.Time     `json:"expires_at" dynamodbav:"expires_at"`
	AutoRenew         bool          `json:"auto_renew" dynamodbav:"auto_renew"`
}

type SalesTrend struct {
	Date          time.Time `json:"date" dynamodbav:"date"`
	SalesVolume   uint32    `json:"sales_volume" dynamodbav:"sales_volume"`
	RevenueIDR    uint64    `json:"revenue_idr" dynamodbav:"revenue_idr"`
	AvgOrderValue uint64    `json:"avg_order_value" dynamodbav:"avg_order_value"`
	TopCategory   string    `json:"top_category" dynamodbav:"top_category"`
}

type CompetitorData struct {
	CompetitorPrices     map[string]uint64 `json:"competitor_prices" dynamodbav:"competitor_prices"`
	MarketPosition       string            `json:"market_position" dynamodbav:"market_position"`
	CompetitiveAdvantage []string          `json:"competitive_advantage" dynamodbav:"competitive_advantage"`
	ThreatLevel          string            `json:"threat_level" dynamodbav:"threat_level"`
}

type PredictiveInsight struct {
	PredictedDemand          map[string]float64 `json:"predicted_demand" dynamodbav:"predicted_demand"`
	OptimalPricing           map[string]uint64  `json:"optimal_pricing" dynamodbav:"optimal_pricing"`
	InventoryRecommendations []string           `json:"inventory_recommendations" dynamodbav:"inventory_recommendations"`
	SeasonalAdjustments      []string           `json:"seasonal_adjustments" dynamodbav:"seasonal_adjustments"`
}

// AnalyticsReport is a generated per-period summary for a subscribed seller.
type AnalyticsReport struct {
	ReportID              string             `json:"id" dynamodbav:"report_id"`
	SellerID              string             `json:"seller_id" dynamodbav:"seller_id"`
	PeriodStart           time.Time          `json:"period_start" dynamodbav:"period_start"`
	PeriodEnd             time.Time          `json:"period_end" dynamodbav:"period_end"`
	TotalViews            uint32             `json:"total_views" dynamodbav:"total_views"`
	UniqueVisitors        uint32             `json:"unique_visitors" dynamodbav:"unique_visitors"`
	ConversionRate        float64            `json:"conversion_rate" dynamodbav:"conversion_rate"`
	TopPerformingProducts []string           `json:"top_performing_products" dynamodbav:"top_performing_products"`
	CustomerDemographics  map[string]uint32  `json:"customer_demographics" dynamodbav:"customer_demographics"`
	SalesTrends           []SalesTrend       `json:"sales_trends" dynamodbav:"sales_trends"`
	CompetitorAnalysis    *CompetitorData    `json:"competitor_analysis,omitempty" dynamodbav:"competitor_analysis"`
	PredictiveInsights    *PredictiveInsight `json:"predictive_insights,omitempty" dynamodbav:"predictive_insights"`
	GeneratedAt           time.Time          `json:"generated_at" dynamodbav:"generated_at"`
}
