package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/id"
)

const subscriptionDuration = 30 * 24 * time.Hour

// tierSpec is the resolved catalog entry for an analytics tier. Fees are
// monthly, in IDR.
type tierSpec struct {
	monthlyFee        uint64
	features          []string
	dataRetentionDays uint32
	apiCallsLimit     uint32
}

var tierCatalog = map[domain.AnalyticsTier]tierSpec{
	domain.AnalyticsBasic: {
		monthlyFee: 1_200_000,
		features: []string{
			"Basic Demographics",
			"Sales Overview",
			"Product Performance",
		},
		dataRetentionDays: 90,
		apiCallsLimit:     1_000,
	},
	domain.AnalyticsPremium: {
		monthlyFee: 2_800_000,
		features: []string{
			"Advanced Demographics",
			"Predictive Analytics",
			"Competitor Analysis",
			"Custom Reports",
			"API Access",
		},
		dataRetentionDays: 365,
		apiCallsLimit:     10_000,
	},
	domain.AnalyticsEnterprise: {
		monthlyFee: 4_500_000,
		features: []string{
			"Full Analytics Suite",
			"Real-time Insights",
			"Advanced ML Models",
			"Dedicated Support",
			"Custom Integrations",
			"White-label Reports",
		},
		dataRetentionDays: 730,
		apiCallsLimit:     100_000,
	},
}

type SubscribeRequest struct {
	SellerID  string `json:"seller_id" validate:"required"`
	Tier      string `json:"tier" validate:"required,oneof=basic premium enterprise"`
	AutoRenew bool   `json:"auto_renew"`
}

type Service interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (*domain.AnalyticsSubscription, error)
	GenerateReport(ctx context.Context, sellerID string, periodStart, periodEnd time.Time) (*domain.AnalyticsReport, error)
	ListReports(ctx context.Context, sellerID string) ([]domain.AnalyticsReport, error)
}

type subscriptionStore interface {
	Put(ctx context.Context, sub *domain.AnalyticsSubscription) error
	QueryBySeller(ctx context.Context, sellerID string) ([]domain.AnalyticsSubscription, error)
}

type reportStore interface {
	Put(ctx context.Context, report *domain.AnalyticsReport) error
	QueryBySeller(ctx context.Context, sellerID string) ([]domain.AnalyticsReport, error)
}

type transactionStore interface {
	QueryBySeller(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type service struct {
	subscriptions subscriptionStore
	reports       reportStore
	transactions  transactionStore
	profiles      profileStore
	now           func() time.Time
}

type ServiceDeps struct {
	SubscriptionRepo subscriptionStore
	ReportRepo       reportStore
	TransactionRepo  transactionStore
	ProfileRepo      profileStore
	Now              func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		subscriptions: deps.SubscriptionRepo,
		reports:       deps.ReportRepo,
		transactions:  deps.TransactionRepo,
		profiles:      deps.ProfileRepo,
		now:           now,
	}
}

func (s *service) ready() error {
	if s.subscriptions == nil || s.reports == nil || s.transactions == nil || s.profiles == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Subscribe opens a 30-day analytics subscription. Fee and feature set come
// from the tier catalog, never from the client.
func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (*domain.AnalyticsSubscription, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	tier := domain.AnalyticsTier(req.Tier)
	spec, ok := tierCatalog[tier]
	if !ok {
		return nil, fmt.Errorf("unknown analytics tier %q: %w", req.Tier, domain.ErrBadRequest)
	}
	if _, err := s.profiles.Get(ctx, req.SellerID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	sub := &domain.AnalyticsSubscription{
		SubscriptionID:    id.New(),
		SellerID:          req.SellerID,
		Tier:              tier,
		MonthlyFee:        spec.monthlyFee,
		FeaturesIncluded:  spec.features,
		DataRetentionDays: spec.dataRetentionDays,
		APICallsLimit:     spec.apiCallsLimit,
		StartedAt:         now,
		ExpiresAt:         now.Add(subscriptionDuration),
		AutoRenew:         req.AutoRenew,
	}
	if err := s.subscriptions.Put(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GenerateReport builds a sales report over the period from the seller's
// transactions. Competitor analysis requires at least a premium
// subscription, predictive insights an enterprise one.
func (s *service) GenerateReport(ctx context.Context, sellerID string, periodStart, periodEnd time.Time) (*domain.AnalyticsReport, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sub, err := s.activeSubscription(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.QueryBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	var totalOrders uint32
	demographics := map[string]uint32{}
	trends := make([]domain.SalesTrend, 0)
	topProducts := make([]string, 0)
	seenProducts := map[string]bool{}
	for _, tx := range transactions {
		if tx.CreatedAt.Before(periodStart) || tx.CreatedAt.After(periodEnd) {
			continue
		}
		totalOrders++
		trends = append(trends, domain.SalesTrend{
			Date:          tx.CreatedAt,
			SalesVolume:   1,
			RevenueIDR:    tx.TotalAmountIDR,
			AvgOrderValue: tx.TotalAmountIDR,
			TopCategory:   "Fragrance",
		})
		if _, err := s.profiles.Get(ctx, tx.BuyerID); err == nil {
			demographics["active_users"]++
		}
		if !seenProducts[tx.ProductID] {
			seenProducts[tx.ProductID] = true
			topProducts = append(topProducts, tx.ProductID)
		}
	}

	var conversionRate float64
	if totalOrders > 0 {
		conversionRate = 15.5
	}
	report := &domain.AnalyticsReport{
		ReportID:              fmt.Sprintf("analytics_%s_%s", sellerID, id.New()),
		SellerID:              sellerID,
		PeriodStart:           periodStart,
		PeriodEnd:             periodEnd,
		TotalViews:            totalOrders * 3,
		UniqueVisitors:        totalOrders * 2,
		ConversionRate:        conversionRate,
		TopPerformingProducts: topProducts,
		CustomerDemographics:  demographics,
		SalesTrends:           trends,
		GeneratedAt:           s.now().UTC(),
	}
	if sub.Tier == domain.AnalyticsPremium || sub.Tier == domain.AnalyticsEnterprise {
		report.CompetitorAnalysis = &domain.CompetitorData{
			CompetitorPrices:     map[string]uint64{},
			MarketPosition:       "Competitive",
			CompetitiveAdvantage: []string{"AI Recommendations", "Verified Reviews"},
			ThreatLevel:          "Medium",
		}
	}
	if sub.Tier == domain.AnalyticsEnterprise {
		report.PredictiveInsights = &domain.PredictiveInsight{
			PredictedDemand:          map[string]float64{},
			OptimalPricing:           map[string]uint64{},
			InventoryRecommendations: []string{"Increase floral fragrances"},
			SeasonalAdjustments:      []string{"Summer collection launch"},
		}
	}
	if err := s.reports.Put(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *service) ListReports(ctx context.Context, sellerID string) ([]domain.AnalyticsReport, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.reports.QueryBySeller(ctx, sellerID)
}

// activeSubscription returns the seller's unexpired subscription or fails.
func (s *service) activeSubscription(ctx context.Context, sellerID string) (*domain.AnalyticsSubscription, error) {
	subs, err := s.subscriptions.QueryBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range subs {
		if subs[i].ExpiresAt.After(now) {
			return &subs[i], nil
		}
	}
	return nil, fmt.Errorf("valid analytics subscription required: %w", domain.ErrForbidden)
}
