package recommendation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aromance-api/internal/domain"
)

// Scores below this never make it into a user's recommendation list.
const minMatchScore = 0.6

// maxRecommendations caps each generated list.
const maxRecommendations = 10

type Service interface {
	Generate(ctx context.Context, userID string) ([]domain.AIRecommendation, error)
	ListForUser(ctx context.Context, userID string) ([]domain.AIRecommendation, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type identityStore interface {
	Get(ctx context.Context, did string) (*domain.DecentralizedIdentity, error)
}

type productStore interface {
	ScanAll(ctx context.Context) ([]domain.Product, error)
}

type recommendationStore interface {
	PutList(ctx context.Context, userID string, recs []domain.AIRecommendation) error
	GetList(ctx context.Context, userID string) ([]domain.AIRecommendation, error)
}

type service struct {
	profiles   profileStore
	identities identityStore
	products   productStore
	recs       recommendationStore
	now        func() time.Time
}

type ServiceDeps struct {
	ProfileRepo        profileStore
	IdentityRepo       identityStore
	ProductRepo        productStore
	RecommendationRepo recommendationStore
	Now                func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		profiles:   deps.ProfileRepo,
		identities: deps.IdentityRepo,
		products:   deps.ProductRepo,
		recs:       deps.RecommendationRepo,
		now:        now,
	}
}

// Generate scores every catalog product against the user's fragrance
// identity and replaces the user's stored list with the top matches.
// The previous list is discarded even when the new one is shorter.
func (s *service) Generate(ctx context.Context, userID string) ([]domain.AIRecommendation, error) {
	if s.profiles == nil || s.identities == nil || s.products == nil || s.recs == nil {
		return nil, domain.ErrStorageUninitialized
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.DID == nil || *p.DID == "" {
		return nil, fmt.Errorf("user %s has no fragrance identity: %w", userID, domain.ErrIdentityNotFound)
	}
	identity, err := s.identities.Get(ctx, *p.DID)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	fid := identity.Fragrance
	now := s.now().UTC()
	recs := make([]domain.AIRecommendation, 0, len(products))
	for i := range products {
		product := &products[i]
		personality := personalityAlignment(fid, product)
		budget := budgetCompatibility(fid.BudgetRange, product.PriceIDR)
		occasion := occasionMatch(fid.OccasionPreferences, product.Occasion)
		seasonal := seasonalRelevance(fid.SeasonPreferences, product.Season)

		// Lifestyle is reported but deliberately left out of the mean.
		overall := (personality + budget + occasion + seasonal) / 4.0
		if overall <= minMatchScore {
			continue
		}
		recs = append(recs, domain.AIRecommendation{
			RecommendationID:     fmt.Sprintf("rec_%s_%s", userID, product.ProductID),
			UserID:               userID,
			ProductID:            product.ProductID,
			MatchScore:           overall,
			PersonalityAlignment: personality,
			LifestyleFit:         lifestyleFit(fid.Lifestyle, product),
			OccasionMatch:        occasion,
			BudgetCompatibility:  budget,
			SeasonalRelevance:    seasonal,
			Reasoning:            fmt.Sprintf("Based on your %s personality and %s lifestyle", fid.PersonalityType, fid.Lifestyle),
			ConfidenceLevel:      overall * 0.9,
			TrendFactor:          0.8,
			GeneratedAt:          now,
		})
	}

	// Equal scores fall back to product ID so repeated runs over the same
	// catalog produce the same ordering.
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].ProductID < recs[j].ProductID
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	if err := s.recs.PutList(ctx, userID, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// ListForUser returns the stored list from the last Generate run, or an
// empty list when the user has never had one generated.
func (s *service) ListForUser(ctx context.Context, userID string) ([]domain.AIRecommendation, error) {
	if s.recs == nil {
		return nil, domain.ErrStorageUninitialized
	}
	return s.recs.GetList(ctx, userID)
}
