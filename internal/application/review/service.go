package review

import (
	"context"
	"fmt"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateReviewRequest) (*domain.VerifiedReview, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.VerifiedReview, error)
}

type reviewStore interface {
	Put(ctx context.Context, r *domain.VerifiedReview) error
	QueryByProduct(ctx context.Context, productID string) ([]domain.VerifiedReview, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type service struct {
	reviews  reviewStore
	profiles profileStore
	products productStore
	now      func() time.Time
}

type ServiceDeps struct {
	ReviewRepo  reviewStore
	ProfileRepo profileStore
	ProductRepo productStore
	Now         func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		reviews:  deps.ReviewRepo,
		profiles: deps.ProfileRepo,
		products: deps.ProductRepo,
		now:      now,
	}
}

func (s *service) ready() error {
	if s.reviews == nil || s.profiles == nil || s.products == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Create records a stake-backed review. Only verified reviewers may post;
// the reviewer's current stake and tier are frozen onto the review so
// readers can weigh it even after the stake changes.
func (s *service) Create(ctx context.Context, req domain.CreateReviewRequest) (*domain.VerifiedReview, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	reviewer, err := s.profiles.Get(ctx, req.ReviewerID)
	if err != nil {
		return nil, err
	}
	if reviewer.VerificationStatus == domain.StatusUnverified {
		return nil, fmt.Errorf("user must be verified to create reviews: %w", domain.ErrForbidden)
	}
	if _, err := s.products.Get(ctx, req.ProductID); err != nil {
		return nil, err
	}
	var stake uint64
	var tier domain.VerificationTier
	if reviewer.Stake != nil {
		stake = reviewer.Stake.Amount
		tier = reviewer.Stake.Tier
	}
	now := s.now().UTC()
	r := &domain.VerifiedReview{
		ReviewID:          id.New(),
		ReviewerID:        req.ReviewerID,
		ReviewerStake:     stake,
		ReviewerTier:      tier,
		ProductID:         req.ProductID,
		OverallRating:     req.OverallRating,
		LongevityRating:   req.LongevityRating,
		SillageRating:     req.SillageRating,
		ProjectionRating:  req.ProjectionRating,
		VersatilityRating: req.VersatilityRating,
		ValueRating:       req.ValueRating,
		DetailedReview:    req.DetailedReview,
		VerifiedPurchase:  req.VerifiedPurchase,
		SkinType:          req.SkinType,
		AgeGroup:          req.AgeGroup,
		WearOccasion:      req.WearOccasion,
		SeasonTested:      req.SeasonTested,
		ReviewDate:        now,
		LastUpdated:       now,
	}
	if err := s.reviews.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]domain.VerifiedReview, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.reviews.QueryByProduct(ctx, productID)
}
