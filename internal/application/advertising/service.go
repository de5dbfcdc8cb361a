package advertising

import (
	"context"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/id"
	"github.com/aromance-api/internal/pkg/yield"
)

// Flat annual placement fee, IDR.
const annualFee = 1_500_000

type Service interface {
	Create(ctx context.Context, req domain.CreateAdvertisementRequest) (*domain.Advertisement, error)
	ActiveByPlacement(ctx context.Context, placement domain.AdPlacement) ([]domain.Advertisement, error)
}

type adStore interface {
	Put(ctx context.Context, ad *domain.Advertisement) error
	ScanAll(ctx context.Context) ([]domain.Advertisement, error)
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type service struct {
	ads      adStore
	products productStore
	now      func() time.Time
}

type ServiceDeps struct {
	AdRepo      adStore
	ProductRepo productStore
	Now         func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{ads: deps.AdRepo, products: deps.ProductRepo, now: now}
}

func (s *service) ready() error {
	if s.ads == nil || s.products == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Create books an ad slot. The fee is fixed and performance counters start
// at zero regardless of what the client sends. Zero duration means a full
// year.
func (s *service) Create(ctx context.Context, req domain.CreateAdvertisementRequest) (*domain.Advertisement, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.products.Get(ctx, req.ProductID); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	duration := yield.OneYear
	if req.DurationDays > 0 {
		duration = time.Duration(req.DurationDays) * 24 * time.Hour
	}
	ad := &domain.Advertisement{
		AdID:         id.New(),
		AdvertiserID: req.AdvertiserID,
		ProductID:    req.ProductID,
		Type:         domain.AdType(req.Type),
		Placement:    domain.AdPlacement(req.Placement),
		AnnualFee:    annualFee,
		Active:       true,
		StartedAt:    now,
		ExpiresAt:    now.Add(duration),
	}
	if err := s.ads.Put(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// ActiveByPlacement returns live, unexpired ads booked for the placement.
func (s *service) ActiveByPlacement(ctx context.Context, placement domain.AdPlacement) ([]domain.Advertisement, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ads, err := s.ads.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]domain.Advertisement, 0)
	for _, ad := range ads {
		if ad.Active && ad.ExpiresAt.After(now) && ad.Placement == placement {
			out = append(out, ad)
		}
	}
	return out, nil
}
