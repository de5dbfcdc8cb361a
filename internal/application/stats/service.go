package stats

import (
	"context"

	"github.com/aromance-api/internal/domain"
)

type Service interface {
	Platform(ctx context.Context) (map[string]uint64, error)
}

type profileStore interface {
	ScanAll(ctx context.Context) ([]domain.UserProfile, error)
}

type productStore interface {
	ScanAll(ctx context.Context) ([]domain.Product, error)
}

type transactionStore interface {
	ScanAll(ctx context.Context) ([]domain.Transaction, error)
}

type reviewStore interface {
	Count(ctx context.Context) (uint64, error)
}

type counterStore interface {
	Get(ctx context.Context, name string) (uint64, error)
}

type service struct {
	profiles     profileStore
	products     productStore
	transactions transactionStore
	reviews      reviewStore
	counters     counterStore
}

type ServiceDeps struct {
	ProfileRepo     profileStore
	ProductRepo     productStore
	TransactionRepo transactionStore
	ReviewRepo      reviewStore
	CounterRepo     counterStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		profiles:     deps.ProfileRepo,
		products:     deps.ProductRepo,
		transactions: deps.TransactionRepo,
		reviews:      deps.ReviewRepo,
		counters:     deps.CounterRepo,
	}
}

func (s *service) ready() error {
	if s.profiles == nil || s.products == nil || s.transactions == nil || s.reviews == nil || s.counters == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Platform aggregates marketplace-wide counts: users, products,
// transactions, gross merchandise value, reviews and the stake pool.
func (s *service) Platform(ctx context.Context) (map[string]uint64, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	stats := make(map[string]uint64)

	profiles, err := s.profiles.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	stats["total_users"] = uint64(len(profiles))
	var verifiedUsers uint64
	for _, p := range profiles {
		if p.VerificationStatus != domain.StatusUnverified {
			verifiedUsers++
		}
	}
	stats["verified_users"] = verifiedUsers

	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	stats["total_products"] = uint64(len(products))
	var verifiedProducts uint64
	for _, p := range products {
		if p.Verified {
			verifiedProducts++
		}
	}
	stats["verified_products"] = verifiedProducts

	transactions, err := s.transactions.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	stats["total_transactions"] = uint64(len(transactions))
	var gmv uint64
	for _, tx := range transactions {
		gmv += tx.TotalAmountIDR
	}
	stats["total_gmv_idr"] = gmv

	reviewCount, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats["total_reviews"] = reviewCount

	staked, err := s.counters.Get(ctx, domain.StakePoolCounter)
	if err != nil {
		return nil, err
	}
	stats["total_staked_idr"] = staked

	return stats, nil
}
