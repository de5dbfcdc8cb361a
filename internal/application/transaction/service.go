package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/commission"
	"github.com/aromance-api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type transactionStore interface {
	Put(ctx context.Context, tx *domain.Transaction) error
	QueryByBuyer(ctx context.Context, userID string) ([]domain.Transaction, error)
	QueryBySeller(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type service struct {
	transactions transactionStore
	products     productStore
	now          func() time.Time
}

type ServiceDeps struct {
	TransactionRepo transactionStore
	ProductRepo     productStore
	Now             func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		transactions: deps.TransactionRepo,
		products:     deps.ProductRepo,
		now:          now,
	}
}

func (s *service) ready() error {
	if s.transactions == nil || s.products == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Create opens an escrowed transaction. The commission is resolved from the
// tier bracket; if the client did not pick a tier it is derived from the
// total amount.
func (s *service) Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.products.Get(ctx, req.ProductID); err != nil {
		return nil, err
	}
	total := req.UnitPriceIDR * uint64(req.Quantity)
	tier := domain.TransactionTier(req.Tier)
	if req.Tier == "" {
		tier = commission.TierForAmount(total)
	}
	tx := &domain.Transaction{
		TransactionID:    id.New(),
		BuyerID:          req.BuyerID,
		SellerID:         req.SellerID,
		ProductID:        req.ProductID,
		Quantity:         req.Quantity,
		UnitPriceIDR:     req.UnitPriceIDR,
		TotalAmountIDR:   total,
		CommissionRate:   commission.Rate(tier),
		CommissionAmount: commission.Resolve(tier, total),
		Tier:             tier,
		Status:           domain.TxPending,
		EscrowLocked:     true,
		PaymentMethod:    req.PaymentMethod,
		ShippingAddress:  req.ShippingAddress,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.transactions.Put(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// ListByUser returns transactions where the user is buyer or seller, newest
// first.
func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	asBuyer, err := s.transactions.QueryByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}
	asSeller, err := s.transactions.QueryBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, 0, len(asBuyer)+len(asSeller))
	seen := make(map[string]bool, len(asBuyer))
	for _, tx := range asBuyer {
		seen[tx.TransactionID] = true
		out = append(out, tx)
	}
	for _, tx := range asSeller {
		if !seen[tx.TransactionID] {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
