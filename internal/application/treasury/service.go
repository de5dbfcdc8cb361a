package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/id"
	"github.com/aromance-api/internal/pkg/yield"
)

// Annual return rate per investment type. Rates are fractions, not percent.
var returnRates = map[domain.InvestmentType]float64{
	domain.InvestmentFixedIncome:   0.07,
	domain.InvestmentMoneyMarket:   0.06,
	domain.InvestmentEmergencyFund: 0.04,
}

// Monthly allocation split across investment types.
var allocationSplit = map[domain.InvestmentType]float64{
	domain.InvestmentFixedIncome:   0.6,
	domain.InvestmentMoneyMarket:   0.3,
	domain.InvestmentEmergencyFund: 0.1,
}

// AllocationResult reports one monthly allocation run.
type AllocationResult struct {
	TotalAllocated uint64                           `json:"total_allocated"`
	Investments    map[domain.InvestmentType]uint64 `json:"investments"`
}

type Service interface {
	Invest(ctx context.Context, amount uint64, investmentType domain.InvestmentType) (*domain.TreasuryInvestment, error)
	List(ctx context.Context) ([]domain.TreasuryInvestment, error)
	TotalReturns(ctx context.Context) (uint64, error)
	AllocateMonthly(ctx context.Context) (*AllocationResult, error)
}

type investmentStore interface {
	Put(ctx context.Context, inv *domain.TreasuryInvestment) error
	ScanAll(ctx context.Context) ([]domain.TreasuryInvestment, error)
}

type service struct {
	investments investmentStore
	now         func() time.Time
}

type ServiceDeps struct {
	InvestmentRepo investmentStore
	Now            func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{investments: deps.InvestmentRepo, now: now}
}

func (s *service) ready() error {
	if s.investments == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Invest places treasury funds into the given instrument. The record is
// write-once; its current value is always derived on read.
func (s *service) Invest(ctx context.Context, amount uint64, investmentType domain.InvestmentType) (*domain.TreasuryInvestment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rate, ok := returnRates[investmentType]
	if !ok {
		return nil, fmt.Errorf("unknown investment type %q: %w", investmentType, domain.ErrBadRequest)
	}
	now := s.now().UTC()
	inv := &domain.TreasuryInvestment{
		InvestmentID:     fmt.Sprintf("inv_%s", id.New()),
		PrincipalAmount:  amount,
		Type:             investmentType,
		AnnualReturnRate: rate,
		MaturityDate:     now.Add(yield.OneYear),
		CurrentValue:     amount,
		CreatedAt:        now,
	}
	if err := s.investments.Put(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns all investments with their current values refreshed.
func (s *service) List(ctx context.Context) ([]domain.TreasuryInvestment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	investments, err := s.investments.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range investments {
		inv := &investments[i]
		inv.CurrentValue = inv.PrincipalAmount + yield.Accrued(inv.PrincipalAmount, inv.AnnualReturnRate, inv.CreatedAt, now)
	}
	return investments, nil
}

// TotalReturns sums the yield accrued across all investments since each was
// created. Investments keep accruing past their maturity date; maturity
// only marks when the principal may be withdrawn.
func (s *service) TotalReturns(ctx context.Context) (uint64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	investments, err := s.investments.ScanAll(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now()
	var total uint64
	for _, inv := range investments {
		total += yield.Accrued(inv.PrincipalAmount, inv.AnnualReturnRate, inv.CreatedAt, now)
	}
	return total, nil
}

// AllocateMonthly reinvests the accrued treasury returns 60/30/10 across
// fixed income, money market and the emergency fund.
func (s *service) AllocateMonthly(ctx context.Context) (*AllocationResult, error) {
	revenue, err := s.TotalReturns(ctx)
	if err != nil {
		return nil, err
	}
	result := &AllocationResult{
		TotalAllocated: revenue,
		Investments:    make(map[domain.InvestmentType]uint64, len(allocationSplit)),
	}
	for _, investmentType := range []domain.InvestmentType{
		domain.InvestmentFixedIncome,
		domain.InvestmentMoneyMarket,
		domain.InvestmentEmergencyFund,
	} {
		amount := uint64(float64(revenue) * allocationSplit[investmentType])
		if _, err := s.Invest(ctx, amount, investmentType); err != nil {
			return nil, err
		}
		result.Investments[investmentType] = amount
	}
	return result, nil
}
