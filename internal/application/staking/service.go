package staking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/yield"
)

// PenaltyResult reports the outcome of a single penalty application.
type PenaltyResult struct {
	UserID         string `json:"user_id"`
	ViolationType  string `json:"violation_type"`
	PenaltyCount   int    `json:"penalty_count"`
	AmountDeducted uint64 `json:"amount_deducted"`
	RemainingStake uint64 `json:"remaining_stake"`
	Revoked        bool   `json:"revoked"`
}

type Service interface {
	Stake(ctx context.Context, userID string, amount uint64, tier domain.VerificationTier) (*domain.StakeRecord, error)
	AccrueRewards(ctx context.Context) (uint64, error)
	Penalize(ctx context.Context, userID, violationType string) (*PenaltyResult, error)
	StakePool(ctx context.Context) (uint64, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Put(ctx context.Context, p *domain.UserProfile) error
	ScanAll(ctx context.Context) ([]domain.UserProfile, error)
}

type counterStore interface {
	Add(ctx context.Context, name string, delta uint64) error
	Get(ctx context.Context, name string) (uint64, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type mailSender interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	profiles profileStore
	counters counterStore
	sms      smsSender
	mailer   mailSender
	now      func() time.Time
}

type ServiceDeps struct {
	ProfileRepo profileStore
	CounterRepo counterStore
	SMSSender   smsSender  // optional, revocation notices
	Mailer      mailSender // optional, revocation notices
	Now         func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		profiles: deps.ProfileRepo,
		counters: deps.CounterRepo,
		sms:      deps.SMSSender,
		mailer:   deps.Mailer,
		now:      now,
	}
}

func (s *service) ready() error {
	if s.profiles == nil || s.counters == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Stake locks amount against the requested tier. Re-staking replaces the
// record wholesale, which also resets penalty_count and reward_earned.
func (s *service) Stake(ctx context.Context, userID string, amount uint64, tier domain.VerificationTier) (*domain.StakeRecord, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	spec, ok := tier.Spec()
	if !ok {
		return nil, fmt.Errorf("unknown verification tier %q: %w", tier, domain.ErrBadRequest)
	}
	if amount < spec.RequiredAmount {
		return nil, fmt.Errorf("tier %s requires at least %d IDR: %w", tier, spec.RequiredAmount, domain.ErrInsufficientStake)
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p.Stake = &domain.StakeRecord{
		Amount:           amount,
		Tier:             tier,
		LockedUntil:      now.Add(yield.OneYear),
		PenaltyCount:     0,
		RewardEarned:     0,
		AnnualReturnRate: spec.AnnualReturnRate,
	}
	p.VerificationStatus = spec.Status
	p.LastActive = now
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	if err := s.counters.Add(ctx, domain.StakePoolCounter, amount); err != nil {
		return nil, err
	}
	return p.Stake, nil
}

// AccrueRewards recomputes the reward each active stake has earned since the
// profile was created and persists any increase. Returns the total newly
// credited across all profiles. Running it twice at the same instant credits
// nothing the second time.
func (s *service) AccrueRewards(ctx context.Context) (uint64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	profiles, err := s.profiles.ScanAll(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now()
	var total uint64
	for i := range profiles {
		p := &profiles[i]
		if p.Stake == nil {
			continue
		}
		accrued := yield.Accrued(p.Stake.Amount, p.Stake.AnnualReturnRate/100, p.CreatedAt, now)
		if accrued <= p.Stake.RewardEarned {
			continue
		}
		total += accrued - p.Stake.RewardEarned
		p.Stake.RewardEarned = accrued
		if err := s.profiles.Put(ctx, p); err != nil {
			return total, err
		}
	}
	return total, nil
}

// Penalize records a violation against the user's stake. The third strike
// revokes verification outright; earlier strikes deduct a slice of the stake
// and shave reputation.
func (s *service) Penalize(ctx context.Context, userID, violationType string) (*PenaltyResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.Stake == nil {
		return nil, fmt.Errorf("user %s has no stake to penalize: %w", userID, domain.ErrNoActiveStake)
	}
	p.Stake.PenaltyCount++
	penalty := p.Stake.Amount / domain.PenaltyDivisor(violationType)

	result := &PenaltyResult{
		UserID:        userID,
		ViolationType: violationType,
		PenaltyCount:  p.Stake.PenaltyCount,
	}
	if p.Stake.PenaltyCount >= 3 {
		p.Stake.Amount = 0
		p.VerificationStatus = domain.StatusUnverified
		if err := s.profiles.Put(ctx, p); err != nil {
			return nil, err
		}
		result.Revoked = true
		s.notifyRevocation(ctx, p)
		return result, nil
	}

	if penalty > p.Stake.Amount {
		penalty = p.Stake.Amount
	}
	p.Stake.Amount -= penalty
	p.ReputationScore -= 0.1
	if p.ReputationScore < 0 {
		p.ReputationScore = 0
	}
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	result.AmountDeducted = penalty
	result.RemainingStake = p.Stake.Amount
	return result, nil
}

// StakePool returns the aggregate of all funds ever staked on the platform.
func (s *service) StakePool(ctx context.Context) (uint64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return s.counters.Get(ctx, domain.StakePoolCounter)
}

func (s *service) notifyRevocation(ctx context.Context, p *domain.UserProfile) {
	const msg = "Your Aromance verification has been revoked after repeated violations. Your stake has been forfeited."
	if s.sms != nil && p.Phone != nil && *p.Phone != "" {
		if err := s.sms.SendSMS(ctx, *p.Phone, msg); err != nil {
			slog.Warn("failed to send revocation SMS", "user_id", p.UserID, "err", err)
		}
	}
	if s.mailer != nil && p.Email != nil && *p.Email != "" {
		if err := s.mailer.SendEmail(*p.Email, "Verification revoked", msg); err != nil {
			slog.Warn("failed to send revocation email", "user_id", p.UserID, "err", err)
		}
	}
}
