package staking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if p, _ := args.Get(0).(*domain.UserProfile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProfileStore) Put(ctx context.Context, p *domain.UserProfile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProfileStore) ScanAll(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

type mockCounterStore struct{ mock.Mock }

func (m *mockCounterStore) Add(ctx context.Context, name string, delta uint64) error {
	return m.Called(ctx, name, delta).Error(0)
}
func (m *mockCounterStore) Get(ctx context.Context, name string) (uint64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uint64), args.Error(1)
}

type mockSMSSender struct{ mock.Mock }

func (m *mockSMSSender) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

// --- helpers ---

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(ps *mockProfileStore, cs *mockCounterStore) Service {
	return NewService(ServiceDeps{
		ProfileRepo: ps,
		CounterRepo: cs,
		Now:         func() time.Time { return fixedNow },
	})
}

func profileFixture(userID string) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:             userID,
		VerificationStatus: domain.StatusUnverified,
		ReputationScore:    5.0,
		CreatedAt:          fixedNow.Add(-365 * 24 * time.Hour),
	}
}

// --- Stake ---

func TestStake_SucceedsAtExactMinimumForEveryTier(t *testing.T) {
	for tier, spec := range domain.TierCatalog {
		ps := new(mockProfileStore)
		cs := new(mockCounterStore)
		ps.On("Get", mock.Anything, "u1").Return(profileFixture("u1"), nil)
		ps.On("Put", mock.Anything, mock.Anything).Return(nil)
		cs.On("Add", mock.Anything, domain.StakePoolCounter, spec.RequiredAmount).Return(nil)

		rec, err := newService(ps, cs).Stake(context.Background(), "u1", spec.RequiredAmount, tier)
		require.NoError(t, err, "tier %s", tier)
		assert.Equal(t, spec.RequiredAmount, rec.Amount)
		assert.Equal(t, tier, rec.Tier)
		assert.Equal(t, spec.AnnualReturnRate, rec.AnnualReturnRate)
		assert.Equal(t, fixedNow.Add(365*24*time.Hour), rec.LockedUntil)
	}
}

func TestStake_OneBelowMinimumFailsForEveryTier(t *testing.T) {
	for tier, spec := range domain.TierCatalog {
		ps := new(mockProfileStore)
		cs := new(mockCounterStore)

		_, err := newService(ps, cs).Stake(context.Background(), "u1", spec.RequiredAmount-1, tier)
		assert.ErrorIs(t, err, domain.ErrInsufficientStake, "tier %s", tier)
		ps.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	}
}

func TestStake_SetsVerificationBucket(t *testing.T) {
	ps := new(mockProfileStore)
	cs := new(mockCounterStore)
	p := profileFixture("u1")
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.MatchedBy(func(got *domain.UserProfile) bool {
		return got.VerificationStatus == domain.StatusPremium
	})).Return(nil)
	cs.On("Add", mock.Anything, domain.StakePoolCounter, uint64(1_500_000)).Return(nil)

	_, err := newService(ps, cs).Stake(context.Background(), "u1", 1_500_000, domain.TierPremiumSeller)
	require.NoError(t, err)
	ps.AssertExpectations(t)
}

func TestStake_UnknownTier(t *testing.T) {
	_, err := newService(new(mockProfileStore), new(mockCounterStore)).
		Stake(context.Background(), "u1", 1_000_000, domain.VerificationTier("gold_member"))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestStake_UserNotFound(t *testing.T) {
	ps := new(mockProfileStore)
	ps.On("Get", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := newService(ps, new(mockCounterStore)).
		Stake(context.Background(), "missing", 300_000, domain.TierBasicReviewer)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStake_ReStakeResetsPenaltiesAndRewards(t *testing.T) {
	ps := new(mockProfileStore)
	cs := new(mockCounterStore)
	p := profileFixture("u1")
	p.Stake = &domain.StakeRecord{Amount: 300_000, Tier: domain.TierBasicReviewer, PenaltyCount: 2, RewardEarned: 12_000}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)
	cs.On("Add", mock.Anything, domain.StakePoolCounter, uint64(950_000)).Return(nil)

	rec, err := newService(ps, cs).Stake(context.Background(), "u1", 950_000, domain.TierPremiumReviewer)
	require.NoError(t, err)
	assert.Zero(t, rec.PenaltyCount)
	assert.Zero(t, rec.RewardEarned)
	assert.Equal(t, domain.TierPremiumReviewer, rec.Tier)
}

func TestStake_StorageUninitialized(t *testing.T) {
	svc := NewService(ServiceDeps{})
	_, err := svc.Stake(context.Background(), "u1", 300_000, domain.TierBasicReviewer)
	assert.ErrorIs(t, err, domain.ErrStorageUninitialized)
}

// --- AccrueRewards ---

func TestAccrueRewards_CreditsFullYearYield(t *testing.T) {
	ps := new(mockProfileStore)
	cs := new(mockCounterStore)
	p := *profileFixture("u1") // created exactly one year before fixedNow
	p.Stake = &domain.StakeRecord{Amount: 1_000_000, Tier: domain.TierPremiumSeller, AnnualReturnRate: 7.5}
	ps.On("ScanAll", mock.Anything).Return([]domain.UserProfile{p}, nil)
	ps.On("Put", mock.Anything, mock.MatchedBy(func(got *domain.UserProfile) bool {
		return got.Stake.RewardEarned == 75_000
	})).Return(nil)

	total, err := newService(ps, cs).AccrueRewards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(75_000), total)
	ps.AssertExpectations(t)
}

func TestAccrueRewards_SecondRunAtSameInstantCreditsNothing(t *testing.T) {
	ps := new(mockProfileStore)
	p := *profileFixture("u1")
	p.Stake = &domain.StakeRecord{Amount: 1_000_000, AnnualReturnRate: 7.5, RewardEarned: 75_000}
	ps.On("ScanAll", mock.Anything).Return([]domain.UserProfile{p}, nil)

	total, err := newService(ps, new(mockCounterStore)).AccrueRewards(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
	ps.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestAccrueRewards_SkipsProfilesWithoutStake(t *testing.T) {
	ps := new(mockProfileStore)
	ps.On("ScanAll", mock.Anything).Return([]domain.UserProfile{*profileFixture("u1")}, nil)

	total, err := newService(ps, new(mockCounterStore)).AccrueRewards(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
	ps.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

// --- Penalize ---

func TestPenalize_FakeReviewDeductsTenth(t *testing.T) {
	ps := new(mockProfileStore)
	p := profileFixture("u1")
	p.Stake = &domain.StakeRecord{Amount: 1_000_000, Tier: domain.TierPremiumSeller}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)

	res, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", domain.ViolationFakeReview)
	require.NoError(t, err)
	assert.False(t, res.Revoked)
	assert.Equal(t, 1, res.PenaltyCount)
	assert.Equal(t, uint64(100_000), res.AmountDeducted)
	assert.Equal(t, uint64(900_000), res.RemainingStake)
	assert.InDelta(t, 4.9, p.ReputationScore, 1e-9)
}

func TestPenalize_UnknownViolationUsesDefaultDivisor(t *testing.T) {
	ps := new(mockProfileStore)
	p := profileFixture("u1")
	p.Stake = &domain.StakeRecord{Amount: 500_000}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)

	res, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", "something_else")
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), res.AmountDeducted)
	assert.Equal(t, uint64(490_000), res.RemainingStake)
}

func TestPenalize_ReputationFlooredAtZero(t *testing.T) {
	ps := new(mockProfileStore)
	p := profileFixture("u1")
	p.ReputationScore = 0.05
	p.Stake = &domain.StakeRecord{Amount: 500_000}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)

	_, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", domain.ViolationSpamBehavior)
	require.NoError(t, err)
	assert.Zero(t, p.ReputationScore)
}

func TestPenalize_ThirdStrikeRevokes(t *testing.T) {
	ps := new(mockProfileStore)
	p := profileFixture("u1")
	p.VerificationStatus = domain.StatusPremium
	p.Stake = &domain.StakeRecord{Amount: 750_000, Tier: domain.TierPremiumReviewer, PenaltyCount: 2}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)

	res, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", domain.ViolationFakeReview)
	require.NoError(t, err)
	assert.True(t, res.Revoked)
	assert.Equal(t, 3, res.PenaltyCount)
	assert.Zero(t, res.AmountDeducted)
	assert.Zero(t, p.Stake.Amount)
	assert.Equal(t, domain.StatusUnverified, p.VerificationStatus)
}

func TestPenalize_SecondStrikeKeepsVerification(t *testing.T) {
	ps := new(mockProfileStore)
	p := profileFixture("u1")
	p.VerificationStatus = domain.StatusElite
	p.Stake = &domain.StakeRecord{Amount: 3_000_000, PenaltyCount: 1}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)

	res, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", domain.ViolationMisleadingProduct)
	require.NoError(t, err)
	assert.False(t, res.Revoked)
	assert.Equal(t, 2, res.PenaltyCount)
	assert.Equal(t, uint64(600_000), res.AmountDeducted)
	assert.Equal(t, domain.StatusElite, p.VerificationStatus)
}

func TestPenalize_RevocationNotifiesUser(t *testing.T) {
	ps := new(mockProfileStore)
	sms := new(mockSMSSender)
	mailer := new(mockMailer)
	phone := "+628123456789"
	email := "seller@example.com"
	p := profileFixture("u1")
	p.Phone = &phone
	p.Email = &email
	p.Stake = &domain.StakeRecord{Amount: 500_000, PenaltyCount: 2}
	ps.On("Get", mock.Anything, "u1").Return(p, nil)
	ps.On("Put", mock.Anything, mock.Anything).Return(nil)
	sms.On("SendSMS", mock.Anything, phone, mock.Anything).Return(nil)
	mailer.On("SendEmail", email, "Verification revoked", mock.Anything).Return(nil)

	svc := NewService(ServiceDeps{
		ProfileRepo: ps,
		CounterRepo: new(mockCounterStore),
		SMSSender:   sms,
		Mailer:      mailer,
		Now:         func() time.Time { return fixedNow },
	})
	res, err := svc.Penalize(context.Background(), "u1", domain.ViolationFakeReview)
	require.NoError(t, err)
	assert.True(t, res.Revoked)
	sms.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestPenalize_NoActiveStake(t *testing.T) {
	ps := new(mockProfileStore)
	ps.On("Get", mock.Anything, "u1").Return(profileFixture("u1"), nil)

	_, err := newService(ps, new(mockCounterStore)).
		Penalize(context.Background(), "u1", domain.ViolationFakeReview)
	assert.ErrorIs(t, err, domain.ErrNoActiveStake)
}

// --- StakePool ---

func TestStakePool_ReturnsCounter(t *testing.T) {
	cs := new(mockCounterStore)
	cs.On("Get", mock.Anything, domain.StakePoolCounter).Return(uint64(4_500_000), nil)

	total, err := newService(new(mockProfileStore), cs).StakePool(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4_500_000), total)
}

func TestStakePool_PropagatesStoreError(t *testing.T) {
	cs := new(mockCounterStore)
	storeErr := errors.New("dynamo unavailable")
	cs.On("Get", mock.Anything, domain.StakePoolCounter).Return(uint64(0), storeErr)

	_, err := newService(new(mockProfileStore), cs).StakePool(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
