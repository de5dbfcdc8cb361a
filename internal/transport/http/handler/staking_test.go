package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aromance-api/internal/application/staking"
	"github.com/aromance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockStakingSvc struct{ mock.Mock }

func (m *mockStakingSvc) Stake(ctx context.Context, userID string, amount uint64, tier domain.VerificationTier) (*domain.StakeRecord, error) {
	args := m.Called(ctx, userID, amount, tier)
	if rec, _ := args.Get(0).(*domain.StakeRecord); rec != nil {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStakingSvc) AccrueRewards(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockStakingSvc) Penalize(ctx context.Context, userID, violationType string) (*staking.PenaltyResult, error) {
	args := m.Called(ctx, userID, violationType)
	if res, _ := args.Get(0).(*staking.PenaltyResult); res != nil {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStakingSvc) StakePool(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

// --- Stake tests ---

func TestStake_InvalidBody(t *testing.T) {
	svc := &mockStakingSvc{}
	h := NewStakingHandler(svc)
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/stake", bytes.NewBufferString("not-json")), "id", "u1")
	rr := httptest.NewRecorder()
	h.Stake(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStake_InsufficientAmount(t *testing.T) {
	svc := &mockStakingSvc{}
	svc.On("Stake", mock.Anything, "u1", uint64(100_000), domain.TierBasicReviewer).
		Return(nil, domain.ErrInsufficientStake)
	h := NewStakingHandler(svc)
	body, _ := json.Marshal(map[string]interface{}{"amount": 100_000, "tier": "basic_reviewer"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/stake", bytes.NewReader(body)), "id", "u1")
	rr := httptest.NewRecorder()
	h.Stake(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestStake_HappyPath(t *testing.T) {
	svc := &mockStakingSvc{}
	rec := &domain.StakeRecord{Amount: 300_000, Tier: domain.TierBasicReviewer, AnnualReturnRate: 6.0}
	svc.On("Stake", mock.Anything, "u1", uint64(300_000), domain.TierBasicReviewer).Return(rec, nil)
	h := NewStakingHandler(svc)
	body, _ := json.Marshal(map[string]interface{}{"amount": 300_000, "tier": "basic_reviewer"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/stake", bytes.NewReader(body)), "id", "u1")
	rr := httptest.NewRecorder()
	h.Stake(rr, r)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp domain.StakeRecord
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, uint64(300_000), resp.Amount)
	assert.Equal(t, 6.0, resp.AnnualReturnRate)
	svc.AssertExpectations(t)
}

// --- Penalize tests ---

func TestPenalize_HappyPath(t *testing.T) {
	svc := &mockStakingSvc{}
	result := &staking.PenaltyResult{
		UserID:         "u1",
		ViolationType:  "fake_review",
		PenaltyCount:   1,
		AmountDeducted: 100_000,
		RemainingStake: 900_000,
	}
	svc.On("Penalize", mock.Anything, "u1", "fake_review").Return(result, nil)
	h := NewStakingHandler(svc)
	body, _ := json.Marshal(map[string]string{"violation_type": "fake_review"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/penalties", bytes.NewReader(body)), "id", "u1")
	rr := httptest.NewRecorder()
	h.Penalize(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp staking.PenaltyResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, uint64(100_000), resp.AmountDeducted)
	assert.False(t, resp.Revoked)
	svc.AssertExpectations(t)
}

func TestPenalize_NoActiveStake(t *testing.T) {
	svc := &mockStakingSvc{}
	svc.On("Penalize", mock.Anything, "u1", "spam_behavior").Return(nil, domain.ErrNoActiveStake)
	h := NewStakingHandler(svc)
	body, _ := json.Marshal(map[string]string{"violation_type": "spam_behavior"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/penalties", bytes.NewReader(body)), "id", "u1")
	rr := httptest.NewRecorder()
	h.Penalize(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

// --- Accrual and pool tests ---

func TestAccrueRewards_ReturnsTotal(t *testing.T) {
	svc := &mockStakingSvc{}
	svc.On("AccrueRewards", mock.Anything).Return(uint64(75_000), nil)
	h := NewStakingHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/v1/staking/accrue", nil)
	rr := httptest.NewRecorder()
	h.AccrueRewards(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]uint64
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, uint64(75_000), resp["total_rewards_idr"])
	svc.AssertExpectations(t)
}

func TestStakePool_StorageDown(t *testing.T) {
	svc := &mockStakingSvc{}
	svc.On("StakePool", mock.Anything).Return(uint64(0), domain.ErrStorageUninitialized)
	h := NewStakingHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/v1/staking/pool", nil)
	rr := httptest.NewRecorder()
	h.StakePool(rr, r)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	svc.AssertExpectations(t)
}
