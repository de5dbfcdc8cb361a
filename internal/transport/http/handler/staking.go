package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aromance-api/internal/application/staking"
	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// StakingHandler handles verification staking endpoints.
type StakingHandler struct {
	svc staking.Service
}

func NewStakingHandler(svc staking.Service) *StakingHandler { return &StakingHandler{svc: svc} }

type stakeRequest struct {
	Amount uint64 `json:"amount" validate:"required,gt=0"`
	Tier   string `json:"tier" validate:"required"`
}

type penalizeRequest struct {
	ViolationType string `json:"violation_type" validate:"required"`
}

func (h *StakingHandler) Stake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.svc.Stake(r.Context(), chi.URLParam(r, "id"), req.Amount, domain.VerificationTier(req.Tier))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *StakingHandler) Penalize(w http.ResponseWriter, r *http.Request) {
	var req penalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.svc.Penalize(r.Context(), chi.URLParam(r, "id"), req.ViolationType)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *StakingHandler) AccrueRewards(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.AccrueRewards(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"total_rewards_idr": total})
}

func (h *StakingHandler) StakePool(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.StakePool(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"total_staked_idr": total})
}
