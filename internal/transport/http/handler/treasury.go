package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aromance-api/internal/application/treasury"
	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/validate"
)

// TreasuryHandler handles platform treasury endpoints. All of them are
// operator-only.
type TreasuryHandler struct {
	svc treasury.Service
}

func NewTreasuryHandler(svc treasury.Service) *TreasuryHandler { return &TreasuryHandler{svc: svc} }

func (h *TreasuryHandler) Invest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount         uint64 `json:"amount_idr" validate:"required,gt=0"`
		InvestmentType string `json:"investment_type" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	inv, err := h.svc.Invest(r.Context(), req.Amount, domain.InvestmentType(req.InvestmentType))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *TreasuryHandler) List(w http.ResponseWriter, r *http.Request) {
	investments, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, investments)
}

func (h *TreasuryHandler) TotalReturns(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalReturns(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"total_returns_idr": total})
}

func (h *TreasuryHandler) AllocateMonthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AllocateMonthly(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
