package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aromance-api/internal/application/advertising"
	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/validate"
)

// AdvertisementHandler handles paid placement endpoints.
type AdvertisementHandler struct {
	svc advertising.Service
}

func NewAdvertisementHandler(svc advertising.Service) *AdvertisementHandler {
	return &AdvertisementHandler{svc: svc}
}

func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ad, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ad)
}

// ActiveByPlacement lists running advertisements for the placement in the
// "placement" query parameter.
func (h *AdvertisementHandler) ActiveByPlacement(w http.ResponseWriter, r *http.Request) {
	placement := r.URL.Query().Get("placement")
	if placement == "" {
		writeError(w, http.StatusBadRequest, "placement query parameter is required")
		return
	}
	ads, err := h.svc.ActiveByPlacement(r.Context(), domain.AdPlacement(placement))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ads)
}
