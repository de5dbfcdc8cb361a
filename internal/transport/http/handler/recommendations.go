package handler

import (
	"net/http"

	"github.com/aromance-api/internal/application/recommendation"
	"github.com/go-chi/chi/v5"
)

// RecommendationHandler handles personalized recommendation endpoints.
type RecommendationHandler struct {
	svc recommendation.Service
}

func NewRecommendationHandler(svc recommendation.Service) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Generate recomputes and stores the user's recommendation list.
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Generate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recs)
}

func (h *RecommendationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.ListForUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
