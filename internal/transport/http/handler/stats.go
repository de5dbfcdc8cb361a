package handler

import (
	"net/http"

	"github.com/aromance-api/internal/application/stats"
)

// StatsHandler exposes platform-wide aggregate counters.
type StatsHandler struct {
	svc stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Platform(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.Platform(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
