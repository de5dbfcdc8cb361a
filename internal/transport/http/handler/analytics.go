package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aromance-api/internal/application/analytics"
	"github.com/aromance-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// AnalyticsHandler handles seller analytics subscriptions and reports.
type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req analytics.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sub, err := h.svc.Subscribe(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// GenerateReport reads the report period from RFC 3339 query parameters.
// Missing parameters default to the trailing 30 days.
func (h *AnalyticsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)

	q := r.URL.Query()
	if v := q.Get("period_start"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "period_start must be RFC 3339")
			return
		}
		start = parsed
	}
	if v := q.Get("period_end"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "period_end must be RFC 3339")
			return
		}
		end = parsed
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "period_end must not precede period_start")
		return
	}

	report, err := h.svc.GenerateReport(r.Context(), chi.URLParam(r, "id"), start, end)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (h *AnalyticsHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.ListReports(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
