package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aromance-api/internal/application/profile"
	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// ProfileHandler handles user profile and identity endpoints.
type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler { return &ProfileHandler{svc: svc} }

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	var fragrance domain.FragranceIdentity
	if err := json.NewDecoder(r.Body).Decode(&fragrance); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	identity, err := h.svc.CreateIdentity(r.Context(), chi.URLParam(r, "id"), fragrance)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, identity)
}

func (h *ProfileHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	identity, err := h.svc.GetIdentity(r.Context(), chi.URLParam(r, "did"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

func (h *ProfileHandler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	var permissions map[string]domain.PermissionLevel
	if err := json.NewDecoder(r.Body).Decode(&permissions); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.UpdatePermissions(r.Context(), chi.URLParam(r, "did"), permissions); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "data permissions updated"})
}

func (h *ProfileHandler) AttachGoogleClaim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	claim, err := h.svc.AttachGoogleClaim(r.Context(), chi.URLParam(r, "did"), req.IDToken)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, claim)
}
