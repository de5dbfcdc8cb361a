package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aromance-api/internal/application/auth"
	"github.com/aromance-api/internal/pkg/validate"
)

// AuthHandler issues operator bearer tokens.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) OperatorToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, TokenEnvelope{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, TokenEnvelope{Error: err.Error()})
		return
	}
	token, err := h.svc.IssueOperatorToken(req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, TokenEnvelope{Error: "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Bearer: token})
}
