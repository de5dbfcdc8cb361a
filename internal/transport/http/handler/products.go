package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aromance-api/internal/application/product"
	"github.com/aromance-api/internal/domain"
	"github.com/aromance-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// 10 MB request body cap for image uploads.
const maxImageSize = 10 << 20

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler { return &ProductHandler{svc: svc} }

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Add(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListBySeller(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Search reads filters from query parameters; absent parameters do not
// constrain the result.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	var filter domain.ProductSearchFilter
	q := r.URL.Query()
	if v := q.Get("fragrance_family"); v != "" {
		filter.FragranceFamily = &v
	}
	if v := q.Get("budget_min"); v != "" {
		min, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "budget_min must be a number")
			return
		}
		filter.BudgetMin = &min
	}
	if v := q.Get("budget_max"); v != "" {
		max, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "budget_max must be a number")
			return
		}
		filter.BudgetMax = &max
	}
	if v := q.Get("occasion"); v != "" {
		filter.Occasion = &v
	}
	if v := q.Get("season"); v != "" {
		filter.Season = &v
	}
	filter.VerifiedOnly = q.Get("verified_only") == "true"

	products, err := h.svc.SearchAdvanced(r.Context(), filter)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) SearchByPersonality(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.SearchByPersonality(r.Context(), chi.URLParam(r, "personality"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Halal(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.HalalProducts(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) SetHalalCertification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Certified bool `json:"certified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SetHalalCertification(r.Context(), chi.URLParam(r, "id"), req.Certified); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "halal certification updated"})
}

func (h *ProductHandler) UpdateAIAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PersonalityMatches []string `json:"personality_matches" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.UpdateAIAnalysis(r.Context(), chi.URLParam(r, "id"), req.PersonalityMatches); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ai analysis updated"})
}

// UploadImage accepts a multipart form with a "file" part.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	url, err := h.svc.UploadImage(r.Context(), chi.URLParam(r, "id"), header.Filename, file)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// Images returns presigned download links for the product's images.
func (h *ProductHandler) Images(w http.ResponseWriter, r *http.Request) {
	urls, err := h.svc.ImageURLs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}
