package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aromance-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockProfileSvc struct{ mock.Mock }

func (m *mockProfileSvc) Create(ctx context.Context, req domain.CreateProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, req)
	if p, _ := args.Get(0).(*domain.UserProfile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if p, _ := args.Get(0).(*domain.UserProfile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) CreateIdentity(ctx context.Context, userID string, fragrance domain.FragranceIdentity) (*domain.DecentralizedIdentity, error) {
	args := m.Called(ctx, userID, fragrance)
	if id, _ := args.Get(0).(*domain.DecentralizedIdentity); id != nil {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) GetIdentity(ctx context.Context, did string) (*domain.DecentralizedIdentity, error) {
	args := m.Called(ctx, did)
	if id, _ := args.Get(0).(*domain.DecentralizedIdentity); id != nil {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileSvc) UpdatePermissions(ctx context.Context, did string, permissions map[string]domain.PermissionLevel) error {
	return m.Called(ctx, did, permissions).Error(0)
}

func (m *mockProfileSvc) AttachGoogleClaim(ctx context.Context, did, idToken string) (*domain.VerifiedClaim, error) {
	args := m.Called(ctx, did, idToken)
	if c, _ := args.Get(0).(*domain.VerifiedClaim); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

// withChiParam injects a chi URL param into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// --- Create tests ---

func TestCreateProfile_InvalidBody(t *testing.T) {
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateProfile_ValidationFailure(t *testing.T) {
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(domain.CreateProfileRequest{}) // missing user_id
	r := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateProfile_Conflict(t *testing.T) {
	svc := &mockProfileSvc{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(domain.CreateProfileRequest{UserID: "u1"})
	r := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	assert.Equal(t, http.StatusConflict, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateProfile_HappyPath(t *testing.T) {
	svc := &mockProfileSvc{}
	p := &domain.UserProfile{UserID: "u1", VerificationStatus: domain.StatusUnverified, ReputationScore: 5.0}
	svc.On("Create", mock.Anything, mock.Anything).Return(p, nil)
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(domain.CreateProfileRequest{UserID: "u1", AIConsent: true})
	r := httptest.NewRequest(http.MethodPost, "/v1/profiles", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, r)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp domain.UserProfile
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, 5.0, resp.ReputationScore)
	svc.AssertExpectations(t)
}

// --- Get tests ---

func TestGetProfile_NotFound(t *testing.T) {
	svc := &mockProfileSvc{}
	svc.On("Get", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)
	h := NewProfileHandler(svc)
	r := withChiParam(httptest.NewRequest(http.MethodGet, "/v1/profiles/missing", nil), "id", "missing")
	rr := httptest.NewRecorder()
	h.Get(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

// --- Identity tests ---

func TestCreateIdentity_HappyPath(t *testing.T) {
	svc := &mockProfileSvc{}
	identity := &domain.DecentralizedIdentity{DID: "did:aromance:u1"}
	svc.On("CreateIdentity", mock.Anything, "u1", mock.Anything).Return(identity, nil)
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(domain.FragranceIdentity{PersonalityType: "romantic"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/profiles/u1/identities", bytes.NewReader(body)), "id", "u1")
	rr := httptest.NewRecorder()
	h.CreateIdentity(rr, r)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp domain.DecentralizedIdentity
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "did:aromance:u1", resp.DID)
	svc.AssertExpectations(t)
}

func TestGetIdentity_NotFound(t *testing.T) {
	svc := &mockProfileSvc{}
	svc.On("GetIdentity", mock.Anything, "did:aromance:ghost").Return(nil, domain.ErrIdentityNotFound)
	h := NewProfileHandler(svc)
	r := withChiParam(httptest.NewRequest(http.MethodGet, "/v1/identities/did:aromance:ghost", nil), "did", "did:aromance:ghost")
	rr := httptest.NewRecorder()
	h.GetIdentity(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

func TestUpdatePermissions_HappyPath(t *testing.T) {
	svc := &mockProfileSvc{}
	svc.On("UpdatePermissions", mock.Anything, "did:aromance:u1",
		map[string]domain.PermissionLevel{"recommendations": domain.PermissionReadOnly}).Return(nil)
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(map[string]domain.PermissionLevel{"recommendations": domain.PermissionReadOnly})
	r := withChiParam(httptest.NewRequest(http.MethodPut, "/v1/identities/did:aromance:u1/permissions", bytes.NewReader(body)), "did", "did:aromance:u1")
	rr := httptest.NewRecorder()
	h.UpdatePermissions(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestAttachGoogleClaim_MissingToken(t *testing.T) {
	svc := &mockProfileSvc{}
	h := NewProfileHandler(svc)
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/identities/did:aromance:u1/claims/google", bytes.NewBufferString("{}")), "did", "did:aromance:u1")
	rr := httptest.NewRecorder()
	h.AttachGoogleClaim(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAttachGoogleClaim_Unverified(t *testing.T) {
	svc := &mockProfileSvc{}
	svc.On("AttachGoogleClaim", mock.Anything, "did:aromance:u1", "tok").Return(nil, domain.ErrUnauthorized)
	h := NewProfileHandler(svc)
	body, _ := json.Marshal(map[string]string{"id_token": "tok"})
	r := withChiParam(httptest.NewRequest(http.MethodPost, "/v1/identities/did:aromance:u1/claims/google", bytes.NewReader(body)), "did", "did:aromance:u1")
	rr := httptest.NewRecorder()
	h.AttachGoogleClaim(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertExpectations(t)
}
