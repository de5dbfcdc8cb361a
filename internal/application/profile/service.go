package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/aromance-api/internal/domain"
	googleinfra "github.com/aromance-api/internal/infrastructure/google"
	"github.com/aromance-api/internal/pkg/keys"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldDID             = "did"
	fieldDataPermissions = "data_permissions"
	fieldVerifiedClaims  = "verified_claims"
)

// Google-backed claims attached via AttachGoogleClaim.
const (
	claimTypeGoogleAccount = "google_account"
	claimIssuerGoogle      = "accounts.google.com"
	googleClaimTTL         = 365 * 24 * time.Hour
)

type Service interface {
	Create(ctx context.Context, req domain.CreateProfileRequest) (*domain.UserProfile, error)
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	CreateIdentity(ctx context.Context, userID string, fragrance domain.FragranceIdentity) (*domain.DecentralizedIdentity, error)
	GetIdentity(ctx context.Context, did string) (*domain.DecentralizedIdentity, error)
	UpdatePermissions(ctx context.Context, did string, permissions map[string]domain.PermissionLevel) error
	AttachGoogleClaim(ctx context.Context, did, idToken string) (*domain.VerifiedClaim, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Put(ctx context.Context, p *domain.UserProfile) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type identityStore interface {
	Get(ctx context.Context, did string) (*domain.DecentralizedIdentity, error)
	Put(ctx context.Context, identity *domain.DecentralizedIdentity) error
	Update(ctx context.Context, did string, updates map[string]interface{}) error
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*googleinfra.Payload, error)
}

type service struct {
	profiles   profileStore
	identities identityStore
	google     googleVerifier
	now        func() time.Time
}

type ServiceDeps struct {
	ProfileRepo  profileStore
	IdentityRepo identityStore
	Google       googleVerifier // optional, AttachGoogleClaim fails without it
	Now          func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		profiles:   deps.ProfileRepo,
		identities: deps.IdentityRepo,
		google:     deps.Google,
		now:        now,
	}
}

func (s *service) ready() error {
	if s.profiles == nil || s.identities == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

func (s *service) Create(ctx context.Context, req domain.CreateProfileRequest) (*domain.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.profiles.Get(ctx, req.UserID); err == nil {
		return nil, fmt.Errorf("profile %s already exists: %w", req.UserID, domain.ErrConflict)
	}
	now := s.now().UTC()
	p := &domain.UserProfile{
		UserID:                  req.UserID,
		WalletAddress:           req.WalletAddress,
		Email:                   req.Email,
		Phone:                   req.Phone,
		VerificationStatus:      domain.StatusUnverified,
		Preferences:             req.Preferences,
		AIConsent:               req.AIConsent,
		DataMonetizationConsent: req.DataMonetizationConsent,
		ReputationScore:         5.0,
		CreatedAt:               now,
		LastActive:              now,
	}
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, userID)
}

// CreateIdentity mints a decentralized identity for the user's fragrance
// profile and links it back to the user record. The DID is deterministic
// per user, so calling this again replaces the identity.
func (s *service) CreateIdentity(ctx context.Context, userID string, fragrance domain.FragranceIdentity) (*domain.DecentralizedIdentity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if _, err := s.profiles.Get(ctx, userID); err != nil {
		return nil, err
	}
	publicKey, privateKeyHash, err := keys.NewPair()
	if err != nil {
		return nil, err
	}
	identity := &domain.DecentralizedIdentity{
		DID:             fmt.Sprintf("did:aromance:%s", userID),
		PublicKey:       publicKey,
		PrivateKeyHash:  privateKeyHash,
		VerifiedClaims:  []domain.VerifiedClaim{},
		DataPermissions: map[string]domain.PermissionLevel{},
		Fragrance:       fragrance,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.identities.Put(ctx, identity); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, userID, map[string]interface{}{fieldDID: identity.DID}); err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *service) GetIdentity(ctx context.Context, did string) (*domain.DecentralizedIdentity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.identities.Get(ctx, did)
}

// UpdatePermissions replaces the identity's data-sharing grants wholesale.
func (s *service) UpdatePermissions(ctx context.Context, did string, permissions map[string]domain.PermissionLevel) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.identities.Get(ctx, did); err != nil {
		return err
	}
	return s.identities.Update(ctx, did, map[string]interface{}{fieldDataPermissions: permissions})
}

// AttachGoogleClaim verifies a Google ID token and records a verified
// account claim on the identity.
func (s *service) AttachGoogleClaim(ctx context.Context, did, idToken string) (*domain.VerifiedClaim, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.google == nil {
		return nil, fmt.Errorf("google verification not configured: %w", domain.ErrBadRequest)
	}
	identity, err := s.identities.Get(ctx, did)
	if err != nil {
		return nil, err
	}
	payload, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if !payload.EmailVerified {
		return nil, fmt.Errorf("google account email not verified: %w", domain.ErrUnauthorized)
	}
	now := s.now().UTC()
	claim := domain.VerifiedClaim{
		ClaimType:  claimTypeGoogleAccount,
		Issuer:     claimIssuerGoogle,
		ClaimData:  payload.Email,
		VerifiedAt: now,
		Expiry:     now.Add(googleClaimTTL),
	}
	claims := append(identity.VerifiedClaims, claim)
	if err := s.identities.Update(ctx, did, map[string]interface{}{fieldVerifiedClaims: claims}); err != nil {
		return nil, err
	}
	return &claim, nil
}
