package auth

import (
	"fmt"

	"github.com/aromance-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// OperatorUserID identifies the platform operator in issued tokens.
const OperatorUserID = "operator"

// RoleOperator marks tokens allowed to call moderation and treasury
// endpoints.
const RoleOperator = "operator"

type Service interface {
	IssueOperatorToken(password string) (string, error)
}

type jwtSigner interface {
	Sign(userID, role string) (string, error)
}

type service struct {
	jwtProvider  jwtSigner
	passwordHash string
}

type ServiceDeps struct {
	JWTProvider          jwtSigner
	OperatorPasswordHash string // bcrypt hash from config
}

func NewService(deps ServiceDeps) Service {
	return &service{
		jwtProvider:  deps.JWTProvider,
		passwordHash: deps.OperatorPasswordHash,
	}
}

// IssueOperatorToken exchanges the operator password for a signed bearer
// token. A misconfigured or missing hash rejects every attempt.
func (s *service) IssueOperatorToken(password string) (string, error) {
	if s.passwordHash == "" || s.jwtProvider == nil {
		return "", fmt.Errorf("operator access not configured: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid operator credentials: %w", domain.ErrUnauthorized)
	}
	return s.jwtProvider.Sign(OperatorUserID, RoleOperator)
}
