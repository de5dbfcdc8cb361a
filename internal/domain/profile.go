package domain

import "time"

// VerificationStatus is the trust bucket a user currently occupies.
// Reviewer and seller tiers of the same level collapse onto the same bucket.
type VerificationStatus string

const (
	StatusUnverified VerificationStatus = "unverified"
	StatusBasic      VerificationStatus = "basic"
	StatusPremium    VerificationStatus = "premium"
	StatusElite      VerificationStatus = "elite"
)

// StakeRecord holds a user's verification stake. One per profile, replaced
// wholesale on re-stake and zeroed (never deleted) on revocation.
type StakeRecord struct {
	Amount           uint64           `json:"amount" dynamodbav:"amount"`
	Tier             VerificationTier `json:"tier" dynamodbav:"tier"`
	LockedUntil      time.Time        `json:"locked_until" dynamodbav:"locked_until"`
	PenaltyCount     int              `json:"penalty_count" dynamodbav:"penalty_count"`
	RewardEarned     uint64           `json:"reward_earned" dynamodbav:"reward_earned"`
	AnnualReturnRate float64          `json:"annual_return_rate" dynamodbav:"annual_return_rate"`
}

type UserProfile struct {
	UserID                  string             `json:"id" dynamodbav:"user_id"`
	WalletAddress           *string            `json:"wallet_address,omitempty" dynamodbav:"wallet_address"`
	Email                   *string            `json:"email,omitempty" dynamodbav:"email"`
	Phone                   *string            `json:"phone,omitempty" dynamodbav:"phone"`
	DID                     *string            `json:"did,omitempty" dynamodbav:"did"`
	VerificationStatus      VerificationStatus `json:"verification_status" dynamodbav:"verification_status"`
	Stake                   *StakeRecord       `json:"stake,omitempty" dynamodbav:"stake"`
	Preferences             map[string]string  `json:"preferences,omitempty" dynamodbav:"preferences"`
	ConsultationCompleted   bool               `json:"consultation_completed" dynamodbav:"consultation_completed"`
	AIConsent               bool               `json:"ai_consent" dynamodbav:"ai_consent"`
	DataMonetizationConsent bool               `json:"data_monetization_consent" dynamodbav:"data_monetization_consent"`
	ReputationScore         float64            `json:"reputation_score" dynamodbav:"reputation_score"`
	TotalTransactions       uint32             `json:"total_transactions" dynamodbav:"total_transactions"`
	CreatedAt               time.Time          `json:"created" dynamodbav:"created_at"`
	LastActive              time.Time          `json:"last_active" dynamodbav:"last_active"`
}

type CreateProfileRequest struct {
	UserID                  string            `json:"user_id" validate:"required"`
	WalletAddress           *string           `json:"wallet_address"`
	Email                   *string           `json:"email" validate:"omitempty,email"`
	Phone                   *string           `json:"phone"`
	Preferences             map[string]string `json:"preferences"`
	AIConsent               bool              `json:"ai_consent"`
	DataMonetizationConsent bool              `json:"data_monetization_consent"`
}
