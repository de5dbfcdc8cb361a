package domain

import "time"

// PermissionLevel controls how much of the identity's data a consumer may read.
type PermissionLevel string

const (
	PermissionNone     PermissionLevel = "none"
	PermissionReadOnly PermissionLevel = "read_only"
	PermissionLimited  PermissionLevel = "limited"
	PermissionFull     PermissionLevel = "full"
)

// BudgetRange buckets a user's spending comfort zone (IDR).
type BudgetRange string

const (
	BudgetLow      BudgetRange = "budget"   // <50k
	BudgetModerate BudgetRange = "moderate" // 50k-200k
	BudgetPremium  BudgetRange = "premium"  // 200k-500k
	BudgetLuxury   BudgetRange = "luxury"   // >500k
)

// VerifiedClaim is an attestation attached to a decentralized identity by an
// external issuer (e.g. a verified Google account).
type VerifiedClaim struct {
	ClaimType  string    `json:"claim_type" dynamodbav:"claim_type"`
	Issuer     string    `json:"issuer" dynamodbav:"issuer"`
	ClaimData  string    `json:"claim_data" dynamodbav:"claim_data"`
	VerifiedAt time.Time `json:"verified_at" dynamodbav:"verified_at"`
	Expiry     time.Time `json:"expiry" dynamodbav:"expiry"`
}

// ScentEvolution records a shift in taste over time.
type ScentEvolution struct {
	Date             time.Time `json:"date" dynamodbav:"date"`
	PreferenceChange string    `json:"preference_change" dynamodbav:"preference_change"`
	TriggerEvent     string    `json:"trigger_event" dynamodbav:"trigger_event"`
	ConfidenceScore  float64   `json:"confidence_score" dynamodbav:"confidence_score"`
}

// FragranceIdentity is a user's taste profile. Immutable except by explicit
// identity update; read-only input to the matching engine.
type FragranceIdentity struct {
	PersonalityType     string           `json:"personality_type" dynamodbav:"personality_type"`
	Lifestyle           string           `json:"lifestyle" dynamodbav:"lifestyle"`
	PreferredFamilies   []string         `json:"preferred_families" dynamodbav:"preferred_families"`
	OccasionPreferences []string         `json:"occasion_preferences" dynamodbav:"occasion_preferences"`
	SeasonPreferences   []string         `json:"season_preferences" dynamodbav:"season_preferences"`
	SensitivityLevel    string           `json:"sensitivity_level" dynamodbav:"sensitivity_level"`
	BudgetRange         BudgetRange      `json:"budget_range" dynamodbav:"budget_range"`
	ScentJourney        []ScentEvolution `json:"scent_journey,omitempty" dynamodbav:"scent_journey"`
}

type DecentralizedIdentity struct {
	DID             string                     `json:"did" dynamodbav:"did"`
	PublicKey       string                     `json:"public_key" dynamodbav:"public_key"`
	PrivateKeyHash  string                     `json:"-" dynamodbav:"private_key_hash"`
	VerifiedClaims  []VerifiedClaim            `json:"verified_claims" dynamodbav:"verified_claims"`
	DataPermissions map[string]PermissionLevel `json:"data_permissions" dynamodbav:"data_permissions"`
	Fragrance       FragranceIdentity          `json:"fragrance_identity" dynamodbav:"fragrance_identity"`
	CreatedAt       time.Time                  `json:"created" dynamodbav:"created_at"`
}
