package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUpdatedAt          = "updated_at"
	fieldDID                = "did"
	fieldStake              = "stake"
	fieldVerificationStatus = "verification_status"
	fieldReputationScore    = "reputation_score"
	fieldDataPermissions    = "data_permissions"
	fieldVerifiedClaims     = "verified_claims"
	fieldHalalCertified     = "halal_certified"
	fieldAIAnalyzed         = "ai_analyzed"
	fieldPersonalityMatches = "personality_matches"
	fieldImageURLs          = "image_urls"
)
