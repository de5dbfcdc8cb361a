package domain

// VerificationTier names a verification bracket (role x level). Each tier
// carries a fixed minimum stake and reward rate, resolved through TierCatalog.
type VerificationTier string

const (
	TierBasicReviewer   VerificationTier = "basic_reviewer"
	TierPremiumReviewer VerificationTier = "premium_reviewer"
	TierEliteReviewer   VerificationTier = "elite_reviewer"
	TierBasicSeller     VerificationTier = "basic_seller"
	TierPremiumSeller   VerificationTier = "premium_seller"
	TierEliteSeller     VerificationTier = "elite_seller"
)

// TierSpec is the resolved catalog entry for a tier.
type TierSpec struct {
	RequiredAmount   uint64
	AnnualReturnRate float64 // percent, e.g. 6.0
	Status           VerificationStatus
}

// TierCatalog maps each tier to its minimum stake (IDR), annual return rate
// and the verification bucket it grants. Data-driven so adding a tier is a
// table edit, not new branching.
var TierCatalog = map[VerificationTier]TierSpec{
	TierBasicReviewer:   {RequiredAmount: 300_000, AnnualReturnRate: 6.0, Status: StatusBasic},
	TierPremiumReviewer: {RequiredAmount: 950_000, AnnualReturnRate: 7.5, Status: StatusPremium},
	TierEliteReviewer:   {RequiredAmount: 1_900_000, AnnualReturnRate: 9.0, Status: StatusElite},
	TierBasicSeller:     {RequiredAmount: 500_000, AnnualReturnRate: 6.0, Status: StatusBasic},
	TierPremiumSeller:   {RequiredAmount: 1_500_000, AnnualReturnRate: 7.5, Status: StatusPremium},
	TierEliteSeller:     {RequiredAmount: 3_000_000, AnnualReturnRate: 9.0, Status: StatusElite},
}

// Spec resolves the tier against the catalog.
func (t VerificationTier) Spec() (TierSpec, bool) {
	spec, ok := TierCatalog[t]
	return spec, ok
}

// StakePoolCounter names the platform-wide counter holding the aggregate of
// all staked funds. Once pooled, amounts are not attributable per user.
const StakePoolCounter = "stake_pool"

// Violation types recognised by the penalty schedule. Unknown violations
// still incur the default penalty.
const (
	ViolationFakeReview        = "fake_review"
	ViolationMisleadingProduct = "misleading_product"
	ViolationSpamBehavior      = "spam_behavior"
)

// PenaltyDivisor returns the divisor applied to the current stake for the
// given violation (stake/10 for fake reviews, stake/50 for anything unknown).
func PenaltyDivisor(violationType string) uint64 {
	switch violationType {
	case ViolationFakeReview:
		return 10
	case ViolationMisleadingProduct:
		return 5
	case ViolationSpamBehavior:
		return 20
	default:
		return 50
	}
}
