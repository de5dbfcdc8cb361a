// Package commission resolves marketplace fees from a transaction tier and
// amount. The lookup is a pure bracket table with no failure modes.
package commission

import "github.com/aromance-api/internal/domain"

// rates maps each transaction tier to its commission rate.
var rates = map[domain.TransactionTier]float64{
	domain.TxTierBudget:   0.015,
	domain.TxTierStandard: 0.02,
	domain.TxTierPremium:  0.025,
	domain.TxTierLuxury:   0.03,
}

// Rate returns the commission rate for the tier. Unknown tiers fall back to
// the standard rate.
func Rate(tier domain.TransactionTier) float64 {
	if r, ok := rates[tier]; ok {
		return r
	}
	return rates[domain.TxTierStandard]
}

// Resolve computes floor(amount * rate) for the given tier. The caller
// supplies the tier; use TierForAmount when the client did not pick one.
func Resolve(tier domain.TransactionTier, amount uint64) uint64 {
	return uint64(float64(amount) * Rate(tier))
}

// TierForAmount buckets an amount into its transaction tier:
// <100k budget, 100k-500k standard, 500k-1M premium, >1M luxury.
func TierForAmount(amount uint64) domain.TransactionTier {
	switch {
	case amount < 100_000:
		return domain.TxTierBudget
	case amount < 500_000:
		return domain.TxTierStandard
	case amount <= 1_000_000:
		return domain.TxTierPremium
	default:
		return domain.TxTierLuxury
	}
}
