// Package yield computes time-proportional returns. Stake-reward accrual and
// treasury-return queries share this single formula so the two subsystems
// cannot diverge in rounding or unit handling.
package yield

import "time"

// OneYear is the accrual period baseline: 365 days.
const OneYear = 365 * 24 * time.Hour

// Accrued returns principal * annualRate * (elapsed / one year), floored to
// whole currency units. annualRate is a fraction (0.07 = 7%); callers holding
// percent rates divide by 100 first. Elapsed time at or below zero accrues
// nothing.
func Accrued(principal uint64, annualRate float64, createdAt, now time.Time) uint64 {
	elapsed := now.Sub(createdAt)
	if elapsed <= 0 {
		return 0
	}
	fraction := float64(elapsed) / float64(OneYear)
	return uint64(float64(principal) * annualRate * fraction)
}
