package recommendation

import (
	"strings"

	"github.com/aromance-api/internal/domain"
)

// personalityAlignment averages two signals: how many of the user's
// preferred families the product's family name mentions, and whether the
// product was tagged for the user's personality type. With nothing to
// compare it stays neutral.
func personalityAlignment(fid domain.FragranceIdentity, product *domain.Product) float64 {
	var score float64
	var factors int

	family := strings.ToLower(product.FragranceFamily)
	for _, preferred := range fid.PreferredFamilies {
		if strings.Contains(family, strings.ToLower(preferred)) {
			score++
		}
		factors++
	}

	for _, match := range product.PersonalityMatches {
		if match == fid.PersonalityType {
			score++
			factors++
			break
		}
	}

	if factors == 0 {
		return 0.5
	}
	return score / float64(factors)
}

// budgetCompatibility grades the price against the user's bracket. Each
// bracket has a sweet spot worth 1.0, adjacent windows worth 0.7 and 0.3
// for everything else.
func budgetCompatibility(budget domain.BudgetRange, price uint64) float64 {
	switch budget {
	case domain.BudgetLow:
		switch {
		case price < 50_000:
			return 1.0
		case price < 100_000:
			return 0.7
		default:
			return 0.3
		}
	case domain.BudgetModerate:
		switch {
		case price >= 50_000 && price < 200_000:
			return 1.0
		case price < 50_000 || (price >= 200_000 && price < 300_000):
			return 0.7
		default:
			return 0.3
		}
	case domain.BudgetPremium:
		switch {
		case price >= 200_000 && price < 500_000:
			return 1.0
		case price >= 100_000 && price < 200_000:
			return 0.7
		case price >= 500_000 && price < 700_000:
			return 0.7
		default:
			return 0.3
		}
	case domain.BudgetLuxury:
		switch {
		case price >= 500_000:
			return 1.0
		case price >= 300_000:
			return 0.7
		default:
			return 0.3
		}
	default:
		return 0.3
	}
}

// occasionMatch is the fraction of the user's occasions that overlap a
// product occasion. Substring comparison runs both directions so "office"
// pairs with "office party". Neutral when either side is empty.
func occasionMatch(userOccasions, productOccasions []string) float64 {
	if len(userOccasions) == 0 || len(productOccasions) == 0 {
		return 0.5
	}
	var matched int
	for _, uo := range userOccasions {
		lo := strings.ToLower(uo)
		for _, po := range productOccasions {
			lp := strings.ToLower(po)
			if strings.Contains(lp, lo) || strings.Contains(lo, lp) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(userOccasions))
}

// seasonalRelevance is like occasionMatch but the substring check only
// runs one way: the product season must mention the user season.
func seasonalRelevance(userSeasons, productSeasons []string) float64 {
	if len(userSeasons) == 0 || len(productSeasons) == 0 {
		return 0.5
	}
	var matched int
	for _, us := range userSeasons {
		lu := strings.ToLower(us)
		for _, ps := range productSeasons {
			if strings.Contains(strings.ToLower(ps), lu) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(userSeasons))
}

// lifestyleFit scores the product against a small rule table per lifestyle.
// Unknown lifestyles score a flat 0.7.
func lifestyleFit(lifestyle string, product *domain.Product) float64 {
	switch strings.ToLower(lifestyle) {
	case "professional":
		if occasionContains(product.Occasion, "office", "formal") {
			return 0.9
		}
		if product.VersatilityScore > 0.7 {
			return 0.8
		}
		return 0.5
	case "casual":
		if occasionContains(product.Occasion, "daily", "casual") {
			return 0.9
		}
		return 0.6
	case "evening":
		if occasionContains(product.Occasion, "night", "date") {
			return 0.9
		}
		return 0.5
	default:
		return 0.7
	}
}

func occasionContains(occasions []string, substrings ...string) bool {
	for _, o := range occasions {
		for _, sub := range substrings {
			if strings.Contains(o, sub) {
				return true
			}
		}
	}
	return false
}
