package analytics

import (
	"math"
	"time"

	"storefront/shop/model"
)

// MarketingCostPercent is the flat share of gross income booked as marketing
// spend in the revenue distribution.
const MarketingCostPercent = 30

// CategoryDistribution pairs each category with its rounded share of total.
// counts[i] belongs to categories[i]. A zero total yields zero shares.
func CategoryDistribution(categories []string, counts []int64, total int64) []model.CategoryShare {
	shares := make([]model.CategoryShare, 0, len(categories))
	for i, category := range categories {
		var share int64
		if total > 0 && i < len(counts) {
			share = int64(math.Round(float64(counts[i]) / float64(total) * 100))
		}
		shares = append(shares, model.CategoryShare{category: share})
	}
	return shares
}

// RevenueSplit breaks gross income into the slices shown on the revenue pie.
func RevenueSplit(gross, discount, shipping, tax int64) model.RevenueDistribution {
	marketing := int64(math.Round(float64(gross) * MarketingCostPercent / 100))

	return model.RevenueDistribution{
		NetMargin:      gross - discount - shipping - tax - marketing,
		Discount:       discount,
		ProductionCost: shipping,
		Burnt:          tax,
		MarketingCost:  marketing,
	}
}

// Age is the number of full years between dob and today.
func Age(dob, today time.Time) int {
	dob = dob.In(today.Location())
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// AgeGroups counts birthdays into teen (<20), adult (20-39) and old (>=40).
func AgeGroups(birthdays []time.Time, today time.Time) model.UsersAgeGroup {
	var groups model.UsersAgeGroup
	for _, dob := range birthdays {
		switch age := Age(dob, today); {
		case age < 20:
			groups.Teen++
		case age < 40:
			groups.Adult++
		default:
			groups.Old++
		}
	}
	return groups
}
