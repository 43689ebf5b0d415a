package analytics

import (
	"math"
)

// PercentageChange is the signed change from previous to current in whole
// percent. Growth from a zero baseline is reported as current*100.
func PercentageChange(current, previous int64) int64 {
	if previous == 0 {
		return current * 100
	}

	percent := float64(current-previous) / float64(previous) * 100
	return int64(math.Round(percent))
}
