// Package analytics turns already fetched records into the numbers shown on
// the admin dashboard. Nothing in here talks to the store.
package analytics

import (
	"time"
)

// Dated is any record with a creation time.
type Dated interface {
	GetCreatedAt() time.Time
}

// MonthlyCounts buckets records by creation month into a series of length
// buckets. Index length-1 is the month of today, index 0 is length-1 months
// earlier.
func MonthlyCounts[T Dated](length int, today time.Time, records []T) []int64 {
	return monthlySeries(length, today, records, func(T) int64 { return 1 })
}

// MonthlySums is MonthlyCounts accumulating field instead of counting.
func MonthlySums[T Dated](length int, today time.Time, records []T, field func(T) int64) []int64 {
	return monthlySeries(length, today, records, field)
}

func monthlySeries[T Dated](length int, today time.Time, records []T, value func(T) int64) []int64 {
	if length <= 0 {
		return []int64{}
	}

	series := make([]int64, length)
	for _, record := range records {
		offset := MonthOffset(today, record.GetCreatedAt())
		if offset >= length {
			continue
		}
		series[length-offset-1] += value(record)
	}

	return series
}

// MonthOffset is how many calendar months created lies before today, using
// the month of year only. The year is ignored, so a record from thirteen
// months ago lands in the same bucket as one from last month.
func MonthOffset(today, created time.Time) int {
	created = created.In(today.Location())
	return (int(today.Month()) - int(created.Month()) + 12) % 12
}
