package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	created time.Time
	total   int64
}

func (r record) GetCreatedAt() time.Time { return r.created }

func monthsAgo(today time.Time, n int, total int64) record {
	return record{created: time.Date(today.Year(), today.Month()-time.Month(n), 10, 12, 0, 0, 0, today.Location()), total: total}
}

func TestMonthlyCounts(t *testing.T) {
	today := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		length   int
		records  []record
		expected []int64
	}{
		{
			name:     "empty_records",
			length:   6,
			records:  nil,
			expected: []int64{0, 0, 0, 0, 0, 0},
		},
		{
			name:     "zero_length",
			length:   0,
			records:  []record{monthsAgo(today, 0, 0)},
			expected: []int64{},
		},
		{
			name:   "crosses_year_boundary",
			length: 6,
			records: []record{
				monthsAgo(today, 0, 0),
				monthsAgo(today, 1, 0), // December 2023
				monthsAgo(today, 2, 0), // November 2023
				monthsAgo(today, 2, 0),
				monthsAgo(today, 5, 0), // August 2023
			},
			expected: []int64{1, 0, 0, 2, 1, 1},
		},
		{
			name:   "out_of_window_dropped",
			length: 6,
			records: []record{
				monthsAgo(today, 6, 0),
				monthsAgo(today, 11, 0),
				monthsAgo(today, 3, 0),
			},
			expected: []int64{0, 0, 1, 0, 0, 0},
		},
		{
			name:   "year_is_ignored",
			length: 12,
			records: []record{
				monthsAgo(today, 1, 0),
				monthsAgo(today, 13, 0), // December 2022 aliases onto December 2023
				monthsAgo(today, 12, 0), // January 2023 aliases onto this month
			},
			expected: []int64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthlyCounts(tc.length, today, tc.records))
		})
	}
}

func TestMonthlyCountsCurrentMonth(t *testing.T) {
	today := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	records := make([]record, 12)
	for i := range records {
		records[i] = record{created: today.AddDate(0, 0, -i%15)}
	}

	assert.Equal(t, []int64{0, 0, 0, 0, 0, 12}, MonthlyCounts(6, today, records))
}

func TestMonthlyCountsSumMatchesInWindowRecords(t *testing.T) {
	today := time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)

	var records []record
	for n := 0; n < 12; n++ {
		for i := 0; i <= n; i++ {
			records = append(records, monthsAgo(today, n, 0))
		}
	}

	for _, length := range []int{1, 6, 12} {
		series := MonthlyCounts(length, today, records)
		assert.Len(t, series, length)

		var sum, inWindow int64
		for _, v := range series {
			sum += v
		}
		for _, r := range records {
			if MonthOffset(today, r.created) < length {
				inWindow++
			}
		}
		assert.Equal(t, inWindow, sum, "length %d", length)
	}
}

func TestMonthlySums(t *testing.T) {
	today := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)

	records := []record{
		monthsAgo(today, 0, 100),
		monthsAgo(today, 0, 250),
		monthsAgo(today, 1, 40),
		monthsAgo(today, 4, 999),
		monthsAgo(today, 12, 5),
	}

	series := MonthlySums(4, today, records, func(r record) int64 { return r.total })
	assert.Equal(t, []int64{0, 0, 40, 355}, series)
}

func TestMonthOffset(t *testing.T) {
	assert.Equal(t, 1, MonthOffset(
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.November, 12, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0),
	))
	assert.Equal(t, 3, MonthOffset(
		time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.August, 12, 0, 0, 0, 0, time.UTC),
	))
	assert.Equal(t, 0, MonthOffset(
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
	))
}
