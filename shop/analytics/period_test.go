package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriods(t *testing.T) {
	testCases := []struct {
		name      string
		today     time.Time
		thisStart time.Time
		lastStart time.Time
		lastEnd   time.Time
	}{
		{
			name:      "mid_year",
			today:     time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
			thisStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			lastStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			lastEnd:   time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "january_wraps_to_december",
			today:     time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
			thisStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			lastStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			lastEnd:   time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "march_of_leap_year",
			today:     time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC),
			thisStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			lastStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			lastEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			this := ThisMonth(tc.today)
			assert.Equal(t, tc.thisStart, this.Start)
			assert.Equal(t, tc.today, this.End)

			last := LastMonth(tc.today)
			assert.Equal(t, tc.lastStart, last.Start)
			assert.Equal(t, tc.lastEnd, last.End)
			assert.True(t, last.End.Before(this.Start))
		})
	}
}

func TestLastMonths(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	six := LastMonths(today, 6)
	assert.Equal(t, time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC), six.Start)
	assert.Equal(t, today, six.End)

	twelve := LastMonths(today, 12)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), twelve.Start)
}
