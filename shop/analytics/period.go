package analytics

import (
	"time"
)

// Period is a closed time range.
type Period struct {
	Start time.Time
	End   time.Time
}

// ThisMonth runs from the first instant of today's month up to today.
func ThisMonth(today time.Time) Period {
	return Period{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
		End:   today,
	}
}

// LastMonth covers the whole calendar month before today's.
func LastMonth(today time.Time) Period {
	thisMonthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return Period{
		Start: thisMonthStart.AddDate(0, -1, 0),
		End:   thisMonthStart.Add(-time.Nanosecond),
	}
}

// LastMonths runs from n months before today up to today.
func LastMonths(today time.Time, n int) Period {
	return Period{
		Start: today.AddDate(0, -n, 0),
		End:   today,
	}
}
