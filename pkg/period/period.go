package period

import "time"

// Period is an analytics lookback window.
type Period string

const (
	Today Period = "today"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// Parse returns the period for s, or fallback when s names no known period.
func Parse(s string, fallback Period) Period {
	switch Period(s) {
	case Today, Week, Month, Year:
		return Period(s)
	default:
		return fallback
	}
}

// WindowStart returns the inclusive lower bound of the period window
// relative to now. Month and year use calendar subtraction, not fixed
// 30/365-day windows; today is the start of the current day in now's
// location.
func WindowStart(p Period, now time.Time) time.Time {
	switch p {
	case Today:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Month:
		return now.AddDate(0, -1, 0)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}
