package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// scheduleDateLayout is how the league schedule feed stamps each game date.
const scheduleDateLayout = "01/02/2006 15:04:05"

// seasonStartMonth is the first month that belongs to a new season.
const seasonStartMonth = time.October

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeScheduleDate converts "MM/DD/YYYY hh:mm:ss" into YYYY-MM-DD.
// Values in any other shape are returned unchanged.
func NormalizeScheduleDate(value string) string {
	if t, err := time.Parse(scheduleDateLayout, value); err == nil {
		return FormatDate(t)
	}
	return value
}

// SeasonFor returns the season label ("2024-25") that contains t.
// October onward belongs to the season starting that year.
func SeasonFor(t time.Time) string {
	start := t.Year()
	if t.Month() < seasonStartMonth {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}
