package engine

import (
	"fmt"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" calendar date in UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseClock parses an "HH:MM" wall-clock time into hours and minutes
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// shiftStart returns the moment a pattern begins on the given date
func shiftStart(date time.Time, p models.ShiftPattern) time.Time {
	h, m, err := ParseClock(p.StartTime)
	if err != nil {
		return date
	}
	return date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// shiftEnd returns the moment a pattern ends when started on the given
// date. Patterns that cross midnight end on the following calendar day.
func shiftEnd(date time.Time, p models.ShiftPattern) time.Time {
	h, m, err := ParseClock(p.EndTime)
	if err != nil {
		return date
	}
	end := date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	if p.CrossesMidnight {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// startMinutes returns a pattern's start time as minutes since midnight,
// used for ordering slots within one day. Unknown patterns sort last.
func startMinutes(p *models.ShiftPattern) int {
	if p == nil {
		return 24 * 60
	}
	h, m, err := ParseClock(p.StartTime)
	if err != nil {
		return 24 * 60
	}
	return h*60 + m
}

// daysInMonth returns the number of calendar days in the given month
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
