package engine

import (
	"testing"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

func TestShiftEnd_CrossesMidnight(t *testing.T) {
	date, err := ParseDate("2026-02-02")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	p := models.ShiftPattern{ID: "N", StartTime: "22:00", EndTime: "09:30", CrossesMidnight: true}
	end := shiftEnd(date, p)

	want := time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("Expected end %v, got %v", want, end)
	}
	if !shiftStart(date, p).Before(end) {
		t.Error("Expected start before end")
	}
}

func TestParseClock_RejectsMalformed(t *testing.T) {
	for _, bad := range []string{"25:00", "9am", "09-00", ""} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Errorf("Expected %q to be rejected", bad)
		}
	}
}
