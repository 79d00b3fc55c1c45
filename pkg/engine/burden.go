package engine

import (
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

// SummarizeBurden folds the slot list into per-staff load totals, in
// registry order. Staff with no assignments still get a row so the
// operator sees who is idle.
func SummarizeBurden(slots []models.RequiredSlot, staff []models.Staff, patterns []models.ShiftPattern) []models.BurdenSummary {
	patternByID := make(map[string]*models.ShiftPattern, len(patterns))
	for i := range patterns {
		patternByID[patterns[i].ID] = &patterns[i]
	}

	summaries := make([]models.BurdenSummary, len(staff))
	index := make(map[string]int, len(staff))
	for i, s := range staff {
		summaries[i] = models.BurdenSummary{StaffID: s.ID, Name: s.Name}
		index[s.ID] = i
	}

	for _, slot := range slots {
		i, ok := index[slot.AssignedStaffID]
		if !ok {
			continue
		}
		sum := &summaries[i]
		sum.TotalShifts++

		if p, ok := patternByID[slot.PatternID]; ok {
			sum.TotalHours += p.DurationHours
			if p.IsNightShift {
				sum.NightShifts++
			}
		}
		if date, err := ParseDate(slot.Date); err == nil {
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				sum.WeekendShifts++
			}
		}
	}
	return summaries
}
