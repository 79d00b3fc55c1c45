package engine

import (
	"testing"

	"github.com/shiftworks/roster-api/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeBurden(t *testing.T) {
	staff := []models.Staff{
		{ID: "a", Name: "Alice", EmploymentType: models.EmploymentFullTime},
		{ID: "b", Name: "Bob", EmploymentType: models.EmploymentPartTime},
	}
	patterns := []models.ShiftPattern{dayPattern, nightPattern}

	slots := []models.RequiredSlot{
		// 2026-02-01 is a Sunday
		{SlotID: "2026-02-01_P01_1", Date: "2026-02-01", PatternID: "P01", AssignedStaffID: "a"},
		{SlotID: "2026-02-02_P02_1", Date: "2026-02-02", PatternID: "P02", AssignedStaffID: "a"},
		{SlotID: "2026-02-03_P01_1", Date: "2026-02-03", PatternID: "P01", AssignedStaffID: "a"},
		{SlotID: "2026-02-03_P01_2", Date: "2026-02-03", PatternID: "P01"}, // open
	}

	burden := SummarizeBurden(slots, staff, patterns)

	assert.Len(t, burden, 2)

	alice := burden[0]
	assert.Equal(t, "a", alice.StaffID)
	assert.Equal(t, 3, alice.TotalShifts)
	assert.Equal(t, 1, alice.NightShifts)
	assert.Equal(t, 1, alice.WeekendShifts)
	assert.InDelta(t, 26.0, alice.TotalHours, 0.001) // 8 + 10 + 8

	// Idle staff still get a row
	bob := burden[1]
	assert.Equal(t, "b", bob.StaffID)
	assert.Equal(t, 0, bob.TotalShifts)
	assert.Zero(t, bob.TotalHours)
}

func TestSummarizeBurden_IgnoresUnknownStaff(t *testing.T) {
	staff := []models.Staff{{ID: "a", Name: "Alice", EmploymentType: models.EmploymentFullTime}}
	slots := []models.RequiredSlot{
		{SlotID: "2026-02-02_P01_1", Date: "2026-02-02", PatternID: "P01", AssignedStaffID: "ghost"},
	}

	burden := SummarizeBurden(slots, staff, []models.ShiftPattern{dayPattern})
	assert.Len(t, burden, 1)
	assert.Equal(t, 0, burden[0].TotalShifts)
}
