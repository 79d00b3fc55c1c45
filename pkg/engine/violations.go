package engine

import (
	"fmt"

	"github.com/shiftworks/roster-api/pkg/models"
)

// DetectViolations scans assigned slots for soft-constraint breaches and
// returns advisory messages for display. Nothing here blocks or undoes an
// assignment; the operator decides what to do about each warning.
//
// Co-worker avoidance is checked one way only: a staff member's own
// avoid list against the other staff working the same date.
func DetectViolations(slots []models.RequiredSlot, staff []models.Staff, patterns []models.ShiftPattern) []models.Violation {
	staffByID := make(map[string]*models.Staff, len(staff))
	for i := range staff {
		staffByID[staff[i].ID] = &staff[i]
	}
	patternByID := make(map[string]*models.ShiftPattern, len(patterns))
	for i := range patterns {
		patternByID[patterns[i].ID] = &patterns[i]
	}

	// Who works which date, for the avoidance check
	byDate := make(map[string][]models.RequiredSlot)
	for _, s := range slots {
		if s.AssignedStaffID != "" {
			byDate[s.Date] = append(byDate[s.Date], s)
		}
	}

	var violations []models.Violation
	for _, slot := range slots {
		member, ok := staffByID[slot.AssignedStaffID]
		if !ok {
			continue
		}

		if date, err := ParseDate(slot.Date); err == nil {
			weekday := int(date.Weekday())
			for _, wd := range member.Constraints.UnavailableWeekdays {
				if wd == weekday {
					violations = append(violations, models.Violation{
						SlotID:  slot.SlotID,
						Date:    slot.Date,
						StaffID: member.ID,
						Message: fmt.Sprintf("%s is unavailable on %ss but is assigned on %s", member.Name, date.Weekday(), slot.Date),
					})
					break
				}
			}
		}

		for _, pid := range member.Constraints.UnavailablePatterns {
			if pid == slot.PatternID {
				name := slot.PatternID
				if p, ok := patternByID[pid]; ok {
					name = p.Name
				}
				violations = append(violations, models.Violation{
					SlotID:  slot.SlotID,
					Date:    slot.Date,
					StaffID: member.ID,
					Message: fmt.Sprintf("%s cannot work the %s shift but is assigned it on %s", member.Name, name, slot.Date),
				})
				break
			}
		}

		for _, other := range byDate[slot.Date] {
			if other.SlotID == slot.SlotID || other.AssignedStaffID == member.ID {
				continue
			}
			for _, avoid := range member.Constraints.AvoidStaffIDs {
				if avoid == other.AssignedStaffID {
					otherName := other.AssignedStaffID
					if o, ok := staffByID[other.AssignedStaffID]; ok {
						otherName = o.Name
					}
					violations = append(violations, models.Violation{
						SlotID:  slot.SlotID,
						Date:    slot.Date,
						StaffID: member.ID,
						Message: fmt.Sprintf("%s should not share a day with %s but both work on %s", member.Name, otherName, slot.Date),
					})
				}
			}
		}
	}
	return violations
}
