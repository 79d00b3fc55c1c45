package engine

import (
	"fmt"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

// GenerateSlots expands staffing rules over a calendar month into concrete
// slots, one per required seat, in day-then-pattern order. A rule with an
// exact date fully overrides the wildcard (every-day) rule for the same
// pattern; it is never merged with it.
//
// Slot IDs are deterministic ("date_pattern_ordinal"), so regenerating from
// unchanged rules yields the same IDs. Unless reset is true, assignments
// already made on slots whose ID survives regeneration are carried over.
func GenerateSlots(requirements []models.RequiredStaffing, patterns []models.ShiftPattern, year, month int, existing []models.RequiredSlot, reset bool) []models.RequiredSlot {
	type ruleKey struct {
		date      string
		patternID string
	}

	exact := make(map[ruleKey]models.RequiredStaffing)
	wildcard := make(map[string]models.RequiredStaffing)
	for _, r := range requirements {
		if r.Date == "" {
			wildcard[r.PatternID] = r
		} else {
			exact[ruleKey{r.Date, r.PatternID}] = r
		}
	}

	assigned := make(map[string]string)
	if !reset {
		for _, s := range existing {
			if s.AssignedStaffID != "" {
				assigned[s.SlotID] = s.AssignedStaffID
			}
		}
	}

	var slots []models.RequiredSlot
	days := daysInMonth(year, month)
	for d := 1; d <= days; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		for _, p := range patterns {
			rule, ok := exact[ruleKey{date, p.ID}]
			if !ok {
				rule, ok = wildcard[p.ID]
			}
			if !ok {
				continue
			}
			for i := 1; i <= rule.MinStaff; i++ {
				id := fmt.Sprintf("%s_%s_%d", date, p.ID, i)
				slots = append(slots, models.RequiredSlot{
					SlotID:          id,
					Date:            date,
					PatternID:       p.ID,
					RequiredRoles:   rule.RequiredRoles,
					RequiredSkills:  rule.RequiredSkills,
					AssignedStaffID: assigned[id],
				})
			}
		}
	}
	return slots
}
