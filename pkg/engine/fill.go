package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
)

// ErrNoSlots is returned when the automatic fill is invoked before any
// slots have been generated for the month.
var ErrNoSlots = errors.New("no slots exist for this month: generate slots before running the automatic fill")

// assignment is one entry in a staff member's working history during a
// fill pass
type assignment struct {
	start time.Time
	end   time.Time
}

// staffState tracks one staff member's load while the fill runs
type staffState struct {
	staff   *models.Staff
	count   int
	history []assignment    // sorted by start time
	days    map[string]bool // dates with at least one assignment
}

// Fill assigns a staff member to every open slot it can, greedily and in
// chronological order, without touching slots that are already assigned.
//
// A staff member is eligible for a slot when they match its role/skill
// requirements, keep at least their minimum rest interval to neighboring
// assignments, and stay under their consecutive-day cap. Among eligible
// staff the one with the fewest assignments so far wins; ties go to the
// staff listed first in the registry. A slot nobody fits stays open —
// that is an expected outcome, reported per slot, not an error.
//
// Weekday and pattern unavailability are deliberately not checked here;
// they surface as warnings through DetectViolations instead.
func Fill(slots []models.RequiredSlot, staff []models.Staff, patterns []models.ShiftPattern) (*models.FillResult, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}

	patternByID := make(map[string]*models.ShiftPattern, len(patterns))
	for i := range patterns {
		patternByID[patterns[i].ID] = &patterns[i]
	}

	out := make([]models.RequiredSlot, len(slots))
	copy(out, slots)

	states := make([]*staffState, len(staff))
	stateByID := make(map[string]*staffState, len(staff))
	for i := range staff {
		st := &staffState{staff: &staff[i], days: make(map[string]bool)}
		states[i] = st
		stateByID[staff[i].ID] = st
	}

	order := chronologicalOrder(out, patternByID)

	// Seed counters and histories from assignments already on the board
	for _, idx := range order {
		if id := out[idx].AssignedStaffID; id != "" {
			if st, ok := stateByID[id]; ok {
				recordAssignment(st, &out[idx], patternByID)
			}
		}
	}

	result := &models.FillResult{}
	for _, idx := range order {
		slot := &out[idx]
		if slot.AssignedStaffID != "" {
			continue
		}

		date, err := ParseDate(slot.Date)
		if err != nil {
			result.Unfilled = append(result.Unfilled, slot.SlotID)
			result.Conflicts = append(result.Conflicts, models.FillConflict{
				SlotID:  slot.SlotID,
				Reasons: []string{err.Error()},
			})
			continue
		}

		var start, end time.Time
		if p, ok := patternByID[slot.PatternID]; ok {
			start, end = shiftStart(date, *p), shiftEnd(date, *p)
		} else {
			start, end = date, date
		}

		var best *staffState
		roleSkillFails := 0
		intervalFails := 0
		consecutiveFails := 0

		for _, st := range states {
			if !matchesRoleAndSkills(slot, st.staff) {
				roleSkillFails++
				continue
			}
			if !intervalOK(st, start, end) {
				intervalFails++
				continue
			}
			if !consecutiveOK(st, date) {
				consecutiveFails++
				continue
			}
			if best == nil || st.count < best.count {
				best = st
			}
		}

		if best == nil {
			result.Unfilled = append(result.Unfilled, slot.SlotID)
			result.Conflicts = append(result.Conflicts, models.FillConflict{
				SlotID:  slot.SlotID,
				Reasons: conflictReasons(len(staff), roleSkillFails, intervalFails, consecutiveFails),
			})
			continue
		}

		slot.AssignedStaffID = best.staff.ID
		recordAssignment(best, slot, patternByID)
	}

	result.Slots = out
	return result, nil
}

// chronologicalOrder returns slot indices sorted by date, then by pattern
// start time within a date. The sort is stable so slots in the same cell
// keep their generated ordinal order.
func chronologicalOrder(slots []models.RequiredSlot, patternByID map[string]*models.ShiftPattern) []int {
	order := make([]int, len(slots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := &slots[order[a]], &slots[order[b]]
		if sa.Date != sb.Date {
			return sa.Date < sb.Date
		}
		return startMinutes(patternByID[sa.PatternID]) < startMinutes(patternByID[sb.PatternID])
	})
	return order
}

// matchesRoleAndSkills applies the slot's seat requirements. An empty role
// list accepts any employment type; every required skill must be present.
func matchesRoleAndSkills(slot *models.RequiredSlot, s *models.Staff) bool {
	if len(slot.RequiredRoles) > 0 {
		found := false
		for _, r := range slot.RequiredRoles {
			if s.EmploymentType == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, tag := range slot.RequiredSkills {
		if !s.HasSkill(tag) {
			return false
		}
	}
	return true
}

// intervalOK checks the staff member's minimum rest interval against the
// assignments on both sides of the candidate shift. Existing manual
// assignments can sit later in the month than the slot being filled, so
// the successor matters as much as the predecessor.
func intervalOK(st *staffState, start, end time.Time) bool {
	min := st.staff.Constraints.MinIntervalHours
	if min <= 0 {
		return true
	}
	idx := sort.Search(len(st.history), func(i int) bool {
		return !st.history[i].start.Before(start)
	})
	if idx > 0 && start.Sub(st.history[idx-1].end).Hours() < min {
		return false
	}
	if idx < len(st.history) && st.history[idx].start.Sub(end).Hours() < min {
		return false
	}
	return true
}

// consecutiveOK measures the run of worked days the slot's date would
// join, in both directions. Existing manual assignments can sit after the
// slot being filled, so the days ahead count toward the cap just like the
// days behind. A cap of zero means no limit.
func consecutiveOK(st *staffState, date time.Time) bool {
	max := st.staff.Constraints.MaxConsecutiveDays
	if max <= 0 {
		return true
	}
	run := 1
	for k := 1; st.days[date.AddDate(0, 0, -k).Format(dateLayout)]; k++ {
		run++
	}
	for k := 1; st.days[date.AddDate(0, 0, k).Format(dateLayout)]; k++ {
		run++
	}
	return run <= max
}

// recordAssignment updates a staff member's counters so later slots in the
// same pass see this assignment
func recordAssignment(st *staffState, slot *models.RequiredSlot, patternByID map[string]*models.ShiftPattern) {
	st.count++
	st.days[slot.Date] = true

	date, err := ParseDate(slot.Date)
	if err != nil {
		return
	}
	entry := assignment{start: date, end: date}
	if p, ok := patternByID[slot.PatternID]; ok {
		entry.start, entry.end = shiftStart(date, *p), shiftEnd(date, *p)
	}
	idx := sort.Search(len(st.history), func(i int) bool {
		return st.history[i].start.After(entry.start)
	})
	st.history = append(st.history, assignment{})
	copy(st.history[idx+1:], st.history[idx:])
	st.history[idx] = entry
}

// conflictReasons summarizes why no candidate fit a slot
func conflictReasons(total, roleSkill, interval, consecutive int) []string {
	var reasons []string
	if roleSkill > 0 {
		reasons = append(reasons, fmt.Sprintf("%d staff did not meet the role or skill requirements", roleSkill))
	}
	if interval > 0 {
		reasons = append(reasons, fmt.Sprintf("%d staff were within their minimum rest interval", interval))
	}
	if consecutive > 0 {
		reasons = append(reasons, fmt.Sprintf("%d staff were at their consecutive-day limit", consecutive))
	}
	if total == 0 {
		reasons = append(reasons, "no staff registered")
	}
	return reasons
}
