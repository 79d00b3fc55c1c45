package engine

import (
	"testing"

	"github.com/shiftworks/roster-api/pkg/models"
)

func TestGenerateSlots_WildcardRule(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00", DurationHours: 8},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P01", MinStaff: 3},
	}

	slots := GenerateSlots(requirements, patterns, 2026, 2, nil, false)

	// February 2026 has 28 days, 3 seats each
	if len(slots) != 84 {
		t.Fatalf("Expected 84 slots, got %d", len(slots))
	}
	if slots[0].SlotID != "2026-02-01_P01_1" {
		t.Errorf("Expected first slot 2026-02-01_P01_1, got %s", slots[0].SlotID)
	}
	if slots[2].SlotID != "2026-02-01_P01_3" {
		t.Errorf("Expected third slot 2026-02-01_P01_3, got %s", slots[2].SlotID)
	}
	if slots[83].Date != "2026-02-28" {
		t.Errorf("Expected last slot on 2026-02-28, got %s", slots[83].Date)
	}
	for _, s := range slots {
		if s.AssignedStaffID != "" {
			t.Fatalf("Expected all slots unassigned, %s has %s", s.SlotID, s.AssignedStaffID)
		}
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00"},
		{ID: "P02", Name: "Evening", StartTime: "17:00", EndTime: "22:00"},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P01", MinStaff: 2},
		{ID: "r2", PatternID: "P02", MinStaff: 1},
	}

	first := GenerateSlots(requirements, patterns, 2026, 3, nil, false)
	second := GenerateSlots(requirements, patterns, 2026, 3, first, false)

	if len(first) != len(second) {
		t.Fatalf("Expected identical slot counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SlotID != second[i].SlotID {
			t.Errorf("Slot %d: ID changed from %s to %s", i, first[i].SlotID, second[i].SlotID)
		}
	}
}

func TestGenerateSlots_DateRuleOverridesWildcard(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00"},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P01", MinStaff: 2, RequiredSkills: []string{"Leader"}},
		{ID: "r2", Date: "2026-02-10", PatternID: "P01", MinStaff: 1},
	}

	slots := GenerateSlots(requirements, patterns, 2026, 2, nil, false)

	var onTenth []models.RequiredSlot
	for _, s := range slots {
		if s.Date == "2026-02-10" {
			onTenth = append(onTenth, s)
		}
	}
	if len(onTenth) != 1 {
		t.Fatalf("Expected the date rule to fully override the wildcard, got %d slots", len(onTenth))
	}
	// Override replaces the rule, it does not merge skill requirements
	if len(onTenth[0].RequiredSkills) != 0 {
		t.Errorf("Expected no required skills on the overridden date, got %v", onTenth[0].RequiredSkills)
	}
}

func TestGenerateSlots_PreservesAssignments(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00"},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P01", MinStaff: 2},
	}

	slots := GenerateSlots(requirements, patterns, 2026, 2, nil, false)
	slots[0].AssignedStaffID = "staff-a"
	slots[3].AssignedStaffID = "staff-b"

	regenerated := GenerateSlots(requirements, patterns, 2026, 2, slots, false)
	if regenerated[0].AssignedStaffID != "staff-a" {
		t.Errorf("Expected slot 0 to keep staff-a, got %q", regenerated[0].AssignedStaffID)
	}
	if regenerated[3].AssignedStaffID != "staff-b" {
		t.Errorf("Expected slot 3 to keep staff-b, got %q", regenerated[3].AssignedStaffID)
	}

	reset := GenerateSlots(requirements, patterns, 2026, 2, slots, true)
	for _, s := range reset {
		if s.AssignedStaffID != "" {
			t.Fatalf("Expected reset to clear all assignments, %s kept %s", s.SlotID, s.AssignedStaffID)
		}
	}
}

func TestGenerateSlots_ZeroMinStaff(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00"},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P01", MinStaff: 0},
	}

	slots := GenerateSlots(requirements, patterns, 2026, 2, nil, false)
	if len(slots) != 0 {
		t.Errorf("Expected no slots for a zero-seat rule, got %d", len(slots))
	}
}

func TestGenerateSlots_NoRuleNoSlots(t *testing.T) {
	patterns := []models.ShiftPattern{
		{ID: "P01", Name: "Day", StartTime: "09:00", EndTime: "18:00"},
		{ID: "P02", Name: "Evening", StartTime: "17:00", EndTime: "22:00"},
	}
	requirements := []models.RequiredStaffing{
		{ID: "r1", PatternID: "P02", MinStaff: 1},
	}

	slots := GenerateSlots(requirements, patterns, 2026, 2, nil, false)
	for _, s := range slots {
		if s.PatternID == "P01" {
			t.Fatalf("Expected no slots for a pattern without a rule, got %s", s.SlotID)
		}
	}
	if len(slots) != 28 {
		t.Errorf("Expected 28 slots for the ruled pattern, got %d", len(slots))
	}
}
