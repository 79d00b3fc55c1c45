package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeConstraints_OnlyPatchedFieldsChange(t *testing.T) {
	base := Constraints{
		MaxConsecutiveDays:  5,
		MinIntervalHours:    11,
		UnavailableWeekdays: []int{0, 6},
		AvoidStaffIDs:       []string{"x"},
	}

	days := 3
	patch := ConstraintsPatch{MaxConsecutiveDays: &days}

	merged := MergeConstraints(base, patch)

	assert.Equal(t, 3, merged.MaxConsecutiveDays)
	assert.Equal(t, 11.0, merged.MinIntervalHours)
	assert.Equal(t, []int{0, 6}, merged.UnavailableWeekdays)
	assert.Equal(t, []string{"x"}, merged.AvoidStaffIDs)
}

func TestMergeConstraints_CanClearWithExplicitEmpty(t *testing.T) {
	base := Constraints{UnavailableWeekdays: []int{0}}

	empty := []int{}
	merged := MergeConstraints(base, ConstraintsPatch{UnavailableWeekdays: &empty})

	assert.Empty(t, merged.UnavailableWeekdays)
}

func TestMergeConstraints_EmptyPatchIsANoOp(t *testing.T) {
	base := Constraints{
		MaxConsecutiveDays:  4,
		UnavailablePatterns: []string{"P02"},
		IsMinor:             true,
	}

	merged := MergeConstraints(base, ConstraintsPatch{})
	assert.Equal(t, base, merged)
}

func TestHasSkill(t *testing.T) {
	s := Staff{Skills: []string{"Leader", "Forklift"}}
	assert.True(t, s.HasSkill("Leader"))
	assert.False(t, s.HasSkill("Cashier"))
}
