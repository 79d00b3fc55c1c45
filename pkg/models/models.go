package models

// EmploymentType classifies a staff member's contract
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

// Staff represents a worker who can be assigned to shift slots
type Staff struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	EmploymentType EmploymentType `json:"employment_type"`
	Skills         []string       `json:"skills,omitempty"`
	Memo           string         `json:"memo,omitempty"`
	Constraints    Constraints    `json:"constraints"`
}

// HasSkill reports whether the staff member carries the given skill tag
func (s *Staff) HasSkill(tag string) bool {
	for _, sk := range s.Skills {
		if sk == tag {
			return true
		}
	}
	return false
}

// Constraints holds a staff member's permanent scheduling rules.
// Zero values mean "not set": an absent cap or empty set never blocks anything.
type Constraints struct {
	MaxConsecutiveDays  int      `json:"max_consecutive_days,omitempty"`
	MinIntervalHours    float64  `json:"min_interval_hours,omitempty"`
	UnavailableWeekdays []int    `json:"unavailable_weekdays,omitempty"` // 0=Sunday..6=Saturday
	UnavailablePatterns []string `json:"unavailable_patterns,omitempty"`
	AvoidStaffIDs       []string `json:"avoid_staff_ids,omitempty"`

	// Declared for forward compatibility; the fill algorithm does not
	// evaluate these yet.
	MaxTotalHoursPerWeek    float64        `json:"max_total_hours_per_week,omitempty"`
	MaxWeekendShifts        int            `json:"max_weekend_shifts,omitempty"`
	MaxPatternCountPerMonth map[string]int `json:"max_pattern_count_per_month,omitempty"`
	RequireStaffIDs         []string       `json:"require_staff_ids,omitempty"`
	IsMinor                 bool           `json:"is_minor,omitempty"`
}

// ConstraintsPatch is a partial Constraints update produced outside the
// engine (typically from a staff member's memo). Only non-nil fields are
// applied; the patch can never wipe fields it does not mention.
type ConstraintsPatch struct {
	MaxConsecutiveDays      *int            `json:"max_consecutive_days,omitempty"`
	MinIntervalHours        *float64        `json:"min_interval_hours,omitempty"`
	UnavailableWeekdays     *[]int          `json:"unavailable_weekdays,omitempty"`
	UnavailablePatterns     *[]string       `json:"unavailable_patterns,omitempty"`
	AvoidStaffIDs           *[]string       `json:"avoid_staff_ids,omitempty"`
	MaxTotalHoursPerWeek    *float64        `json:"max_total_hours_per_week,omitempty"`
	MaxWeekendShifts        *int            `json:"max_weekend_shifts,omitempty"`
	MaxPatternCountPerMonth *map[string]int `json:"max_pattern_count_per_month,omitempty"`
	RequireStaffIDs         *[]string       `json:"require_staff_ids,omitempty"`
	IsMinor                 *bool           `json:"is_minor,omitempty"`
}

// MergeConstraints applies a patch field by field onto an existing record
func MergeConstraints(base Constraints, patch ConstraintsPatch) Constraints {
	if patch.MaxConsecutiveDays != nil {
		base.MaxConsecutiveDays = *patch.MaxConsecutiveDays
	}
	if patch.MinIntervalHours != nil {
		base.MinIntervalHours = *patch.MinIntervalHours
	}
	if patch.UnavailableWeekdays != nil {
		base.UnavailableWeekdays = *patch.UnavailableWeekdays
	}
	if patch.UnavailablePatterns != nil {
		base.UnavailablePatterns = *patch.UnavailablePatterns
	}
	if patch.AvoidStaffIDs != nil {
		base.AvoidStaffIDs = *patch.AvoidStaffIDs
	}
	if patch.MaxTotalHoursPerWeek != nil {
		base.MaxTotalHoursPerWeek = *patch.MaxTotalHoursPerWeek
	}
	if patch.MaxWeekendShifts != nil {
		base.MaxWeekendShifts = *patch.MaxWeekendShifts
	}
	if patch.MaxPatternCountPerMonth != nil {
		base.MaxPatternCountPerMonth = *patch.MaxPatternCountPerMonth
	}
	if patch.RequireStaffIDs != nil {
		base.RequireStaffIDs = *patch.RequireStaffIDs
	}
	if patch.IsMinor != nil {
		base.IsMinor = *patch.IsMinor
	}
	return base
}

// ShiftPattern is a named shift template with wall-clock start/end times
type ShiftPattern struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	StartTime       string  `json:"start_time"` // "HH:MM"
	EndTime         string  `json:"end_time"`   // "HH:MM"
	CrossesMidnight bool    `json:"crosses_midnight"`
	IsNightShift    bool    `json:"is_night_shift"`
	DurationHours   float64 `json:"duration_hours"`
}

// RequiredStaffing is a staffing rule: how many seats of a pattern are
// needed on a date. An empty Date means the rule applies to every day of
// the month unless a date-specific rule exists for the same pattern.
type RequiredStaffing struct {
	ID             string           `json:"id"`
	Date           string           `json:"date,omitempty"` // "YYYY-MM-DD" or empty
	PatternID      string           `json:"pattern_id"`
	MinStaff       int              `json:"min_staff"`
	RequiredRoles  []EmploymentType `json:"required_roles,omitempty"`
	RequiredSkills []string         `json:"required_skills,omitempty"`
}

// RequiredSlot is one concrete seat: one staff member, one date, one
// pattern. AssignedStaffID is the only field that mutates after
// generation; empty means the seat is open.
type RequiredSlot struct {
	SlotID          string           `json:"slot_id"`
	Date            string           `json:"date"`
	PatternID       string           `json:"pattern_id"`
	RequiredRoles   []EmploymentType `json:"required_roles,omitempty"`
	RequiredSkills  []string         `json:"required_skills,omitempty"`
	AssignedStaffID string           `json:"assigned_staff_id,omitempty"`
}

// Violation is an advisory warning about an assigned slot. Violations are
// informational only and never block or undo an assignment.
type Violation struct {
	SlotID  string `json:"slot_id"`
	Date    string `json:"date"`
	StaffID string `json:"staff_id"`
	Message string `json:"message"`
}

// BurdenSummary aggregates one staff member's load over a slot list
type BurdenSummary struct {
	StaffID       string  `json:"staff_id"`
	Name          string  `json:"name"`
	TotalShifts   int     `json:"total_shifts"`
	NightShifts   int     `json:"night_shifts"`
	WeekendShifts int     `json:"weekend_shifts"`
	TotalHours    float64 `json:"total_hours"`
}

// FillConflict explains why a slot could not be filled automatically
type FillConflict struct {
	SlotID  string   `json:"slot_id"`
	Reasons []string `json:"reasons"`
}

// FillResult is the outcome of an automatic fill pass
type FillResult struct {
	Slots     []RequiredSlot `json:"slots"`
	Unfilled  []string       `json:"unfilled_slots"`
	Conflicts []FillConflict `json:"conflicts,omitempty"`
}
