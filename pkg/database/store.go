package database

import (
	"fmt"

	"github.com/shiftworks/roster-api/pkg/models"
	"gorm.io/gorm"
)

// Store wraps gorm access to the roster registries. Registry order is
// creation order, which the engine relies on for deterministic tie-breaks.
type Store struct {
	DB *gorm.DB
}

// NewStore creates a Store on an initialized database
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// monthPrefix is the "YYYY-MM-" prefix shared by every date in a month
func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}

// ListStaff returns all staff in registry order
func (s *Store) ListStaff() ([]models.Staff, error) {
	var records []StaffRecord
	if err := s.DB.Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	staff := make([]models.Staff, len(records))
	for i, r := range records {
		staff[i] = r.toDomain()
	}
	return staff, nil
}

// GetStaff fetches one staff member by ID
func (s *Store) GetStaff(id string) (*models.Staff, error) {
	var record StaffRecord
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	staff := record.toDomain()
	return &staff, nil
}

// SaveStaff inserts or updates a staff member
func (s *Store) SaveStaff(staff *models.Staff) error {
	record := staffRecord(staff)
	return s.DB.Save(&record).Error
}

// DeleteStaff removes a staff member from the registry
func (s *Store) DeleteStaff(id string) error {
	return s.DB.Delete(&StaffRecord{}, "id = ?", id).Error
}

// ListPatterns returns all shift patterns in registry order
func (s *Store) ListPatterns() ([]models.ShiftPattern, error) {
	var records []PatternRecord
	if err := s.DB.Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	patterns := make([]models.ShiftPattern, len(records))
	for i, r := range records {
		patterns[i] = models.ShiftPattern{
			ID:              r.ID,
			Name:            r.Name,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			CrossesMidnight: r.CrossesMidnight,
			IsNightShift:    r.IsNightShift,
			DurationHours:   r.DurationHours,
		}
	}
	return patterns, nil
}

// SavePattern inserts or updates a shift pattern
func (s *Store) SavePattern(p *models.ShiftPattern) error {
	record := PatternRecord{
		ID:              p.ID,
		Name:            p.Name,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		CrossesMidnight: p.CrossesMidnight,
		IsNightShift:    p.IsNightShift,
		DurationHours:   p.DurationHours,
	}
	return s.DB.Save(&record).Error
}

// DeletePattern removes a shift pattern
func (s *Store) DeletePattern(id string) error {
	return s.DB.Delete(&PatternRecord{}, "id = ?", id).Error
}

// ListRequirements returns all staffing rules in registry order
func (s *Store) ListRequirements() ([]models.RequiredStaffing, error) {
	var records []RequirementRecord
	if err := s.DB.Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	rules := make([]models.RequiredStaffing, len(records))
	for i, r := range records {
		rules[i] = models.RequiredStaffing{
			ID:             r.ID,
			Date:           r.Date,
			PatternID:      r.PatternID,
			MinStaff:       r.MinStaff,
			RequiredRoles:  toRoles(r.RequiredRoles),
			RequiredSkills: r.RequiredSkills,
		}
	}
	return rules, nil
}

// SaveRequirement inserts or updates a staffing rule
func (s *Store) SaveRequirement(r *models.RequiredStaffing) error {
	record := RequirementRecord{
		ID:             r.ID,
		Date:           r.Date,
		PatternID:      r.PatternID,
		MinStaff:       r.MinStaff,
		RequiredRoles:  fromRoles(r.RequiredRoles),
		RequiredSkills: r.RequiredSkills,
	}
	return s.DB.Save(&record).Error
}

// DeleteRequirement removes a staffing rule
func (s *Store) DeleteRequirement(id string) error {
	return s.DB.Delete(&RequirementRecord{}, "id = ?", id).Error
}

// SlotsForMonth returns the month's slots in generation order
func (s *Store) SlotsForMonth(year, month int) ([]models.RequiredSlot, error) {
	var records []SlotRecord
	err := s.DB.Where("date LIKE ?", monthPrefix(year, month)+"%").
		Order("position").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}
	slots := make([]models.RequiredSlot, len(records))
	for i, r := range records {
		slots[i] = models.RequiredSlot{
			SlotID:          r.SlotID,
			Date:            r.Date,
			PatternID:       r.PatternID,
			RequiredRoles:   toRoles(r.RequiredRoles),
			RequiredSkills:  r.RequiredSkills,
			AssignedStaffID: r.AssignedStaffID,
		}
	}
	return slots, nil
}

// ReplaceMonthSlots swaps the month's slot list wholesale. The delete and
// insert run in one transaction so the caller sees a single replacement.
func (s *Store) ReplaceMonthSlots(year, month int, slots []models.RequiredSlot) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date LIKE ?", monthPrefix(year, month)+"%").
			Delete(&SlotRecord{}).Error; err != nil {
			return err
		}
		for i, slot := range slots {
			record := SlotRecord{
				SlotID:          slot.SlotID,
				Date:            slot.Date,
				PatternID:       slot.PatternID,
				RequiredRoles:   fromRoles(slot.RequiredRoles),
				RequiredSkills:  slot.RequiredSkills,
				AssignedStaffID: slot.AssignedStaffID,
				Position:        i,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AssignSlot sets or clears the staff assignment on one slot
func (s *Store) AssignSlot(slotID, staffID string) error {
	result := s.DB.Model(&SlotRecord{}).Where("slot_id = ?", slotID).
		Update("assigned_staff_id", staffID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r StaffRecord) toDomain() models.Staff {
	return models.Staff{
		ID:             r.ID,
		Name:           r.Name,
		EmploymentType: models.EmploymentType(r.EmploymentType),
		Skills:         r.Skills,
		Memo:           r.Memo,
		Constraints:    r.Constraints,
	}
}

func staffRecord(s *models.Staff) StaffRecord {
	return StaffRecord{
		ID:             s.ID,
		Name:           s.Name,
		EmploymentType: string(s.EmploymentType),
		Skills:         s.Skills,
		Memo:           s.Memo,
		Constraints:    s.Constraints,
	}
}

func toRoles(in []string) []models.EmploymentType {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.EmploymentType, len(in))
	for i, r := range in {
		out[i] = models.EmploymentType(r)
	}
	return out
}

func fromRoles(in []models.EmploymentType) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = string(r)
	}
	return out
}
