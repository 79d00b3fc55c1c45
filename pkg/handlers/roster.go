package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shiftworks/roster-api/pkg/advisor"
	"github.com/shiftworks/roster-api/pkg/engine"
	"github.com/shiftworks/roster-api/pkg/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// monthParams reads and validates the :year/:month path parameters
func monthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

// GenerateSlots expands the staffing rules into the month's slot list and
// stores it. Assignments on slots whose ID is unchanged survive; passing
// ?reset=true rebuilds the month with every seat open.
func (h *Handler) GenerateSlots(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	reset := c.Query("reset") == "true"

	requirements, err := h.Store.ListRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load requirements"})
		return
	}
	patterns, err := h.Store.ListPatterns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load patterns"})
		return
	}
	existing, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load current slots"})
		return
	}

	slots := engine.GenerateSlots(requirements, patterns, year, month, existing, reset)
	if err := h.Store.ReplaceMonthSlots(year, month, slots); err != nil {
		logrus.WithError(err).Error("slot replacement failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store slots"})
		return
	}

	h.RecordUsage(c, len(slots), 0)
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// ListSlots returns the month's slot list in generation order
func (h *Handler) ListSlots(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// FillRoster runs the automatic fill over the month's open seats. Manual
// assignments are never altered; running the fill with no generated slots
// is a user error, not a silent no-op.
func (h *Handler) FillRoster(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}

	result, err := engine.Fill(slots, staff, patterns)
	if err != nil {
		if errors.Is(err, engine.ErrNoSlots) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.ReplaceMonthSlots(year, month, result.Slots); err != nil {
		logrus.WithError(err).Error("slot replacement failed after fill")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store slots"})
		return
	}

	h.RecordUsage(c, len(result.Slots), len(staff))
	c.JSON(http.StatusOK, result)
}

// AssignSlot sets or clears one seat by hand. An empty staff_id opens the
// seat again. Soft-constraint violations never block this; they show up
// in the violations report instead.
func (h *Handler) AssignSlot(c *gin.Context) {
	slotID := c.Param("slotId")
	var req struct {
		StaffID string `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.StaffID != "" {
		if _, err := h.Store.GetStaff(req.StaffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load staff"})
			return
		}
	}

	if err := h.Store.AssignSlot(slotID, req.StaffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot_id": slotID, "assigned_staff_id": req.StaffID})
}

// GetViolations computes the advisory warnings for the month's roster
func (h *Handler) GetViolations(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}

	violations := engine.DetectViolations(slots, staff, patterns)
	c.JSON(http.StatusOK, gin.H{"violations": violations, "count": len(violations)})
}

// GetBurden returns per-staff load totals for the month
func (h *Handler) GetBurden(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}

	burden := engine.SummarizeBurden(slots, staff, patterns)
	c.JSON(http.StatusOK, gin.H{"burden": burden})
}

// ExportCSV renders the month's roster as CSV, one row per seat
func (h *Handler) ExportCSV(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}

	staffByID := make(map[string]*models.Staff, len(staff))
	for i := range staff {
		staffByID[staff[i].ID] = &staff[i]
	}
	patternByID := make(map[string]*models.ShiftPattern, len(patterns))
	for i := range patterns {
		patternByID[patterns[i].ID] = &patterns[i]
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"slot_id", "date", "pattern", "start", "end", "duration_hours", "staff_id", "staff_name"})

	for _, slot := range slots {
		patternName, start, end := slot.PatternID, "", ""
		duration := ""
		if p, ok := patternByID[slot.PatternID]; ok {
			patternName, start, end = p.Name, p.StartTime, p.EndTime
			duration = fmt.Sprintf("%.2f", p.DurationHours)
		}
		staffName := ""
		if s, ok := staffByID[slot.AssignedStaffID]; ok {
			staffName = s.Name
		}
		writer.Write([]string{
			slot.SlotID,
			slot.Date,
			patternName,
			start,
			end,
			duration,
			slot.AssignedStaffID,
			staffName,
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}

// GetAdvice forwards a snapshot of the month and one target slot to the
// external advisory service and returns its free-form text untouched. A
// failed call is reported, never fatal to the roster itself.
func (h *Handler) GetAdvice(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	var req struct {
		SlotID string `json:"slot_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := h.Store.SlotsForMonth(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load slots"})
		return
	}
	var target *models.RequiredSlot
	for i := range slots {
		if slots[i].SlotID == req.SlotID {
			target = &slots[i]
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
		return
	}

	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}

	advice, err := h.Advisor.Advise(c.Request.Context(), &advisor.AdviceRequest{
		Slot:   *target,
		Staff:  staff,
		Burden: engine.SummarizeBurden(slots, staff, patterns),
		Slots:  slots,
	})
	if err != nil {
		if errors.Is(err, advisor.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Warn("advisory call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// loadRegistries fetches the staff and pattern registries, answering 500
// on failure
func (h *Handler) loadRegistries(c *gin.Context) ([]models.Staff, []models.ShiftPattern, bool) {
	staff, err := h.Store.ListStaff()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load staff"})
		return nil, nil, false
	}
	patterns, err := h.Store.ListPatterns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load patterns"})
		return nil, nil, false
	}
	return staff, patterns, true
}
