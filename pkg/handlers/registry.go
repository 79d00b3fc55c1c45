package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shiftworks/roster-api/pkg/engine"
	"github.com/shiftworks/roster-api/pkg/models"
	"gorm.io/gorm"
)

// CreateStaff registers a new staff member. An ID is generated when the
// client does not supply one; the constraints record always exists.
func (h *Handler) CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if staff.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if staff.EmploymentType != models.EmploymentFullTime && staff.EmploymentType != models.EmploymentPartTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employment_type must be full_time or part_time"})
		return
	}
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}

	if err := h.Store.SaveStaff(&staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// ListStaff returns the staff registry
func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.Store.ListStaff()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// UpdateStaff replaces a staff member's record
func (h *Handler) UpdateStaff(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.Store.GetStaff(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load staff"})
		return
	}

	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	staff.ID = id

	if err := h.Store.SaveStaff(&staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member from the registry
func (h *Handler) DeleteStaff(c *gin.Context) {
	if err := h.Store.DeleteStaff(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete staff"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted"})
}

// PatchStaffConstraints merges a partial constraints update into a staff
// member's record. This is the write-back path for the external memo
// interpreter: only fields the patch carries are overwritten, so a partial
// result can never erase existing constraints.
func (h *Handler) PatchStaffConstraints(c *gin.Context) {
	id := c.Param("id")
	staff, err := h.Store.GetStaff(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load staff"})
		return
	}

	var patch models.ConstraintsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff.Constraints = models.MergeConstraints(staff.Constraints, patch)
	if err := h.Store.SaveStaff(staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreatePattern registers a shift pattern
func (h *Handler) CreatePattern(c *gin.Context) {
	var p models.ShiftPattern
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, _, err := engine.ParseClock(p.StartTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be HH:MM"})
		return
	}
	if _, _, err := engine.ParseClock(p.EndTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be HH:MM"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := h.Store.SavePattern(&p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save pattern"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPatterns returns the pattern registry
func (h *Handler) ListPatterns(c *gin.Context) {
	patterns, err := h.Store.ListPatterns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load patterns"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// DeletePattern removes a shift pattern
func (h *Handler) DeletePattern(c *gin.Context) {
	if err := h.Store.DeletePattern(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete pattern"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pattern deleted"})
}

// CreateRequirement registers a staffing rule
func (h *Handler) CreateRequirement(c *gin.Context) {
	var r models.RequiredStaffing
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if r.PatternID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern_id is required"})
		return
	}
	if r.MinStaff < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_staff must be >= 0"})
		return
	}
	if r.Date != "" {
		if _, err := engine.ParseDate(r.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD or omitted for every day"})
			return
		}
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := h.Store.SaveRequirement(&r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save requirement"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// ListRequirements returns the staffing rules
func (h *Handler) ListRequirements(c *gin.Context) {
	rules, err := h.Store.ListRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load requirements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requirements": rules})
}

// DeleteRequirement removes a staffing rule
func (h *Handler) DeleteRequirement(c *gin.Context) {
	if err := h.Store.DeleteRequirement(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete requirement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Requirement deleted"})
}
