package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftworks/roster-api/pkg/engine"
)

// ValidateRegistries runs a sanity check over the stored registries before
// the operator generates a month: duplicate IDs, rules pointing at unknown
// patterns, malformed wall-clock times.
func (h *Handler) ValidateRegistries(c *gin.Context) {
	staff, patterns, ok := h.loadRegistries(c)
	if !ok {
		return
	}
	requirements, err := h.Store.ListRequirements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load requirements"})
		return
	}

	if len(staff) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "At least one staff member is required"})
		return
	}
	if len(patterns) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "At least one shift pattern is required"})
		return
	}

	staffIDs := make(map[string]bool)
	for _, s := range staff {
		if staffIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate staff ID: " + s.ID})
			return
		}
		staffIDs[s.ID] = true
	}

	patternIDs := make(map[string]bool)
	for _, p := range patterns {
		if patternIDs[p.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate pattern ID: " + p.ID})
			return
		}
		patternIDs[p.ID] = true

		if _, _, err := engine.ParseClock(p.StartTime); err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Pattern " + p.ID + " has a malformed start_time"})
			return
		}
		if _, _, err := engine.ParseClock(p.EndTime); err != nil {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Pattern " + p.ID + " has a malformed end_time"})
			return
		}
	}

	for _, r := range requirements {
		if !patternIDs[r.PatternID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Requirement " + r.ID + " references unknown pattern " + r.PatternID})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"staff_count":       len(staff),
			"pattern_count":     len(patterns),
			"requirement_count": len(requirements),
		},
	})
}
