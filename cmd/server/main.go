package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftworks/roster-api/pkg/advisor"
	"github.com/shiftworks/roster-api/pkg/auth"
	"github.com/shiftworks/roster-api/pkg/config"
	"github.com/shiftworks/roster-api/pkg/database"
	"github.com/shiftworks/roster-api/pkg/handlers"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Get()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	if err := auth.EnsureAdminExists(db); err != nil {
		logrus.WithError(err).Fatal("could not bootstrap admin user")
	}

	h := &handlers.Handler{
		DB:      db,
		Store:   database.NewStore(db),
		Advisor: advisor.New(cfg.AdvisorURL, time.Duration(cfg.AdvisorTimeout)*time.Second),
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Shift Roster API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Roster Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/staff", h.CreateStaff)
		api.GET("/staff", h.ListStaff)
		api.PUT("/staff/:id", h.UpdateStaff)
		api.DELETE("/staff/:id", h.DeleteStaff)
		api.PUT("/staff/:id/constraints", h.PatchStaffConstraints)

		api.POST("/patterns", h.CreatePattern)
		api.GET("/patterns", h.ListPatterns)
		api.DELETE("/patterns/:id", h.DeletePattern)

		api.POST("/requirements", h.CreateRequirement)
		api.GET("/requirements", h.ListRequirements)
		api.DELETE("/requirements/:id", h.DeleteRequirement)

		api.POST("/roster/:year/:month/slots", h.GenerateSlots)
		api.GET("/roster/:year/:month/slots", h.ListSlots)
		api.POST("/roster/:year/:month/fill", h.FillRoster)
		api.PUT("/slots/:slotId/assign", h.AssignSlot)
		api.GET("/roster/:year/:month/violations", h.GetViolations)
		api.GET("/roster/:year/:month/burden", h.GetBurden)
		api.GET("/roster/:year/:month/export", h.ExportCSV)
		api.POST("/roster/:year/:month/advice", h.GetAdvice)

		api.POST("/validate", h.ValidateRegistries)
		api.GET("/usage", h.GetMyUsage)
	}

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("could not run server")
	}
}
