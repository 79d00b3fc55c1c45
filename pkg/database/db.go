package database

import (
	"os"
	"time"

	"github.com/shiftworks/roster-api/pkg/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// StaffRecord represents the staff table
type StaffRecord struct {
	ID             string             `gorm:"primaryKey" json:"id"`
	Name           string             `gorm:"not null" json:"name"`
	EmploymentType string             `gorm:"not null" json:"employment_type"`
	Skills         []string           `gorm:"serializer:json" json:"skills"`
	Memo           string             `json:"memo"`
	Constraints    models.Constraints `gorm:"serializer:json" json:"constraints"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// PatternRecord represents the shift_patterns table
type PatternRecord struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	StartTime       string    `gorm:"not null" json:"start_time"`
	EndTime         string    `gorm:"not null" json:"end_time"`
	CrossesMidnight bool      `json:"crosses_midnight"`
	IsNightShift    bool      `json:"is_night_shift"`
	DurationHours   float64   `json:"duration_hours"`
	CreatedAt       time.Time `json:"created_at"`
}

// RequirementRecord represents the staffing_requirements table. An empty
// Date means the rule applies every day.
type RequirementRecord struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Date           string    `gorm:"index" json:"date"`
	PatternID      string    `gorm:"not null" json:"pattern_id"`
	MinStaff       int       `json:"min_staff"`
	RequiredRoles  []string  `gorm:"serializer:json" json:"required_roles"`
	RequiredSkills []string  `gorm:"serializer:json" json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

// SlotRecord represents the required_slots table. Position preserves the
// day-then-pattern generation order.
type SlotRecord struct {
	SlotID          string   `gorm:"primaryKey" json:"slot_id"`
	Date            string   `gorm:"index;not null" json:"date"`
	PatternID       string   `gorm:"not null" json:"pattern_id"`
	RequiredRoles   []string `gorm:"serializer:json" json:"required_roles"`
	RequiredSkills  []string `gorm:"serializer:json" json:"required_skills"`
	AssignedStaffID string   `json:"assigned_staff_id"`
	Position        int      `gorm:"not null" json:"position"`
}

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalSlots   int    `gorm:"default:0" json:"total_slots"`
	TotalStaff   int    `gorm:"default:0" json:"total_staff"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects postgres; otherwise a local sqlite file is used.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "roster.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(
		&StaffRecord{}, &PatternRecord{}, &RequirementRecord{}, &SlotRecord{},
		&APIKey{}, &APIUsage{}, &MasterUser{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate schema")
	}

	return db
}
