package database

import (
	"fmt"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Employee{},
		&models.AttendanceSession{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
