package database

import (
	"fmt"
	"time"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"gorm.io/gorm"
)

// Seed wipes existing data and creates an admin plus two demo employees with
// one closed attendance session each. Intended for demo and test setups only.
func Seed(db *gorm.DB, bcryptCost int) error {
	// demo mode: start from an empty ledger
	if err := db.Exec("DELETE FROM attendance_sessions").Error; err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	if err := db.Exec("DELETE FROM employees").Error; err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}

	seedUsers := []struct {
		username string
		fullName string
		password string
		role     models.Role
	}{
		{"admin", "Admin User", "adminpass", models.RoleAdmin},
		{"alice", "Alice Johnson", "alicepass", models.RoleEmployee},
		{"bob", "Bob Lee", "bobpass", models.RoleEmployee},
	}

	byUsername := make(map[string]*models.Employee, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := util.HashPassword(su.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		emp := &models.Employee{
			Username:     su.username,
			FullName:     su.fullName,
			PasswordHash: hash,
			Role:         su.role,
		}
		if err := db.Create(emp).Error; err != nil {
			return fmt.Errorf("create seed employee %s: %w", su.username, err)
		}
		byUsername[su.username] = emp
	}

	// demo sessions: alice worked 8h yesterday, bob 8.75h today
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	aliceIn := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 9, 0, 0, 0, now.Location())
	aliceOut := aliceIn.Add(8 * time.Hour)
	bobIn := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, now.Location())
	bobOut := bobIn.Add(8*time.Hour + 45*time.Minute)

	sessions := []models.AttendanceSession{
		{EmployeeID: byUsername["alice"].ID, CheckInAt: aliceIn, CheckOutAt: &aliceOut},
		{EmployeeID: byUsername["bob"].ID, CheckInAt: bobIn, CheckOutAt: &bobOut},
	}
	for i := range sessions {
		if err := db.Create(&sessions[i]).Error; err != nil {
			return fmt.Errorf("create seed session: %w", err)
		}
	}

	return nil
}
