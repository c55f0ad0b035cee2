package models

import "time"

// AuditLog records mutating API calls made by authenticated employees.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  string    `gorm:"size:36;index" json:"requestId"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	Method     string    `gorm:"size:16" json:"method"`
	Path       string    `gorm:"size:255" json:"path"`
	Status     int       `json:"status"`
	IP         string    `gorm:"size:64" json:"ip"`
	UserAgent  string    `gorm:"size:255" json:"userAgent"`
	CreatedAt  time.Time `json:"createdAt"`
}
