package middleware

import (
	"net/http"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit records mutating requests made by authenticated employees. Reads are
// not logged. Failures to write the audit row are ignored so they never break
// the request itself.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}

		emp, ok := CurrentEmployee(c)
		if !ok {
			return
		}

		entry := models.AuditLog{
			RequestID:  requestID,
			EmployeeID: emp.ID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			Status:     c.Writer.Status(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
