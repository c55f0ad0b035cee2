package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/models"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is the gin context key holding the authenticated employee.
const CurrentUserKey = "currentUser"

// AuthRequired verifies the bearer token and puts the employee into the
// request context. Verification is stateless apart from the employee lookup;
// there is no revocation list.
func AuthRequired(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// 2) URL query ?token=xxx (for export downloads where headers
		// cannot be set)
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.ReasonTokenRequired)
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			util.Error(c, http.StatusUnauthorized, util.ReasonInvalidToken)
			c.Abort()
			return
		}

		var emp models.Employee
		if err := db.First(&emp, claims.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				util.Error(c, http.StatusUnauthorized, util.ReasonInvalidToken)
			} else {
				util.Error(c, http.StatusInternalServerError, util.ReasonInternal)
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, &emp)
		c.Next()
	}
}

// RequireRoles allows the request through only if the authenticated employee
// has one of the given roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		emp, ok := CurrentEmployee(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.ReasonTokenRequired)
			c.Abort()
			return
		}
		for _, r := range roles {
			if emp.Role == r {
				c.Next()
				return
			}
		}
		util.Error(c, http.StatusForbidden, util.ReasonForbidden)
		c.Abort()
	}
}

// CurrentEmployee fetches the authenticated employee set by AuthRequired.
func CurrentEmployee(c *gin.Context) (*models.Employee, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	emp, ok := v.(*models.Employee)
	if !ok || emp == nil {
		return nil, false
	}
	return emp, true
}
