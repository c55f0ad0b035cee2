package util

import "github.com/gin-gonic/gin"

// Error reason strings used across handlers. All error bodies have the shape
// {"error": "<reason>"}.
const (
	ReasonTokenRequired   = "token_required"
	ReasonInvalidToken    = "invalid_token"
	ReasonForbidden       = "forbidden"
	ReasonNotFound        = "not_found"
	ReasonUsernameExists  = "username_exists"
	ReasonInvalidCreds    = "invalid_credentials"
	ReasonMissingFields   = "missing_required_fields"
	ReasonInvalidRole     = "invalid_role"
	ReasonInvalidID       = "invalid_id"
	ReasonInvalidDate     = "invalid_date"
	ReasonNoActiveSession = "no_active_session_found"
	ReasonAlreadyOpen     = "already_checked_in"
	ReasonInternal        = "internal_server_error"
)

// Error writes the uniform error body.
func Error(c *gin.Context, status int, reason string) {
	c.JSON(status, gin.H{"error": reason})
}
